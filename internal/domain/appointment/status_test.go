package appointment

import (
	"testing"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Fatalf("ParseStatus(%q) = %v, want nil", s, err)
		}
	}

	for _, s := range []string{"", "done", "PENDING", "canceled"} {
		if _, err := ParseStatus(s); !httperr.IsBusiness(err, "invalid_status") {
			t.Fatalf("ParseStatus(%q) = %v, want invalid_status", s, err)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Transition(ap, StatusCancelled, now); err != nil {
		t.Fatalf("Transition() = %v, want nil", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("Status = %q, want %q", ap.Status, StatusCancelled)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("CancelledAt = %v, want %v", ap.CancelledAt, now)
	}

	ap = &models.Appointment{Status: string(StatusConfirmed)}
	if err := Transition(ap, StatusCompleted, now); err != nil {
		t.Fatalf("Transition() = %v, want nil", err)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatalf("CompletedAt = %v, want %v", ap.CompletedAt, now)
	}
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusCompleted)}
	err := Transition(ap, StatusCancelled, now)
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("Transition() = %v, want invalid_status_transition", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("Status = %q, appointment mutated on rejected transition", ap.Status)
	}
	if ap.CancelledAt != nil {
		t.Fatal("CancelledAt stamped on rejected transition")
	}
}
