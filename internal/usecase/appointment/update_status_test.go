package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

func newStatusFixture(ap *models.Appointment, saved **models.Appointment) *UpdateStatus {
	repo := &fakeRepo{
		getAppointmentByID: func(_ context.Context, id uint) (*models.Appointment, error) {
			if ap == nil || ap.ID != id {
				return nil, domain.ErrNotFound
			}
			cp := *ap
			return &cp, nil
		},
		updateAppointment: func(_ context.Context, ap *models.Appointment) error {
			if saved != nil {
				*saved = ap
			}
			return nil
		},
	}
	return NewUpdateStatus(repo, nil, time.UTC)
}

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:       10,
		UserID:   7,
		BarberID: 3,
		Status:   string(domain.StatusPending),
	}
}

func TestUpdateStatusCustomerCancelsOwn(t *testing.T) {
	var saved *models.Appointment
	uc := newStatusFixture(pendingAppointment(), &saved)

	ap, err := uc.Execute(context.Background(), 10, "cancelled", Actor{UserID: 7, Role: models.RoleCustomer})
	if err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("Status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Fatal("CancelledAt not stamped")
	}
	if saved == nil {
		t.Fatal("UpdateAppointment not called")
	}
}

func TestUpdateStatusBarberConfirmsOwnBook(t *testing.T) {
	uc := newStatusFixture(pendingAppointment(), nil)

	ap, err := uc.Execute(context.Background(), 10, "confirmed", Actor{UserID: 3, Role: models.RoleBarber})
	if err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Fatalf("Status = %q, want confirmed", ap.Status)
	}
}

func TestUpdateStatusForbidden(t *testing.T) {
	uc := newStatusFixture(pendingAppointment(), nil)

	tests := []struct {
		name  string
		actor Actor
	}{
		{"other customer", Actor{UserID: 8, Role: models.RoleCustomer}},
		{"other barber", Actor{UserID: 4, Role: models.RoleBarber}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), 10, "cancelled", tt.actor)
			if !httperr.IsBusiness(err, "forbidden") {
				t.Fatalf("Execute() = %v, want forbidden", err)
			}
		})
	}
}

func TestUpdateStatusOwnerMayTouchAny(t *testing.T) {
	uc := newStatusFixture(pendingAppointment(), nil)

	_, err := uc.Execute(context.Background(), 10, "cancelled", Actor{UserID: 99, Role: models.RoleOwner})
	if err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(domain.StatusCompleted)
	uc := newStatusFixture(ap, nil)

	_, err := uc.Execute(context.Background(), 10, "cancelled", Actor{UserID: 99, Role: models.RoleOwner})
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("Execute() = %v, want invalid_status_transition", err)
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	uc := newStatusFixture(pendingAppointment(), nil)

	_, err := uc.Execute(context.Background(), 10, "done", Actor{UserID: 99, Role: models.RoleOwner})
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("Execute() = %v, want invalid_status", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	uc := newStatusFixture(nil, nil)

	_, err := uc.Execute(context.Background(), 10, "cancelled", Actor{UserID: 99, Role: models.RoleOwner})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("Execute() = %v, want appointment_not_found", err)
	}
}
