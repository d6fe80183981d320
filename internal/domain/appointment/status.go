package appointment

import (
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrValidation("invalid_status", "Unknown appointment status.")
}

// transitions is the legal state machine. completed and cancelled are
// terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves an appointment to a new status, stamping the terminal
// timestamps on the way.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	from := Status(ap.Status)
	if !CanTransition(from, to) {
		return httperr.ErrValidation(
			"invalid_status_transition",
			"Appointment cannot go from "+string(from)+" to "+string(to)+".",
		)
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
