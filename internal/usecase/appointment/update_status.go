package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// Actor is the authenticated caller attempting the transition. Customers may
// only touch their own appointments, barbers their own book; the owner may
// touch any.
type Actor struct {
	UserID uint
	Role   string
}

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: auditDispatcher, loc: loc}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	newStatus string,
	actor Actor,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	if err != nil {
		return nil, classify(err)
	}

	if !canTouch(actor, ap) {
		return nil, httperr.ErrValidation("forbidden", "You may not modify this appointment.")
	}

	now := time.Now().In(uc.loc)
	if err := domain.Transition(ap, status, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, classify(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": string(status)},
	})

	return ap, nil
}

func canTouch(actor Actor, ap *models.Appointment) bool {
	switch actor.Role {
	case models.RoleOwner:
		return true
	case models.RoleBarber:
		return ap.BarberID == actor.UserID
	default:
		return ap.UserID == actor.UserID
	}
}
