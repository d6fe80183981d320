package appointment

import (
	"context"
	"time"

	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return aps, nil
}

type ListAppointmentsByUser struct {
	repo domain.Repository
}

func NewListAppointmentsByUser(repo domain.Repository) *ListAppointmentsByUser {
	return &ListAppointmentsByUser{repo: repo}
}

func (uc *ListAppointmentsByUser) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	aps, err := uc.repo.ListAppointmentsByUser(ctx, userID)
	if err != nil {
		return nil, classify(err)
	}
	return aps, nil
}

// ListAppointmentsByBarber returns the barber's upcoming book: non-cancelled
// appointments from the start of today, ascending.
type ListAppointmentsByBarber struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByBarber(repo domain.Repository, loc *time.Location) *ListAppointmentsByBarber {
	return &ListAppointmentsByBarber{repo: repo, loc: loc}
}

func (uc *ListAppointmentsByBarber) Execute(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	now := time.Now().In(uc.loc)
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)

	aps, err := uc.repo.ListAppointmentsByBarber(ctx, barberID, startOfToday)
	if err != nil {
		return nil, classify(err)
	}
	return aps, nil
}

// ListAppointmentsByBarberAndDay feeds the slot display: the barber's
// non-cancelled appointments within one calendar day [00:00, 24:00) shop time.
type ListAppointmentsByBarberAndDay struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByBarberAndDay(repo domain.Repository, loc *time.Location) *ListAppointmentsByBarberAndDay {
	return &ListAppointmentsByBarberAndDay{repo: repo, loc: loc}
}

func (uc *ListAppointmentsByBarberAndDay) Execute(
	ctx context.Context,
	barberID uint,
	day time.Time,
) ([]models.Appointment, error) {

	d := day.In(uc.loc)
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	aps, err := uc.repo.ListAppointmentsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, classify(err)
	}
	return aps, nil
}
