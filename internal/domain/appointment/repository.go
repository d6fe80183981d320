package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// ErrNotFound is returned by repository lookups when the record is absent.
var ErrNotFound = errors.New("not found")

// ErrTimeConflict is returned by CreateIfNoConflict when a non-cancelled
// appointment already occupies part of the requested range.
var ErrTimeConflict = errors.New("time conflict")

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// GetBarberByID resolves a user with role=barber, schedule included.
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Services --------
	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment (create / conflict) --------

	// CreateIfNoConflict atomically verifies that no non-cancelled
	// appointment for the same barber overlaps [ap.Time, ap.EndTime) and
	// inserts the record. The check and the insert must not be separable by
	// a concurrent writer.
	CreateIfNoConflict(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// ListAppointmentsByBarber returns non-cancelled appointments starting
	// at or after from, ascending.
	ListAppointmentsByBarber(
		ctx context.Context,
		barberID uint,
		from time.Time,
	) ([]models.Appointment, error)

	// ListAppointmentsForDay returns non-cancelled appointments with
	// start_time in [dayStart, dayEnd), ascending.
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)
}
