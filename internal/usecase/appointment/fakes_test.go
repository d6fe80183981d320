package appointment

import (
	"context"
	"time"

	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// fakeRepo implements domain.Repository with overridable function fields.
// Unset methods fail loudly via nil dereference, which points straight at the
// test that forgot to stub them.
type fakeRepo struct {
	getUserByID            func(ctx context.Context, id uint) (*models.User, error)
	getBarberByID          func(ctx context.Context, id uint) (*models.User, error)
	getServicesByIDs       func(ctx context.Context, ids []uint) ([]models.Service, error)
	createIfNoConflict     func(ctx context.Context, ap *models.Appointment) error
	getAppointmentByID     func(ctx context.Context, id uint) (*models.Appointment, error)
	updateAppointment      func(ctx context.Context, ap *models.Appointment) error
	listAppointments       func(ctx context.Context) ([]models.Appointment, error)
	listAppointmentsByUser func(ctx context.Context, userID uint) ([]models.Appointment, error)
	listByBarber           func(ctx context.Context, barberID uint, from time.Time) ([]models.Appointment, error)
	listForDay             func(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error)
}

func (f *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return f.getUserByID(ctx, id)
}

func (f *fakeRepo) GetBarberByID(ctx context.Context, id uint) (*models.User, error) {
	return f.getBarberByID(ctx, id)
}

func (f *fakeRepo) GetServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	return f.getServicesByIDs(ctx, ids)
}

func (f *fakeRepo) CreateIfNoConflict(ctx context.Context, ap *models.Appointment) error {
	return f.createIfNoConflict(ctx, ap)
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return f.getAppointmentByID(ctx, id)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return f.updateAppointment(ctx, ap)
}

func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return f.listAppointments(ctx)
}

func (f *fakeRepo) ListAppointmentsByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return f.listAppointmentsByUser(ctx, userID)
}

func (f *fakeRepo) ListAppointmentsByBarber(ctx context.Context, barberID uint, from time.Time) ([]models.Appointment, error) {
	return f.listByBarber(ctx, barberID, from)
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	return f.listForDay(ctx, barberID, dayStart, dayEnd)
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeLocker records acquire/release calls and never blocks.
type fakeLocker struct {
	acquired []string
	released int
	err      error
}

func (f *fakeLocker) Acquire(ctx context.Context, key string) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.acquired = append(f.acquired, key)
	return func() { f.released++ }, nil
}

// -------- shared fixtures --------

func testWeek(start, end string) []models.WorkingSchedule {
	week := make([]models.WorkingSchedule, 0, 7)
	for day := 0; day < 7; day++ {
		week = append(week, models.WorkingSchedule{
			DayOfWeek: day,
			StartTime: start,
			EndTime:   end,
			IsWorking: true,
		})
	}
	return week
}

func testBarber(id uint, week []models.WorkingSchedule) *models.User {
	return &models.User{
		ID:              id,
		Name:            "Marco",
		Role:            models.RoleBarber,
		WorkingSchedule: week,
	}
}

func testCustomer(id uint) *models.User {
	return &models.User{ID: id, Name: "Lena", Role: models.RoleCustomer}
}
