package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

var testServices = []models.Service{
	{ID: 1, Name: "Haircut", Price: 30, DurationMin: 30},
	{ID: 2, Name: "Beard trim", Price: 15, DurationMin: 15},
}

func newReserveFixture(created **models.Appointment) (*ReserveAppointment, *fakeLocker) {
	repo := &fakeRepo{
		getUserByID: func(_ context.Context, id uint) (*models.User, error) {
			return testCustomer(id), nil
		},
		getBarberByID: func(_ context.Context, id uint) (*models.User, error) {
			return testBarber(id, testWeek("09:00", "18:00")), nil
		},
		getServicesByIDs: func(_ context.Context, ids []uint) ([]models.Service, error) {
			var out []models.Service
			for _, id := range ids {
				for _, svc := range testServices {
					if svc.ID == id {
						out = append(out, svc)
					}
				}
			}
			return out, nil
		},
		createIfNoConflict: func(_ context.Context, ap *models.Appointment) error {
			ap.ID = 42
			if created != nil {
				*created = ap
			}
			return nil
		},
	}

	locks := &fakeLocker{}
	return NewReserveAppointment(repo, locks, nil, time.UTC), locks
}

// 2026-03-02 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestReserveRecomputesTotals(t *testing.T) {
	var created *models.Appointment
	uc, locks := newReserveFixture(&created)

	ap, err := uc.Execute(context.Background(), ReserveInput{
		UserID:     7,
		BarberID:   3,
		ServiceIDs: []uint{1, 2},
		Time:       mondayAt(10, 0),
	})
	if err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}

	if ap.TotalPrice != 45 {
		t.Fatalf("TotalPrice = %v, want 45", ap.TotalPrice)
	}
	if ap.TotalDurationMin != 45 {
		t.Fatalf("TotalDurationMin = %d, want 45", ap.TotalDurationMin)
	}
	want := mondayAt(10, 45)
	if !ap.EndTime.Equal(want) {
		t.Fatalf("EndTime = %v, want %v", ap.EndTime, want)
	}
	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("Status = %q, want %q", ap.Status, domain.StatusPending)
	}
	if ap.Reference == uuid.Nil {
		t.Fatal("Reference not assigned")
	}
	if ap.CustomerName != "Lena" || ap.BarberName != "Marco" {
		t.Fatalf("snapshots = %q/%q, want Lena/Marco", ap.CustomerName, ap.BarberName)
	}

	if created == nil {
		t.Fatal("CreateIfNoConflict not called")
	}
	if len(locks.acquired) != 1 || locks.acquired[0] != "reserve:barber:3" {
		t.Fatalf("acquired = %v, want one barber lock", locks.acquired)
	}
	if locks.released != 1 {
		t.Fatalf("released = %d, want 1", locks.released)
	}
}

func TestReserveTruncatesSeconds(t *testing.T) {
	var created *models.Appointment
	uc, _ := newReserveFixture(&created)

	start := time.Date(2026, 3, 2, 10, 0, 42, 999, time.UTC)
	ap, err := uc.Execute(context.Background(), ReserveInput{
		UserID:     7,
		BarberID:   3,
		ServiceIDs: []uint{1},
		Time:       start,
	})
	if err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
	if !ap.Time.Equal(mondayAt(10, 0)) {
		t.Fatalf("Time = %v, want %v", ap.Time, mondayAt(10, 0))
	}
}

func TestReserveValidation(t *testing.T) {
	uc, _ := newReserveFixture(nil)

	tests := []struct {
		name     string
		in       ReserveInput
		wantCode string
	}{
		{
			"no services",
			ReserveInput{UserID: 7, BarberID: 3, Time: mondayAt(10, 0)},
			"missing_services",
		},
		{
			"zero time",
			ReserveInput{UserID: 7, BarberID: 3, ServiceIDs: []uint{1}},
			"invalid_time",
		},
		{
			"at closing time",
			ReserveInput{UserID: 7, BarberID: 3, ServiceIDs: []uint{1}, Time: mondayAt(18, 0)},
			"outside_working_hours",
		},
		{
			"unknown service",
			ReserveInput{UserID: 7, BarberID: 3, ServiceIDs: []uint{99}, Time: mondayAt(10, 0)},
			"service_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Fatalf("Execute() = %v, want code %q", err, tt.wantCode)
			}
		})
	}
}

func TestReserveUnknownBarber(t *testing.T) {
	uc, _ := newReserveFixture(nil)
	repoOf(uc).getBarberByID = func(_ context.Context, _ uint) (*models.User, error) {
		return nil, domain.ErrNotFound
	}

	_, err := uc.Execute(context.Background(), ReserveInput{
		UserID:     7,
		BarberID:   3,
		ServiceIDs: []uint{1},
		Time:       mondayAt(10, 0),
	})
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("Execute() = %v, want barber_not_found", err)
	}
}

func TestReserveIncompleteSchedule(t *testing.T) {
	uc, _ := newReserveFixture(nil)
	repoOf(uc).getBarberByID = func(_ context.Context, id uint) (*models.User, error) {
		return testBarber(id, testWeek("09:00", "18:00")[:5]), nil
	}

	_, err := uc.Execute(context.Background(), ReserveInput{
		UserID:     7,
		BarberID:   3,
		ServiceIDs: []uint{1},
		Time:       mondayAt(10, 0),
	})
	if !httperr.IsBusiness(err, "incomplete_schedule") {
		t.Fatalf("Execute() = %v, want incomplete_schedule", err)
	}
}

func TestReserveConflict(t *testing.T) {
	uc, locks := newReserveFixture(nil)
	repoOf(uc).createIfNoConflict = func(_ context.Context, _ *models.Appointment) error {
		return domain.ErrTimeConflict
	}

	_, err := uc.Execute(context.Background(), ReserveInput{
		UserID:     7,
		BarberID:   3,
		ServiceIDs: []uint{1},
		Time:       mondayAt(10, 0),
	})
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("Execute() = %v, want slot_already_booked", err)
	}
	if kind, ok := httperr.KindOf(err); !ok || kind != httperr.KindConflict {
		t.Fatalf("KindOf() = %v, want KindConflict", kind)
	}
	if locks.released != 1 {
		t.Fatalf("released = %d, lock leaked on conflict", locks.released)
	}
}

func TestReserveStorageFailureIsPersistence(t *testing.T) {
	uc, _ := newReserveFixture(nil)
	repoOf(uc).createIfNoConflict = func(_ context.Context, _ *models.Appointment) error {
		return context.DeadlineExceeded
	}

	_, err := uc.Execute(context.Background(), ReserveInput{
		UserID:     7,
		BarberID:   3,
		ServiceIDs: []uint{1},
		Time:       mondayAt(10, 0),
	})
	if kind, ok := httperr.KindOf(err); !ok || kind != httperr.KindPersistence {
		t.Fatalf("KindOf() = %v, want KindPersistence", kind)
	}
}

// repoOf digs the fake back out so individual tests can override one method.
func repoOf(uc *ReserveAppointment) *fakeRepo {
	return uc.repo.(*fakeRepo)
}
