package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
)

type AvailabilityInput struct {
	BarberID uint

	// Calendar day, midnight in the shop timezone.
	Date time.Time

	// Optional: services the client intends to book. When empty the
	// requested duration defaults to one slot.
	ServiceIDs []uint
}

type GetAvailability struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetAvailability(repo domain.Repository, loc *time.Location) *GetAvailability {
	return &GetAvailability{repo: repo, loc: loc}
}

// Execute returns the bookable "HH:MM" start times for the barber on the
// given day, ascending: candidate slots from the working window minus
// everything blocked by existing non-cancelled bookings.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("barber_not_found", "Barber not found.")
	}
	if err != nil {
		return nil, classify(err)
	}

	requestedMin := domain.DefaultGranularityMin
	if len(in.ServiceIDs) > 0 {
		services, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
		if err != nil {
			return nil, classify(err)
		}
		if len(services) != len(in.ServiceIDs) {
			return nil, httperr.ErrNotFound("service_not_found", "One or more requested services do not exist.")
		}
		requestedMin = 0
		for _, svc := range services {
			requestedMin += svc.DurationMin
		}
	}

	date := in.Date.In(uc.loc)
	day := domain.ScheduleForDay(barber.WorkingSchedule, date.Weekday())
	if day == nil || !day.IsWorking {
		return []string{}, nil
	}

	candidates := domain.GenerateSlots(*day, domain.DefaultGranularityMin)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, classify(err)
	}

	return domain.AvailableSlots(candidates, booked, requestedMin, *day, uc.loc), nil
}
