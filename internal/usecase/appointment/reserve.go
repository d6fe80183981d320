package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/lock"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// reserveTimeout bounds the whole orchestration; a deadline hit surfaces as a
// persistence failure.
const reserveTimeout = 10 * time.Second

// ======================================================
// INPUT
// ======================================================

type ReserveInput struct {
	UserID     uint
	BarberID   uint
	ServiceIDs []uint

	// Requested start instant, already in the shop timezone.
	Time    time.Time
	Comment string
}

// ======================================================
// USE CASE
// ======================================================

type ReserveAppointment struct {
	repo  domain.Repository
	locks lock.Locker
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewReserveAppointment(
	repo domain.Repository,
	locks lock.Locker,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *ReserveAppointment {
	return &ReserveAppointment{
		repo:  repo,
		locks: locks,
		audit: auditDispatcher,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReserveAppointment) Execute(
	ctx context.Context,
	in ReserveInput,
) (*models.Appointment, error) {

	ctx, cancel := context.WithTimeout(ctx, reserveTimeout)
	defer cancel()

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrValidation("missing_services", "At least one service is required.")
	}
	if in.Time.IsZero() {
		return nil, httperr.ErrValidation("invalid_time", "Appointment time is required.")
	}

	// --------------------------------------------------
	// 1. Customer, barber and services, fetched in parallel
	// --------------------------------------------------
	var (
		customer *models.User
		barber   *models.User
		services []models.Service
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := uc.repo.GetUserByID(gctx, in.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("user_not_found", "User not found.")
		}
		if err != nil {
			return classify(err)
		}
		customer = u
		return nil
	})

	g.Go(func() error {
		b, err := uc.repo.GetBarberByID(gctx, in.BarberID)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("barber_not_found", "Barber not found.")
		}
		if err != nil {
			return classify(err)
		}
		barber = b
		return nil
	})

	g.Go(func() error {
		svcs, err := uc.repo.GetServicesByIDs(gctx, in.ServiceIDs)
		if err != nil {
			return classify(err)
		}
		if len(svcs) != len(in.ServiceIDs) {
			return httperr.ErrNotFound("service_not_found", "One or more requested services do not exist.")
		}
		services = svcs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Schedule completeness + working-hours check
	// --------------------------------------------------
	start := in.Time.In(uc.loc).Truncate(time.Minute)

	if err := domain.IsBookable(barber.WorkingSchedule, start); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Totals recomputed from the resolved services.
	//    Client-supplied aggregates are never accepted.
	// --------------------------------------------------
	var (
		totalPrice   float64
		totalMin     int
		serviceNames []string
	)
	for _, svc := range services {
		totalPrice += svc.Price
		totalMin += svc.DurationMin
		serviceNames = append(serviceNames, svc.Name)
	}

	// --------------------------------------------------
	// 4. Conflict check + insert under the barber's lock
	// --------------------------------------------------
	release, err := uc.locks.Acquire(ctx, barberLockKey(in.BarberID))
	if err != nil {
		return nil, classify(err)
	}
	defer release()

	ap := &models.Appointment{
		Reference:        uuid.New(),
		UserID:           customer.ID,
		BarberID:         barber.ID,
		CustomerName:     customer.Name,
		BarberName:       barber.Name,
		ServiceIDs:       in.ServiceIDs,
		ServiceNames:     serviceNames,
		Time:             start,
		EndTime:          start.Add(time.Duration(totalMin) * time.Minute),
		TotalPrice:       totalPrice,
		TotalDurationMin: totalMin,
		Status:           string(domain.InitialStatus()),
		Comment:          in.Comment,
	}

	if err := uc.repo.CreateIfNoConflict(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrTimeConflict) {
			return nil, httperr.ErrConflict("slot_already_booked", "This time slot is already booked.")
		}
		return nil, classify(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &customer.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func barberLockKey(barberID uint) string {
	return fmt.Sprintf("reserve:barber:%d", barberID)
}

// classify folds non-business errors into the error taxonomy: storage and
// deadline failures are persistence errors, anything else stays internal.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return httperr.ErrPersistence("timeout", "The operation could not be completed in time.")
	}
	return httperr.ErrPersistence("persistence_error", "Storage operation failed.")
}
