package appointment

import (
	"reflect"
	"testing"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

func booking(t *testing.T, hm string, durationMin int, status Status) models.Appointment {
	t.Helper()

	clock, err := time.Parse("15:04", hm)
	if err != nil {
		t.Fatalf("bad clock %q: %v", hm, err)
	}

	return models.Appointment{
		Time:             time.Date(2026, 3, 2, clock.Hour(), clock.Minute(), 0, 0, time.UTC),
		TotalDurationMin: durationMin,
		Status:           string(status),
	}
}

func TestAvailableSlots(t *testing.T) {
	day := workingDay("09:00", "12:00")
	candidates := GenerateSlots(day, DefaultGranularityMin)
	// 09:00 09:30 10:00 10:30 11:00 11:30

	tests := []struct {
		name         string
		booked       []models.Appointment
		requestedMin int
		want         []string
	}{
		{
			"no bookings",
			nil,
			30,
			[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			"sixty-minute booking blocks two slots",
			[]models.Appointment{booking(t, "10:00", 60, StatusPending)},
			30,
			[]string{"09:00", "09:30", "11:00", "11:30"},
		},
		{
			"cancelled booking blocks nothing",
			[]models.Appointment{booking(t, "10:00", 60, StatusCancelled)},
			30,
			[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			"off-grid booking blocks every slot it touches",
			[]models.Appointment{booking(t, "09:10", 30, StatusConfirmed)},
			30,
			[]string{"10:00", "10:30", "11:00", "11:30"},
		},
		{
			"long request must fit before closing",
			nil,
			90,
			[]string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			"long request needs a long gap",
			[]models.Appointment{booking(t, "10:00", 30, StatusPending)},
			90,
			[]string{"10:30"},
		},
		{
			"fully booked",
			[]models.Appointment{booking(t, "09:00", 180, StatusConfirmed)},
			30,
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(candidates, tt.booked, tt.requestedMin, day, time.UTC)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AvailableSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableSlotsAdjacentBookings(t *testing.T) {
	day := workingDay("09:00", "11:00")
	candidates := GenerateSlots(day, DefaultGranularityMin)

	// Intervals are half-open: a booking ending 10:00 does not block the
	// 10:00 slot.
	booked := []models.Appointment{booking(t, "09:30", 30, StatusPending)}

	got := AvailableSlots(candidates, booked, 30, day, time.UTC)
	want := []string{"09:00", "10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AvailableSlots() = %v, want %v", got, want)
	}
}

func TestAvailableSlotsDefaultsRequestedDuration(t *testing.T) {
	day := workingDay("09:00", "10:00")
	candidates := GenerateSlots(day, DefaultGranularityMin)

	got := AvailableSlots(candidates, nil, 0, day, time.UTC)
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AvailableSlots() = %v, want %v", got, want)
	}
}
