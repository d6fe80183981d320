package appointment

import (
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

const daysPerWeek = 7

// ScheduleForDay returns the entry covering the given weekday, or nil.
func ScheduleForDay(schedule []models.WorkingSchedule, weekday time.Weekday) *models.WorkingSchedule {
	for i := range schedule {
		if schedule[i].DayOfWeek == int(weekday) {
			return &schedule[i]
		}
	}
	return nil
}

// IsComplete reports whether the schedule has exactly one entry for every
// weekday. A barber without a complete schedule cannot be booked at all, even
// on days that are otherwise covered.
func IsComplete(schedule []models.WorkingSchedule) bool {
	if len(schedule) != daysPerWeek {
		return false
	}

	var seen [daysPerWeek]bool
	for _, day := range schedule {
		if day.DayOfWeek < 0 || day.DayOfWeek >= daysPerWeek {
			return false
		}
		if seen[day.DayOfWeek] {
			return false
		}
		seen[day.DayOfWeek] = true
	}
	return true
}

// IsBookable checks whether the requested start instant falls inside the
// barber's working window for that weekday. The upper bound is exclusive: a
// request exactly at EndTime is rejected. Only the start instant is checked
// here; whether the full service duration fits is the conflict filter's job.
func IsBookable(schedule []models.WorkingSchedule, at time.Time) error {
	if !IsComplete(schedule) {
		return httperr.ErrValidation(
			"incomplete_schedule",
			"Barber's working schedule is not completely defined.",
		)
	}

	day := ScheduleForDay(schedule, at.Weekday())
	if day == nil || !day.IsWorking {
		return httperr.ErrValidation(
			"barber_not_working",
			"Barber is not working on this day.",
		)
	}

	// Wall-clock comparison; "HH:MM" strings compare correctly byte-wise.
	hm := at.Format("15:04")
	if hm < day.StartTime || hm >= day.EndTime {
		return httperr.ErrValidation(
			"outside_working_hours",
			"Barber is not available at this time.",
		)
	}

	return nil
}
