package appointment

import (
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

type span struct {
	start int // minutes since midnight, inclusive
	end   int // exclusive
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && s.end > o.start
}

// AvailableSlots filters the candidate slots against the day's booked
// appointments using [start, end) minute intervals, so appointments that
// start off the slot grid still block the slots they cover. A candidate
// survives only if the full requested duration fits before the working
// window's end and intersects no non-cancelled booking.
//
// Pure filter: the caller supplies the day's appointments (cancelled ones are
// ignored here regardless) and the location the stored times are read in.
func AvailableSlots(
	candidates []string,
	booked []models.Appointment,
	requestedMin int,
	day models.WorkingSchedule,
	loc *time.Location,
) []string {

	dayEnd, ok := parseClock(day.EndTime)
	if !ok {
		return nil
	}

	if requestedMin <= 0 {
		requestedMin = DefaultGranularityMin
	}

	var occupied []span
	for _, ap := range booked {
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		t := ap.Time.In(loc)
		start := t.Hour()*60 + t.Minute()
		occupied = append(occupied, span{start: start, end: start + ap.TotalDurationMin})
	}

	available := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		start, ok := parseClock(candidate)
		if !ok {
			continue
		}

		want := span{start: start, end: start + requestedMin}
		if want.end > dayEnd {
			continue
		}

		blocked := false
		for _, busy := range occupied {
			if want.overlaps(busy) {
				blocked = true
				break
			}
		}
		if !blocked {
			available = append(available, candidate)
		}
	}

	return available
}
