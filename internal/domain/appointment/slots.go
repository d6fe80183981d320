package appointment

import (
	"fmt"

	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// DefaultGranularityMin is the bookable slot size offered to clients.
const DefaultGranularityMin = 30

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(hm string) (int, bool) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, false
	}

	h := int(hm[0]-'0')*10 + int(hm[1]-'0')
	m := int(hm[3]-'0')*10 + int(hm[4]-'0')

	if hm[0] < '0' || hm[0] > '9' || hm[1] < '0' || hm[1] > '9' ||
		hm[3] < '0' || hm[3] > '9' || hm[4] < '0' || hm[4] > '9' {
		return 0, false
	}
	if h > 23 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsValidClock reports whether s is a well-formed "HH:MM" wall-clock string.
func IsValidClock(s string) bool {
	_, ok := parseClock(s)
	return ok
}

// GenerateSlots produces the candidate "HH:MM" start times for one working
// day, stepping by granularity inside [StartTime, EndTime). Non-working days,
// malformed clock strings and inverted windows yield an empty sequence.
func GenerateSlots(day models.WorkingSchedule, granularityMin int) []string {
	if !day.IsWorking || granularityMin <= 0 {
		return nil
	}

	start, ok := parseClock(day.StartTime)
	if !ok {
		return nil
	}
	end, ok := parseClock(day.EndTime)
	if !ok {
		return nil
	}

	var slots []string
	for m := start; m < end; m += granularityMin {
		slots = append(slots, formatClock(m))
	}
	return slots
}
