package handlers

import "time"

// All request-supplied dates and instants are interpreted in the shop
// timezone (SHOP_TIMEZONE).

func parseDate(loc *time.Location, s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}

// parseInstant accepts a full RFC 3339 instant or a naive
// "YYYY-MM-DDTHH:MM" local time.
func parseInstant(loc *time.Location, s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, loc)
}
