package timezone

import (
	"time"

	"github.com/BruksfildServices01/slot-booker/internal/httperr"
)

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ParseInstant fails with invalid_range. It requires RFC 3339 with an explicit offset so no instant is
// interpreted in a server-local zone.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, httperr.Wrap(httperr.CodeInvalidRange, err)
	}
	return t, nil
}

// DayWindow returns [midnight, next midnight) of date (YYYY-MM-DD) in tz.
// DST days are 23 or 25 hours long.
func DayWindow(date string, tz string) (time.Time, time.Time, error) {
	loc := Location(tz)
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.Wrap(httperr.CodeInvalidRange, err)
	}
	return d, d.AddDate(0, 0, 1), nil
}
