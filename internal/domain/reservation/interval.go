package reservation

import (
	"time"

	"github.com/BruksfildServices01/slot-booker/internal/httperr"
)

// TimeSlot is the half-open interval [Start, End).
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// NewTimeSlot normalizes both ends and rejects empty or inverted ranges.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	s := TimeSlot{Start: Normalize(start), End: Normalize(end)}
	if !s.Start.Before(s.End) {
		return TimeSlot{}, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}
	return s, nil
}

// Overlaps is false for intervals that only touch at an endpoint.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Start.Before(o.End) && s.End.After(o.Start)
}

// Normalize converts t to UTC at the precision timestamptz keeps.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
