package reservation

import (
	"iter"
	"slices"
	"time"

	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// FreeSlots yields the maximal gaps of window not covered by reservations,
// clipped to window, in ascending order. Only Confirmed reservations block.
// reservations may arrive in any order.
func FreeSlots(window TimeSlot, reservations []models.Reservation) iter.Seq[TimeSlot] {
	busy := make([]TimeSlot, 0, len(reservations))
	for i := range reservations {
		if Status(reservations[i].Status) != StatusConfirmed {
			continue
		}
		busy = append(busy, SlotOf(&reservations[i]))
	}
	slices.SortFunc(busy, func(a, b TimeSlot) int {
		return a.Start.Compare(b.Start)
	})

	return func(yield func(TimeSlot) bool) {
		cursor := window.Start

		for _, b := range busy {
			if !b.End.After(window.Start) {
				continue
			}
			if !b.Start.Before(window.End) {
				break
			}
			if b.Start.After(cursor) {
				if !yield(TimeSlot{Start: cursor, End: b.Start}) {
					return
				}
			}
			cursor = latest(cursor, b.End)
		}

		if cursor.Before(window.End) {
			yield(TimeSlot{Start: cursor, End: window.End})
		}
	}
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
