package reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// New builds a Confirmed reservation for slot. Notes are trimmed by the caller.
func New(clientID uuid.UUID, slot TimeSlot, notes string, now time.Time) *models.Reservation {
	return &models.Reservation{
		ID:        uuid.New(),
		ClientID:  clientID,
		StartTime: slot.Start,
		EndTime:   slot.End,
		Status:    string(InitialStatus()),
		Notes:     notes,
		CreatedAt: Normalize(now),
	}
}

func Cancel(r *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	at := Normalize(now)
	r.Status = string(StatusCancelled)
	r.CancelledAt = &at
	return nil
}

func SlotOf(r *models.Reservation) TimeSlot {
	return TimeSlot{Start: r.StartTime, End: r.EndTime}
}
