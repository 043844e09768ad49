package reservation

import (
	"context"
	"slices"
	"time"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
)

type GetAvailability struct {
	store domain.Store
}

func NewGetAvailability(store domain.Store) *GetAvailability {
	return &GetAvailability{store: store}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]domain.TimeSlot, error) {

	window, err := domain.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	busy, err := uc.store.ListOverlapping(ctx, window)
	if err != nil {
		return nil, err
	}

	return slices.Collect(domain.FreeSlots(window, busy)), nil
}
