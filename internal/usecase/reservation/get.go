package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

type GetReservation struct {
	store domain.Store
}

func NewGetReservation(store domain.Store) *GetReservation {
	return &GetReservation{store: store}
}

func (uc *GetReservation) Execute(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	return uc.store.FindByID(ctx, id)
}
