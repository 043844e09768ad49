package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

type ListClientReservations struct {
	store   domain.Store
	clients domain.ClientRegistry
}

func NewListClientReservations(
	store domain.Store,
	clients domain.ClientRegistry,
) *ListClientReservations {
	return &ListClientReservations{
		store:   store,
		clients: clients,
	}
}

// Execute returns every reservation of the client, cancelled ones included,
// ordered by start time. An unknown client is not_found.
func (uc *ListClientReservations) Execute(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Reservation, error) {

	client, err := uc.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return uc.store.ListByClient(ctx, client.ID)
}
