package client

import (
	"context"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

type ListClients struct {
	clients domain.ClientRegistry
}

func NewListClients(clients domain.ClientRegistry) *ListClients {
	return &ListClients{clients: clients}
}

func (uc *ListClients) Execute(ctx context.Context) ([]models.Client, error) {
	return uc.clients.ListClients(ctx)
}
