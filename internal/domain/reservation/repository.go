package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// Store is the durable source of truth for reservations. Implementations
// guarantee that no two Confirmed reservations overlap.
type Store interface {
	// -------- Create --------
	// InsertIfNonOverlapping fails with overlap_conflict and persists nothing
	// when a Confirmed reservation intersects r.
	InsertIfNonOverlapping(
		ctx context.Context,
		r *models.Reservation,
	) error

	// -------- Read --------
	FindByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Reservation, error)

	// ListOverlapping returns Confirmed reservations intersecting window,
	// ordered by start time.
	ListOverlapping(
		ctx context.Context,
		window TimeSlot,
	) ([]models.Reservation, error)

	ListByClient(
		ctx context.Context,
		clientID uuid.UUID,
	) ([]models.Reservation, error)

	// -------- State change --------
	// SetCancelled moves a Confirmed reservation to Cancelled. Of two
	// concurrent calls exactly one succeeds.
	SetCancelled(
		ctx context.Context,
		id uuid.UUID,
		at time.Time,
	) (*models.Reservation, error)
}

// ClientRegistry is the identity store the coordinator consults.
type ClientRegistry interface {
	CreateClient(ctx context.Context, c *models.Client) error
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error)
	ClientExists(ctx context.Context, id uuid.UUID) (bool, error)
}
