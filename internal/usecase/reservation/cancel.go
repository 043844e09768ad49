package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/slot-booker/internal/audit"
	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

type CancelReservation struct {
	store domain.Store
	audit *audit.Dispatcher
	log   *logrus.Logger
	now   func() time.Time
}

func NewCancelReservation(
	store domain.Store,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *CancelReservation {
	return &CancelReservation{
		store: store,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

// Execute fails with not_found or already_cancelled. A cancel that loses a
// race to another one also reports already_cancelled.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	actor string,
	id uuid.UUID,
) (*models.Reservation, error) {

	current, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanCancel(domain.Status(current.Status)); err != nil {
		return nil, err
	}

	r, err := uc.store.SetCancelled(ctx, id, uc.now())
	if err != nil {
		return nil, err
	}

	uc.log.WithField("reservation_id", r.ID).Info("reservation cancelled")

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   audit.ActionReservationCancelled,
		Entity:   audit.EntityReservation,
		EntityID: &r.ID,
	})

	return r, nil
}
