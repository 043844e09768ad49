package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/slot-booker/internal/audit"
	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	Actor    string
	ClientID uuid.UUID
	Start    time.Time
	End      time.Time
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	store   domain.Store
	clients domain.ClientRegistry
	audit   *audit.Dispatcher
	log     *logrus.Logger
	now     func() time.Time
}

func NewCreateReservation(
	store domain.Store,
	clients domain.ClientRegistry,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *CreateReservation {
	return &CreateReservation{
		store:   store,
		clients: clients,
		audit:   audit,
		log:     log,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Range
	// --------------------------------------------------
	slot, err := domain.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Client
	// --------------------------------------------------
	ok, err := uc.clients.ClientExists(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeUnknownClient)
	}

	// --------------------------------------------------
	// 3. Atomic insert
	// --------------------------------------------------
	r := domain.New(in.ClientID, slot, strings.TrimSpace(in.Notes), uc.now())

	if err := uc.store.InsertIfNonOverlapping(ctx, r); err != nil {
		if httperr.IsBusiness(err, httperr.CodeOverlapConflict) {
			uc.log.WithFields(logrus.Fields{
				"client_id": in.ClientID,
				"start":     slot.Start,
				"end":       slot.End,
			}).Info("reservation conflict")

			uc.audit.Dispatch(audit.Event{
				Actor:  in.Actor,
				Action: audit.ActionReservationConflict,
				Entity: audit.EntityReservation,
				Metadata: map[string]any{
					"client_id": in.ClientID,
					"start":     slot.Start,
					"end":       slot.End,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.log.WithFields(logrus.Fields{
		"reservation_id": r.ID,
		"client_id":      r.ClientID,
	}).Info("reservation created")

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   audit.ActionReservationCreated,
		Entity:   audit.EntityReservation,
		EntityID: &r.ID,
	})

	return r, nil
}
