// Package memory keeps reservations and clients in process memory. A single
// writer lock makes the overlap check and the insert one step.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

var (
	_ domain.Store          = (*Store)(nil)
	_ domain.ClientRegistry = (*Store)(nil)
)

type Store struct {
	mu sync.RWMutex

	reservations map[uuid.UUID]*models.Reservation
	// confirmed ids ordered by start time
	confirmed []uuid.UUID

	clients map[uuid.UUID]*models.Client
	emails  map[string]uuid.UUID
	order   []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		reservations: make(map[uuid.UUID]*models.Reservation),
		clients:      make(map[uuid.UUID]*models.Client),
		emails:       make(map[string]uuid.UUID),
	}
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (s *Store) InsertIfNonOverlapping(ctx context.Context, r *models.Reservation) error {
	if err := ctx.Err(); err != nil {
		return httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[r.ClientID]; !ok {
		return httperr.ErrBusiness(httperr.CodeUnknownClient)
	}

	slot := domain.SlotOf(r)
	for _, id := range s.confirmed {
		existing := s.reservations[id]
		if !existing.StartTime.Before(slot.End) {
			break
		}
		if slot.Overlaps(domain.SlotOf(existing)) {
			return httperr.ErrBusiness(httperr.CodeOverlapConflict)
		}
	}

	stored := *r
	s.reservations[r.ID] = &stored

	i, _ := slices.BinarySearchFunc(s.confirmed, stored.StartTime, func(id uuid.UUID, t time.Time) int {
		return s.reservations[id].StartTime.Compare(t)
	})
	s.confirmed = slices.Insert(s.confirmed, i, r.ID)
	return nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	out := *r
	return &out, nil
}

func (s *Store) ListOverlapping(ctx context.Context, window domain.TimeSlot) ([]models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Reservation
	for _, id := range s.confirmed {
		r := s.reservations[id]
		if !r.StartTime.Before(window.End) {
			break
		}
		if r.EndTime.After(window.Start) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *Store) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Reservation
	for _, r := range s.reservations {
		if r.ClientID == clientID {
			out = append(out, *r)
		}
	}
	slices.SortFunc(out, func(a, b models.Reservation) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out, nil
}

func (s *Store) SetCancelled(ctx context.Context, id uuid.UUID, at time.Time) (*models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if err := domain.Cancel(r, at); err != nil {
		return nil, err
	}

	s.confirmed = slices.DeleteFunc(s.confirmed, func(cid uuid.UUID) bool {
		return cid == id
	})

	out := *r
	return &out, nil
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (s *Store) CreateClient(ctx context.Context, c *models.Client) error {
	if err := ctx.Err(); err != nil {
		return httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(c.Email)
	if _, taken := s.emails[key]; taken {
		return httperr.ErrBusiness(httperr.CodeDuplicateEmail)
	}

	stored := *c
	s.clients[c.ID] = &stored
	s.emails[key] = c.ID
	s.order = append(s.order, c.ID)
	return nil
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.clients[id])
	}
	return out, nil
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	out := *c
	return &out, nil
}

func (s *Store) ClientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, httperr.Wrap(httperr.CodeUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.clients[id]
	return ok, nil
}
