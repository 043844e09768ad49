package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// ======================================================
// REQUESTS
// ======================================================

type SlotRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreateReservationRequest struct {
	ClientID string      `json:"client_id" binding:"required,uuid"`
	Slot     SlotRequest `json:"slot" binding:"required"`
	Notes    string      `json:"notes"`
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ======================================================
// RESPONSES
// ======================================================

type SlotDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ReservationDTO struct {
	ID          uuid.UUID  `json:"id"`
	ClientID    uuid.UUID  `json:"client_id"`
	Slot        SlotDTO    `json:"slot"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

type ClientDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SlotsResponse struct {
	Slots []SlotDTO `json:"slots"`
}

type ReservationsResponse struct {
	Reservations []ReservationDTO `json:"reservations"`
}

type ClientsResponse struct {
	Clients []ClientDTO `json:"clients"`
}

// ======================================================
// MAPPERS
// ======================================================

func FromSlot(s domain.TimeSlot) SlotDTO {
	return SlotDTO{Start: s.Start.UTC(), End: s.End.UTC()}
}

func FromSlots(slots []domain.TimeSlot) SlotsResponse {
	out := SlotsResponse{Slots: make([]SlotDTO, 0, len(slots))}
	for _, s := range slots {
		out.Slots = append(out.Slots, FromSlot(s))
	}
	return out
}

func FromReservation(r *models.Reservation) ReservationDTO {
	d := ReservationDTO{
		ID:          r.ID,
		ClientID:    r.ClientID,
		Slot:        SlotDTO{Start: r.StartTime.UTC(), End: r.EndTime.UTC()},
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.UTC(),
	}
	if r.CancelledAt != nil {
		at := r.CancelledAt.UTC()
		d.CancelledAt = &at
	}
	if r.Notes != "" {
		notes := r.Notes
		d.Notes = &notes
	}
	return d
}

func FromReservations(list []models.Reservation) ReservationsResponse {
	out := ReservationsResponse{Reservations: make([]ReservationDTO, 0, len(list))}
	for i := range list {
		out.Reservations = append(out.Reservations, FromReservation(&list[i]))
	}
	return out
}

func FromClient(c *models.Client) ClientDTO {
	return ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func FromClients(list []models.Client) ClientsResponse {
	out := ClientsResponse{Clients: make([]ClientDTO, 0, len(list))}
	for i := range list {
		out.Clients = append(out.Clients, FromClient(&list[i]))
	}
	return out
}
