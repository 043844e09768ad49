package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is the minimal identity a reservation is booked for.
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:255;not null;uniqueIndex:idx_clients_email" json:"email"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
