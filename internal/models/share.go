package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationShare - запись о выданном доступе: владелец разрешил одному
// зрителю (по email) видеть свою позицию. Позиция денормализована в саму
// запись, чтобы зритель читал только свои доступы.
type LocationShare struct {
	ID          uuid.UUID `json:"id"`
	OwnerEmail  string    `json:"owner_email"`
	OwnerID     string    `json:"owner_id"`
	ViewerEmail string    `json:"viewer_email"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdate  time.Time `json:"last_update"`
}
