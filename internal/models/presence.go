package models

import (
	"time"
)

// Presence представляет последнюю опубликованную позицию пользователя.
// Запись пишется только устройством самого пользователя (last-write-wins).
type Presence struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Online    bool      `json:"online"`
	UpdatedAt time.Time `json:"updated_at"`
}
