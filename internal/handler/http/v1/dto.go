package v1

import (
	"time"

	"github.com/google/uuid"
)

// ReportLocationRequest DTO для сырого GPS-сэмпла устройства
// @Description DTO для сырого GPS-сэмпла устройства
type ReportLocationRequest struct {
	Latitude        float64 `json:"latitude" validate:"required,latitude"`
	Longitude       float64 `json:"longitude" validate:"required,longitude"`
	AccuracyMeters  float64 `json:"accuracy_meters,omitempty" validate:"gte=0"`
	TimestampMillis int64   `json:"timestamp_millis,omitempty" validate:"gte=0"`
}

// ReportFailureRequest DTO для ошибки источника позиции
// @Description DTO для ошибки источника позиции
type ReportFailureRequest struct {
	Code string `json:"code" validate:"required,oneof=permission_denied position_unavailable timeout unknown"`
}

// CreateShareRequest DTO для выдачи доступа зрителю
// @Description DTO для выдачи доступа зрителю
type CreateShareRequest struct {
	ViewerEmail string `json:"viewer_email" validate:"required,email"`
}

// ShareResponse DTO для ответа с информацией о доступе
// @Description DTO для ответа с информацией о доступе
type ShareResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerEmail  string    `json:"owner_email"`
	ViewerEmail string    `json:"viewer_email"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdate  time.Time `json:"last_update"`
}

// PresenceResponse DTO для ответа с записью о присутствии
// @Description DTO для ответа с записью о присутствии
type PresenceResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Online    bool      `json:"online"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedEntryResponse DTO для строки ленты зрителя
// @Description DTO для строки ленты зрителя
type FeedEntryResponse struct {
	OwnerEmail string    `json:"owner_email"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	LastUpdate time.Time `json:"last_update"`
	IsOnline   bool      `json:"is_online"`
}
