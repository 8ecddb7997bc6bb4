package v1

import (
	"github.com/shenikar/live_location_system/internal/feed"
	"github.com/shenikar/live_location_system/internal/models"
)

// ModelToShareResponse преобразует доменную модель доступа в DTO для ответа
func ModelToShareResponse(model *models.LocationShare) *ShareResponse {
	return &ShareResponse{
		ID:          model.ID,
		OwnerEmail:  model.OwnerEmail,
		ViewerEmail: model.ViewerEmail,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Active:      model.Active,
		CreatedAt:   model.CreatedAt,
		LastUpdate:  model.LastUpdate,
	}
}

// ModelsToShareResponses преобразует слайс моделей в слайс DTO
func ModelsToShareResponses(models []*models.LocationShare) []*ShareResponse {
	responses := make([]*ShareResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToShareResponse(model)
	}
	return responses
}

// ModelToPresenceResponse преобразует запись о присутствии в DTO для ответа
func ModelToPresenceResponse(model *models.Presence) *PresenceResponse {
	return &PresenceResponse{
		UserID:    model.UserID,
		Email:     model.Email,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Online:    model.Online,
		UpdatedAt: model.UpdatedAt,
	}
}

// EntriesToFeedResponses преобразует строки ленты в слайс DTO
func EntriesToFeedResponses(entries []feed.Entry) []*FeedEntryResponse {
	responses := make([]*FeedEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = &FeedEntryResponse{
			OwnerEmail: entry.OwnerEmail,
			Latitude:   entry.Latitude,
			Longitude:  entry.Longitude,
			LastUpdate: entry.LastUpdate,
			IsOnline:   entry.IsOnline,
		}
	}
	return responses
}
