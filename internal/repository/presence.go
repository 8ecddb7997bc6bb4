package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/shenikar/live_location_system/internal/service"
)

const (
	presenceKeyPrefix = "presence:"
	presenceIndexKey  = "presence_users"
)

type PresenceRepository struct {
	redisClient *redis.Client
}

func NewPresenceRepository(redisClient *redis.Client) service.PresenceRepository {
	return &PresenceRepository{
		redisClient: redisClient,
	}
}

// Publish безусловно перезаписывает запись о присутствии пользователя
// (last-write-wins, без версионирования)
func (r *PresenceRepository) Publish(ctx context.Context, presence *models.Presence) error {
	val, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence record: %w", err)
	}

	key := presenceKeyPrefix + presence.UserID
	if err := r.redisClient.Set(ctx, key, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set presence record: %w", err)
	}

	// Индекс известных пользователей нужен монитору присутствия
	if err := r.redisClient.SAdd(ctx, presenceIndexKey, presence.UserID).Err(); err != nil {
		return fmt.Errorf("failed to index presence user: %w", err)
	}
	return nil
}

// Read возвращает запись о присутствии или nil, если ее нет
func (r *PresenceRepository) Read(ctx context.Context, userID string) (*models.Presence, error) {
	key := presenceKeyPrefix + userID
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get presence record: %w", err)
	}

	presence := &models.Presence{}
	if err := json.Unmarshal(val, presence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presence record: %w", err)
	}
	return presence, nil
}

// MarkOffline сбрасывает флаг online на существующей записи.
// Отсутствие записи - no-op: это best-effort действие при потере связи.
func (r *PresenceRepository) MarkOffline(ctx context.Context, userID string) error {
	presence, err := r.Read(ctx, userID)
	if err != nil {
		return err
	}
	if presence == nil || !presence.Online {
		return nil
	}

	presence.Online = false
	val, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence record: %w", err)
	}
	if err := r.redisClient.Set(ctx, presenceKeyPrefix+userID, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to mark presence offline: %w", err)
	}
	return nil
}

// ListUserIDs возвращает всех пользователей, когда-либо публиковавших присутствие
func (r *PresenceRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	ids, err := r.redisClient.SMembers(ctx, presenceIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list presence users: %w", err)
	}
	return ids, nil
}
