package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const shareChannelPrefix = "share_events:"

// Вид изменения записи о доступе
const (
	KindCreated         = "created"
	KindRevoked         = "revoked"
	KindPositionUpdated = "position_updated"
)

// ShareEvent - событие изменения доступа, доставляемое зрителю
type ShareEvent struct {
	OwnerEmail  string    `json:"owner_email"`
	ViewerEmail string    `json:"viewer_email"`
	Kind        string    `json:"kind"`
	Timestamp   time.Time `json:"timestamp"`
}

// SharePublisher - интерфейс для публикации событий изменения доступов
type SharePublisher interface {
	Publish(ctx context.Context, event ShareEvent) error
}

// RedisSharePublisher - реализация SharePublisher, использующая Redis Pub/Sub.
// Канал адресуется по email зрителя, так что каждый зритель слушает только
// свои изменения.
type RedisSharePublisher struct {
	redisClient *redis.Client
}

// NewRedisSharePublisher создает новый RedisSharePublisher
func NewRedisSharePublisher(client *redis.Client) *RedisSharePublisher {
	return &RedisSharePublisher{
		redisClient: client,
	}
}

// Publish публикует событие в канал зрителя
func (p *RedisSharePublisher) Publish(ctx context.Context, event ShareEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal share event: %w", err)
	}

	channel := shareChannelPrefix + event.ViewerEmail
	if err := p.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish share event to Redis: %w", err)
	}
	return nil
}

// Subscription - живая подписка на события изменения доступов одного зрителя
type Subscription struct {
	pubsub *redis.PubSub
	ch     chan ShareEvent
	once   sync.Once
}

// SubscribeViewer открывает подписку на события для указанного email зрителя.
// Канал Events закрывается при отмене контекста или вызове Close.
func SubscribeViewer(ctx context.Context, client *redis.Client, viewerEmail string) *Subscription {
	pubsub := client.Subscribe(ctx, shareChannelPrefix+viewerEmail)
	sub := &Subscription{
		pubsub: pubsub,
		ch:     make(chan ShareEvent, 16),
	}

	go func() {
		defer close(sub.ch)
		for msg := range pubsub.Channel() {
			var event ShareEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				// Битое сообщение пропускаем
				continue
			}
			select {
			case sub.ch <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub
}

// Events возвращает канал входящих событий
func (s *Subscription) Events() <-chan ShareEvent {
	return s.ch
}

// Close освобождает подписку. Повторный вызов безопасен.
func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.pubsub.Close()
	})
	return err
}
