package feed

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/live_location_system/internal/events"
	"github.com/sirupsen/logrus"
)

// Factory открывает живые ленты зрителей поверх Redis Pub/Sub
type Factory struct {
	redisClient *redis.Client
	lister      ShareLister
	logger      *logrus.Logger
	freshWindow time.Duration
}

func NewFactory(redisClient *redis.Client, lister ShareLister, logger *logrus.Logger, freshWindow time.Duration) *Factory {
	return &Factory{
		redisClient: redisClient,
		lister:      lister,
		logger:      logger,
		freshWindow: freshWindow,
	}
}

// Open подписывает зрителя на его события и запускает пересчет ленты.
// Вызывающий обязан закрыть ленту по окончании стрима.
func (f *Factory) Open(ctx context.Context, viewerEmail string) *ViewerFeed {
	source := events.SubscribeViewer(ctx, f.redisClient, viewerEmail)
	viewerFeed := NewViewerFeed(viewerEmail, f.lister, source, f.logger, f.freshWindow)
	viewerFeed.Start(ctx)
	return viewerFeed
}
