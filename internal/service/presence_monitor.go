package service

import (
	"context"
	"time"

	"github.com/shenikar/live_location_system/internal/config"
	"github.com/sirupsen/logrus"
)

// PresenceMonitor - фоновый воркер, имитирующий обнаружение разрыва связи:
// если пользователь давно не публиковал позицию, его флаг online сбрасывается.
type PresenceMonitor struct {
	presence PresenceRepository
	logger   *logrus.Logger
	cfg      *config.Config
}

// NewPresenceMonitor создает новый PresenceMonitor
func NewPresenceMonitor(presence PresenceRepository, logger *logrus.Logger, cfg *config.Config) *PresenceMonitor {
	return &PresenceMonitor{
		presence: presence,
		logger:   logger,
		cfg:      cfg,
	}
}

// Start запускает горутину сканирования записей о присутствии
func (m *PresenceMonitor) Start(ctx context.Context) {
	m.logger.Info("Starting presence monitor...")
	go func() {
		ticker := time.NewTicker(m.cfg.PresenceScanInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				m.logger.Info("Stopping presence monitor.")
				return
			case <-ticker.C:
				m.scan(ctx)
			}
		}
	}()
}

func (m *PresenceMonitor) scan(ctx context.Context) {
	log := m.logger.WithField("worker", "presence_monitor")

	ids, err := m.presence.ListUserIDs(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list presence users")
		return
	}

	cutoff := time.Now().Add(-m.cfg.OfflineAfter)
	for _, id := range ids {
		presence, err := m.presence.Read(ctx, id)
		if err != nil {
			log.WithError(err).WithField("user_id", id).Error("Failed to read presence record")
			continue
		}
		if presence == nil || !presence.Online {
			continue
		}
		if presence.UpdatedAt.After(cutoff) {
			continue
		}

		// Best-effort: неудачный сброс не повторяем, поймаем на следующем проходе
		if err := m.presence.MarkOffline(ctx, id); err != nil {
			log.WithError(err).WithField("user_id", id).Warn("Failed to mark stale presence offline")
			continue
		}
		log.WithField("user_id", id).Info("Stale presence marked offline")
	}
}
