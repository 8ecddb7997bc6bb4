package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/live_location_system/internal/events"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ShareUpdater определяет контракт записи позиций в выданные доступы
type ShareUpdater interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]*models.LocationShare, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, lat, lon float64) error
}

type ownerPosition struct {
	lat, lon float64
}

// Synchronizer - фоновый воркер, периодически копирующий свежую позицию
// каждого владельца во все его активные доступы. Отдельный путь записи от
// хранилища присутствия: зритель читает только свои доступы.
type Synchronizer struct {
	repo      ShareUpdater
	publisher events.SharePublisher
	logger    *logrus.Logger
	interval  time.Duration

	mu        sync.Mutex
	positions map[string]ownerPosition
}

// New создает Synchronizer с заданным периодом синхронизации
func New(repo ShareUpdater, publisher events.SharePublisher, logger *logrus.Logger, interval time.Duration) *Synchronizer {
	return &Synchronizer{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		positions: make(map[string]ownerPosition),
	}
}

// SetPosition запоминает свежую позицию владельца для следующего прохода
func (s *Synchronizer) SetPosition(ownerEmail string, lat, lon float64) {
	s.mu.Lock()
	s.positions[ownerEmail] = ownerPosition{lat: lat, lon: lon}
	s.mu.Unlock()
}

// Start запускает горутину синхронизации: первый проход сразу, дальше по
// тикеру. Отмена контекста останавливает только планирование - начатые
// записи доезжают до конца.
func (s *Synchronizer) Start(ctx context.Context) {
	s.logger.Info("Starting share synchronizer...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.SyncPass(ctx)
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping share synchronizer.")
				return
			case <-ticker.C:
				s.SyncPass(ctx)
			}
		}
	}()
}

// SyncPass выполняет один проход: для каждого владельца с известной позицией
// перезаписывает позицию во всех его активных доступах. Запись безусловная -
// порог расстояния применяется только на слое фильтрации сэмплов.
func (s *Synchronizer) SyncPass(ctx context.Context) {
	s.mu.Lock()
	snapshot := make(map[string]ownerPosition, len(s.positions))
	for email, pos := range s.positions {
		snapshot[email] = pos
	}
	s.mu.Unlock()

	for ownerEmail, pos := range snapshot {
		s.syncOwner(ctx, ownerEmail, pos)
	}
}

func (s *Synchronizer) syncOwner(ctx context.Context, ownerEmail string, pos ownerPosition) {
	log := s.logger.WithFields(logrus.Fields{
		"worker":      "share_synchronizer",
		"owner_email": ownerEmail,
	})

	shares, err := s.repo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		log.WithError(err).Error("Failed to list owner shares for sync")
		return
	}

	for _, share := range shares {
		if !share.Active {
			continue
		}
		if err := s.repo.UpdatePosition(ctx, share.ID, pos.lat, pos.lon); err != nil {
			// Ошибка записи локальна для этой записи, проход продолжается
			log.WithError(err).WithField("share_id", share.ID).Warn("Failed to sync position into share")
			continue
		}

		event := events.ShareEvent{
			OwnerEmail:  ownerEmail,
			ViewerEmail: share.ViewerEmail,
			Kind:        events.KindPositionUpdated,
			Timestamp:   time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish position update event")
		}
	}
}
