package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/live_location_system/internal/config"
	"github.com/shenikar/live_location_system/internal/identity"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/shenikar/live_location_system/internal/sampler"
	"github.com/sirupsen/logrus"
)

// PresenceRepository определяет контракт для хранилища присутствия
type PresenceRepository interface {
	Publish(ctx context.Context, presence *models.Presence) error
	Read(ctx context.Context, userID string) (*models.Presence, error)
	MarkOffline(ctx context.Context, userID string) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// PositionSink получает принятые (отфильтрованные) позиции владельцев
type PositionSink interface {
	SetPosition(ownerEmail string, lat, lon float64)
}

// LocationService определяет контракт для приема GPS-сэмплов устройств
type LocationService interface {
	ReportSample(ctx context.Context, ident identity.Identity, smp sampler.RawSample) error
	ReportFailure(ctx context.Context, ident identity.Identity, code string) error
	RetryStream(ctx context.Context, ident identity.Identity)
	Disconnect(ctx context.Context, ident identity.Identity)
	GetPresence(ctx context.Context, userID string) (*models.Presence, error)
}

type locationService struct {
	presence PresenceRepository
	sink     PositionSink
	logger   *logrus.Logger
	cfg      *config.Config

	mu       sync.Mutex
	samplers map[string]*sampler.Sampler
}

func NewLocationService(presence PresenceRepository, sink PositionSink, logger *logrus.Logger, cfg *config.Config) LocationService {
	return &locationService{
		presence: presence,
		sink:     sink,
		logger:   logger,
		cfg:      cfg,
		samplers: make(map[string]*sampler.Sampler),
	}
}

// ReportSample отдает сырой сэмпл в фильтр пользователя. Принятые позиции
// асинхронно публикуются в присутствие и уходят синхронизатору доступов.
func (s *locationService) ReportSample(ctx context.Context, ident identity.Identity, smp sampler.RawSample) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "ReportSample",
		"user_id": ident.ID,
	})

	smpl := s.samplerFor(ident)
	if err := smpl.Offer(smp); err != nil {
		log.WithError(smpl.Err()).Warn("Sample offered to a failed location stream")
		return fmt.Errorf("service: location stream is not accepting samples: %w", err)
	}

	log.Debug("Sample accepted for filtering")
	return nil
}

// ReportFailure фиксирует ошибку источника позиции как терминальное состояние
// потока. Автоматического повтора нет - поток оживает только через RetryStream.
func (s *locationService) ReportFailure(ctx context.Context, ident identity.Identity, code string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "ReportFailure",
		"user_id": ident.ID,
		"code":    code,
	})

	failure := sampler.FailureFromCode(code)
	s.samplerFor(ident).Fail(failure)

	log.WithError(failure).Warn("Location stream failed")
	return nil
}

// RetryStream сбрасывает завершившийся поток пользователя: следующий сэмпл
// начнет свежую подписку
func (s *locationService) RetryStream(ctx context.Context, ident identity.Identity) {
	s.mu.Lock()
	smpl, ok := s.samplers[ident.ID]
	if ok {
		delete(s.samplers, ident.ID)
	}
	s.mu.Unlock()

	if ok {
		smpl.Stop()
	}

	s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "RetryStream",
		"user_id": ident.ID,
	}).Info("Location stream reset")
}

// Disconnect останавливает поток пользователя и best-effort сбрасывает флаг
// online. Ошибка сброса не возвращается устройству - оно уже отключается.
func (s *locationService) Disconnect(ctx context.Context, ident identity.Identity) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "Disconnect",
		"user_id": ident.ID,
	})

	s.mu.Lock()
	smpl, ok := s.samplers[ident.ID]
	if ok {
		delete(s.samplers, ident.ID)
	}
	s.mu.Unlock()

	if ok {
		smpl.Stop()
	}

	if err := s.presence.MarkOffline(ctx, ident.ID); err != nil {
		log.WithError(err).Warn("Failed to mark presence offline on disconnect")
	}

	log.Info("Location stream disconnected")
}

// GetPresence возвращает запись о присутствии пользователя
func (s *locationService) GetPresence(ctx context.Context, userID string) (*models.Presence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetPresence",
		"user_id": userID,
	})

	presence, err := s.presence.Read(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to read presence from repository")
		return nil, fmt.Errorf("service: could not read presence: %w", err)
	}
	return presence, nil
}

// samplerFor возвращает фильтр пользователя, создавая его при первом сэмпле
func (s *locationService) samplerFor(ident identity.Identity) *sampler.Sampler {
	s.mu.Lock()
	defer s.mu.Unlock()

	if smpl, ok := s.samplers[ident.ID]; ok {
		return smpl
	}

	smpl := sampler.New(sampler.Options{
		MinDistanceMeters: s.cfg.MinDistanceMeters,
		SettleDelay:       s.cfg.SettleDelay,
	}, func(lat, lon float64, ts time.Time) {
		s.onAccepted(ident, lat, lon, ts)
	})
	s.samplers[ident.ID] = smpl
	return smpl
}

// onAccepted вызывается фильтром по каждой принятой позиции.
// Ошибки записи присутствия проглатываются: следующая публикация все перезапишет.
func (s *locationService) onAccepted(ident identity.Identity, lat, lon float64, ts time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.presence.Publish(ctx, &models.Presence{
		UserID:    ident.ID,
		Email:     ident.Email,
		Latitude:  lat,
		Longitude: lon,
		Online:    true,
		UpdatedAt: ts,
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "location",
			"user_id": ident.ID,
		}).WithError(err).Warn("Failed to publish presence record")
	}

	s.sink.SetPosition(ident.Email, lat, lon)
}
