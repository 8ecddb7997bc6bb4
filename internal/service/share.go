package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/live_location_system/internal/events"
	"github.com/shenikar/live_location_system/internal/feed"
	"github.com/shenikar/live_location_system/internal/identity"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ShareRepository определяет контракт для работы с бд доступов
type ShareRepository interface {
	Create(ctx context.Context, share *models.LocationShare) error
	RevokeByViewer(ctx context.Context, ownerEmail, viewerEmail string) (int64, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*models.LocationShare, error)
	ListByViewer(ctx context.Context, viewerEmail string) ([]*models.LocationShare, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, lat, lon float64) error
}

// ShareService определяет контракт для бизнес-логики управления доступами
type ShareService interface {
	CreateShare(ctx context.Context, owner identity.Identity, viewerEmail string) (*models.LocationShare, error)
	RevokeAccess(ctx context.Context, owner identity.Identity, viewerEmail string) error
	ListOwned(ctx context.Context, ownerEmail string) ([]*models.LocationShare, error)
	ListVisible(ctx context.Context, viewerEmail string) ([]feed.Entry, error)
}

// ErrNoKnownPosition возвращается при попытке поделиться позицией,
// когда у владельца еще нет ни одной опубликованной точки
var ErrNoKnownPosition = fmt.Errorf("owner has no known position")

type shareService struct {
	repo        ShareRepository
	presence    PresenceRepository
	publisher   events.SharePublisher
	logger      *logrus.Logger
	freshWindow time.Duration
}

func NewShareService(repo ShareRepository, presence PresenceRepository, publisher events.SharePublisher, logger *logrus.Logger, freshWindow time.Duration) ShareService {
	return &shareService{
		repo:        repo,
		presence:    presence,
		publisher:   publisher,
		logger:      logger,
		freshWindow: freshWindow,
	}
}

// CreateShare выдает зрителю доступ к позиции владельца. Позиция берется из
// записи о присутствии владельца и денормализуется в запись о доступе.
// Существующие доступы той же пары не проверяются - дубликаты допустимы.
func (s *shareService) CreateShare(ctx context.Context, owner identity.Identity, viewerEmail string) (*models.LocationShare, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "share",
		"method":       "CreateShare",
		"owner_email":  owner.Email,
		"viewer_email": viewerEmail,
	})
	log.Info("Attempting to create a new location share")

	presence, err := s.presence.Read(ctx, owner.ID)
	if err != nil {
		log.WithError(err).Error("Failed to read owner presence")
		return nil, fmt.Errorf("service: could not read owner presence: %w", err)
	}
	if presence == nil {
		log.Warn("Owner has no published position yet")
		return nil, ErrNoKnownPosition
	}

	share := &models.LocationShare{
		OwnerEmail:  owner.Email,
		OwnerID:     owner.ID,
		ViewerEmail: viewerEmail,
		Latitude:    presence.Latitude,
		Longitude:   presence.Longitude,
		Active:      true,
	}
	if err := s.repo.Create(ctx, share); err != nil {
		log.WithError(err).Error("Failed to create share in repository")
		return nil, fmt.Errorf("service: could not create share: %w", err)
	}

	s.notify(ctx, log, events.ShareEvent{
		OwnerEmail:  owner.Email,
		ViewerEmail: viewerEmail,
		Kind:        events.KindCreated,
		Timestamp:   time.Now(),
	})

	log.WithField("share_id", share.ID).Info("Location share created successfully")
	return share, nil
}

// RevokeAccess отзывает все активные доступы пары (владелец, зритель).
// Идемпотентен: ноль совпадений - не ошибка. Событие зрителю публикуется
// только после подтвержденной записи в бд.
func (s *shareService) RevokeAccess(ctx context.Context, owner identity.Identity, viewerEmail string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "share",
		"method":       "RevokeAccess",
		"owner_email":  owner.Email,
		"viewer_email": viewerEmail,
	})
	log.Info("Attempting to revoke access")

	revoked, err := s.repo.RevokeByViewer(ctx, owner.Email, viewerEmail)
	if err != nil {
		log.WithError(err).Error("Failed to revoke shares in repository")
		return fmt.Errorf("service: could not revoke access: %w", err)
	}

	if revoked > 0 {
		s.notify(ctx, log, events.ShareEvent{
			OwnerEmail:  owner.Email,
			ViewerEmail: viewerEmail,
			Kind:        events.KindRevoked,
			Timestamp:   time.Now(),
		})
	}

	log.WithField("revoked_count", revoked).Info("Access revoked successfully")
	return nil
}

// ListOwned возвращает активные доступы владельца для экрана управления.
// Дубликаты по email зрителя схлопываются до самой свежей записи.
func (s *shareService) ListOwned(ctx context.Context, ownerEmail string) ([]*models.LocationShare, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "share",
		"method":      "ListOwned",
		"owner_email": ownerEmail,
	})
	log.Info("Listing owned shares")

	shares, err := s.repo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		log.WithError(err).Error("Failed to list shares from repository")
		return nil, fmt.Errorf("service: could not list owned shares: %w", err)
	}

	unique := make([]*models.LocationShare, 0, len(shares))
	latest := make(map[string]int)
	for _, share := range shares {
		if !share.Active {
			continue
		}
		if i, seen := latest[share.ViewerEmail]; seen {
			if share.LastUpdate.After(unique[i].LastUpdate) {
				unique[i] = share
			}
			continue
		}
		latest[share.ViewerEmail] = len(unique)
		unique = append(unique, share)
	}

	log.WithField("count", len(unique)).Info("Owned shares listed successfully")
	return unique, nil
}

// ListVisible возвращает снимок ленты зрителя: активные, корректные записи,
// по одной на владельца
func (s *shareService) ListVisible(ctx context.Context, viewerEmail string) ([]feed.Entry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "share",
		"method":       "ListVisible",
		"viewer_email": viewerEmail,
	})
	log.Info("Listing visible shares")

	shares, err := s.repo.ListByViewer(ctx, viewerEmail)
	if err != nil {
		log.WithError(err).Error("Failed to list shares from repository")
		return nil, fmt.Errorf("service: could not list visible shares: %w", err)
	}

	entries := feed.BuildDisplayList(shares, time.Now(), s.freshWindow)
	log.WithField("count", len(entries)).Info("Visible shares listed successfully")
	return entries, nil
}

// notify публикует событие изменения доступов. Потеря события не фатальна -
// зритель получит то же состояние при следующем пересчете ленты.
func (s *shareService) notify(ctx context.Context, log *logrus.Entry, event events.ShareEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish share event")
	}
}
