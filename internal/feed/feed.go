package feed

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/live_location_system/internal/events"
	"github.com/shenikar/live_location_system/internal/geo"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Entry - одна строка ленты зрителя: свежайшая позиция одного владельца
type Entry struct {
	OwnerEmail string    `json:"owner_email"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	LastUpdate time.Time `json:"last_update"`
	IsOnline   bool      `json:"is_online"`
}

// ShareLister определяет контракт чтения доступов зрителя
type ShareLister interface {
	ListByViewer(ctx context.Context, viewerEmail string) ([]*models.LocationShare, error)
}

// EventSource - источник уведомлений об изменениях доступов
type EventSource interface {
	Events() <-chan events.ShareEvent
	Close() error
}

// BuildDisplayList пересчитывает ленту зрителя из снимка доступов:
// отбрасывает неактивные и некорректные записи, схлопывает дубликаты по
// владельцу до самой свежей. Защита от незакрепленного инварианта
// уникальности пары (владелец, зритель) при создании.
func BuildDisplayList(shares []*models.LocationShare, now time.Time, freshWindow time.Duration) []Entry {
	latest := make(map[string]*models.LocationShare)
	for _, share := range shares {
		if !share.Active {
			continue
		}
		if !geo.ValidCoordinate(share.Latitude, share.Longitude) {
			continue
		}
		best, seen := latest[share.OwnerEmail]
		if !seen || effectiveUpdate(share).After(effectiveUpdate(best)) {
			latest[share.OwnerEmail] = share
		}
	}

	entries := make([]Entry, 0, len(latest))
	for _, share := range latest {
		upd := effectiveUpdate(share)
		entries = append(entries, Entry{
			OwnerEmail: share.OwnerEmail,
			Latitude:   share.Latitude,
			Longitude:  share.Longitude,
			LastUpdate: upd,
			// Приближение: свежая позиция считается признаком онлайна,
			// настоящую запись о присутствии зритель не читает
			IsOnline: freshWindow <= 0 || now.Sub(upd) < freshWindow,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OwnerEmail < entries[j].OwnerEmail
	})
	return entries
}

// effectiveUpdate возвращает last_update записи, откатываясь к created_at,
// если отметка обновления не проставлена
func effectiveUpdate(share *models.LocationShare) time.Time {
	if share.LastUpdate.IsZero() {
		return share.CreatedAt
	}
	return share.LastUpdate
}

// ViewerFeed - реактивная лента зрителя: пересчитывает список отображения на
// каждое уведомление об изменении доступов, сама ничего не опрашивает.
type ViewerFeed struct {
	viewerEmail string
	lister      ShareLister
	source      EventSource
	logger      *logrus.Logger
	freshWindow time.Duration

	updates chan []Entry
	once    sync.Once
}

// NewViewerFeed создает ленту поверх снимкового чтения и источника событий
func NewViewerFeed(viewerEmail string, lister ShareLister, source EventSource, logger *logrus.Logger, freshWindow time.Duration) *ViewerFeed {
	return &ViewerFeed{
		viewerEmail: viewerEmail,
		lister:      lister,
		source:      source,
		logger:      logger,
		freshWindow: freshWindow,
		updates:     make(chan []Entry, 4),
	}
}

// Start запускает горутину пересчета. Первый список отдается сразу,
// дальше - по событиям. Канал Updates закрывается при завершении.
func (f *ViewerFeed) Start(ctx context.Context) {
	go func() {
		defer close(f.updates)

		f.recompute(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-f.source.Events():
				if !ok {
					return
				}
				f.recompute(ctx)
			}
		}
	}()
}

func (f *ViewerFeed) recompute(ctx context.Context) {
	log := f.logger.WithFields(logrus.Fields{
		"feed":         "viewer",
		"viewer_email": f.viewerEmail,
	})

	shares, err := f.lister.ListByViewer(ctx, f.viewerEmail)
	if err != nil {
		// Ошибка чтения локальна для этого пересчета, подписку не роняем
		log.WithError(err).Warn("Failed to list shares for feed recompute")
		return
	}

	entries := BuildDisplayList(shares, time.Now(), f.freshWindow)
	select {
	case f.updates <- entries:
	case <-ctx.Done():
	}
}

// Updates возвращает канал пересчитанных списков отображения
func (f *ViewerFeed) Updates() <-chan []Entry {
	return f.updates
}

// Close освобождает подписку на события. Повторный вызов безопасен.
func (f *ViewerFeed) Close() {
	f.once.Do(func() {
		if err := f.source.Close(); err != nil {
			f.logger.WithError(err).Warn("Failed to close feed event source")
		}
	})
}
