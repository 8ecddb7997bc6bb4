package feed

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/live_location_system/internal/events"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDisplayList_FiltersInactiveAndMalformed(t *testing.T) {
	now := time.Now()
	shares := []*models.LocationShare{
		{ID: uuid.New(), OwnerEmail: "active@example.com", Latitude: 55.7558, Longitude: 37.6173, Active: true, LastUpdate: now},
		{ID: uuid.New(), OwnerEmail: "revoked@example.com", Latitude: 55.0, Longitude: 37.0, Active: false, LastUpdate: now},
		{ID: uuid.New(), OwnerEmail: "broken@example.com", Latitude: math.NaN(), Longitude: 37.0, Active: true, LastUpdate: now},
		{ID: uuid.New(), OwnerEmail: "out-of-range@example.com", Latitude: 91.0, Longitude: 37.0, Active: true, LastUpdate: now},
	}

	entries := BuildDisplayList(shares, now, 90*time.Second)

	require.Len(t, entries, 1)
	assert.Equal(t, "active@example.com", entries[0].OwnerEmail)
}

func TestBuildDisplayList_DeduplicatesPerOwner(t *testing.T) {
	now := time.Now()
	shares := []*models.LocationShare{
		{ID: uuid.New(), OwnerEmail: "owner@example.com", Latitude: 55.0, Longitude: 37.0, Active: true, LastUpdate: now.Add(-time.Minute)},
		{ID: uuid.New(), OwnerEmail: "owner@example.com", Latitude: 56.0, Longitude: 38.0, Active: true, LastUpdate: now},
		{ID: uuid.New(), OwnerEmail: "other@example.com", Latitude: 50.0, Longitude: 30.0, Active: true, LastUpdate: now},
	}

	entries := BuildDisplayList(shares, now, 90*time.Second)

	// По одной строке на владельца, побеждает самая свежая запись
	require.Len(t, entries, 2)
	assert.Equal(t, "other@example.com", entries[0].OwnerEmail)
	assert.Equal(t, "owner@example.com", entries[1].OwnerEmail)
	assert.Equal(t, 56.0, entries[1].Latitude)
}

func TestBuildDisplayList_FallsBackToCreatedAt(t *testing.T) {
	now := time.Now()
	created := now.Add(-time.Minute)
	shares := []*models.LocationShare{
		{ID: uuid.New(), OwnerEmail: "owner@example.com", Latitude: 55.0, Longitude: 37.0, Active: true, CreatedAt: created},
	}

	entries := BuildDisplayList(shares, now, 90*time.Second)

	// При незаполненном last_update используется created_at
	require.Len(t, entries, 1)
	assert.Equal(t, created, entries[0].LastUpdate)
	assert.True(t, entries[0].IsOnline)
}

func TestBuildDisplayList_OnlineApproximation(t *testing.T) {
	now := time.Now()
	shares := []*models.LocationShare{
		{ID: uuid.New(), OwnerEmail: "fresh@example.com", Latitude: 55.0, Longitude: 37.0, Active: true, LastUpdate: now.Add(-time.Minute)},
		{ID: uuid.New(), OwnerEmail: "stale@example.com", Latitude: 56.0, Longitude: 38.0, Active: true, LastUpdate: now.Add(-time.Hour)},
	}

	entries := BuildDisplayList(shares, now, 90*time.Second)

	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsOnline)
	assert.False(t, entries[1].IsOnline)

	// Нулевое окно отключает приближение, все считаются онлайн
	entries = BuildDisplayList(shares, now, 0)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsOnline)
	assert.True(t, entries[1].IsOnline)
}

func TestBuildDisplayList_Empty(t *testing.T) {
	entries := BuildDisplayList(nil, time.Now(), 90*time.Second)
	assert.Empty(t, entries)
}

// stubLister - заглушка чтения доступов с подменяемым снимком
type stubLister struct {
	mu     sync.Mutex
	shares []*models.LocationShare
	err    error
}

func (l *stubLister) ListByViewer(_ context.Context, _ string) ([]*models.LocationShare, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shares, l.err
}

func (l *stubLister) set(shares []*models.LocationShare, err error) {
	l.mu.Lock()
	l.shares = shares
	l.err = err
	l.mu.Unlock()
}

// stubSource - источник событий поверх обычного канала
type stubSource struct {
	ch   chan events.ShareEvent
	once sync.Once
}

func newStubSource() *stubSource {
	return &stubSource{ch: make(chan events.ShareEvent, 4)}
}

func (s *stubSource) Events() <-chan events.ShareEvent { return s.ch }

func (s *stubSource) Close() error {
	s.once.Do(func() { close(s.ch) })
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func receiveUpdate(t *testing.T, feed *ViewerFeed) []Entry {
	t.Helper()
	select {
	case entries, ok := <-feed.Updates():
		require.True(t, ok, "updates channel closed unexpectedly")
		return entries
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for feed update")
		return nil
	}
}

func TestViewerFeed_InitialAndReactiveRecompute(t *testing.T) {
	// Подготовка
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lister := &stubLister{}
	lister.set([]*models.LocationShare{
		{ID: uuid.New(), OwnerEmail: "owner@example.com", Latitude: 55.0, Longitude: 37.0, Active: true, LastUpdate: time.Now()},
	}, nil)
	source := newStubSource()

	feed := NewViewerFeed("viewer@example.com", lister, source, testLogger(), 90*time.Second)
	feed.Start(ctx)
	defer feed.Close()

	// Первый список отдается без события
	entries := receiveUpdate(t, feed)
	require.Len(t, entries, 1)
	assert.Equal(t, "owner@example.com", entries[0].OwnerEmail)

	// Действие: доступ отозван, приходит уведомление
	lister.set(nil, nil)
	source.ch <- events.ShareEvent{ViewerEmail: "viewer@example.com", Kind: events.KindRevoked}

	// Проверки: лента пересчитана по событию
	entries = receiveUpdate(t, feed)
	assert.Empty(t, entries)
}

func TestViewerFeed_ListerErrorKeepsSubscription(t *testing.T) {
	// Подготовка
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lister := &stubLister{}
	lister.set(nil, nil)
	source := newStubSource()

	feed := NewViewerFeed("viewer@example.com", lister, source, testLogger(), 90*time.Second)
	feed.Start(ctx)
	defer feed.Close()

	receiveUpdate(t, feed)

	// Действие: пересчет падает, подписка остается живой
	lister.set(nil, fmt.Errorf("соединение разорвано"))
	source.ch <- events.ShareEvent{Kind: events.KindPositionUpdated}

	lister.set([]*models.LocationShare{
		{ID: uuid.New(), OwnerEmail: "owner@example.com", Latitude: 55.0, Longitude: 37.0, Active: true, LastUpdate: time.Now()},
	}, nil)
	source.ch <- events.ShareEvent{Kind: events.KindPositionUpdated}

	// Проверки: следующее событие снова дает список
	entries := receiveUpdate(t, feed)
	require.Len(t, entries, 1)
}

func TestViewerFeed_CloseStopsUpdates(t *testing.T) {
	// Подготовка
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lister := &stubLister{}
	source := newStubSource()

	feed := NewViewerFeed("viewer@example.com", lister, source, testLogger(), 90*time.Second)
	feed.Start(ctx)

	receiveUpdate(t, feed)

	// Действие
	feed.Close()
	feed.Close() // Повторный вызов безопасен

	// Проверки: канал обновлений закрывается
	select {
	case _, ok := <-feed.Updates():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("updates channel was not closed")
	}
}
