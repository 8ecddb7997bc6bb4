package sampler

import (
	"errors"
	"sync"
	"time"

	"github.com/shenikar/live_location_system/internal/geo"
)

// Типизированные ошибки источника позиции
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("location request timed out")
	ErrUnknown             = errors.New("unknown location error")

	// ErrStreamFailed возвращается при попытке отдать сэмпл в остановленный
	// или завершившийся с ошибкой поток
	ErrStreamFailed = errors.New("location stream failed")
)

// RawSample - сырой GPS-сэмпл от источника позиции
type RawSample struct {
	Latitude  float64
	Longitude float64
	// Точность сэмпла в метрах. После фильтрации не сохраняется.
	AccuracyMeters float64
	Timestamp      time.Time
}

// Options - пороги фильтрации
type Options struct {
	// Минимальное расстояние от последней принятой точки, чтобы сэмпл
	// считался значимым
	MinDistanceMeters float64
	// Окно дебаунса: сэмпл публикуется только если за это время не пришел
	// более новый подходящий сэмпл
	SettleDelay time.Duration
}

type acceptedPoint struct {
	lat, lon float64
	ts       time.Time
}

// Sampler фильтрует поток сырых GPS-сэмплов: отбрасывает дрожание ниже
// порога расстояния и схлопывает всплески через дебаунс-таймер.
// Принятые позиции отдаются в callback в порядке принятия.
type Sampler struct {
	opts     Options
	onAccept func(lat, lon float64, ts time.Time)

	mu           sync.Mutex
	lastAccepted *acceptedPoint
	pending      *acceptedPoint
	timer        *time.Timer
	failErr      error
	stopped      bool
}

// New создает Sampler. Callback вызывается из таймера дебаунса,
// не под внутренним мьютексом.
func New(opts Options, onAccept func(lat, lon float64, ts time.Time)) *Sampler {
	return &Sampler{
		opts:     opts,
		onAccept: onAccept,
	}
}

// Offer подает сырой сэмпл в фильтр. Сэмплы ниже порога расстояния
// отбрасываются сразу; подходящие перезапускают дебаунс-таймер, так что
// из окна всегда публикуется только самый свежий.
func (s *Sampler) Offer(smp RawSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStreamFailed
	}
	if s.failErr != nil {
		return ErrStreamFailed
	}

	if s.lastAccepted != nil {
		dist := geo.HaversineDistance(s.lastAccepted.lat, s.lastAccepted.lon, smp.Latitude, smp.Longitude)
		if dist < s.opts.MinDistanceMeters {
			// Шум GPS, таймер не взводим
			return nil
		}
	}

	s.pending = &acceptedPoint{lat: smp.Latitude, lon: smp.Longitude, ts: smp.Timestamp}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.SettleDelay, s.emitPending)
	return nil
}

func (s *Sampler) emitPending() {
	s.mu.Lock()
	if s.stopped || s.failErr != nil || s.pending == nil {
		s.mu.Unlock()
		return
	}
	pt := *s.pending
	s.lastAccepted = &pt
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	s.onAccept(pt.lat, pt.lon, pt.ts)
}

// Fail переводит поток в терминальное состояние ошибки: отложенный сэмпл
// отменяется, дальнейшие Offer возвращают ErrStreamFailed. Автоматического
// повтора нет - нужен новый Sampler.
func (s *Sampler) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.failErr != nil {
		return
	}
	s.failErr = err
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Err возвращает терминальную ошибку потока или nil
func (s *Sampler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failErr
}

// Stop останавливает поток и отменяет отложенный таймер.
// Повторный вызов безопасен.
func (s *Sampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// LastAccepted возвращает последнюю принятую точку (если была)
func (s *Sampler) LastAccepted() (lat, lon float64, ts time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastAccepted == nil {
		return 0, 0, time.Time{}, false
	}
	return s.lastAccepted.lat, s.lastAccepted.lon, s.lastAccepted.ts, true
}

// FailureFromCode сопоставляет код ошибки источника позиции с типизированной ошибкой
func FailureFromCode(code string) error {
	switch code {
	case "permission_denied":
		return ErrPermissionDenied
	case "position_unavailable":
		return ErrPositionUnavailable
	case "timeout":
		return ErrTimeout
	default:
		return ErrUnknown
	}
}
