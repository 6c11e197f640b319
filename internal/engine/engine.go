package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/intervald/internal/clock"
	"github.com/sandeepkv93/intervald/internal/model"
)

const DefaultTickInterval = time.Second

// Display and AlertSink are called with the engine locked. They must not
// block or call back into the Engine.
type Display interface {
	ShowRunningView(formatted string, paused bool)
	HideRunningView()
}

type AlertSink interface {
	PlayAlert() error
}

type EventType string

const (
	EventStarted  EventType = "started"
	EventPaused   EventType = "paused"
	EventResumed  EventType = "resumed"
	EventReset    EventType = "reset"
	EventCanceled EventType = "canceled"
	EventExpired  EventType = "expired"
)

type Event struct {
	Type    EventType
	State   model.TimerState
	Elapsed int
	At      time.Time
}

type Option func(*Engine)

func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func WithEventBuffer(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.events = make(chan Event, n)
		}
	}
}

type Engine struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration
	display  Display
	alert    AlertSink
	log      zerolog.Logger

	state   model.TimerState
	carried int
	tick    clock.Timer
	gen     uint64
	closed  bool

	events  chan Event
	dropped uint64
}

func New(display Display, alert AlertSink, opts ...Option) *Engine {
	e := &Engine{
		clock:    clock.System,
		interval: DefaultTickInterval,
		display:  display,
		alert:    alert,
		log:      zerolog.Nop(),
		events:   make(chan Event, 16),
	}
	if e.display == nil {
		e.display = nopDisplay{}
	}
	if e.alert == nil {
		e.alert = nopAlert{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() model.TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Events() <-chan Event {
	return e.events
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) Start(d model.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	e.releaseTick()
	d = model.NewDuration(d.Minutes, d.Seconds)
	e.state = model.TimerState{
		Status:           model.StatusRunning,
		RemainingSeconds: d.TotalSeconds(),
		Original:         d,
	}
	e.carried = 0
	e.log.Info().Str("duration", d.String()).Msg("countdown started")
	e.display.ShowRunningView(e.state.Formatted(), false)
	e.emit(EventStarted)
	if e.state.RemainingSeconds <= 0 {
		e.expire()
		return true
	}
	e.acquireTick()
	return true
}

func (e *Engine) Pause() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.state.Status != model.StatusRunning {
		return false
	}
	e.releaseTick()
	e.state.Status = model.StatusPaused
	e.log.Info().Int("remaining", e.state.RemainingSeconds).Msg("countdown paused")
	e.display.ShowRunningView(e.state.Formatted(), true)
	e.emit(EventPaused)
	return true
}

func (e *Engine) Resume() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.state.Status != model.StatusPaused {
		return false
	}
	e.state.Status = model.StatusRunning
	e.log.Info().Int("remaining", e.state.RemainingSeconds).Msg("countdown resumed")
	e.display.ShowRunningView(e.state.Formatted(), false)
	e.emit(EventResumed)
	if e.state.RemainingSeconds <= 0 {
		e.expire()
		return true
	}
	e.acquireTick()
	return true
}

func (e *Engine) TogglePause() bool {
	e.mu.Lock()
	status := e.state.Status
	e.mu.Unlock()
	if status == model.StatusPaused {
		return e.Resume()
	}
	return e.Pause()
}

func (e *Engine) Cancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.state.Status.Active() {
		return false
	}
	e.releaseTick()
	elapsed := e.elapsed()
	e.state.Status = model.StatusCanceled
	e.state.RemainingSeconds = 0
	e.log.Info().Str("duration", e.state.Original.String()).Int("elapsed", elapsed).Msg("countdown canceled")
	e.display.HideRunningView()
	e.emitElapsed(EventCanceled, elapsed)
	return true
}

func (e *Engine) Reset() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.state.Status.Active() {
		return false
	}
	e.releaseTick()
	e.carried = e.elapsed()
	e.state.Status = model.StatusPaused
	e.state.RemainingSeconds = e.state.Original.TotalSeconds()
	e.log.Info().Str("duration", e.state.Original.String()).Msg("countdown reset")
	e.display.ShowRunningView(e.state.Formatted(), true)
	e.emit(EventReset)
	return true
}

func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.releaseTick()
	e.closed = true
	close(e.events)
}

func (e *Engine) onTick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen || e.state.Status != model.StatusRunning {
		e.log.Debug().Uint64("gen", gen).Msg("stray tick ignored")
		return
	}
	e.tick = nil
	e.state.RemainingSeconds--
	if e.state.RemainingSeconds <= 0 {
		e.state.RemainingSeconds = 0
		e.expire()
		return
	}
	e.display.ShowRunningView(e.state.Formatted(), false)
	e.acquireTick()
}

// expire must be called with mu held.
func (e *Engine) expire() {
	e.releaseTick()
	e.state.Status = model.StatusExpired
	e.state.RemainingSeconds = 0
	e.log.Info().Str("duration", e.state.Original.String()).Msg("countdown expired")
	if err := e.alert.PlayAlert(); err != nil {
		e.log.Warn().Err(err).Msg("alert playback failed")
	}
	e.display.HideRunningView()
	e.emit(EventExpired)
}

func (e *Engine) acquireTick() {
	e.gen++
	gen := e.gen
	e.tick = e.clock.AfterFunc(e.interval, func() { e.onTick(gen) })
}

// releaseTick also bumps the generation so a callback that already fired and
// is waiting on mu sees itself as stale.
func (e *Engine) releaseTick() {
	if e.tick != nil {
		e.tick.Stop()
		e.tick = nil
	}
	e.gen++
}

// elapsed includes time run before any Reset of the current countdown.
func (e *Engine) elapsed() int {
	return e.carried + e.state.Original.TotalSeconds() - e.state.RemainingSeconds
}

func (e *Engine) emit(t EventType) {
	e.emitElapsed(t, e.elapsed())
}

func (e *Engine) emitElapsed(t EventType, elapsed int) {
	ev := Event{Type: t, State: e.state, Elapsed: elapsed, At: e.clock.Now().UTC()}
	select {
	case e.events <- ev:
	default:
		atomic.AddUint64(&e.dropped, 1)
	}
}

type nopDisplay struct{}

func (nopDisplay) ShowRunningView(string, bool) {}
func (nopDisplay) HideRunningView()             {}

type nopAlert struct{}

func (nopAlert) PlayAlert() error { return nil }
