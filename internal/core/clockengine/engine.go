package clockengine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"tapclock/internal/core/model"
	"tapclock/internal/core/sign"
	"tapclock/internal/core/timefmt"
)

// ErrNonPositiveStopTime indicates a parsed stop time that would stop the clock immediately.
var ErrNonPositiveStopTime = errors.New("stop time must be positive")

// Config contains runtime options for Engine.
type Config struct {
	// Clock supplies "now" for taps and the initial tick. Defaults to the real clock.
	Clock clockwork.Clock
}

// Engine is the clock state machine. Renderers call Tick once per frame and
// dispatch user intents; every call is an immediate state transition.
type Engine struct {
	mu     sync.Mutex
	config model.ClockConfig
	clock  clockwork.Clock
	state  State
	events []chan Event

	// deferredStopTime is set when UpdateConfig arrives while stopped.
	deferredStopTime bool
}

// New creates an Engine in the paused startup state.
func New(config model.ClockConfig, options Config) *Engine {
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	config = normalizeConfig(config)

	engine := &Engine{
		config: config,
		clock:  options.Clock,
		state: State{
			Direction: sign.Paused(config.StartSign),
			StopTime:  config.StopTime,
			LastTick:  options.Clock.Now(),
		},
	}
	engine.syncMenusLocked()
	return engine
}

// Snapshot returns a copy of the current state.
func (engine *Engine) Snapshot() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Close releases all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// UpdateConfig applies new defaults. The stop time takes effect immediately
// unless the clock is stopped, in which case it waits for Reset. The start
// sign always waits for Reset.
func (engine *Engine) UpdateConfig(config model.ClockConfig) {
	config = normalizeConfig(config)
	engine.transition(func(state *State) {
		engine.config = config
		if state.Stopped() {
			engine.deferredStopTime = state.StopTime != config.StopTime
			return
		}
		engine.deferredStopTime = false
		engine.applyStopTimeLocked(state, config.StopTime)
	})
}

// Tick advances elapsed time to now. It runs in every phase; while paused
// the time is unchanged but LastTick still moves so resuming has no jump.
func (engine *Engine) Tick(now time.Time) {
	engine.transition(func(state *State) {
		delta := now.Sub(state.LastTick)
		if state.Direction.IsRunning() {
			state.Time += delta * time.Duration(state.Direction.Sign())
		}
		state.LastTick = now
	})
}

// TapTimeDisplay resumes a paused clock in its remembered direction or
// reverses a running one. It has no effect once stopped.
func (engine *Engine) TapTimeDisplay() {
	engine.transition(func(state *State) {
		if state.Stopped() {
			return
		}
		if state.Direction.IsRunning() {
			state.Direction = state.Direction.Reverse()
		} else {
			state.Direction = state.Direction.Resume()
		}
		state.LastTick = engine.clock.Now()
	})
}

// Pause stops a running clock and remembers its direction.
func (engine *Engine) Pause() {
	engine.transition(func(state *State) {
		if state.Stopped() || !state.Direction.IsRunning() {
			return
		}
		state.Direction = state.Direction.Pause()
	})
}

// Resume restarts a paused clock in its remembered direction.
func (engine *Engine) Resume() {
	engine.transition(func(state *State) {
		if state.Stopped() || state.Direction.IsRunning() {
			return
		}
		state.Direction = state.Direction.Resume()
		state.LastTick = engine.clock.Now()
	})
}

// OpenTimerMenu shows the stop-time settings and seeds the edit field.
func (engine *Engine) OpenTimerMenu() {
	engine.transition(func(state *State) {
		if state.Stopped() {
			return
		}
		state.IsTimerMenuOpen = true
		setPending(state, timefmt.Format(state.StopTime))
	})
}

// CloseTimerMenu hides the settings without touching the edit field.
func (engine *Engine) CloseTimerMenu() {
	engine.transition(func(state *State) {
		state.IsTimerMenuOpen = false
	})
}

// EditPendingStopTime stores the field text as typed.
func (engine *Engine) EditPendingStopTime(text string) {
	engine.transition(func(state *State) {
		setPending(state, text)
	})
}

// FocusStopTimeField reseeds the edit field from the committed stop time.
func (engine *Engine) FocusStopTimeField() {
	engine.transition(func(state *State) {
		setPending(state, timefmt.Format(state.StopTime))
	})
}

// CommitPendingStopTime parses the edit field into the stop time. Text that
// does not parse to a positive duration keeps the previous stop time. The
// field is rewritten to the canonical form in either case. A stopped clock
// keeps its stop time so that only Reset leaves the stopped phase.
func (engine *Engine) CommitPendingStopTime() {
	engine.transition(func(state *State) {
		parsed, err := parseStopTime(state.PendingStopTime)
		switch {
		case state.Stopped():
		case err != nil:
			engine.emitLocked(engine.eventLocked(EventStopTimeRejected, err.Error()))
		default:
			engine.applyStopTimeLocked(state, parsed)
		}
		setPending(state, timefmt.Format(state.StopTime))
	})
}

// Reset zeroes the clock, pauses it toward the configured start direction
// and closes the timer menu. It is the only way out of the stopped phase.
func (engine *Engine) Reset() {
	engine.transition(func(state *State) {
		state.Time = 0
		state.Direction = sign.Paused(engine.config.StartSign)
		state.IsTimerMenuOpen = false
		if engine.deferredStopTime {
			engine.deferredStopTime = false
			engine.applyStopTimeLocked(state, engine.config.StopTime)
			setPending(state, timefmt.Format(state.StopTime))
		}
		engine.emitLocked(engine.eventLocked(EventReset, ""))
	})
}

func (engine *Engine) transition(mutate func(state *State)) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	before := engine.state.Phase()
	mutate(&engine.state)
	engine.syncMenusLocked()
	if engine.state.Phase() != before {
		engine.emitLocked(engine.eventLocked(EventPhaseChange, fmt.Sprintf("%s -> %s", before, engine.state.Phase())))
	}
}

func (engine *Engine) syncMenusLocked() {
	state := &engine.state
	state.IsPauseMenuOpen = !state.Direction.IsRunning() && !state.Stopped() && !state.IsTimerMenuOpen
}

func (engine *Engine) eventLocked(eventType EventType, message string) Event {
	return Event{
		Type:     eventType,
		Phase:    engine.state.Phase(),
		Display:  engine.state.Display(),
		Time:     engine.state.Time,
		StopTime: engine.state.StopTime,
		Message:  message,
		At:       engine.clock.Now(),
	}
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func parseStopTime(text string) (time.Duration, error) {
	parsed, err := timefmt.Parse(text)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("stop time %q: %w", text, ErrNonPositiveStopTime)
	}
	return parsed, nil
}

func (engine *Engine) applyStopTimeLocked(state *State, stopTime time.Duration) {
	if state.StopTime != stopTime {
		state.StopTime = stopTime
		engine.emitLocked(engine.eventLocked(EventStopTimeChange, ""))
	}
}

func setPending(state *State, text string) {
	state.PendingStopTime = text
	state.HasPendingStopTime = true
}

func normalizeConfig(config model.ClockConfig) model.ClockConfig {
	if config.StopTime <= 0 {
		config.StopTime = model.DefaultStopTime
	}
	if config.StartSign == 0 {
		config.StartSign = sign.Negative
	}
	return config
}
