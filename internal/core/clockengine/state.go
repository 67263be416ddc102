package clockengine

import (
	"time"

	"tapclock/internal/core/sign"
	"tapclock/internal/core/timefmt"
)

// Phase is the clock mode derived from direction and elapsed time.
type Phase string

const (
	PhaseRunningForward  Phase = "running_forward"
	PhaseRunningBackward Phase = "running_backward"
	PhasePaused          Phase = "paused"
	PhaseStopped         Phase = "stopped"
)

// IsRunning reports whether the phase counts in either direction.
func (phase Phase) IsRunning() bool {
	return phase == PhaseRunningForward || phase == PhaseRunningBackward
}

// Color is the theme a renderer paints the clock with.
type Color string

const (
	ColorDark  Color = "dark"
	ColorLight Color = "light"
)

// State is a read-only snapshot of the clock.
type State struct {
	Time      time.Duration
	Direction sign.Direction
	StopTime  time.Duration
	LastTick  time.Time

	IsPauseMenuOpen bool
	IsTimerMenuOpen bool

	PendingStopTime    string
	HasPendingStopTime bool
}

// Stopped reports whether the elapsed magnitude reached the stop time.
func (state State) Stopped() bool {
	return state.Time.Abs() >= state.StopTime
}

// Phase classifies the snapshot. Stopped takes precedence over direction.
func (state State) Phase() Phase {
	switch {
	case state.Stopped():
		return PhaseStopped
	case !state.Direction.IsRunning():
		return PhasePaused
	case state.Direction.Sign() > 0:
		return PhaseRunningForward
	default:
		return PhaseRunningBackward
	}
}

// Display returns the signed clock text. Once stopped the text freezes at
// the stop time, signed by the direction the clock travelled.
func (state State) Display() string {
	prefix := "+"
	if state.Time < 0 {
		prefix = "-"
	}
	if state.Stopped() {
		return prefix + timefmt.Format(state.StopTime)
	}
	return prefix + timefmt.Format(state.Time)
}

// Color returns ColorDark while counting (or resuming) up, ColorLight otherwise.
func (state State) Color() Color {
	if state.Direction.Sign() > 0 {
		return ColorDark
	}
	return ColorLight
}
