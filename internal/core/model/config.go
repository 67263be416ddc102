package model

import (
	"time"

	"tapclock/internal/core/sign"
)

// DefaultStopTime is the threshold a fresh clock stops at.
const DefaultStopTime = 30 * time.Second

// ClockConfig contains the startup values for the clock engine.
type ClockConfig struct {
	// StopTime is the magnitude at which the clock freezes.
	StopTime time.Duration
	// StartSign is the direction a reset clock resumes into.
	StartSign sign.Sign
}

// DefaultClockConfig returns a clock that stops at 30s and counts down first.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		StopTime:  DefaultStopTime,
		StartSign: sign.Negative,
	}
}
