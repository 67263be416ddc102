package preferences

import (
	"time"

	"tapclock/internal/core/model"
	"tapclock/internal/core/sign"
)

// Settings defines editable user preferences.
type Settings struct {
	StopTime  time.Duration
	StartSign sign.Sign

	WindowWidth  float32
	WindowHeight float32
}

// DefaultSettings returns default settings for tapclock.
func DefaultSettings() Settings {
	return Settings{
		StopTime:     model.DefaultStopTime,
		StartSign:    sign.Negative,
		WindowWidth:  360,
		WindowHeight: 480,
	}
}

// ClockConfig converts settings to the engine configuration.
func (settings Settings) ClockConfig() model.ClockConfig {
	return model.ClockConfig{
		StopTime:  settings.StopTime,
		StartSign: settings.StartSign,
	}
}
