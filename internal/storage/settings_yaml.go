package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"tapclock/internal/core/sign"
	"tapclock/internal/core/timefmt"
	"tapclock/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	StopTime     string `yaml:"stop_time"`
	Direction    string `yaml:"direction"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

// DefaultPath returns the settings file location for appName.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
// Fields that are missing or invalid keep their defaults.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the YAML file at path.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		StopTime:     timefmt.Format(settings.StopTime),
		Direction:    strconv.FormatFloat(sign.Paused(settings.StartSign).Float(), 'g', -1, 64),
		WindowWidth:  int(settings.WindowWidth),
		WindowHeight: int(settings.WindowHeight),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if stopTime, err := timefmt.Parse(fileData.StopTime); err == nil && stopTime > 0 {
		settings.StopTime = stopTime
	}
	// Direction is a signed float so "-0" and "+0" keep their resume sign.
	if value, err := strconv.ParseFloat(fileData.Direction, 64); err == nil {
		settings.StartSign = sign.FromFloat(value).Sign()
	}
	if fileData.WindowWidth > 0 {
		settings.WindowWidth = float32(fileData.WindowWidth)
	}
	if fileData.WindowHeight > 0 {
		settings.WindowHeight = float32(fileData.WindowHeight)
	}
}
