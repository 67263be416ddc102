package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tapclock/internal/core/sign"
	"tapclock/internal/core/timefmt"
	"tapclock/internal/ui/preferences"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettings_ReadsFields(t *testing.T) {
	path := writeFile(t, `
stop_time: "2:30"
direction: "+0"
window_width: 500
window_height: 700
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.StopTime != 150*time.Second {
		t.Errorf("expected 2m30s, got %v", settings.StopTime)
	}
	if settings.StartSign != sign.Positive {
		t.Errorf("expected positive start sign, got %d", settings.StartSign)
	}
	if settings.WindowWidth != 500 || settings.WindowHeight != 700 {
		t.Errorf("unexpected window size %vx%v", settings.WindowWidth, settings.WindowHeight)
	}
}

func TestLoadSettings_InvalidFieldsKeepDefaults(t *testing.T) {
	path := writeFile(t, `
stop_time: "soon"
direction: "sideways"
window_width: -3
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettings_MalformedYaml(t *testing.T) {
	path := writeFile(t, "stop_time: [unclosed")

	settings, err := LoadSettings(path)
	if err == nil || !strings.Contains(err.Error(), "parse settings yaml") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("expected defaults alongside the error, got %+v", settings)
	}
}

func TestSaveSettings_WritesSignedZeroDirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	settings := preferences.DefaultSettings()
	settings.StopTime = timefmt.Infinity

	if err := SaveSettings(path, settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(raw)
	if !strings.Contains(text, "-0") {
		t.Errorf("expected a negative zero direction in:\n%s", text)
	}
	if !strings.Contains(text, "Infinity") {
		t.Errorf("expected Infinity stop time in:\n%s", text)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded != settings {
		t.Errorf("loaded %+v, saved %+v", loaded, settings)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	path, err := DefaultPath("tapclock")
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if filepath.Base(path) != settingsFileName || filepath.Base(filepath.Dir(path)) != "tapclock" {
		t.Errorf("unexpected path %s", path)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), settingsFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
