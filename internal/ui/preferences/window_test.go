package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"tapclock/internal/core/sign"
)

func TestWindow_SaveAppliesValidFields(t *testing.T) {
	app := test.NewTempApp(t)

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	if prefs.stopTime.Text != "0:30" {
		t.Fatalf("stop time field = %q, expected 0:30", prefs.stopTime.Text)
	}
	if prefs.direction.Selected != optionCountDown {
		t.Fatalf("direction = %q, expected %q", prefs.direction.Selected, optionCountDown)
	}

	prefs.stopTime.SetText("5:00")
	prefs.direction.SetSelected(optionCountUp)
	prefs.handleSave()

	if len(saved) != 1 {
		t.Fatalf("expected one save, got %d", len(saved))
	}
	if saved[0].StopTime != 5*time.Minute || saved[0].StartSign != sign.Positive {
		t.Errorf("unexpected saved settings %+v", saved[0])
	}
}

func TestWindow_SaveKeepsStopTimeOnBadInput(t *testing.T) {
	app := test.NewTempApp(t)

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
	})

	for _, text := range []string{"later", "0:00"} {
		prefs.stopTime.SetText(text)
		prefs.handleSave()

		if saved.StopTime != 30*time.Second {
			t.Errorf("%q changed stop time to %v", text, saved.StopTime)
		}
		if prefs.stopTime.Text != "0:30" {
			t.Errorf("%q left field at %q", text, prefs.stopTime.Text)
		}
	}
}

func TestSettings_ClockConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.StopTime = time.Minute
	settings.StartSign = sign.Positive

	config := settings.ClockConfig()
	if config.StopTime != time.Minute || config.StartSign != sign.Positive {
		t.Errorf("unexpected clock config %+v", config)
	}
}
