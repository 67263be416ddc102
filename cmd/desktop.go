package main

import (
	"context"
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/jonboulle/clockwork"

	"tapclock/internal/core/clockengine"
	"tapclock/internal/platform"
	"tapclock/internal/storage"
	"tapclock/internal/ui/clockview"
	"tapclock/internal/ui/preferences"
	"tapclock/internal/ui/tray"
	"tapclock/resources"
)

const statusInterval = time.Second

func runDesktop(ctx context.Context, engine *clockengine.Engine, clock clockwork.Clock, settings preferences.Settings, settingsPath string) error {
	guard, err := platform.AcquireSingleInstance(ctx, appID)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()
	log.Printf("single instance lock on %s", guard.Address())

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconRunning))

	view := clockview.New(fyneApp, engine, clock, clockview.Config{
		Title: appName,
		Size:  fyne.NewSize(settings.WindowWidth, settings.WindowHeight),
		Icon:  resources.MustIcon(resources.IconRunning),
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		engine.UpdateConfig(settings.ClockConfig())
		if err := storage.SaveSettings(settingsPath, settings); err != nil {
			log.Printf("settings save: %v", err)
		}
	})

	quit := func() {
		engine.Close()
		fyneApp.Quit()
	}

	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		view.SetOnClosed(quit)
		view.Show()
		fyneApp.Run()
		return nil
	}

	paused := true
	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShow: view.Show,
		OnTap:  engine.TapTimeDisplay,
		OnTogglePause: func() {
			if paused {
				engine.Resume()
			} else {
				engine.Pause()
			}
		},
		OnReset:       engine.Reset,
		OnPreferences: prefsWindow.Show,
		OnQuit:        quit,
	})
	desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconPaused))
	view.SetCloseIntercept(view.Hide)

	trayManager.SetStatus(engine.Snapshot().Display())
	trayManager.SetPaused(true)

	events := engine.Subscribe(8)
	go func() {
		for event := range events {
			log.Printf("clock %s: phase=%s display=%s %s", event.Type, event.Phase, event.Display, event.Message)
			fyne.Do(func() {
				paused = !event.Phase.IsRunning()
				trayManager.SetStatus(event.Display)
				trayManager.SetStopped(event.Phase == clockengine.PhaseStopped)
				trayManager.SetPaused(paused)
				desktopApp.SetSystemTrayIcon(trayIcon(event.Phase))
			})
		}
	}()

	done := make(chan struct{})
	defer close(done)

	statusTicker := clock.NewTicker(statusInterval)
	defer statusTicker.Stop()
	go followStatus(done, statusTicker, func() string {
		return engine.Snapshot().Display()
	}, func(display string) {
		fyne.Do(func() {
			trayManager.SetStatus(display)
		})
	})

	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(quit)
		case <-done:
		}
	}()

	view.Show()
	fyneApp.Run()
	return nil
}

// followStatus calls update on each tick where the display has changed,
// until done is closed.
func followStatus(done <-chan struct{}, ticker clockwork.Ticker, display func() string, update func(string)) {
	last := display()
	for {
		select {
		case <-done:
			return
		case <-ticker.Chan():
			if text := display(); text != last {
				last = text
				update(text)
			}
		}
	}
}

func trayIcon(phase clockengine.Phase) fyne.Resource {
	switch phase {
	case clockengine.PhaseStopped:
		return resources.MustIcon(resources.IconStopped)
	case clockengine.PhasePaused:
		return resources.MustIcon(resources.IconPaused)
	default:
		return resources.MustIcon(resources.IconRunning)
	}
}
