package tray

import (
	"testing"

	"fyne.io/fyne/v2"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func TestNew_InstallsMenu(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Callbacks{})

	if len(host.menus) == 0 || host.menus[len(host.menus)-1] != manager.Menu() {
		t.Fatal("tray menu not installed")
	}
	if manager.statusItem.Label != "Clock: starting..." {
		t.Errorf("unexpected status %q", manager.statusItem.Label)
	}
}

func TestMenuItems_InvokeCallbacks(t *testing.T) {
	calls := map[string]int{}
	record := func(name string) func() {
		return func() { calls[name]++ }
	}
	manager := New(&fakeHost{}, Callbacks{
		OnShow:        record("show"),
		OnTap:         record("tap"),
		OnTogglePause: record("pause"),
		OnReset:       record("reset"),
		OnPreferences: record("preferences"),
		OnQuit:        record("quit"),
	})

	for _, item := range manager.Menu().Items {
		if item.Action != nil {
			item.Action()
		}
	}

	for _, name := range []string{"show", "tap", "pause", "reset", "preferences", "quit"} {
		if calls[name] != 1 {
			t.Errorf("expected %s called once, got %d", name, calls[name])
		}
	}
}

func TestMenuItems_NilCallbacksAreSafe(t *testing.T) {
	manager := New(nil, Callbacks{})
	for _, item := range manager.Menu().Items {
		if item.Action != nil {
			item.Action()
		}
	}
}

func TestStatusReflectsClock(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Callbacks{})

	manager.SetStatus("-0:12")
	manager.SetPaused(true)
	if manager.statusItem.Label != "Clock: -0:12 (paused)" {
		t.Errorf("unexpected status %q", manager.statusItem.Label)
	}
	if manager.pauseItem.Label != "Resume" {
		t.Errorf("expected Resume label, got %q", manager.pauseItem.Label)
	}

	manager.SetStopped(true)
	if manager.statusItem.Label != "Clock: -0:12 (stopped)" {
		t.Errorf("unexpected status %q", manager.statusItem.Label)
	}
	if !manager.tapItem.Disabled || !manager.pauseItem.Disabled {
		t.Error("controls should be disabled while stopped")
	}

	manager.SetStopped(false)
	manager.SetPaused(false)
	if manager.statusItem.Label != "Clock: -0:12" || manager.pauseItem.Label != "Pause" {
		t.Errorf("unexpected labels %q / %q", manager.statusItem.Label, manager.pauseItem.Label)
	}
}
