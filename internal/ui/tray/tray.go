package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

const menuTitle = "tapclock"

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTap         func()
	OnTogglePause func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host        Host
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	tapItem     *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	menu        *fyne.Menu
	paused      bool
	stopped     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(host Host, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:        host,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.tapItem = fyne.NewMenuItem("Start / reverse", run(&manager.callbacks.OnTap))
	manager.pauseItem = fyne.NewMenuItem("Pause", run(&manager.callbacks.OnTogglePause))

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show clock", run(&manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.tapItem,
		manager.pauseItem,
		fyne.NewMenuItem("Reset", run(&manager.callbacks.OnReset)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", run(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", run(&manager.callbacks.OnQuit)),
	)

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates the pause item label.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshStatus()
}

// SetStopped disables the clock controls until the clock is reset.
func (manager *Manager) SetStopped(stopped bool) {
	manager.stopped = stopped
	manager.tapItem.Disabled = stopped
	manager.pauseItem.Disabled = stopped
	manager.refreshStatus()
}

// Menu returns the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	switch {
	case manager.stopped:
		status = fmt.Sprintf("%s (stopped)", status)
	case manager.paused:
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Clock: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func run(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
