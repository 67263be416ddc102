package clockview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"

	"tapclock/internal/core/clockengine"
	"tapclock/internal/ui/animation"
)

// Config defines window visuals.
type Config struct {
	Title string
	Size  fyne.Size
	Icon  fyne.Resource
}

var (
	black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Window paints engine snapshots every frame and forwards taps, clicks and
// field edits to the engine.
type Window struct {
	window fyne.Window
	engine *clockengine.Engine
	clock  clockwork.Clock
	loop   *animation.Loop

	background     *canvas.Rectangle
	timerMenuPanel *canvas.Rectangle

	timeText    *canvas.Text
	timeDisplay *tapLabel
	pauseButton *widget.Button
	pauseMenu   *fyne.Container
	stopTime    *stopTimeEntry
	timerMenu   *fyne.Container
	running     *fyne.Container

	stoppedText *canvas.Text
	stopped     *fyne.Container

	onClosed func()
}

// New creates the clock window. Frames start on Show.
func New(app fyne.App, engine *clockengine.Engine, clock clockwork.Clock, config Config) *Window {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if config.Title == "" {
		config.Title = "tapclock"
	}

	window := app.NewWindow(config.Title)
	if config.Icon != nil {
		window.SetIcon(config.Icon)
	} else if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	view := &Window{
		window:         window,
		engine:         engine,
		clock:          clock,
		background:     canvas.NewRectangle(white),
		timerMenuPanel: canvas.NewRectangle(white),
	}
	view.loop = animation.New(view.frame)

	view.timeText = newClockText()
	view.timeDisplay = newTapLabel(view.timeText, func() {
		view.dispatch(engine.TapTimeDisplay)
	})

	view.pauseButton = widget.NewButton("||", func() {
		view.dispatch(engine.Pause)
	})
	view.pauseMenu = container.NewHBox(
		widget.NewButton("▶", func() {
			view.dispatch(engine.Resume)
		}),
		widget.NewButton("1:23", func() {
			view.dispatch(engine.OpenTimerMenu)
		}),
	)
	controls := container.NewStack(container.NewCenter(view.pauseButton), container.NewCenter(view.pauseMenu))
	view.running = container.New(&clockLayout{text: view.timeText}, view.timeDisplay, controls)

	view.stopTime = newStopTimeEntry()
	view.stopTime.onFocus = func() {
		view.dispatch(engine.FocusStopTimeField)
	}
	view.stopTime.onBlur = func() {
		view.dispatch(engine.CommitPendingStopTime)
	}
	view.stopTime.OnChanged = func(text string) {
		engine.EditPendingStopTime(text)
	}
	view.stopTime.OnSubmitted = func(string) {
		if focused := window.Canvas().Focused(); focused == view.stopTime {
			window.Canvas().Unfocus()
			return
		}
		view.dispatch(engine.CommitPendingStopTime)
	}

	closeRow := container.NewHBox(layout.NewSpacer(), widget.NewButton("X", func() {
		view.dispatch(engine.CloseTimerMenu)
	}))
	resetRow := container.NewHBox(widget.NewLabel("Reset current time"), layout.NewSpacer(), widget.NewButton("↺", func() {
		view.dispatch(engine.Reset)
	}))
	menuBody := container.NewVBox(
		closeRow,
		widget.NewLabel("Stop time:"),
		view.stopTime,
		resetRow,
	)
	view.timerMenu = container.NewPadded(container.NewStack(view.timerMenuPanel, container.NewPadded(menuBody)))

	view.stoppedText = newClockText()
	view.stopped = container.New(&clockLayout{text: view.stoppedText}, view.stoppedText,
		container.NewCenter(widget.NewButton("↺", func() {
			view.dispatch(engine.Reset)
		})))

	window.SetContent(container.NewStack(view.background, view.running, view.timerMenu, view.stopped))
	if config.Size.Width > 0 && config.Size.Height > 0 {
		window.Resize(config.Size)
	}
	window.SetOnClosed(func() {
		view.loop.Stop()
		if view.onClosed != nil {
			view.onClosed()
		}
	})

	view.render(engine.Snapshot())
	return view
}

// Show displays the window and starts the frame loop.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
	view.loop.Start()
}

// Hide hides the window. Frames keep running so time is tracked.
func (view *Window) Hide() {
	view.window.Hide()
}

// Close stops the frame loop and closes the window.
func (view *Window) Close() {
	view.loop.Stop()
	view.window.Close()
}

// SetOnClosed sets a handler called after the window closes.
func (view *Window) SetOnClosed(handler func()) {
	view.onClosed = handler
}

// SetCloseIntercept replaces the default close behaviour.
func (view *Window) SetCloseIntercept(handler func()) {
	view.window.SetCloseIntercept(handler)
}

func (view *Window) frame() {
	view.engine.Tick(view.clock.Now())
	view.render(view.engine.Snapshot())
}

func (view *Window) dispatch(intent func()) {
	intent()
	view.render(view.engine.Snapshot())
}

func (view *Window) render(state clockengine.State) {
	foreground, background := palette(state.Color())
	if view.background.FillColor != background {
		view.background.FillColor = background
		view.background.Refresh()
		view.timerMenuPanel.FillColor = background
		view.timerMenuPanel.Refresh()
	}

	if state.Stopped() {
		setVisible(view.running, false)
		setVisible(view.timerMenu, false)
		setVisible(view.stopped, true)
		setText(view.stoppedText, state.Display(), foreground)
		return
	}

	setVisible(view.stopped, false)
	setVisible(view.running, true)
	setText(view.timeText, state.Display(), foreground)
	setVisible(view.pauseButton, state.Direction.IsRunning())
	setVisible(view.pauseMenu, state.IsPauseMenuOpen)
	setVisible(view.timerMenu, state.IsTimerMenuOpen)

	if state.HasPendingStopTime && view.stopTime.Text != state.PendingStopTime {
		view.stopTime.SetText(state.PendingStopTime)
	}
}

func palette(theme clockengine.Color) (foreground color.Color, background color.Color) {
	if theme == clockengine.ColorDark {
		return white, black
	}
	return black, white
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if object.Visible() == visible {
		return
	}
	if visible {
		object.Show()
		return
	}
	object.Hide()
}

func setText(text *canvas.Text, value string, foreground color.Color) {
	if text.Text == value && text.Color == foreground {
		return
	}
	text.Text = value
	text.Color = foreground
	text.Refresh()
}
