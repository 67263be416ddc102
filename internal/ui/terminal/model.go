// Package terminal renders the clock in a terminal with bubbletea.
package terminal

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"tapclock/internal/core/clockengine"
)

// DefaultFrameInterval is roughly one display refresh.
const DefaultFrameInterval = time.Second / 60

type frameMsg time.Time

// Model is the bubbletea model for one clock.
type Model struct {
	engine        *clockengine.Engine
	clock         clockwork.Clock
	field         textinput.Model
	frameInterval time.Duration
	width         int
	height        int
}

// New creates a terminal model over engine.
func New(engine *clockengine.Engine, clock clockwork.Clock, frameInterval time.Duration) Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}

	field := textinput.New()
	field.Prompt = "Stop time: "
	field.Placeholder = "M:SS"
	field.CharLimit = 32

	return Model{
		engine:        engine,
		clock:         clock,
		field:         field,
		frameInterval: frameInterval,
	}
}

// Run starts a full-screen program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, engine *clockengine.Engine, clock clockwork.Clock) error {
	program := tea.NewProgram(New(engine, clock, DefaultFrameInterval), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (model Model) Init() tea.Cmd {
	return model.nextFrame()
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		model.engine.Tick(model.clock.Now())
		return model, model.nextFrame()
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		return model, nil
	case tea.KeyMsg:
		if model.field.Focused() {
			return model.updateField(msg)
		}
		return model.updateKeys(msg)
	}
	return model, nil
}

func (model Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := model.engine.Snapshot()

	switch msg.String() {
	case "q", "ctrl+c":
		return model, tea.Quit
	case "x":
		model.engine.Reset()
		return model, nil
	}
	if state.Stopped() {
		return model, nil
	}

	switch msg.String() {
	case " ", "enter":
		model.engine.TapTimeDisplay()
	case "p":
		model.engine.Pause()
	case "r":
		model.engine.Resume()
	case "t":
		model.engine.OpenTimerMenu()
		return model.focusField()
	case "e":
		if state.IsTimerMenuOpen {
			return model.focusField()
		}
	case "esc":
		model.engine.CloseTimerMenu()
	}
	return model, nil
}

func (model Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		model = model.blurField()
		return model, nil
	case "esc":
		model = model.blurField()
		model.engine.CloseTimerMenu()
		return model, nil
	case "ctrl+c":
		return model, tea.Quit
	}

	before := model.field.Value()
	var cmd tea.Cmd
	model.field, cmd = model.field.Update(msg)
	if value := model.field.Value(); value != before {
		model.engine.EditPendingStopTime(value)
	}
	return model, cmd
}

func (model Model) focusField() (tea.Model, tea.Cmd) {
	model.engine.FocusStopTimeField()
	model.field.SetValue(model.engine.Snapshot().PendingStopTime)
	model.field.CursorEnd()
	return model, model.field.Focus()
}

func (model Model) blurField() Model {
	model.field.Blur()
	model.engine.CommitPendingStopTime()
	model.field.SetValue(model.engine.Snapshot().PendingStopTime)
	return model
}

func (model Model) nextFrame() tea.Cmd {
	return tea.Tick(model.frameInterval, func(at time.Time) tea.Msg {
		return frameMsg(at)
	})
}

func (model Model) View() string {
	state := model.engine.Snapshot()
	styles := stylesFor(state.Color())

	var sections []string
	if state.Stopped() {
		sections = append(sections,
			styles.display.Render(state.Display()),
			styles.hint.Render("x reset · q quit"),
		)
	} else {
		sections = append(sections, styles.display.Render(state.Display()))
		switch {
		case state.IsTimerMenuOpen:
			hint := "e edit · x reset · esc close"
			if model.field.Focused() {
				hint = "enter apply · esc close"
			}
			sections = append(sections, styles.menu.Render(strings.Join([]string{
				model.field.View(),
				styles.hint.Render(hint),
			}, "\n")))
		case state.IsPauseMenuOpen:
			sections = append(sections, styles.hint.Render("space/r resume · t stop time · x reset · q quit"))
		default:
			sections = append(sections, styles.hint.Render("space reverse · p pause · t stop time · q quit"))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if model.width > 0 && model.height > 0 {
		return styles.screen.Render(lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, content,
			lipgloss.WithWhitespaceBackground(styles.background)))
	}
	return styles.screen.Render(content)
}
