package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"tapclock/internal/core/clockengine"
)

type styles struct {
	background lipgloss.Color
	screen     lipgloss.Style
	display    lipgloss.Style
	hint       lipgloss.Style
	menu       lipgloss.Style
}

func stylesFor(theme clockengine.Color) styles {
	foreground, background := lipgloss.Color("0"), lipgloss.Color("15")
	if theme == clockengine.ColorDark {
		foreground, background = background, foreground
	}

	base := lipgloss.NewStyle().Foreground(foreground).Background(background)
	return styles{
		background: background,
		screen:     base,
		display:    base.Bold(true).Padding(1, 4),
		hint:       base.Faint(true),
		menu:       base.Border(lipgloss.RoundedBorder()).BorderForeground(foreground).Padding(0, 1),
	}
}
