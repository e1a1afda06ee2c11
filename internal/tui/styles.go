package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/animation"
	"github.com/katalvlaran/labyrinth/internal/config"
)

// block is one maze square on screen; two columns keep cells roughly square.
const block = "██"

// Fixed chrome colours.
var (
	colorMuted   = lipgloss.Color("#636363")
	colorPrimary = lipgloss.Color("#00BFFF")
	colorDanger  = lipgloss.Color("#FF5252")
)

var (
	styleFooterKey  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleFooterDesc = lipgloss.NewStyle().Foreground(colorMuted)
	styleFooterSep  = lipgloss.NewStyle().Foreground(colorMuted)
	styleStatus     = lipgloss.NewStyle().Foreground(colorMuted)
	styleError      = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
)

// Styles are the palette-dependent cell styles. They are rebuilt when the
// configuration is reloaded.
type Styles struct {
	Start     lipgloss.Style
	Goal      lipgloss.Style
	OnPath    lipgloss.Style
	Visited   lipgloss.Style
	Unvisited lipgloss.Style
	Wall      lipgloss.Style
}

// NewStyles builds cell styles from p.
func NewStyles(p config.Palette) Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Start:     fg(p.Start),
		Goal:      fg(p.Goal),
		OnPath:    fg(p.OnPath),
		Visited:   fg(p.Visited),
		Unvisited: fg(p.Unvisited),
		Wall:      fg(p.Wall),
	}
}

// ForTier returns the style of a revealed cell in tier t.
func (s Styles) ForTier(t animation.Tier) lipgloss.Style {
	switch t {
	case animation.OnPath:
		return s.OnPath
	case animation.Visited:
		return s.Visited
	default:
		return s.Unvisited
	}
}
