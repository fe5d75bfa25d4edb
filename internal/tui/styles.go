// Package tui provides the terminal user interface for dockplan.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jgurria/dockplan/internal/tui/theme"
)

// labelWidth is the fixed gutter for location names on the left of each
// track.
const labelWidth = 12

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg        lipgloss.Color
	colorBgTrack   lipgloss.Color
	colorBgNonWork lipgloss.Color
	colorFg        lipgloss.Color
	colorFgMuted   lipgloss.Color
	colorAccent    lipgloss.Color
	colorWarning   lipgloss.Color
	colorDanger    lipgloss.Color
	colorNowLine   lipgloss.Color

	TitleStyle    lipgloss.Style
	RulerStyle    lipgloss.Style
	RowLabelStyle lipgloss.Style

	TrackStyle    lipgloss.Style
	NonWorkStyle  lipgloss.Style
	NowLineStyle  lipgloss.Style
	SlotInvalid   lipgloss.Style
	SlotLive      lipgloss.Style
	SlotSelected  lipgloss.Style

	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style
	HelpStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style
}

// NewStyles creates all styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:        theme.Color(t.Bg),
		colorBgTrack:   theme.Color(t.BgTrack),
		colorBgNonWork: theme.Color(t.BgNonWork),
		colorFg:        theme.Color(t.Fg),
		colorFgMuted:   theme.Color(t.FgMuted),
		colorAccent:    theme.Color(t.Accent),
		colorWarning:   theme.Color(t.Warning),
		colorDanger:    theme.Color(t.Danger),
		colorNowLine:   theme.Color(t.NowLine),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.RulerStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.RowLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(labelWidth)

	s.TrackStyle = lipgloss.NewStyle().
		Background(s.colorBgTrack)

	s.NonWorkStyle = lipgloss.NewStyle().
		Background(s.colorBgNonWork)

	s.NowLineStyle = lipgloss.NewStyle().
		Foreground(s.colorNowLine).
		Background(s.colorBgTrack).
		Bold(true)

	s.SlotInvalid = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorDanger).
		Bold(true)

	s.SlotLive = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	s.SlotSelected = lipgloss.NewStyle().
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorWarning).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorDanger).
		Background(s.colorBg).
		Bold(true)

	return s
}

// SlotStyle builds the style for a slot segment with the given hex
// color, applying transient and selection modifiers on top.
func (s *Styles) SlotStyle(hex string, invalid, live, selected bool) lipgloss.Style {
	if invalid {
		return s.SlotInvalid
	}
	style := lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(theme.Color(hex))
	if live {
		style = style.Bold(true).Underline(true)
	}
	if selected {
		style = style.Bold(true)
	}
	return style
}
