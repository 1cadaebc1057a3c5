package tui

import (
	"github.com/akyairhashvil/flipclock/internal/render"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Digit     lipgloss.Style
	Separator lipgloss.Style
	Label     lipgloss.Style
	Input     lipgloss.Style
	Message   lipgloss.Style
	Error     lipgloss.Style
	Dim       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Digit:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                            // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Digit:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),           // White
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),           // Pink
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),           // Purple
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeByName returns the named theme, falling back to default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// clockStyles adapts the theme to the frame renderer.
func (t Theme) clockStyles() render.Styles {
	return render.Styles{
		Digit:     t.Digit,
		Separator: t.Separator,
		Label:     t.Label,
		Box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
	}
}
