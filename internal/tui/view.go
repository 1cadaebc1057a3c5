package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/render"
	"github.com/akyairhashvil/flipclock/internal/timesource"
	"github.com/akyairhashvil/flipclock/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const historyLayout = "2006-01-02 15:04:05"

func (m Model) View() string {
	f := m.display.Snapshot()

	var sections []string
	sections = append(sections, m.renderHeader(f))
	sections = append(sections, m.renderClock(f))
	if bar := m.renderProgress(f); bar != "" {
		sections = append(sections, bar)
	}
	if m.showHistory {
		sections = append(sections, m.renderHistory())
	}
	if m.mode != inputNone {
		sections = append(sections, m.theme.Input.Render(m.input.View()))
	}
	if m.err != nil {
		sections = append(sections, m.theme.Error.Render(m.err.Error()))
	} else if m.Message != "" {
		sections = append(sections, m.theme.Message.Render(m.Message))
	}
	sections = append(sections, m.help.View(m.keys))
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader(f flip.Frame) string {
	mode := "clock"
	switch f.Mode.Kind {
	case timesource.ElapsedCounterKind:
		mode = "counter"
	case timesource.CountdownKind:
		mode = "countdown to " + f.Mode.Target
		if m.activePreset != "" {
			mode = fmt.Sprintf("%s (%s)", mode, m.activePreset)
		}
	}
	header := fmt.Sprintf("%s v%s · %s · %s", config.AppName, AppVersion, mode, f.Variant)
	if m.width > 0 {
		header = ansi.Truncate(header, m.width-4, "…")
	}
	return m.theme.Header.Render(header)
}

// renderClock draws big digits, or the one-line form when the terminal is
// too narrow for them.
func (m Model) renderClock(f flip.Frame) string {
	big := render.Frame(f, m.theme.clockStyles())
	if m.width > 0 && (m.width < config.CompactModeThreshold || render.Width(big) > m.width-4) {
		return m.theme.Digit.Render(render.Plain(f))
	}
	return big
}

// renderHistory lists the most recent finished countdowns.
func (m Model) renderHistory() string {
	lines := []string{m.theme.Label.Render("Recent countdowns")}
	if len(m.history) == 0 {
		lines = append(lines, m.theme.Dim.Render("No finished countdowns yet"))
	}
	for _, c := range m.history {
		line := fmt.Sprintf("%s  %s", c.CompletedAt.Local().Format(historyLayout), c.Target)
		if c.Preset != "" {
			line += fmt.Sprintf(" (%s)", c.Preset)
		}
		lines = append(lines, m.theme.Dim.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderProgress shows how much of a countdown has elapsed since it started.
func (m Model) renderProgress(f flip.Frame) string {
	if !f.Countdown {
		return ""
	}
	total := f.Target.Sub(f.Start)
	pct := 1.0
	if total > 0 {
		pct = float64(f.Now.Sub(f.Start)) / float64(total)
	}
	bar := m.progress.ViewAs(util.Clamp(pct, 0, 1))
	if f.Completed {
		return strings.TrimSpace(bar) + " " + m.theme.Dim.Render("done")
	}
	return bar
}
