package render

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Styles colour the parts of a frame.
type Styles struct {
	Digit     lipgloss.Style
	Separator lipgloss.Style
	Label     lipgloss.Style
	Box       lipgloss.Style
}

// DefaultStyles is an uncoloured style set.
func DefaultStyles() Styles {
	return Styles{
		Digit:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		Label:     lipgloss.NewStyle(),
		Box:       lipgloss.NewStyle(),
	}
}

// withFrameColors applies the per-display colour overrides.
func (s Styles) withFrameColors(f flip.Frame) Styles {
	if f.Background != "" {
		s.Digit = s.Digit.Background(lipgloss.Color(f.Background))
	}
	if f.Border != "" {
		s.Box = s.Box.BorderForeground(lipgloss.Color(f.Border))
	}
	return s
}

// Frame draws every group of f with big glyphs. Clock and counter groups are
// separated by colons; countdown groups are followed by their unit label.
func Frame(f flip.Frame, s Styles) string {
	s = s.withFrameColors(f)
	var parts []string
	for gi, g := range f.Groups {
		for ci, st := range g.Cells {
			if ci > 0 {
				parts = append(parts, gap(config.DigitGap))
			}
			parts = append(parts, s.Digit.Render(strings.Join(Cell(st, f.Variant, f.Size), "\n")))
		}
		switch {
		case f.Countdown:
			parts = append(parts, s.Label.Render(label(g.Unit)))
		case gi < len(f.Groups)-1:
			parts = append(parts, s.Separator.Render(colon()))
		}
	}
	return s.Box.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// Plain renders f on one line, for narrow terminals and piped output.
func Plain(f flip.Frame) string {
	if !f.Countdown {
		return f.Display
	}
	fields := strings.Split(f.Display, ":")
	units := []string{"h", "m", "s"}
	if len(fields) == 4 {
		units = append([]string{"d"}, units...)
	}
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString(" ")
		}
		if i < len(units) {
			fmt.Fprintf(&b, "%s%s", field, units[i])
		}
	}
	return b.String()
}

// Width returns the printed width of the widest line of a rendered frame.
func Width(rendered string) int {
	w := 0
	for _, line := range strings.Split(rendered, "\n") {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

func gap(n int) string {
	col := strings.Repeat(" ", n)
	rows := make([]string, config.GlyphRows)
	for i := range rows {
		rows[i] = col
	}
	return strings.Join(rows, "\n")
}

func colon() string {
	rows := make([]string, config.GlyphRows)
	for i := range rows {
		rows[i] = "   "
	}
	rows[1] = " ▪ "
	rows[3] = " ▪ "
	return strings.Join(rows, "\n")
}

func label(unit string) string {
	rows := make([]string, config.GlyphRows)
	for i := range rows {
		rows[i] = "  "
	}
	rows[len(rows)-1] = " " + unit
	return strings.Join(rows, "\n")
}
