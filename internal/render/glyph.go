// Package render draws flip clock frames as big terminal digits.
package render

import (
	"strings"

	"github.com/akyairhashvil/flipclock/internal/config"
)

const (
	fill  = "█"
	blank = " "
)

// patterns are GlyphRows x GlyphCols masks for the digits 0-9.
var patterns = [10][config.GlyphRows]string{
	{"###", "# #", "# #", "# #", "###"},
	{"  #", "  #", "  #", "  #", "  #"},
	{"###", "  #", "###", "#  ", "###"},
	{"###", "  #", "###", "  #", "###"},
	{"# #", "# #", "###", "  #", "  #"},
	{"###", "#  ", "###", "  #", "###"},
	{"###", "#  ", "###", "# #", "###"},
	{"###", "  #", "  #", "  #", "  #"},
	{"###", "# #", "###", "# #", "###"},
	{"###", "# #", "###", "  #", "###"},
}

// Glyph returns the rows of digit d with every column widened size times.
func Glyph(d, size int) []string {
	if d < 0 || d > 9 {
		d = 0
	}
	if size < 1 {
		size = 1
	}
	rows := make([]string, config.GlyphRows)
	for i, mask := range patterns[d] {
		var b strings.Builder
		for _, c := range mask {
			cell := blank
			if c == '#' {
				cell = fill
			}
			b.WriteString(strings.Repeat(cell, size))
		}
		rows[i] = b.String()
	}
	return rows
}

// GlyphWidth is the column width of one digit at size.
func GlyphWidth(size int) int {
	if size < 1 {
		size = 1
	}
	return config.GlyphCols * size
}
