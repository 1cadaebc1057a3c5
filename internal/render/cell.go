package render

import (
	"math"
	"strings"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/flip"
)

const hinge = "─"

// Cell draws one digit cell for the given variant. Idle cells and the plain
// variant always show the committed digit.
func Cell(st flip.CellState, v flip.Variant, size int) []string {
	current := Glyph(st.Committed, size)
	if !st.Transitioning || !v.Animated() {
		return current
	}
	next := Glyph(st.Reveal, size)
	switch v {
	case flip.VariantCard:
		return card(current, next, st.Progress, size)
	case flip.VariantCubeV:
		return cubeV(current, next, st.Progress)
	case flip.VariantCubeH:
		return cubeH(current, next, st.Progress, size)
	default:
		return current
	}
}

// card shows the next digit's top half straight away. The falling flap
// covers the hinge row mid-flip and uncovers the bottom half past 50%.
func card(current, next []string, p float64, size int) []string {
	mid := config.GlyphRows / 2
	rows := make([]string, config.GlyphRows)
	for i := range rows {
		switch {
		case i < mid:
			rows[i] = next[i]
		case i == mid && p >= 0.25 && p < 0.75:
			rows[i] = strings.Repeat(hinge, GlyphWidth(size))
		case p < 0.5:
			rows[i] = current[i]
		default:
			rows[i] = next[i]
		}
	}
	return rows
}

// cubeV rolls the next digit down from above.
func cubeV(current, next []string, p float64) []string {
	h := len(current)
	offset := int(math.Round(p * float64(h)))
	stack := append(append([]string{}, next...), current...)
	return stack[h-offset : 2*h-offset]
}

// cubeH rolls the next digit in from the left.
func cubeH(current, next []string, p float64, size int) []string {
	w := GlyphWidth(size)
	offset := int(math.Round(p * float64(w)))
	rows := make([]string, len(current))
	for i := range current {
		line := []rune(next[i] + current[i])
		rows[i] = string(line[w-offset : 2*w-offset])
	}
	return rows
}
