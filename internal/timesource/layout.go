package timesource

import "strings"

// Units label each group of a countdown display.
const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	UnitSeconds = "s"
)

// Digit is one character position with its signed wrap limit. A positive
// limit counts up, a negative one counts down.
type Digit struct {
	Value int
	Limit int
}

// Group is one colon-delimited field of the display string.
type Group struct {
	Unit   string
	Digits []Digit
}

// Layout is a display string split into digit groups.
type Layout struct {
	Groups []Group
}

// Split breaks display into groups and assigns each digit its wrap limit.
// countdown flips every limit negative.
func Split(display string, countdown bool) Layout {
	parts := strings.Split(display, ":")
	if len(parts) < 3 {
		parts = strings.Split(ZeroDisplay, ":")
	}
	n := len(parts)
	units := []string{UnitHours, UnitMinutes, UnitSeconds}
	var layout Layout
	if n > 3 {
		layout.Groups = append(layout.Groups, group(UnitDays, parts[n-4], countdown))
	}
	for i, unit := range units {
		layout.Groups = append(layout.Groups, group(unit, parts[n-3+i], countdown))
	}
	return layout
}

func group(unit, field string, countdown bool) Group {
	g := Group{Unit: unit}
	width := len(field)
	for i, r := range field {
		v := int(r - '0')
		if v < 0 || v > 9 {
			v = 0
		}
		limit := limitFor(unit, width-1-i)
		if countdown {
			limit = -limit
		}
		g.Digits = append(g.Digits, Digit{Value: v, Limit: limit})
	}
	return g
}

// limitFor returns the count-up wrap bound for the digit at pos, counted
// from the right of its field.
func limitFor(unit string, pos int) int {
	if pos != 1 {
		return 9
	}
	switch unit {
	case UnitHours:
		return 2
	case UnitMinutes, UnitSeconds:
		return 5
	default:
		return 9
	}
}

// Width returns the number of digits in the layout.
func (l Layout) Width() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Digits)
	}
	return n
}
