package timesource

import "time"

// Kind selects the formatting function used each tick.
type Kind int

const (
	WallClockKind Kind = iota
	ElapsedCounterKind
	CountdownKind
)

// Show type keywords.
const (
	ShowDefault = "default"
	ShowCount   = "count"
)

// Mode is a parsed show type.
type Mode struct {
	Kind   Kind
	Target string
}

// ParseShowType maps "default" (or empty) to the wall clock, "count" to the
// elapsed counter, and anything else to a countdown towards that string.
func ParseShowType(s string) Mode {
	switch s {
	case "", ShowDefault:
		return Mode{Kind: WallClockKind}
	case ShowCount:
		return Mode{Kind: ElapsedCounterKind}
	default:
		return Mode{Kind: CountdownKind, Target: s}
	}
}

// String returns the show type keyword or target.
func (m Mode) String() string {
	switch m.Kind {
	case ElapsedCounterKind:
		return ShowCount
	case CountdownKind:
		return m.Target
	default:
		return ShowDefault
	}
}

// ValidCountdown reports whether m counts down to a parseable target.
func (m Mode) ValidCountdown() bool {
	return m.Kind == CountdownKind && IsValidTime(m.Target)
}

// Source produces the display string for one mode.
type Source struct {
	mode   Mode
	start  time.Time
	target time.Time
	valid  bool
}

// NewSource builds a Source. start anchors the elapsed counter.
func NewSource(mode Mode, start time.Time) *Source {
	s := &Source{mode: mode, start: start}
	if mode.Kind == CountdownKind {
		if t, err := ParseTarget(mode.Target); err == nil {
			s.target, s.valid = t, true
		}
	}
	return s
}

func (s *Source) Mode() Mode { return s.mode }

func (s *Source) Start() time.Time { return s.start }

// Target returns the parsed countdown target and whether it is valid.
func (s *Source) Target() (time.Time, bool) { return s.target, s.valid }

// Reset re-anchors the elapsed counter.
func (s *Source) Reset(start time.Time) { s.start = start }

// Display formats the value for now.
func (s *Source) Display(now time.Time) string {
	switch s.mode.Kind {
	case ElapsedCounterKind:
		return CountTime(int64(now.Sub(s.start) / time.Second))
	case CountdownKind:
		if !s.valid {
			return ZeroDisplay
		}
		return remaining(s.target, now)
	default:
		return WallClock(now)
	}
}

// Expired reports whether a valid countdown has reached zero.
func (s *Source) Expired(now time.Time) bool {
	return s.valid && s.Display(now) == ZeroDisplay
}
