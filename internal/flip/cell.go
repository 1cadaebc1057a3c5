package flip

import (
	"time"

	"github.com/akyairhashvil/flipclock/internal/util"
)

// Cell holds one displayed digit. The committed value changes only when a
// transition ends, never directly on an upstream update.
type Cell struct {
	committed     int
	upstream      int
	limit         int
	transitioning bool
	started       time.Time
}

// CellState is an immutable view of a Cell for rendering.
type CellState struct {
	Committed     int
	Reveal        int
	Upstream      int
	Limit         int
	Transitioning bool
	Progress      float64
}

// NewCell returns an idle cell showing initial. No transition plays for the
// first value.
func NewCell(initial, limit int) *Cell {
	return &Cell{committed: initial, upstream: initial, limit: limit}
}

// Observe records the latest upstream value. It returns true when the cell
// leaves the idle state, meaning the caller must arm the transition timer.
// While a transition is running the value is only remembered.
func (c *Cell) Observe(v int, now time.Time) bool {
	c.upstream = v
	if c.transitioning || v == c.committed {
		return false
	}
	c.transitioning = true
	c.started = now
	return true
}

// Commit ends the transition with the latest upstream value.
func (c *Cell) Commit() {
	c.committed = c.upstream
	c.transitioning = false
	c.started = time.Time{}
}

// SetLimit changes the wrap bound, e.g. when the clock mode changes.
func (c *Cell) SetLimit(limit int) { c.limit = limit }

func (c *Cell) Committed() int { return c.committed }

func (c *Cell) Transitioning() bool { return c.transitioning }

// Reveal is the digit uncovered by the animation: the committed value
// stepped once in the direction of the limit, wrapping at |limit|.
func (c *Cell) Reveal() int {
	return reveal(c.committed, c.limit)
}

func reveal(t, limit int) int {
	switch {
	case limit > 0:
		if t >= limit {
			return 0
		}
		return t + 1
	case limit < 0:
		if t <= 0 {
			return -limit
		}
		return t - 1
	default:
		return t
	}
}

// Progress returns the elapsed fraction of the running transition.
func (c *Cell) Progress(now time.Time, delay time.Duration) float64 {
	if !c.transitioning || delay <= 0 {
		return 0
	}
	return util.Clamp(float64(now.Sub(c.started))/float64(delay), 0, 1)
}

// State snapshots the cell at now.
func (c *Cell) State(now time.Time, delay time.Duration) CellState {
	return CellState{
		Committed:     c.committed,
		Reveal:        c.Reveal(),
		Upstream:      c.upstream,
		Limit:         c.limit,
		Transitioning: c.transitioning,
		Progress:      c.Progress(now, delay),
	}
}
