package flip

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/akyairhashvil/flipclock/internal/clock"
	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/timesource"
)

// Options configures a Display. Zero values pick the defaults from config.
type Options struct {
	Variant  Variant
	ShowType string
	Size     int
	Delay    time.Duration
	Interval time.Duration
	Clock    clock.Clock

	// Background and Border are passed through to the renderer untouched.
	Background string
	Border     string

	// OnChange runs after every tick and every committed transition.
	OnChange func()
	// OnComplete runs once, one Interval after a countdown has reached zero.
	OnComplete func()
}

// Frame is a point-in-time view of a Display.
type Frame struct {
	Display       string
	Mode          timesource.Mode
	Variant       Variant
	Size          int
	Background    string
	Border        string
	Countdown     bool
	Groups        []FrameGroup
	Transitioning bool
	Completed     bool
	Start         time.Time
	Target        time.Time
	Now           time.Time
}

// FrameGroup is one field of the display with its cell states.
type FrameGroup struct {
	Unit  string
	Cells []CellState
}

type slot struct {
	cell  *Cell
	timer clock.Timer
}

// Display owns one time source tick and a transition timer per cell.
// Timer callbacks are serialised by mu; user callbacks run outside it.
type Display struct {
	mu       sync.Mutex
	clk      clock.Clock
	opts     Options
	source   *timesource.Source
	display  string
	layout   timesource.Layout
	slots    map[string]*slot
	keys     [][]string
	tick     clock.Timer
	nextTick time.Time
	done     clock.Timer
	complete bool
	epoch    uint64
	closed   bool
}

// New builds a Display, renders the first value without transitions and
// starts the tick.
func New(opts Options) *Display {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Interval <= 0 {
		opts.Interval = config.TickInterval
	}
	if opts.Delay <= 0 {
		opts.Delay = config.TransitionDelay
	}
	if limit := min(opts.Interval, config.MaxTransitionDelay); opts.Delay > limit {
		log.Printf("flip: transition delay %v exceeds %v, clamping", opts.Delay, limit)
		opts.Delay = limit
	}
	if opts.Size <= 0 {
		opts.Size = config.DefaultSize
	}
	if opts.Variant == "" {
		opts.Variant = VariantPlain
	}
	d := &Display{
		clk:   opts.Clock,
		opts:  opts,
		slots: make(map[string]*slot),
	}
	d.mu.Lock()
	d.restartLocked(opts.ShowType)
	d.mu.Unlock()
	return d
}

// SetShowType switches the clock mode or countdown target. The tick timer
// and any pending completion are cancelled and restarted from now. Cells in
// positions that survive the switch animate to their new digits.
func (d *Display) SetShowType(showType string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.restartLocked(showType)
	d.mu.Unlock()
	d.notify(d.opts.OnChange)
}

// SetVariant changes the transition style. Timers are not affected.
func (d *Display) SetVariant(v Variant) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.opts.Variant = v
	d.mu.Unlock()
	d.notify(d.opts.OnChange)
}

// Variant returns the current transition style.
func (d *Display) Variant() Variant {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opts.Variant
}

// Mode returns the current clock mode.
func (d *Display) Mode() timesource.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source.Mode()
}

// Delay returns the effective transition delay.
func (d *Display) Delay() time.Duration {
	return d.opts.Delay
}

// Close releases the tick timer, the completion timer and every cell timer.
// Callbacks that were already in flight become no-ops.
func (d *Display) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	d.stopTickLocked()
	for _, s := range d.slots {
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
	}
}

// Snapshot returns the current frame.
func (d *Display) Snapshot() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.clk.Now()
	f := Frame{
		Display:    d.display,
		Mode:       d.source.Mode(),
		Variant:    d.opts.Variant,
		Size:       d.opts.Size,
		Background: d.opts.Background,
		Border:     d.opts.Border,
		Countdown:  d.source.Mode().ValidCountdown(),
		Completed:  d.complete,
		Start:      d.source.Start(),
		Now:        now,
	}
	f.Target, _ = d.source.Target()
	for gi, g := range d.layout.Groups {
		fg := FrameGroup{Unit: g.Unit}
		for _, key := range d.keys[gi] {
			st := d.slots[key].cell.State(now, d.opts.Delay)
			if st.Transitioning {
				f.Transitioning = true
			}
			fg.Cells = append(fg.Cells, st)
		}
		f.Groups = append(f.Groups, fg)
	}
	return f
}

func (d *Display) restartLocked(showType string) {
	d.stopTickLocked()
	d.epoch++
	d.complete = false
	now := d.clk.Now()
	d.source = timesource.NewSource(timesource.ParseShowType(showType), now)
	d.updateLocked(now)
	d.nextTick = now.Add(d.opts.Interval)
	d.armTickLocked(now)
}

func (d *Display) stopTickLocked() {
	if d.tick != nil {
		d.tick.Stop()
		d.tick = nil
	}
	if d.done != nil {
		d.done.Stop()
		d.done = nil
	}
}

func (d *Display) armTickLocked(now time.Time) {
	epoch := d.epoch
	wait := d.nextTick.Sub(now)
	if wait < 0 {
		wait = 0
	}
	d.tick = d.clk.AfterFunc(wait, func() { d.onTick(epoch) })
}

func (d *Display) onTick(epoch uint64) {
	d.mu.Lock()
	if d.closed || epoch != d.epoch {
		d.mu.Unlock()
		return
	}
	now := d.clk.Now()
	d.updateLocked(now)
	for !d.nextTick.After(now) {
		d.nextTick = d.nextTick.Add(d.opts.Interval)
	}
	d.armTickLocked(now)
	d.mu.Unlock()
	d.notify(d.opts.OnChange)
}

// updateLocked recomputes the display and routes each digit to its cell.
func (d *Display) updateLocked(now time.Time) {
	d.display = d.source.Display(now)
	d.layout = timesource.Split(d.display, d.source.Mode().ValidCountdown())

	live := make(map[string]bool, d.layout.Width())
	d.keys = d.keys[:0]
	for _, g := range d.layout.Groups {
		keys := make([]string, 0, len(g.Digits))
		for i, digit := range g.Digits {
			key := g.Unit + strconv.Itoa(len(g.Digits)-1-i)
			keys = append(keys, key)
			live[key] = true
			s, ok := d.slots[key]
			if !ok {
				d.slots[key] = &slot{cell: NewCell(digit.Value, digit.Limit)}
				continue
			}
			s.cell.SetLimit(digit.Limit)
			if s.cell.Observe(digit.Value, now) {
				d.armCellLocked(key, s)
			}
		}
		d.keys = append(d.keys, keys)
	}
	for key, s := range d.slots {
		if live[key] {
			continue
		}
		if s.timer != nil {
			s.timer.Stop()
		}
		delete(d.slots, key)
	}

	if !d.complete && d.done == nil && d.source.Expired(now) {
		epoch := d.epoch
		d.done = d.clk.AfterFunc(d.opts.Interval, func() { d.onComplete(epoch) })
	}
}

func (d *Display) armCellLocked(key string, s *slot) {
	s.timer = d.clk.AfterFunc(d.opts.Delay, func() { d.onCellDone(key, s) })
}

// onCellDone commits whatever the latest upstream value is. A cell that was
// removed in the meantime is ignored.
func (d *Display) onCellDone(key string, s *slot) {
	d.mu.Lock()
	if d.closed || d.slots[key] != s {
		d.mu.Unlock()
		return
	}
	s.cell.Commit()
	s.timer = nil
	d.mu.Unlock()
	d.notify(d.opts.OnChange)
}

func (d *Display) onComplete(epoch uint64) {
	d.mu.Lock()
	if d.closed || epoch != d.epoch || d.complete {
		d.mu.Unlock()
		return
	}
	d.complete = true
	d.done = nil
	d.mu.Unlock()
	d.notify(d.opts.OnComplete)
	d.notify(d.opts.OnChange)
}

func (d *Display) notify(fn func()) {
	if fn != nil {
		fn()
	}
}
