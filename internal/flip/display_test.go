package flip

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/akyairhashvil/flipclock/internal/clock"
	"github.com/akyairhashvil/flipclock/internal/timesource"
)

var testStart = time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local)

const targetLayout = "2006-01-02 15:04:05"

func newTestDisplay(t *testing.T, showType string) (*Display, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(testStart)
	d := New(Options{Variant: VariantCard, ShowType: showType, Clock: fake})
	t.Cleanup(d.Close)
	return d, fake
}

func secondsOnes(f Frame) CellState {
	g := f.Groups[len(f.Groups)-1]
	return g.Cells[len(g.Cells)-1]
}

func TestDisplayInitialRenderHasNoTransition(t *testing.T) {
	d, _ := newTestDisplay(t, timesource.ShowCount)
	f := d.Snapshot()
	if f.Display != "00:00:00" {
		t.Fatalf("Display = %q", f.Display)
	}
	if f.Transitioning {
		t.Fatalf("first render must not animate")
	}
	if len(f.Groups) != 3 {
		t.Fatalf("expected three groups, got %d", len(f.Groups))
	}
}

func TestDisplayCounterTransitionsThenCommits(t *testing.T) {
	d, fake := newTestDisplay(t, timesource.ShowCount)

	fake.Advance(time.Second)
	f := d.Snapshot()
	if f.Display != "00:00:01" {
		t.Fatalf("Display = %q", f.Display)
	}
	ones := secondsOnes(f)
	if !ones.Transitioning || ones.Committed != 0 || ones.Reveal != 1 {
		t.Fatalf("unexpected seconds cell %+v", ones)
	}

	fake.Advance(450 * time.Millisecond)
	if p := secondsOnes(d.Snapshot()).Progress; p != 0.5 {
		t.Fatalf("progress = %v, want 0.5", p)
	}

	fake.Advance(450 * time.Millisecond)
	ones = secondsOnes(d.Snapshot())
	if ones.Transitioning || ones.Committed != 1 {
		t.Fatalf("expected committed 1, got %+v", ones)
	}
}

func TestDisplayCountdownCompletesOnce(t *testing.T) {
	var completions int32
	fake := clock.NewFake(testStart)
	target := testStart.Add(5 * time.Second).Format(targetLayout)
	d := New(Options{
		Variant:    VariantCubeV,
		ShowType:   target,
		Clock:      fake,
		OnComplete: func() { atomic.AddInt32(&completions, 1) },
	})
	defer d.Close()

	f := d.Snapshot()
	if !f.Countdown || f.Display != "00:00:05" {
		t.Fatalf("unexpected initial frame %q countdown=%v", f.Display, f.Countdown)
	}
	if secondsOnes(f).Limit != -9 {
		t.Fatalf("countdown digits must count down, limit %d", secondsOnes(f).Limit)
	}

	fake.Advance(5 * time.Second)
	if got := atomic.LoadInt32(&completions); got != 0 {
		t.Fatalf("completion fired before its delay: %d", got)
	}
	fake.Advance(time.Second)
	if got := atomic.LoadInt32(&completions); got != 1 {
		t.Fatalf("expected one completion after 6s, got %d", got)
	}
	fake.Advance(10 * time.Second)
	if got := atomic.LoadInt32(&completions); got != 1 {
		t.Fatalf("completion fired again: %d", got)
	}
	if !d.Snapshot().Completed {
		t.Fatalf("expected frame to report completion")
	}
}

func TestDisplayInvalidTargetNeverCompletes(t *testing.T) {
	var completions int32
	fake := clock.NewFake(testStart)
	d := New(Options{
		ShowType:   "2024/13/40",
		Clock:      fake,
		OnComplete: func() { atomic.AddInt32(&completions, 1) },
	})
	defer d.Close()
	fake.Advance(5 * time.Second)
	f := d.Snapshot()
	if f.Display != timesource.ZeroDisplay {
		t.Fatalf("Display = %q", f.Display)
	}
	if f.Countdown {
		t.Fatalf("invalid target must not be labelled as a countdown")
	}
	if completions != 0 {
		t.Fatalf("invalid target must not complete")
	}
}

func TestDisplayDropsDayGroup(t *testing.T) {
	target := testStart.Add(24*time.Hour + 2*time.Second).Format(targetLayout)
	d, fake := newTestDisplay(t, target)
	if got := d.Snapshot(); len(got.Groups) != 4 || got.Groups[0].Unit != timesource.UnitDays {
		t.Fatalf("expected a day group, got %+v", got.Groups)
	}
	fake.Advance(3 * time.Second)
	f := d.Snapshot()
	if f.Display != "23:59:59" {
		t.Fatalf("Display = %q", f.Display)
	}
	if len(f.Groups) != 3 {
		t.Fatalf("expected the day group to disappear, got %d groups", len(f.Groups))
	}
}

func TestDisplaySetShowTypeRestartsTick(t *testing.T) {
	d, fake := newTestDisplay(t, timesource.ShowCount)
	fake.Advance(3 * time.Second)
	if got := d.Snapshot().Display; got != "00:00:03" {
		t.Fatalf("Display = %q", got)
	}

	fake.Advance(400 * time.Millisecond)
	d.SetShowType(timesource.ShowCount)
	if got := d.Snapshot().Display; got != "00:00:00" {
		t.Fatalf("expected counter reset, got %q", got)
	}
	// the next tick is a full interval after the switch, not the old phase
	fake.Advance(700 * time.Millisecond)
	if got := d.Snapshot().Display; got != "00:00:00" {
		t.Fatalf("tick fired on the old schedule: %q", got)
	}
	fake.Advance(300 * time.Millisecond)
	if got := d.Snapshot().Display; got != "00:00:01" {
		t.Fatalf("Display = %q", got)
	}
	if d.Mode().Kind != timesource.ElapsedCounterKind {
		t.Fatalf("unexpected mode %+v", d.Mode())
	}
}

func TestDisplaySwitchCancelsPendingCompletion(t *testing.T) {
	var completions int32
	fake := clock.NewFake(testStart)
	d := New(Options{
		ShowType:   testStart.Add(-time.Hour).Format(targetLayout),
		Clock:      fake,
		OnComplete: func() { atomic.AddInt32(&completions, 1) },
	})
	defer d.Close()
	fake.Advance(500 * time.Millisecond)
	d.SetShowType(timesource.ShowDefault)
	fake.Advance(3 * time.Second)
	if completions != 0 {
		t.Fatalf("completion survived a mode switch")
	}
}

func TestDisplayCloseReleasesTimers(t *testing.T) {
	var changes int32
	fake := clock.NewFake(testStart)
	d := New(Options{
		Variant:  VariantCard,
		ShowType: timesource.ShowCount,
		Clock:    fake,
		OnChange: func() { atomic.AddInt32(&changes, 1) },
	})
	fake.Advance(time.Second)
	if fake.Pending() < 2 {
		t.Fatalf("expected tick and cell timers armed, got %d", fake.Pending())
	}
	d.Close()
	d.Close()
	if fake.Pending() != 0 {
		t.Fatalf("Close left %d timers armed", fake.Pending())
	}
	before := atomic.LoadInt32(&changes)
	fake.Advance(5 * time.Second)
	if atomic.LoadInt32(&changes) != before {
		t.Fatalf("callbacks ran after Close")
	}
}

func TestDisplayClampsDelay(t *testing.T) {
	d := New(Options{Delay: 3 * time.Second, Clock: clock.NewFake(testStart)})
	defer d.Close()
	if d.Delay() != time.Second {
		t.Fatalf("Delay = %v, want 1s", d.Delay())
	}
}

func TestDisplayDelayLimit(t *testing.T) {
	tests := []struct {
		name     string
		delay    time.Duration
		interval time.Duration
		want     time.Duration
	}{
		{"default", 0, 0, 900 * time.Millisecond},
		{"under interval", 300 * time.Millisecond, 500 * time.Millisecond, 300 * time.Millisecond},
		{"over interval", 800 * time.Millisecond, 500 * time.Millisecond, 500 * time.Millisecond},
		{"long interval", 2 * time.Second, 3 * time.Second, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(Options{Delay: tt.delay, Interval: tt.interval, Clock: clock.NewFake(testStart)})
			defer d.Close()
			if got := d.Delay(); got != tt.want {
				t.Fatalf("Delay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayCompletionWaitsOneInterval(t *testing.T) {
	var completions int32
	fake := clock.NewFake(testStart)
	d := New(Options{
		ShowType:   testStart.Add(2 * time.Second).Format(targetLayout),
		Interval:   500 * time.Millisecond,
		Delay:      400 * time.Millisecond,
		Clock:      fake,
		OnComplete: func() { atomic.AddInt32(&completions, 1) },
	})
	defer d.Close()

	// the 1.5s tick has under a second left and already shows zero
	fake.Advance(1500 * time.Millisecond)
	if got := d.Snapshot().Display; got != timesource.ZeroDisplay {
		t.Fatalf("Display = %q", got)
	}
	fake.Advance(400 * time.Millisecond)
	if got := atomic.LoadInt32(&completions); got != 0 {
		t.Fatalf("completion fired before one interval: %d", got)
	}
	fake.Advance(100 * time.Millisecond)
	if got := atomic.LoadInt32(&completions); got != 1 {
		t.Fatalf("expected one completion at +2s, got %d", got)
	}
}

func TestDisplaySetVariantAfterClose(t *testing.T) {
	var changes int32
	d := New(Options{
		Variant:  VariantCard,
		Clock:    clock.NewFake(testStart),
		OnChange: func() { atomic.AddInt32(&changes, 1) },
	})
	d.Close()
	d.SetVariant(VariantCubeH)
	d.SetShowType(timesource.ShowCount)
	if got := atomic.LoadInt32(&changes); got != 0 {
		t.Fatalf("OnChange ran %d times after Close", got)
	}
	if d.Variant() != VariantCard {
		t.Fatalf("variant changed after Close")
	}
}

func TestDisplaySetVariantKeepsState(t *testing.T) {
	d, fake := newTestDisplay(t, timesource.ShowCount)
	fake.Advance(time.Second)
	d.SetVariant(VariantCubeH)
	f := d.Snapshot()
	if f.Variant != VariantCubeH || d.Variant() != VariantCubeH {
		t.Fatalf("variant not applied")
	}
	if !secondsOnes(f).Transitioning {
		t.Fatalf("variant switch must not disturb a running transition")
	}
}

func TestDisplayCountdownRealClock(t *testing.T) {
	if testing.Short() {
		t.Skip("uses real time")
	}
	var completions int32
	target := time.Now().Add(5 * time.Second).Format(targetLayout)
	d := New(Options{
		ShowType:   target,
		OnComplete: func() { atomic.AddInt32(&completions, 1) },
	})
	defer d.Close()
	time.Sleep(6500 * time.Millisecond)
	if got := atomic.LoadInt32(&completions); got != 1 {
		t.Fatalf("expected exactly one completion, got %d", got)
	}
}
