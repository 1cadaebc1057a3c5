package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/flipclock/internal/database"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/render"
	"github.com/akyairhashvil/flipclock/internal/util"
)

// runPlain prints the display string once per change until ctx is done or
// a countdown completes. It serves piped output where a TUI cannot run.
func runPlain(ctx context.Context, w io.Writer, db database.Repository, opts resolved) error {
	changed := make(chan struct{}, 1)
	done := make(chan struct{})
	dopts := opts.display
	dopts.Variant = flip.VariantPlain
	dopts.OnChange = func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	dopts.OnComplete = func() { close(done) }

	d := flip.New(dopts)
	defer d.Close()

	last := ""
	emit := func() error {
		f := d.Snapshot()
		if f.Display == last {
			return nil
		}
		last = f.Display
		_, err := fmt.Fprintln(w, render.Plain(f))
		return err
	}
	if err := emit(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			if db != nil {
				_, err := db.RecordCompletion(ctx, d.Mode().Target, opts.preset, time.Now())
				util.LogError("record completion", err)
			}
			return nil
		case <-changed:
			if err := emit(); err != nil {
				return err
			}
		}
	}
}
