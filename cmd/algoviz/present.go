package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/internal/render"
	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/snapshot"
)

var errNotInteger = core.Invalid(errors.New("algoviz: not an integer"))

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrapf(errNotInteger, "%q", s)
		}
		out[i] = v
	}
	return out, nil
}

// present shows one outcome in the configured way, then its summary.
func (a *app) present(ctx context.Context, out *engine.Outcome) error {
	tr := out.Trace
	if strings.EqualFold(a.cfg.Render.Format, "yaml") {
		// Several outcomes can share one stream.
		if _, err := fmt.Fprintln(a.out, "---"); err != nil {
			return err
		}
		return render.YAML(a.out, tr)
	}

	var err error
	switch {
	case a.flags.steps:
		err = a.rr.Steps(a.out, tr)
	case a.flags.frames:
		for i, s := range tr.Frames() {
			if err = a.rr.Frame(a.out, i, tr.Len(), s); err != nil {
				break
			}
		}
	default:
		err = a.animate(ctx, tr)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Result: %s\n", out.Summary)
	return err
}

// animate plays tr through a playback.Controller at the configured speed and
// returns once the last frame is shown or ctx is done.
func (a *app) animate(ctx context.Context, tr *snapshot.Trace) error {
	var (
		mu       sync.Mutex
		shown    = -1
		writeErr error
		done     = make(chan struct{})
		once     sync.Once
	)
	observe := func(st playback.Status, cur snapshot.Snapshot) {
		if cur == nil || st.State == playback.Stopped {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if st.Index != shown && writeErr == nil {
			shown = st.Index
			writeErr = a.rr.Frame(a.out, st.Index, st.Len, cur)
		}
		if (st.State == playback.Paused && st.AtEnd()) || writeErr != nil {
			once.Do(func() { close(done) })
		}
	}

	ctrl := playback.New(
		playback.WithSpeed(a.cfg.Playback.Speed()),
		playback.WithLogger(a.log),
		playback.WithObserver(observe),
	)
	defer ctrl.Close()

	if err := ctrl.Load(tr); err != nil {
		return err
	}
	if err := ctrl.Play(); err != nil {
		return err
	}
	select {
	case <-done:
	case <-ctx.Done():
		ctrl.Stop()
		return ctx.Err()
	}
	mu.Lock()
	defer mu.Unlock()
	return writeErr
}
