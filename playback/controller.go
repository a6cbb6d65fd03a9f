package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/snapshot"
)

// Controller plays one trace at a time. It is safe for concurrent use.
type Controller struct {
	ts        timeSource
	log       *slog.Logger
	observers []Observer

	// notifyMu serializes delivery of mu.pending. It is never acquired while
	// mu is held.
	notifyMu sync.Mutex
	wg       sync.WaitGroup

	mu struct {
		sync.Mutex
		trace *snapshot.Trace
		index int
		state State
		speed time.Duration
		// run is the live driver while Playing, nil otherwise.
		run *driver
		// pending holds changes not yet handed to the observers, oldest first.
		pending []event
	}

	// tickedForTesting, when set, receives a value after each tick the
	// driver handles.
	tickedForTesting chan struct{}
}

// event is one observed change.
type event struct {
	status  Status
	current snapshot.Snapshot
}

// driver is one Play's worth of ticking.
type driver struct {
	ticker ticker
	done   chan struct{}
}

// New returns a Stopped controller with no trace.
func New(opts ...Option) *Controller {
	c := &Controller{
		ts:  defaultTimeSource{},
		log: logging.Discard(),
	}
	c.mu.speed = DefaultSpeed
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the trace and resets to Stopped at index 0, cancelling any
// pending tick of the previous trace.
func (c *Controller) Load(tr *snapshot.Trace) error {
	if tr == nil {
		return ErrEmptyTrace
	}
	c.mu.Lock()
	c.stopDriverLocked()
	c.mu.trace = tr
	c.mu.index = 0
	c.mu.state = Stopped
	c.log.Debug("trace loaded", "kind", tr.Kind(), "frames", tr.Len())
	c.notifyAndUnlock()
	return nil
}

// Play starts automatic stepping. From the last frame it restarts at 0. A
// single-frame trace has nothing to play and goes straight to Paused.
// Playing an already playing controller does nothing.
func (c *Controller) Play() error {
	c.mu.Lock()
	if c.mu.trace == nil {
		c.mu.Unlock()
		return ErrNoTrace
	}
	if c.mu.state == Playing {
		c.mu.Unlock()
		return nil
	}
	last := c.mu.trace.Len() - 1
	if c.mu.index == last {
		c.mu.index = 0
	}
	if last == 0 {
		c.mu.state = Paused
		c.notifyAndUnlock()
		return nil
	}
	c.mu.state = Playing
	d := &driver{ticker: c.ts.newTicker(c.mu.speed), done: make(chan struct{})}
	c.mu.run = d
	c.wg.Add(1)
	go c.drive(d)
	c.log.Debug("playing", "index", c.mu.index, "speed", c.mu.speed)
	c.notifyAndUnlock()
	return nil
}

// Pause stops automatic stepping and holds the current frame. A Stopped
// controller with a trace moves to Paused at its current index. It does
// nothing without a trace or when already paused.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.mu.trace == nil || c.mu.state == Paused {
		c.mu.Unlock()
		return
	}
	c.stopDriverLocked()
	c.mu.state = Paused
	c.notifyAndUnlock()
}

// StepForward pauses and moves one frame forward, staying on the last frame.
func (c *Controller) StepForward() error { return c.step(+1) }

// StepBackward pauses and moves one frame back, staying on the first frame.
func (c *Controller) StepBackward() error { return c.step(-1) }

func (c *Controller) step(delta int) error {
	c.mu.Lock()
	if c.mu.trace == nil {
		c.mu.Unlock()
		return ErrNoTrace
	}
	c.stopDriverLocked()
	c.mu.index = min(max(c.mu.index+delta, 0), c.mu.trace.Len()-1)
	c.mu.state = Paused
	c.notifyAndUnlock()
	return nil
}

// Reset pauses on the first frame.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if c.mu.trace == nil {
		c.mu.Unlock()
		return ErrNoTrace
	}
	c.stopDriverLocked()
	c.mu.index = 0
	c.mu.state = Paused
	c.notifyAndUnlock()
	return nil
}

// Stop cancels playback and returns to Stopped at index 0, keeping the trace.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopDriverLocked()
	c.mu.index = 0
	c.mu.state = Stopped
	c.notifyAndUnlock()
}

// SetSpeed changes the step interval. While playing the new interval applies
// from the next tick on; the tick in flight is neither dropped nor repeated.
func (c *Controller) SetSpeed(d time.Duration) error {
	if err := CheckSpeed(d); err != nil {
		return err
	}
	c.mu.Lock()
	c.mu.speed = d
	if c.mu.run != nil {
		c.mu.run.ticker.reset(d)
	}
	c.log.Debug("speed changed", "speed", d)
	c.notifyAndUnlock()
	return nil
}

// Speed returns the current step interval.
func (c *Controller) Speed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mu.speed
}

// Current returns the frame at the current index, or nil with no trace.
func (c *Controller) Current() snapshot.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked()
}

// Trace returns the loaded trace, or nil.
func (c *Controller) Trace() *snapshot.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mu.trace
}

// Status returns the current status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

// Close cancels playback and waits for the driver goroutine to exit. The
// controller stays usable.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.mu.state == Playing {
		c.mu.state = Paused
	}
	c.stopDriverLocked()
	c.mu.Unlock()
	c.wg.Wait()
}

func (c *Controller) drive(d *driver) {
	defer c.wg.Done()
	tickCh := d.ticker.ch()
	for {
		select {
		case <-d.done:
			return
		case <-tickCh:
			more := c.tick(d)
			if c.tickedForTesting != nil {
				c.tickedForTesting <- struct{}{}
			}
			if !more {
				return
			}
		}
	}
}

// tick advances the index by one on behalf of d. It reports whether d should
// keep running.
func (c *Controller) tick(d *driver) bool {
	c.mu.Lock()
	if c.mu.run != d {
		// Stale tick from a cancelled driver.
		c.mu.Unlock()
		return false
	}
	c.mu.index++
	more := true
	if c.mu.index >= c.mu.trace.Len()-1 {
		c.mu.index = c.mu.trace.Len() - 1
		c.mu.state = Paused
		c.stopDriverLocked()
		c.log.Debug("reached last frame", "index", c.mu.index)
		more = false
	}
	c.notifyAndUnlock()
	return more
}

func (c *Controller) stopDriverLocked() {
	if c.mu.run == nil {
		return
	}
	c.mu.run.ticker.stop()
	close(c.mu.run.done)
	c.mu.run = nil
}

func (c *Controller) currentLocked() snapshot.Snapshot {
	if c.mu.trace == nil {
		return nil
	}
	return c.mu.trace.At(c.mu.index)
}

func (c *Controller) statusLocked() Status {
	st := Status{State: c.mu.state, Index: c.mu.index, Speed: c.mu.speed}
	if c.mu.trace != nil {
		st.Len = c.mu.trace.Len()
	}
	return st
}

// notifyAndUnlock queues the current status, releases c.mu and delivers
// every queued event in order. Whoever holds notifyMu drains the queue, so an
// event may be delivered by a goroutine other than the one that queued it.
func (c *Controller) notifyAndUnlock() {
	if len(c.observers) == 0 {
		c.mu.Unlock()
		return
	}
	c.mu.pending = append(c.mu.pending, event{status: c.statusLocked(), current: c.currentLocked()})
	c.mu.Unlock()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	for {
		c.mu.Lock()
		batch := c.mu.pending
		c.mu.pending = nil
		c.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, ev := range batch {
			for _, fn := range c.observers {
				fn(ev.status, ev.current)
			}
		}
	}
}

// String implements fmt.Stringer.
func (c *Controller) String() string { return c.Status().String() }
