package playback

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/algoviz/snapshot"
)

// Observer is called after every change of status with the status and the
// current frame (nil when no trace is loaded). Calls arrive one at a time in
// the order the changes were made, on a goroutine that changed the controller
// (the driver for automatic steps). Observers may read the Controller but
// must not call its mutating methods, and a slow observer delays every
// goroutine waiting to deliver.
type Observer func(Status, snapshot.Snapshot)

// Option customizes a Controller.
type Option func(*Controller)

// WithSpeed sets the initial speed. Panics if d is outside [MinSpeed, MaxSpeed].
func WithSpeed(d time.Duration) Option {
	if err := CheckSpeed(d); err != nil {
		panic(err)
	}
	return func(c *Controller) { c.mu.speed = d }
}

// WithObserver registers fn to be told about every status change.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("playback: WithObserver(nil)")
	}
	return func(c *Controller) { c.observers = append(c.observers, fn) }
}

// WithLogger routes debug logging to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("playback: WithLogger(nil)")
	}
	return func(c *Controller) { c.log = l }
}

func withTimeSource(ts timeSource) Option {
	return func(c *Controller) { c.ts = ts }
}
