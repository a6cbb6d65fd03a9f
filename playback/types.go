package playback

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algoviz/core"
)

// Speed bounds. The speed is the interval between two automatic steps.
const (
	MinSpeed     = 100 * time.Millisecond
	MaxSpeed     = 900 * time.Millisecond
	DefaultSpeed = 500 * time.Millisecond
)

// State is the controller's play state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status is a consistent view of the controller at one instant.
type Status struct {
	State State
	// Index of the current frame; 0 when no trace is loaded.
	Index int
	// Len is the number of frames in the loaded trace.
	Len   int
	Speed time.Duration
}

// IsPlaying reports whether the driver is advancing the index.
func (s Status) IsPlaying() bool { return s.State == Playing }

// AtEnd reports whether the current frame is the last one.
func (s Status) AtEnd() bool { return s.Len > 0 && s.Index == s.Len-1 }

func (s Status) String() string {
	return fmt.Sprintf("%s %d/%d", s.State, s.Index, s.Len)
}

var (
	// ErrNoTrace is returned by operations that need a loaded trace.
	ErrNoTrace = errors.New("playback: no trace loaded")
	// ErrEmptyTrace indicates Load(nil).
	ErrEmptyTrace = core.Invalid(errors.New("playback: nil trace"))
	// ErrSpeedOutOfRange indicates a speed outside [MinSpeed, MaxSpeed].
	ErrSpeedOutOfRange = core.Invalid(errors.New("playback: speed out of range"))
)

// CheckSpeed validates d against the speed bounds.
func CheckSpeed(d time.Duration) error {
	if d < MinSpeed || d > MaxSpeed {
		return errors.Wrapf(ErrSpeedOutOfRange, "%s not in [%s, %s]", d, MinSpeed, MaxSpeed)
	}
	return nil
}
