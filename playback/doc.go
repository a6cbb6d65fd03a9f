// Package playback turns a snapshot.Trace into a timed animation.
//
// A Controller is a small state machine over an index into the loaded trace:
//
//	Stopped(0) --Play--> Playing(i) --tick--> Playing(i+1) ... --> Paused(len-1)
//	Playing(i) --Pause--> Paused(i)
//	Stopped(0) --Pause--> Paused(0)
//	any        --StepForward/StepBackward--> Paused(i±1), clamped to [0, len-1]
//	any        --Reset--> Paused(0)
//	any        --Load--> Stopped(0)
//
// While playing, a single driver goroutine waits on a ticker whose period is
// the controller's speed. Pause, Stop, Load and Close cancel the driver under
// the controller's lock, and a tick only advances the index if it was
// delivered to the driver that is still current, so a late tick can never
// move the index of a trace that has since been replaced.
//
// The ticker comes from an injectable time source; tests substitute a manual
// one and deliver ticks by hand.
package playback
