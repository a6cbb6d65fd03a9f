package playback

import "time"

// timeSource abstracts time.NewTicker for testing.
type timeSource interface {
	newTicker(duration time.Duration) ticker
}

// ticker is an interface wrapping time.Ticker.
type ticker interface {
	reset(duration time.Duration)
	stop()
	ch() <-chan time.Time
}

// defaultTimeSource is a timeSource using the time package.
type defaultTimeSource struct{}

var _ timeSource = defaultTimeSource{}

func (defaultTimeSource) newTicker(duration time.Duration) ticker {
	return (*defaultTicker)(time.NewTicker(duration))
}

// defaultTicker uses time.Ticker.
type defaultTicker time.Ticker

var _ ticker = &defaultTicker{}

func (t *defaultTicker) reset(duration time.Duration) {
	(*time.Ticker)(t).Reset(duration)
}

func (t *defaultTicker) stop() {
	(*time.Ticker)(t).Stop()
}

func (t *defaultTicker) ch() <-chan time.Time {
	return (*time.Ticker)(t).C
}
