package session

import "time"

// Clock reads the current time. time.Now carries a monotonic reading,
// so deltas between two calls are immune to wall-clock jumps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the process clock
var SystemClock Clock = systemClock{}

// Ticker turns successive clock readings into clamped tick deltas.
// The first call after creation or Reset yields 0.
type Ticker struct {
	clock   Clock
	last    time.Time
	started bool
}

// NewTicker creates a ticker on the given clock; nil means SystemClock
func NewTicker(clock Clock) *Ticker {
	if clock == nil {
		clock = SystemClock
	}
	return &Ticker{clock: clock}
}

// Delta returns the milliseconds since the previous call, clamped to [0, MaxDeltaMs]
func (t *Ticker) Delta() float64 {
	now := t.clock.Now()
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}
	dt := float64(now.Sub(t.last)) / float64(time.Millisecond)
	t.last = now
	return ClampDelta(dt)
}

// Reset forgets the previous reading, e.g. after a pause
func (t *Ticker) Reset() {
	t.started = false
}
