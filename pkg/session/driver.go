package session

import (
	"context"
	"errors"
	"time"
)

// ErrFinished is returned when driving a session that already ended
var ErrFinished = errors.New("session already finished")

// InputFunc decides which directions are held for the next tick
type InputFunc func(Snapshot) Input

// Driver runs a session without a window, on its own cadence
type Driver struct {
	session  *Session
	interval time.Duration
	ticker   *Ticker
	input    InputFunc
}

// NewDriver creates a driver ticking every interval. input may be nil,
// in which case no direction is ever held.
func NewDriver(s *Session, interval time.Duration, clock Clock, input InputFunc) *Driver {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Driver{
		session:  s,
		interval: interval,
		ticker:   NewTicker(clock),
		input:    input,
	}
}

// Run ticks in real time until the player crashes or ctx is cancelled.
// A tick in progress always completes.
func (d *Driver) Run(ctx context.Context) (GameOver, error) {
	if !d.session.Running() {
		return GameOver{}, ErrFinished
	}
	t := time.NewTicker(d.interval)
	defer t.Stop()

	d.ticker.Reset()
	d.ticker.Delta()
	for {
		select {
		case <-ctx.Done():
			return GameOver{}, ctx.Err()
		case <-t.C:
			if over, ok := d.step(d.ticker.Delta()); ok {
				return over, nil
			}
		}
	}
}

// RunFixed ticks as fast as possible with a fixed delta, up to maxTicks
// (0 means no limit). It returns false when the tick budget ran out first.
func (d *Driver) RunFixed(ctx context.Context, dtMs float64, maxTicks int) (GameOver, bool, error) {
	if !d.session.Running() {
		return GameOver{}, false, ErrFinished
	}
	for i := 0; maxTicks <= 0 || i < maxTicks; i++ {
		if err := ctx.Err(); err != nil {
			return GameOver{}, false, err
		}
		if over, ok := d.step(dtMs); ok {
			return over, true, nil
		}
	}
	return GameOver{}, false, nil
}

func (d *Driver) step(dtMs float64) (GameOver, bool) {
	if d.input != nil {
		d.session.SetInput(d.input(d.session.Snapshot()))
	}
	return d.session.Tick(dtMs)
}
