// Package score turns survival time and overtakes into points.
package score

import "math"

const (
	// BucketMs is the length of one time-based reward period
	BucketMs = 100.0
	// PassBonus is awarded for every car the player gets past
	PassBonus = 5
)

// Engine accrues the score for one session. The zero value is ready to use.
type Engine struct {
	total         int
	accumulatorMs float64
}

// MaxStepMs bounds the time a single Update can award
const MaxStepMs = 60_000.0

// Update awards points for elapsed time. Every full 100ms bucket is worth
// round(factor) points, and never less than one. Negative and NaN steps are
// ignored and steps longer than MaxStepMs are cut to it.
func (e *Engine) Update(dtMs, factor float64) {
	if dtMs > 0 {
		e.accumulatorMs += min(dtMs, MaxStepMs)
	}
	per := 1
	if r := math.Round(factor); r > 1 && r <= math.MaxInt32 {
		per = int(r)
	}
	for e.accumulatorMs >= BucketMs {
		e.accumulatorMs -= BucketMs
		e.total += per
	}
}

// AddPoints adds n points; negative amounts are ignored
func (e *Engine) AddPoints(n int) {
	e.total += max(0, n)
}

// Total returns the current score
func (e *Engine) Total() int {
	return e.total
}

// Pending returns the time accumulated towards the next bucket
func (e *Engine) Pending() float64 {
	return e.accumulatorMs
}
