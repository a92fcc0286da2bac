package model

import "math"

const (
	// DashRate is how far the lane dashes scroll per millisecond
	DashRate = 0.08
	// DashWrap keeps the dash offset bounded
	DashWrap = 40000.0
	// PulsePeriodMs is the headlight pulse period
	PulsePeriodMs = 1200.0
)

// Cosmetics animates purely visual effects. It never touches the simulation.
type Cosmetics struct {
	DashOffset float64
	ElapsedMs  float64
}

// Advance moves the animations forward by dtMs
func (c *Cosmetics) Advance(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	c.DashOffset = math.Mod(c.DashOffset+dtMs*DashRate, DashWrap)
	c.ElapsedMs += dtMs
}

// Pulse returns the headlight brightness in [0.2, 1.0]
func (c *Cosmetics) Pulse() float64 {
	return 0.6 + 0.4*math.Sin(2*math.Pi*c.ElapsedMs/PulsePeriodMs)
}

// DashPhase returns the dash scroll within one dash cycle of length period
func (c *Cosmetics) DashPhase(period float64) float64 {
	if period <= 0 {
		return 0
	}
	return math.Mod(c.DashOffset, period)
}
