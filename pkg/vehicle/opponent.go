package vehicle

// Opponent is a traffic car heading down the track towards the player
type Opponent struct {
	Vehicle
	Speed  float64 // Pixels per reference frame, fixed at spawn
	Passed bool    // Latched once the car has gone past the player
}

// Advance moves the car down the track. frames is the elapsed time expressed
// in reference frames, bonus the global speed added to every car.
func (o *Opponent) Advance(frames, bonus float64) {
	o.Y += (o.Speed + bonus) * frames
}

// MarkPassed latches the passed flag. It returns true only on the first call.
func (o *Opponent) MarkPassed() bool {
	if o.Passed {
		return false
	}
	o.Passed = true
	return true
}
