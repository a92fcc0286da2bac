package traffic

// Difficulty tracks the escalating challenge over a session
type Difficulty struct {
	Level           int     // Starts at 1, never decreases
	SpeedBonus      float64 // Added to every car's speed
	SpawnIntervalMs float64 // Time between spawns, never below the floor
	TimerMs         float64 // Time since the last escalation

	params Params
}

func newDifficulty(p Params) Difficulty {
	return Difficulty{
		Level:           1,
		SpawnIntervalMs: p.SpawnIntervalMs,
		params:          p,
	}
}

// advance accumulates dt and escalates at most once.
// It returns true when the level went up.
func (d *Difficulty) advance(dtMs float64) bool {
	d.TimerMs += dtMs
	if d.TimerMs < d.params.DifficultyPeriodMs {
		return false
	}
	d.TimerMs = 0
	d.Level++
	d.SpeedBonus += d.params.SpeedBonusStep
	d.SpawnIntervalMs = max(d.params.MinSpawnIntervalMs, d.SpawnIntervalMs-d.params.SpawnIntervalStepMs)
	return true
}

// Factor maps the current difficulty onto a score multiplier
func (d Difficulty) Factor() float64 {
	return 1.0 + d.SpeedBonus/4.0 + float64(d.Level-1)*0.1
}
