package traffic

import "fmt"

// Params tunes traffic density, speed and the difficulty ramp.
// Times are in milliseconds, speeds in pixels per reference frame.
type Params struct {
	BaseSpeed           float64 // Speed every spawned car starts from
	SpeedJitter         float64 // Upper bound of the random speed added at spawn
	ReferenceFrameMs    float64 // Frame duration the speeds are expressed against
	SpawnIntervalMs     float64 // Initial time between spawns
	MinSpawnIntervalMs  float64 // Spawn interval floor
	SpawnIntervalStepMs float64 // Interval reduction per difficulty level
	DifficultyPeriodMs  float64 // Time between difficulty escalations
	SpeedBonusStep      float64 // Global speed added per difficulty level
	BaseWidth           int     // Minimum car width
	WidthJitter         int     // Car width varies in [BaseWidth, BaseWidth+WidthJitter)
	BaseHeight          int     // Minimum car height
	HeightJitter        int     // Car height varies in [BaseHeight, BaseHeight+HeightJitter)
	EntryJitter         int     // Extra random distance above the track a car enters from
	PassLine            float64 // Distance above the track bottom that counts as passed
	ExitMargin          float64 // Distance below the track bottom where cars are retired
}

// DefaultParams returns the arcade tuning
func DefaultParams() Params {
	return Params{
		BaseSpeed:           3.6,
		SpeedJitter:         1.8,
		ReferenceFrameMs:    16,
		SpawnIntervalMs:     900,
		MinSpawnIntervalMs:  420,
		SpawnIntervalStepMs: 40,
		DifficultyPeriodMs:  6000,
		SpeedBonusStep:      0.35,
		BaseWidth:           52,
		WidthJitter:         8,
		BaseHeight:          86,
		HeightJitter:        10,
		EntryJitter:         140,
		PassLine:            100,
		ExitMargin:          50,
	}
}

// Validate rejects tunings that would stall or flood the spawner
func (p Params) Validate() error {
	switch {
	case p.MinSpawnIntervalMs <= 0:
		return fmt.Errorf("min spawn interval must be positive, got %v", p.MinSpawnIntervalMs)
	case p.SpawnIntervalMs < p.MinSpawnIntervalMs:
		return fmt.Errorf("spawn interval %v below floor %v", p.SpawnIntervalMs, p.MinSpawnIntervalMs)
	case p.ReferenceFrameMs <= 0:
		return fmt.Errorf("reference frame must be positive, got %v", p.ReferenceFrameMs)
	case p.DifficultyPeriodMs <= 0:
		return fmt.Errorf("difficulty period must be positive, got %v", p.DifficultyPeriodMs)
	case p.BaseSpeed <= 0:
		return fmt.Errorf("base speed must be positive, got %v", p.BaseSpeed)
	case p.SpawnIntervalStepMs < 0:
		return fmt.Errorf("spawn interval step must not be negative, got %v", p.SpawnIntervalStepMs)
	case p.SpeedBonusStep < 0:
		return fmt.Errorf("speed bonus step must not be negative, got %v", p.SpeedBonusStep)
	case p.BaseWidth <= 0 || p.BaseHeight <= 0:
		return fmt.Errorf("car size must be positive, got %dx%d", p.BaseWidth, p.BaseHeight)
	case p.WidthJitter < 0 || p.HeightJitter < 0 || p.EntryJitter < 0 || p.SpeedJitter < 0:
		return fmt.Errorf("jitter values must not be negative")
	}
	return nil
}
