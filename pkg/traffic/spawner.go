package traffic

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/road"
	"github.com/golangdaddy/neonrush/pkg/vehicle"
)

// MaxStepMs bounds a single Update so one huge step cannot spawn without limit
const MaxStepMs = 60_000.0

// Spawner owns the traffic on the track. Every update it spawns new cars on a
// timer, moves the live ones down the road, counts the ones the player has
// passed and retires the ones that left the screen.
type Spawner struct {
	track      road.Track
	params     Params
	rng        Source
	difficulty Difficulty

	spawnTimerMs float64
	opponents    []vehicle.Opponent
	passed       int
}

// NewSpawner creates an empty spawner for the given track
func NewSpawner(track road.Track, params Params, rng Source) (*Spawner, error) {
	if err := track.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSource(0)
	}
	return &Spawner{
		track:      track,
		params:     params,
		rng:        rng,
		difficulty: newDifficulty(params),
		opponents:  make([]vehicle.Opponent, 0, 16),
	}, nil
}

// Update advances the traffic by dtMs milliseconds. Negative and NaN steps
// count as zero and steps longer than MaxStepMs are cut to it.
func (s *Spawner) Update(dtMs float64) {
	dtMs = clampStep(dtMs)
	s.spawnTimerMs += dtMs

	if s.difficulty.advance(dtMs) {
		log.Debug().
			Int("difficulty_level", s.difficulty.Level).
			Float64("speed_bonus", s.difficulty.SpeedBonus).
			Float64("spawn_interval_ms", s.difficulty.SpawnIntervalMs).
			Msg("difficulty increased")
	}

	for s.spawnTimerMs >= s.difficulty.SpawnIntervalMs {
		s.spawnTimerMs -= s.difficulty.SpawnIntervalMs
		s.spawn()
	}

	frames := dtMs / s.params.ReferenceFrameMs
	passLine := s.track.Height - s.params.PassLine
	exitLine := s.track.Height + s.params.ExitMargin

	// Compact in place: keep cars that are still on screen
	kept := s.opponents[:0]
	for i := range s.opponents {
		o := &s.opponents[i]
		o.Advance(frames, s.difficulty.SpeedBonus)
		if o.Y > passLine && o.MarkPassed() {
			s.passed++
		}
		if o.Y > exitLine {
			continue
		}
		kept = append(kept, *o)
	}
	clear(s.opponents[len(kept):])
	s.opponents = kept
}

func clampStep(dtMs float64) float64 {
	if math.IsNaN(dtMs) || dtMs < 0 {
		return 0
	}
	return min(dtMs, MaxStepMs)
}

// spawn places a new car above the track in a random lane
func (s *Spawner) spawn() {
	s.spawnInLane(s.rng.Intn(s.track.Lanes))
}

func (s *Spawner) spawnInLane(lane int) {
	w := s.params.BaseWidth + s.jitter(s.params.WidthJitter)
	h := s.params.BaseHeight + s.jitter(s.params.HeightJitter)
	x := s.track.LaneCenterX(lane) - float64(w)/2
	y := -float64(h) - float64(s.jitter(s.params.EntryJitter))
	speed := s.params.BaseSpeed + s.rng.Float64()*s.params.SpeedJitter

	s.opponents = append(s.opponents, vehicle.Opponent{
		Vehicle: vehicle.Vehicle{X: x, Y: y, Width: w, Height: h},
		Speed:   speed,
	})
}

func (s *Spawner) jitter(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// DrainPassed returns the number of cars passed since the last drain and resets it
func (s *Spawner) DrainPassed() int {
	n := s.passed
	s.passed = 0
	return n
}

// Bounds returns the bounding boxes of all live cars
func (s *Spawner) Bounds() []vehicle.Rect {
	out := make([]vehicle.Rect, len(s.opponents))
	for i := range s.opponents {
		out[i] = s.opponents[i].Bounds()
	}
	return out
}

// Opponents returns a copy of the live cars
func (s *Spawner) Opponents() []vehicle.Opponent {
	out := make([]vehicle.Opponent, len(s.opponents))
	copy(out, s.opponents)
	return out
}

// Count returns the number of live cars
func (s *Spawner) Count() int {
	return len(s.opponents)
}

// CurrentSpeed is the base speed plus the difficulty bonus
func (s *Spawner) CurrentSpeed() float64 {
	return s.params.BaseSpeed + s.difficulty.SpeedBonus
}

// Level returns the current difficulty level
func (s *Spawner) Level() int {
	return s.difficulty.Level
}

// DifficultyFactor is the score multiplier for the current difficulty
func (s *Spawner) DifficultyFactor() float64 {
	return s.difficulty.Factor()
}

// Difficulty returns a copy of the difficulty state
func (s *Spawner) Difficulty() Difficulty {
	return s.difficulty
}

// Track returns the track the spawner drives on
func (s *Spawner) Track() road.Track {
	return s.track
}
