package traffic

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/neonrush/pkg/road"
)

// fakeSource hands out queued ints, then zeros
type fakeSource struct {
	ints []int
	f    float64
}

func (s *fakeSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *fakeSource) Float64() float64 { return s.f }

func newTestSpawner(t *testing.T, src Source) *Spawner {
	t.Helper()
	s, err := NewSpawner(road.DefaultTrack(), DefaultParams(), src)
	require.NoError(t, err)
	return s
}

func TestDifficultyEscalation(t *testing.T) {
	s := newTestSpawner(t, &fakeSource{})

	for i := 0; i < 59; i++ {
		s.Update(100)
	}
	assert.Equal(t, 1, s.Level())

	s.Update(100)
	d := s.Difficulty()
	assert.Equal(t, 2, d.Level)
	assert.InDelta(t, 0.35, d.SpeedBonus, 1e-9)
	assert.InDelta(t, 860.0, d.SpawnIntervalMs, 1e-9)
	assert.InDelta(t, 3.95, s.CurrentSpeed(), 1e-9)
	assert.InDelta(t, 1.1875, s.DifficultyFactor(), 1e-9)
}

func TestSpawnIntervalFloor(t *testing.T) {
	s := newTestSpawner(t, NewSource(3))

	prev := s.Difficulty().SpawnIntervalMs
	for i := 0; i < 60*20; i++ {
		s.Update(100)
		d := s.Difficulty()
		assert.LessOrEqual(t, d.SpawnIntervalMs, prev)
		assert.GreaterOrEqual(t, d.SpawnIntervalMs, 420.0)
		prev = d.SpawnIntervalMs
	}
	assert.Equal(t, 21, s.Level())
	assert.Equal(t, 420.0, s.Difficulty().SpawnIntervalMs)
}

func TestEscalatesOncePerUpdate(t *testing.T) {
	s := newTestSpawner(t, &fakeSource{})
	s.Update(20000)
	assert.Equal(t, 2, s.Level())
}

func TestSpawnPlacement(t *testing.T) {
	s := newTestSpawner(t, &fakeSource{ints: []int{1}})

	s.Update(899)
	assert.Zero(t, s.Count())

	s.Update(1)
	require.Equal(t, 1, s.Count())
	o := s.Opponents()[0]
	assert.Equal(t, 214.0, o.X)
	assert.Equal(t, 52, o.Width)
	assert.Equal(t, 86, o.Height)
	assert.Equal(t, 240.0, o.Bounds().CenterX())
	assert.InDelta(t, 3.6, o.Speed, 1e-9)
	assert.False(t, o.Passed)
	assert.Less(t, o.Y, 0.0, "cars enter above the track")
}

func TestSpawnsEveryInterval(t *testing.T) {
	s := newTestSpawner(t, &fakeSource{})
	s.Update(100)
	s.Update(2700)
	// a single large step catches up on every missed spawn
	assert.Equal(t, 3, s.Count())
}

func TestPassAndRetire(t *testing.T) {
	s := newTestSpawner(t, &fakeSource{})

	passed := 0
	for i := 0; i < 41; i++ {
		s.Update(100)
		passed += s.DrainPassed()
	}
	assert.Equal(t, 1, passed)
	assert.Zero(t, s.DrainPassed(), "drain resets the counter")

	for i := 41; i < 48; i++ {
		s.Update(100)
		passed += s.DrainPassed()
	}
	assert.Equal(t, 1, passed, "a car is counted once")
	// spawned at 0.9s, 1.8s, 2.7s, 3.6s and 4.5s; the first has left the screen
	assert.Equal(t, 4, s.Count())
	for _, r := range s.Bounds() {
		assert.LessOrEqual(t, r.Y0, 770.0)
	}
}

func TestOpponentsIsACopy(t *testing.T) {
	s := newTestSpawner(t, &fakeSource{})
	s.Update(900)
	cars := s.Opponents()
	cars[0].Y = 9999
	assert.NotEqual(t, 9999.0, s.Opponents()[0].Y)
}

func TestNewSpawnerValidates(t *testing.T) {
	p := DefaultParams()
	p.MinSpawnIntervalMs = 0
	_, err := NewSpawner(road.DefaultTrack(), p, nil)
	assert.Error(t, err)

	_, err = NewSpawner(road.Track{}, DefaultParams(), nil)
	assert.Error(t, err)

	s, err := NewSpawner(road.DefaultTrack(), DefaultParams(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Level())
}

func TestNonFiniteStepsTerminate(t *testing.T) {
	s := newTestSpawner(t, &fakeSource{})

	s.Update(math.NaN())
	s.Update(math.Inf(-1))
	assert.Zero(t, s.Count())
	assert.Equal(t, 1, s.Level())

	done := make(chan struct{})
	go func() {
		s.Update(math.Inf(1))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Update(+Inf) did not return")
	}
	// the capped step escalates once and every car spawned in it drives off
	assert.Equal(t, 2, s.Level())
	assert.Zero(t, s.Count())
	maxStep := MaxStepMs
	assert.Equal(t, int(maxStep/860), s.DrainPassed())
}

func TestNewSpawnerRejectsInvertedCurve(t *testing.T) {
	cases := map[string]func(*Params){
		"interval step": func(p *Params) { p.SpawnIntervalStepMs = -40 },
		"speed bonus":   func(p *Params) { p.SpeedBonusStep = -0.35 },
		"base speed":    func(p *Params) { p.BaseSpeed = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultParams()
			mutate(&p)
			_, err := NewSpawner(road.DefaultTrack(), p, nil)
			assert.Error(t, err)
		})
	}
}

func TestDifficultyLogKeepsLevelField(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	s := newTestSpawner(t, &fakeSource{})
	s.Update(6000)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "difficulty increased", line["message"])
	assert.Equal(t, 2.0, line["difficulty_level"])
}
