package session

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/neonrush/pkg/traffic"
)

// laneZero spawns every car in the player's starting lane with no jitter
type laneZero struct{}

func (laneZero) Intn(int) int     { return 0 }
func (laneZero) Float64() float64 { return 0 }

func newSession(t *testing.T, src traffic.Source, onOver func(GameOver)) *Session {
	t.Helper()
	opts := DefaultOptions("Alice")
	opts.Source = src
	opts.OnGameOver = onOver
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func runUntilOver(t *testing.T, s *Session, dt float64, limit int) GameOver {
	t.Helper()
	for i := 0; i < limit; i++ {
		if over, ok := s.Tick(dt); ok {
			return over
		}
	}
	t.Fatalf("no crash within %d ticks", limit)
	return GameOver{}
}

func TestNewSession(t *testing.T) {
	s := newSession(t, laneZero{}, nil)
	assert.True(t, s.Running())
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, "Alice", s.Label())
	assert.NotEmpty(t, s.ID())
	assert.Zero(t, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.InDelta(t, 3.6, s.Speed(), 1e-9)

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.PlayerLane)
	assert.Empty(t, snap.Opponents)
	assert.True(t, snap.Running)
}

func TestLeftWinsWhenBothHeld(t *testing.T) {
	s := newSession(t, laneZero{}, nil)
	s.SetRight(true)
	s.Tick(16)
	x := s.Snapshot().Player.X0
	assert.Equal(t, 99.0, x)

	s.SetLeft(true)
	s.Tick(16)
	assert.Equal(t, 93.0, s.Snapshot().Player.X0)

	s.SetInput(Input{})
	s.Tick(16)
	assert.Equal(t, 93.0, s.Snapshot().Player.X0)
}

func TestGameOverIsTerminal(t *testing.T) {
	calls := 0
	var got GameOver
	s := newSession(t, laneZero{}, func(o GameOver) {
		calls++
		got = o
	})

	over := runUntilOver(t, s, 100, 100)
	assert.Equal(t, "Alice", over.Label)
	assert.Equal(t, s.Score(), over.Score)
	assert.Equal(t, 1, over.Level)
	assert.Positive(t, over.Score)
	assert.Equal(t, 1, calls)
	assert.Equal(t, over, got)

	assert.False(t, s.Running())
	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, "game_over", s.State().String())

	before := s.Snapshot()
	s.SetRight(true)
	for i := 0; i < 20; i++ {
		_, ok := s.Tick(100)
		assert.False(t, ok)
	}
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 1, calls)
}

func TestCrashTiming(t *testing.T) {
	// the first car spawns at 900ms and reaches the player's nose 2.5s later
	s := newSession(t, laneZero{}, nil)
	for i := 0; i < 33; i++ {
		_, ok := s.Tick(100)
		require.False(t, ok, "tick %d", i+1)
	}
	over, ok := s.Tick(100)
	require.True(t, ok)
	assert.Equal(t, 34, over.Score)
}

func TestGameOverLogKeepsSeverity(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	s := newSession(t, laneZero{}, nil)
	over := runUntilOver(t, s, 100, 100)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "info", line["level"], "the severity field is not overwritten")
	assert.Equal(t, "game over", line["message"])
	assert.Equal(t, float64(over.Level), line["difficulty_level"])
	assert.Equal(t, float64(over.Score), line["score"])
}

func TestDodgingAvoidsCrash(t *testing.T) {
	s := newSession(t, laneZero{}, nil)
	s.SetRight(true)
	for i := 0; i < 60; i++ {
		_, ok := s.Tick(100)
		require.False(t, ok)
	}
	assert.Equal(t, 2, s.Snapshot().PlayerLane)
	// 60 buckets plus a pass bonus for each car that went by
	assert.GreaterOrEqual(t, s.Score(), 60+5)
	assert.Equal(t, 2, s.Level())
}

func TestScoreAndLevelNeverDecrease(t *testing.T) {
	s := newSession(t, traffic.NewSource(99), nil)
	lastScore, lastLevel := 0, 1
	for i := 0; i < 3000 && s.Running(); i++ {
		s.SetInput(Autopilot(s.Snapshot()))
		s.Tick(float64(i%40) + 1)
		assert.GreaterOrEqual(t, s.Score(), lastScore)
		assert.GreaterOrEqual(t, s.Level(), lastLevel)
		lastScore, lastLevel = s.Score(), s.Level()
	}
}

func TestTickClampsDelta(t *testing.T) {
	s := newSession(t, laneZero{}, nil)
	s.Tick(10000)
	assert.Equal(t, 1, s.Score())
	s.Tick(-50)
	assert.Equal(t, 1, s.Score())
}

func TestClampDelta(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-5, 0},
		{math.NaN(), 0},
		{0, 0},
		{16.6, 16.6},
		{100, 100},
		{250, 100},
		{math.Inf(1), 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClampDelta(c.in), "in=%v", c.in)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions("x")
	opts.Track.Lanes = 0
	_, err := New(opts)
	assert.Error(t, err)
}
