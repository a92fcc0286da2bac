// Package session runs one playthrough: it applies input to the player car,
// advances traffic and score, and ends the run on the first crash.
package session

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/collision"
	"github.com/golangdaddy/neonrush/pkg/road"
	"github.com/golangdaddy/neonrush/pkg/score"
	"github.com/golangdaddy/neonrush/pkg/traffic"
	"github.com/golangdaddy/neonrush/pkg/vehicle"
)

// MaxDeltaMs is the largest step a single tick may simulate
const MaxDeltaMs = 100.0

// State of a session
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// GameOver is emitted once, when the player crashes
type GameOver struct {
	Label string
	Score int
	Level int
}

// Input is the pair of held directions sampled each tick
type Input struct {
	Left, Right bool
}

// Options configures a new session
type Options struct {
	Label   string
	Track   road.Track
	Player  vehicle.PlayerSpec
	Traffic traffic.Params
	Source  traffic.Source

	// OnGameOver is called exactly once when the session ends
	OnGameOver func(GameOver)
}

// DefaultOptions returns the arcade setup for the given driver label
func DefaultOptions(label string) Options {
	return Options{
		Label:   label,
		Track:   road.DefaultTrack(),
		Player:  vehicle.DefaultPlayerSpec(),
		Traffic: traffic.DefaultParams(),
	}
}

// Session is the full mutable state of one playthrough
type Session struct {
	id      string
	label   string
	track   road.Track
	player  *vehicle.Player
	traffic *traffic.Spawner
	score   score.Engine
	input   Input
	state   State
	ticks   int

	onGameOver func(GameOver)
}

// New creates a running session
func New(opts Options) (*Session, error) {
	spawner, err := traffic.NewSpawner(opts.Track, opts.Traffic, opts.Source)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:         uuid.NewString(),
		label:      opts.Label,
		track:      opts.Track,
		player:     vehicle.NewPlayer(opts.Track, opts.Player),
		traffic:    spawner,
		state:      StateRunning,
		onGameOver: opts.OnGameOver,
	}
	log.Debug().Str("session", s.id).Str("label", s.label).Msg("session started")
	return s, nil
}

// SetLeft records whether the left control is held
func (s *Session) SetLeft(held bool) { s.input.Left = held }

// SetRight records whether the right control is held
func (s *Session) SetRight(held bool) { s.input.Right = held }

// SetInput replaces both held directions at once
func (s *Session) SetInput(in Input) { s.input = in }

// Tick advances the simulation by dtMs milliseconds. It returns the game over
// payload and true on the tick the player crashes, and false otherwise.
// Ticks after game over do nothing.
func (s *Session) Tick(dtMs float64) (GameOver, bool) {
	if s.state != StateRunning {
		return GameOver{}, false
	}
	dtMs = ClampDelta(dtMs)
	s.ticks++

	// Left wins when both directions are held
	switch {
	case s.input.Left:
		s.player.MoveLeft()
	case s.input.Right:
		s.player.MoveRight()
	}

	s.traffic.Update(dtMs)
	s.score.Update(dtMs, s.traffic.DifficultyFactor())
	if passed := s.traffic.DrainPassed(); passed > 0 {
		s.score.AddPoints(passed * score.PassBonus)
	}

	if !collision.Any(s.player.Bounds(), s.traffic.Bounds()) {
		return GameOver{}, false
	}

	s.state = StateGameOver
	over := GameOver{Label: s.label, Score: s.score.Total(), Level: s.traffic.Level()}
	log.Info().
		Str("session", s.id).
		Str("label", over.Label).
		Int("score", over.Score).
		Int("difficulty_level", over.Level).
		Int("ticks", s.ticks).
		Msg("game over")
	if s.onGameOver != nil {
		s.onGameOver(over)
	}
	return over, true
}

// Running reports whether the session is still in play
func (s *Session) Running() bool { return s.state == StateRunning }

// State returns the current state
func (s *Session) State() State { return s.state }

// ID returns the session identifier used in logs
func (s *Session) ID() string { return s.id }

// Label returns the driver label
func (s *Session) Label() string { return s.label }

// Score returns the current score
func (s *Session) Score() int { return s.score.Total() }

// Level returns the current difficulty level
func (s *Session) Level() int { return s.traffic.Level() }

// Speed returns the current traffic speed
func (s *Session) Speed() float64 { return s.traffic.CurrentSpeed() }

// Track returns the session's track geometry
func (s *Session) Track() road.Track { return s.track }

// ClampDelta bounds a tick delta to [0, MaxDeltaMs]
func ClampDelta(dtMs float64) float64 {
	if dtMs < 0 || dtMs != dtMs {
		return 0
	}
	if dtMs > MaxDeltaMs {
		return MaxDeltaMs
	}
	return dtMs
}
