// Package headless plays the game without a window, steered by the autopilot.
package headless

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/config"
	"github.com/golangdaddy/neonrush/pkg/highscore"
	"github.com/golangdaddy/neonrush/pkg/session"
	"github.com/golangdaddy/neonrush/pkg/traffic"
)

// TickMs is the fixed step used when running without a window
const TickMs = 16.0

// Options control a headless run
type Options struct {
	Label string

	// MaxTicks bounds a fast run; 0 means until the car crashes.
	// Real-time runs end on a crash or when ctx is done.
	MaxTicks int

	// Realtime ticks on the wall clock every TickMs instead of as fast as possible
	Realtime bool

	// Clock feeds real-time deltas; nil means the system clock
	Clock session.Clock

	// Steer picks the held directions each tick; nil means session.Autopilot
	Steer session.InputFunc
}

// Run plays one run and records it. A run cut short by ctx is not recorded.
func Run(ctx context.Context, cfg config.Config, board *highscore.Board, opts Options) (session.GameOver, error) {
	s, err := session.New(cfg.SessionOptions(opts.Label, traffic.NewSource(cfg.Seed)))
	if err != nil {
		return session.GameOver{}, err
	}
	steer := opts.Steer
	if steer == nil {
		steer = session.Autopilot
	}

	start := time.Now()
	d := session.NewDriver(s, time.Duration(TickMs)*time.Millisecond, opts.Clock, steer)

	var (
		over    session.GameOver
		crashed bool
	)
	if opts.Realtime {
		over, err = d.Run(ctx)
		crashed = err == nil
	} else {
		over, crashed, err = d.RunFixed(ctx, TickMs, opts.MaxTicks)
	}
	if err != nil {
		return session.GameOver{}, err
	}
	if !crashed {
		// tick budget ran out; the run still counts
		over = session.GameOver{Label: s.Label(), Score: s.Score(), Level: s.Level()}
	}
	board.Record(over.Label, over.Score)

	log.Info().
		Str("label", over.Label).
		Int("score", over.Score).
		Int("difficulty_level", over.Level).
		Bool("crashed", crashed).
		Bool("realtime", opts.Realtime).
		Dur("elapsed", time.Since(start)).
		Msg("headless run finished")
	return over, nil
}
