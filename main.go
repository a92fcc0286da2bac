package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/config"
	"github.com/golangdaddy/neonrush/pkg/game"
	"github.com/golangdaddy/neonrush/pkg/headless"
	"github.com/golangdaddy/neonrush/pkg/highscore"
	"github.com/golangdaddy/neonrush/pkg/profile"
)

func main() {
	configPath := flag.String("config", "neonrush.toml", "path to the TOML config file")
	runHeadless := flag.Bool("headless", false, "play one autopilot run without a window")
	label := flag.String("label", "Autopilot", "driver name for headless runs")
	maxTicks := flag.Int("max-ticks", 0, "tick budget for headless runs (0 = until crash)")
	realtime := flag.Bool("realtime", false, "tick headless runs on the wall clock")
	muted := flag.Bool("mute", false, "disable the crash sound")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.SetupLogging(cfg.Log)

	store, err := highscore.Open(cfg.Scores.Backend, cfg.Scores.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open high score store")
	}
	board := highscore.NewBoard(store)
	defer board.Close()

	if *runHeadless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		opts := headless.Options{
			Label:    highscore.Sanitize(*label),
			MaxTicks: *maxTicks,
			Realtime: *realtime,
		}
		if _, err := headless.Run(ctx, cfg, board, opts); err != nil {
			log.Error().Err(err).Msg("headless run aborted")
		}
		return
	}

	profilePath, err := profile.DefaultPath()
	if err != nil {
		log.Warn().Err(err).Msg("no home directory, profile will not be saved")
	}
	prof := &profile.Profile{}
	if profilePath != "" {
		if prof, err = profile.LoadFromFile(profilePath); err != nil {
			log.Warn().Err(err).Msg("ignoring unreadable profile")
			prof = &profile.Profile{}
		}
	}

	g := game.NewGame(game.Options{
		Config:      cfg,
		Board:       board,
		Profile:     prof,
		ProfilePath: profilePath,
		Muted:       *muted,
	})

	ebiten.SetWindowSize(game.ScreenWidth+40, game.ScreenHeight+40)
	ebiten.SetWindowTitle("Neon Rush")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
