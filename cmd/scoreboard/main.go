package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/config"
	"github.com/golangdaddy/neonrush/pkg/highscore"
	"github.com/golangdaddy/neonrush/pkg/scoreboard"
)

func main() {
	configPath := flag.String("config", "neonrush.toml", "path to the TOML config file")
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

	srv := scoreboard.New(store)
	log.Info().Str("addr", cfg.Scoreboard.Addr).Str("backend", cfg.Scores.Backend).Msg("starting scoreboard")
	if err := srv.Start(cfg.Scoreboard.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
