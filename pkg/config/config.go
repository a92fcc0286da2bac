// Package config loads game settings from defaults, an optional TOML file,
// a .env file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/highscore"
	"github.com/golangdaddy/neonrush/pkg/road"
	"github.com/golangdaddy/neonrush/pkg/session"
	"github.com/golangdaddy/neonrush/pkg/traffic"
	"github.com/golangdaddy/neonrush/pkg/vehicle"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full game configuration
type Config struct {
	Seed       int64            `toml:"seed"`
	Track      TrackConfig      `toml:"track"`
	Player     PlayerConfig     `toml:"player"`
	Traffic    TrafficConfig    `toml:"traffic"`
	Scores     ScoresConfig     `toml:"scores"`
	Log        LogConfig        `toml:"log"`
	Scoreboard ScoreboardConfig `toml:"scoreboard"`
}

type TrackConfig struct {
	Lanes  int     `toml:"lanes"`
	X      float64 `toml:"x"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PlayerConfig struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	LateralSpeed float64 `toml:"lateral_speed"`
	Margin       float64 `toml:"margin"`
	BottomOffset float64 `toml:"bottom_offset"`
}

type TrafficConfig struct {
	BaseSpeed           float64 `toml:"base_speed"`
	SpeedJitter         float64 `toml:"speed_jitter"`
	SpawnIntervalMs     float64 `toml:"spawn_interval_ms"`
	MinSpawnIntervalMs  float64 `toml:"min_spawn_interval_ms"`
	SpawnIntervalStepMs float64 `toml:"spawn_interval_step_ms"`
	DifficultyPeriodMs  float64 `toml:"difficulty_period_ms"`
	SpeedBonusStep      float64 `toml:"speed_bonus_step"`
}

type ScoresConfig struct {
	Backend string `toml:"backend"` // file, sqlite or memory
	Path    string `toml:"path"`
	TopN    int    `toml:"top_n"` // entries shown on the game over screen
}

type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

type ScoreboardConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the arcade configuration
func Default() Config {
	t := road.DefaultTrack()
	p := vehicle.DefaultPlayerSpec()
	tp := traffic.DefaultParams()
	return Config{
		Track: TrackConfig{Lanes: t.Lanes, X: t.X, Width: t.Width, Height: t.Height},
		Player: PlayerConfig{
			Width:        p.Width,
			Height:       p.Height,
			LateralSpeed: p.LateralSpeed,
			Margin:       p.Margin,
			BottomOffset: p.BottomOffset,
		},
		Traffic: TrafficConfig{
			BaseSpeed:           tp.BaseSpeed,
			SpeedJitter:         tp.SpeedJitter,
			SpawnIntervalMs:     tp.SpawnIntervalMs,
			MinSpawnIntervalMs:  tp.MinSpawnIntervalMs,
			SpawnIntervalStepMs: tp.SpawnIntervalStepMs,
			DifficultyPeriodMs:  tp.DifficultyPeriodMs,
			SpeedBonusStep:      tp.SpeedBonusStep,
		},
		Scores:     ScoresConfig{Backend: highscore.BackendFile, TopN: 10},
		Log:        LogConfig{Level: "info", Pretty: true},
		Scoreboard: ScoreboardConfig{Addr: ":8088"},
	}
}

// Load builds the configuration. path may be empty or point at a file that
// does not exist; defaults are used in that case.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("ignoring unreadable .env")
	}

	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("decode %s: %w", path, err)
			}
			log.Debug().Str("path", path).Msg("no config file, using defaults")
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("NEONRUSH_SCORES_BACKEND"); v != "" {
		c.Scores.Backend = v
	}
	if v := os.Getenv("NEONRUSH_SCORES_PATH"); v != "" {
		c.Scores.Path = v
	}
	if v := os.Getenv("NEONRUSH_SCOREBOARD_ADDR"); v != "" {
		c.Scoreboard.Addr = v
	}
	if v := os.Getenv("NEONRUSH_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: NEONRUSH_SEED %q: %v", ErrInvalid, v, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	track, err := road.NewTrack(c.Track.Lanes, c.Track.X, c.Track.Width, c.Track.Height)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.TrafficParams().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	}
	if float64(c.Player.Width)+2*c.Player.Margin > track.Width {
		return fmt.Errorf("%w: player car does not fit on the road", ErrInvalid)
	}
	if c.Scores.TopN < 0 {
		return fmt.Errorf("%w: scores.top_n must not be negative", ErrInvalid)
	}
	switch c.Scores.Backend {
	case highscore.BackendSQLite:
		if c.Scores.Path == "" {
			return fmt.Errorf("%w: %w", ErrInvalid, highscore.ErrMissingPath)
		}
	case highscore.BackendFile, highscore.BackendMemory:
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalid, highscore.ErrUnknownBackend, c.Scores.Backend)
	}
	return nil
}

// RoadTrack converts the track section
func (c Config) RoadTrack() road.Track {
	return road.Track{Lanes: c.Track.Lanes, X: c.Track.X, Width: c.Track.Width, Height: c.Track.Height}
}

// PlayerSpec converts the player section
func (c Config) PlayerSpec() vehicle.PlayerSpec {
	return vehicle.PlayerSpec{
		Width:        c.Player.Width,
		Height:       c.Player.Height,
		LateralSpeed: c.Player.LateralSpeed,
		Margin:       c.Player.Margin,
		BottomOffset: c.Player.BottomOffset,
	}
}

// TrafficParams overlays the traffic section on the default tuning
func (c Config) TrafficParams() traffic.Params {
	p := traffic.DefaultParams()
	p.BaseSpeed = c.Traffic.BaseSpeed
	p.SpeedJitter = c.Traffic.SpeedJitter
	p.SpawnIntervalMs = c.Traffic.SpawnIntervalMs
	p.MinSpawnIntervalMs = c.Traffic.MinSpawnIntervalMs
	p.SpawnIntervalStepMs = c.Traffic.SpawnIntervalStepMs
	p.DifficultyPeriodMs = c.Traffic.DifficultyPeriodMs
	p.SpeedBonusStep = c.Traffic.SpeedBonusStep
	return p
}

// SessionOptions builds the options for a new session
func (c Config) SessionOptions(label string, src traffic.Source) session.Options {
	return session.Options{
		Label:   label,
		Track:   c.RoadTrack(),
		Player:  c.PlayerSpec(),
		Traffic: c.TrafficParams(),
		Source:  src,
	}
}
