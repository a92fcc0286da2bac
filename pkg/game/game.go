package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/config"
	"github.com/golangdaddy/neonrush/pkg/highscore"
	"github.com/golangdaddy/neonrush/pkg/profile"
	"github.com/golangdaddy/neonrush/pkg/session"
	"github.com/golangdaddy/neonrush/pkg/traffic"
	"github.com/golangdaddy/neonrush/pkg/ui"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 720
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options wires the game to its collaborators
type Options struct {
	Config      config.Config
	Board       *highscore.Board
	Profile     *profile.Profile
	ProfilePath string // empty disables saving the profile
	Muted       bool
}

// Game implements the ebiten.Game interface and manages screen transitions
type Game struct {
	opts          Options
	currentScreen Screen
}

// NewGame creates a game showing the title screen
func NewGame(opts Options) *Game {
	if opts.Profile == nil {
		opts.Profile = &profile.Profile{}
	}
	g := &Game{opts: opts}
	g.showTitle()
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.opts.Profile.Name, g.startGameplay)
}

// startGameplay begins a fresh session for label
func (g *Game) startGameplay(label string) {
	opts := g.opts.Config.SessionOptions(label, traffic.NewSource(g.opts.Config.Seed))
	opts.OnGameOver = g.recordRun

	s, err := session.New(opts)
	if err != nil {
		// config was validated at startup
		log.Error().Err(err).Msg("failed to start session")
		g.showTitle()
		return
	}
	g.currentScreen = ui.NewGameplayScreen(s, ScreenWidth, ScreenHeight, g.opts.Config.Seed, g.opts.Muted, g.showGameOver)
}

// recordRun stores a finished run on the leaderboard and in the profile
func (g *Game) recordRun(over session.GameOver) {
	g.opts.Board.Record(over.Label, over.Score)

	g.opts.Profile.RecordGame(over.Label, over.Score)
	if g.opts.ProfilePath == "" {
		return
	}
	if err := g.opts.Profile.SaveToFile(g.opts.ProfilePath); err != nil {
		log.Warn().Err(err).Str("path", g.opts.ProfilePath).Msg("failed to save profile")
	}
}

func (g *Game) showGameOver(over session.GameOver) {
	entries := g.opts.Board.Top(g.opts.Config.Scores.TopN)
	g.currentScreen = ui.NewGameOverScreen(over, entries, g.showTitle)
}
