package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/neonrush/pkg/highscore"
	"github.com/golangdaddy/neonrush/pkg/session"
)

// GameOverScreen shows the final score and the leaderboard
type GameOverScreen struct {
	result    session.GameOver
	entries   []highscore.Entry
	onRestart func()
}

// NewGameOverScreen creates the screen. entries is the leaderboard to show.
func NewGameOverScreen(result session.GameOver, entries []highscore.Entry, onRestart func()) *GameOverScreen {
	return &GameOverScreen{
		result:    result,
		entries:   entries,
		onRestart: onRestart,
	}
}

// Update restarts on Enter and exits on Esc
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && s.onRestart != nil {
		s.onRestart()
	}
	return nil
}

func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(colorBackground)
	centerX := float64(width) / 2

	drawText(screen, "GAME OVER", centerX, 90, 44, colorOpponent)
	drawText(screen, fmt.Sprintf("%s scored %d (level %d)", s.result.Label, s.result.Score, s.result.Level), centerX, 150, 18, colorText)

	drawText(screen, "HIGH SCORES", centerX, 210, 22, colorAccent)
	y := 250.0
	if len(s.entries) == 0 {
		drawText(screen, "no scores yet", centerX, y, 16, colorMuted)
	}
	for i, e := range s.entries {
		clr := colorText
		if e.Label == s.result.Label && e.Score == s.result.Score {
			clr = colorPlayer
		}
		drawTextLeft(screen, fmt.Sprintf("%2d. %-20s %7d", i+1, e.Label, e.Score), centerX-150, y, clr)
		y += 26
	}

	drawText(screen, "Enter: play again  Esc: quit", centerX, float64(height)-60, 14, colorMuted)
}
