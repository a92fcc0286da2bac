package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/neonrush/pkg/background"
	"github.com/golangdaddy/neonrush/pkg/session"
	"github.com/golangdaddy/neonrush/pkg/ui/model"
	"github.com/golangdaddy/neonrush/pkg/vehicle"
)

const dashLength, dashGap = 24.0, 16.0

// GameplayScreen drives a session from the frame loop and draws it
type GameplayScreen struct {
	session   *session.Session
	ticker    *session.Ticker
	fx        model.Cosmetics
	backdrop  *ebiten.Image
	muted     bool
	finished  bool
	onCrashed func(session.GameOver)
}

// NewGameplayScreen creates the screen for a running session.
// onCrashed is called once, on the frame the player crashes.
func NewGameplayScreen(s *session.Session, width, height int, seed int64, muted bool, onCrashed func(session.GameOver)) *GameplayScreen {
	bg := background.NewGenerator(width, height, s.Track())
	return &GameplayScreen{
		session:   s,
		ticker:    session.NewTicker(nil),
		backdrop:  bg.Generate(seed),
		muted:     muted,
		onCrashed: onCrashed,
	}
}

// Update samples the held keys and advances the simulation
func (gs *GameplayScreen) Update() error {
	if gs.finished {
		return nil
	}
	gs.session.SetLeft(ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA))
	gs.session.SetRight(ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD))

	dt := gs.ticker.Delta()
	gs.fx.Advance(dt)

	over, crashed := gs.session.Tick(dt)
	if !crashed {
		return nil
	}
	gs.finished = true
	playCrash(gs.muted)
	if gs.onCrashed != nil {
		gs.onCrashed(over)
	}
	return nil
}

// Draw renders the road, the cars and the HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	snap := gs.session.Snapshot()
	screen.Fill(colorBackground)
	screen.DrawImage(gs.backdrop, nil)

	gs.drawRoad(screen, snap)
	for _, o := range snap.Opponents {
		drawCar(screen, o, colorOpponent, 0.5, false)
	}
	drawCar(screen, snap.Player, colorPlayer, gs.fx.Pulse(), true)
	gs.drawHUD(screen, snap)
}

func (gs *GameplayScreen) drawRoad(screen *ebiten.Image, snap session.Snapshot) {
	t := snap.Track
	fillRect(screen, t.X, 0, t.Width, t.Height, colorRoad)
	fillRect(screen, t.X-3, 0, 3, t.Height, colorEdge)
	fillRect(screen, t.Right(), 0, 3, t.Height, colorEdge)

	period := dashLength + dashGap
	phase := gs.fx.DashPhase(period)
	lw := t.LaneWidth()
	for lane := 1; lane < t.Lanes; lane++ {
		x := t.X + lw*float64(lane) - 1
		for y := phase - period; y < t.Height; y += period {
			fillRect(screen, x, y, 2, dashLength, colorDash)
		}
	}
}

// drawCar draws a body with lights at the nose. glow scales the headlight brightness.
func drawCar(screen *ebiten.Image, r vehicle.Rect, body color.RGBA, glow float64, facingUp bool) {
	fillRect(screen, r.X0, r.Y0, r.Width(), r.Height(), body)
	fillRect(screen, r.X0+6, r.Y0+r.Height()*0.3, r.Width()-12, r.Height()*0.25, color.RGBA{20, 20, 35, 255})

	light := color.RGBA{255, 255, uint8(180 + 75*glow), uint8(255 * glow)}
	ly := r.Y0
	if !facingUp {
		ly = r.Y1 - 6
		light = color.RGBA{255, 30, 30, 220}
	}
	fillRect(screen, r.X0+4, ly, 10, 6, light)
	fillRect(screen, r.X1-14, ly, 10, 6, light)
}

func (gs *GameplayScreen) drawHUD(screen *ebiten.Image, snap session.Snapshot) {
	fillRect(screen, 0, 0, float64(screen.Bounds().Dx()), 28, color.RGBA{0, 0, 0, 160})
	drawTextLeft(screen, fmt.Sprintf("SCORE %d", snap.Score), 10, 6, colorText)
	drawTextLeft(screen, fmt.Sprintf("SPEED %.1f", snap.Speed), 170, 6, colorAccent)
	drawTextLeft(screen, fmt.Sprintf("LEVEL %d", snap.Level), 330, 6, colorPlayer)
}
