package ui

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/neonrush/pkg/data"
	"github.com/golangdaddy/neonrush/pkg/highscore"
	"github.com/golangdaddy/neonrush/pkg/ui/model"
)

// TitleScreen asks for the driver's name before a run
type TitleScreen struct {
	startTime time.Time
	name      *model.NameField
	rng       *rand.Rand
	chars     []rune
	onStart   func(label string)
}

// NewTitleScreen creates the title screen with the name field prefilled
func NewTitleScreen(lastName string, onStart func(label string)) *TitleScreen {
	return &TitleScreen{
		startTime: time.Now(),
		name:      model.NewNameField(lastName, highscore.MaxLabelLength),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		onStart:   onStart,
	}
}

// Update handles typing and starting the run
func (ts *TitleScreen) Update() error {
	ts.chars = ebiten.AppendInputChars(ts.chars[:0])
	ts.name.Insert(ts.chars)

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ts.name.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ts.name.Set(data.RandomName(ts.rng))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ts.name.Ready() {
		if ts.onStart != nil {
			ts.onStart(highscore.Sanitize(ts.name.Value()))
		}
	}
	return nil
}

// Draw renders the title and the name box
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(colorBackground)

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2

	glow := 0.8 + 0.2*math.Sin(elapsed*2)
	titleColor := colorEdge
	titleColor.R = uint8(float64(titleColor.R) * glow)
	titleColor.B = uint8(float64(titleColor.B) * glow)
	drawText(screen, "NEON RUSH", centerX, float64(height)/4, 56, titleColor)
	drawText(screen, "dodge the traffic", centerX, float64(height)/4+50, 20, colorMuted)

	drawText(screen, "Enter your name", centerX, float64(height)/2-40, 18, colorText)
	field := ts.name.Raw()
	if int(elapsed*2)%2 == 0 {
		field += "_"
	}
	drawButton(screen, field, centerX-150, float64(height)/2-10, 300, 44, colorRoad, colorAccent)

	hint := "Enter: start  Tab: random name  Esc: quit"
	drawText(screen, hint, centerX, float64(height)-60, 14, colorMuted)
}
