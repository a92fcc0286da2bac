package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/neonrush/pkg/road"
)

// PropKind is the type of roadside decoration
type PropKind int

const (
	PropTower PropKind = iota
	PropSign
)

// Prop is one decoration on the verge
type Prop struct {
	Kind          PropKind
	X, Y          int
	Width, Height int
	Color         color.RGBA
}

// Generator creates the backdrop either side of the road
type Generator struct {
	Width  int
	Height int
	Track  road.Track
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int, track road.Track) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
		Track:  track,
	}
}

// Props lays out the decorations for a seed. Nothing overlaps the road.
func (g *Generator) Props(seed int64) []Prop {
	rng := rand.New(rand.NewSource(seed))
	left := int(g.Track.X)
	right := int(g.Track.Right())

	var props []Prop
	for y := 0; y < g.Height; y += 24 {
		// density varies down the screen
		density := 0.55 + 0.3*math.Sin(float64(y)*0.015)
		for _, verge := range [][2]int{{0, left}, {right, g.Width}} {
			if verge[1]-verge[0] < 8 || rng.Float64() > density {
				continue
			}
			props = append(props, g.prop(rng, verge[0], verge[1], y))
		}
	}
	return props
}

func (g *Generator) prop(rng *rand.Rand, minX, maxX, y int) Prop {
	p := Prop{Kind: PropTower, Y: y + rng.Intn(12)}
	span := maxX - minX
	if rng.Float64() < 0.3 {
		p.Kind = PropSign
		p.Width = 4 + rng.Intn(max(1, span/3))
		p.Height = 3
		p.Color = neon[rng.Intn(len(neon))]
	} else {
		p.Width = 6 + rng.Intn(max(1, span/2))
		p.Height = 10 + rng.Intn(30)
		shade := uint8(25 + rng.Intn(30))
		p.Color = color.RGBA{shade, shade, shade + 20, 255}
	}
	p.Width = min(p.Width, span-2)
	p.X = minX + 1 + rng.Intn(max(1, span-p.Width-1))
	return p
}

var neon = []color.RGBA{
	{255, 40, 180, 255},
	{40, 230, 255, 255},
	{180, 80, 255, 255},
	{255, 220, 60, 255},
}

// Generate renders the backdrop for a seed
func (g *Generator) Generate(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	img.Fill(color.RGBA{10, 8, 22, 255})

	for _, p := range g.Props(seed) {
		for dy := 0; dy < p.Height; dy++ {
			for dx := 0; dx < p.Width; dx++ {
				px, py := p.X+dx, p.Y-dy
				if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
					img.Set(px, py, p.Color)
				}
			}
		}
		if p.Kind == PropTower {
			g.drawWindows(img, p)
		}
	}
	return img
}

// drawWindows lights every other row of a tower
func (g *Generator) drawWindows(img *ebiten.Image, p Prop) {
	lit := color.RGBA{255, 200, 90, 255}
	for dy := 2; dy < p.Height-1; dy += 4 {
		for dx := 1; dx < p.Width-1; dx += 3 {
			px, py := p.X+dx, p.Y-dy
			if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
				img.Set(px, py, lit)
			}
		}
	}
}
