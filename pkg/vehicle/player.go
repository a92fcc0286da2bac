package vehicle

import "github.com/golangdaddy/neonrush/pkg/road"

// PlayerSpec holds the player car's dimensions and handling
type PlayerSpec struct {
	Width        int     // Car width in pixels
	Height       int     // Car height in pixels
	LateralSpeed float64 // Pixels moved per tick while steering
	Margin       float64 // Gap kept between the car and each road edge
	BottomOffset float64 // Gap between the car's rear and the bottom of the track
}

// DefaultPlayerSpec matches the classic cabinet car
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Width:        54,
		Height:       92,
		LateralSpeed: 6.0,
		Margin:       8,
		BottomOffset: 50,
	}
}

// Player is the player-controlled car. It only ever moves sideways;
// the road scrolls past it.
type Player struct {
	Vehicle
	LateralSpeed float64
	MinX, MaxX   float64 // Inclusive movement bounds
}

// NewPlayer places the car centered in the leftmost lane, near the bottom of the track
func NewPlayer(track road.Track, spec PlayerSpec) *Player {
	p := &Player{
		Vehicle: Vehicle{
			X:      track.LaneCenterX(0) - float64(spec.Width)/2,
			Y:      track.Height - float64(spec.Height) - spec.BottomOffset,
			Width:  spec.Width,
			Height: spec.Height,
		},
		LateralSpeed: spec.LateralSpeed,
		MinX:         track.X + spec.Margin,
		MaxX:         track.Right() - float64(spec.Width) - spec.Margin,
	}
	p.clamp()
	return p
}

// MoveLeft steers one step to the left
func (p *Player) MoveLeft() {
	p.X -= p.LateralSpeed
	p.clamp()
}

// MoveRight steers one step to the right
func (p *Player) MoveRight() {
	p.X += p.LateralSpeed
	p.clamp()
}

// Lane returns the lane the car's center is currently in
func (p *Player) Lane(track road.Track) int {
	return track.LaneAt(p.Bounds().CenterX())
}

func (p *Player) clamp() {
	if p.X < p.MinX {
		p.X = p.MinX
	}
	if p.X > p.MaxX {
		p.X = p.MaxX
	}
}
