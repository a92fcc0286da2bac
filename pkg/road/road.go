package road

import "fmt"

// Track describes the drivable strip of road: a number of equal-width lanes
// laid out horizontally from X to X+Width, and Height pixels tall.
// A Track is fixed for the lifetime of a session.
type Track struct {
	Lanes  int     // Number of lanes (left to right)
	X      float64 // World X of the left road edge
	Width  float64 // Total road width in pixels
	Height float64 // Visible track height in pixels
}

// NewTrack creates a track and validates its geometry
func NewTrack(lanes int, x, width, height float64) (Track, error) {
	t := Track{Lanes: lanes, X: x, Width: width, Height: height}
	if err := t.Validate(); err != nil {
		return Track{}, err
	}
	return t, nil
}

// DefaultTrack is the 3-lane, 360px wide road used by the arcade cabinet layout
func DefaultTrack() Track {
	return Track{Lanes: 3, X: 60, Width: 360, Height: 720}
}

// Validate reports impossible geometry
func (t Track) Validate() error {
	if t.Lanes < 1 {
		return fmt.Errorf("track needs at least one lane, got %d", t.Lanes)
	}
	if t.Width < float64(t.Lanes) {
		return fmt.Errorf("track width %.0f too narrow for %d lanes", t.Width, t.Lanes)
	}
	if t.Height <= 0 {
		return fmt.Errorf("track height must be positive, got %.0f", t.Height)
	}
	return nil
}

// LaneWidth returns the width of a single lane. Lane widths are whole pixels,
// matching the integer lane grid the road markings are drawn on.
func (t Track) LaneWidth() float64 {
	return float64(int(t.Width) / t.Lanes)
}

// LaneCenterX returns the world X coordinate of the center of the given lane
func (t Track) LaneCenterX(lane int) float64 {
	lw := t.LaneWidth()
	return t.X + lw*float64(lane) + lw/2
}

// LaneAt returns the lane index containing world X, clamped to the road
func (t Track) LaneAt(x float64) int {
	lane := int((x - t.X) / t.LaneWidth())
	if lane < 0 {
		return 0
	}
	if lane >= t.Lanes {
		return t.Lanes - 1
	}
	return lane
}

// Right returns the world X of the right road edge
func (t Track) Right() float64 {
	return t.X + t.Width
}
