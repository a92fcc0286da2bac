package vehicle

// Rect is an axis-aligned bounding box in world pixels.
// X0,Y0 is the top-left corner and X1,Y1 the bottom-right corner.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Intersects reports a non-zero-area overlap between two boxes.
// Boxes that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

// Width of the box
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height of the box
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// CenterX returns the horizontal midpoint
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// Vehicle is the geometric state shared by the player car and traffic cars
type Vehicle struct {
	X, Y          float64 // Top-left corner in world space
	Width, Height int     // Size in pixels
}

// Bounds returns the vehicle's bounding box [x, y, x+width, y+height]
func (v Vehicle) Bounds() Rect {
	return Rect{
		X0: v.X,
		Y0: v.Y,
		X1: v.X + float64(v.Width),
		Y1: v.Y + float64(v.Height),
	}
}
