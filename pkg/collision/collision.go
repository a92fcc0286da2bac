// Package collision detects overlaps between the player car and traffic.
package collision

import "github.com/golangdaddy/neonrush/pkg/vehicle"

// Overlaps reports whether two boxes share a non-zero area.
// Overlaps(a, b) == Overlaps(b, a).
func Overlaps(a, b vehicle.Rect) bool {
	return a.Intersects(b)
}

// Any reports whether the player box overlaps any obstacle box.
// It stops at the first hit.
func Any(player vehicle.Rect, obstacles []vehicle.Rect) bool {
	return First(player, obstacles) >= 0
}

// First returns the index of the first obstacle the player overlaps, or -1
func First(player vehicle.Rect, obstacles []vehicle.Rect) int {
	for i, o := range obstacles {
		if Overlaps(player, o) {
			return i
		}
	}
	return -1
}
