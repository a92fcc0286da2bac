package session

import "math"

// autopilotDeadband keeps the car from twitching around a lane center
const autopilotDeadband = 3.0

// Autopilot steers towards the lane whose nearest car ahead is farthest
// away, staying put when the current lane is as good as any other.
func Autopilot(s Snapshot) Input {
	if !s.Running || s.Track.Lanes == 0 {
		return Input{}
	}
	best := s.PlayerLane
	bestGap := laneGap(s, best)
	for lane := 0; lane < s.Track.Lanes; lane++ {
		if gap := laneGap(s, lane); gap > bestGap {
			best, bestGap = lane, gap
		}
	}

	target := s.Track.LaneCenterX(best)
	cx := s.Player.CenterX()
	switch {
	case target < cx-autopilotDeadband:
		return Input{Left: true}
	case target > cx+autopilotDeadband:
		return Input{Right: true}
	}
	return Input{}
}

// laneGap is the distance from the player's nose to the closest car in the
// lane that has not yet gone past the player
func laneGap(s Snapshot, lane int) float64 {
	lw := s.Track.LaneWidth()
	x0 := s.Track.X + lw*float64(lane)
	x1 := x0 + lw

	gap := math.Inf(1)
	for _, o := range s.Opponents {
		if o.X1 <= x0 || o.X0 >= x1 || o.Y0 >= s.Player.Y1 {
			continue
		}
		gap = math.Min(gap, s.Player.Y0-o.Y1)
	}
	return gap
}
