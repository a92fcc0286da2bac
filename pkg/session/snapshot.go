package session

import (
	"github.com/golangdaddy/neonrush/pkg/road"
	"github.com/golangdaddy/neonrush/pkg/vehicle"
)

// Snapshot is a read-only view of a session between ticks, for renderers
type Snapshot struct {
	Track      road.Track
	Player     vehicle.Rect
	PlayerLane int
	Opponents  []vehicle.Rect
	Score      int
	Level      int
	Speed      float64
	Running    bool
}

// Snapshot copies the state a renderer needs
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Track:      s.track,
		Player:     s.player.Bounds(),
		PlayerLane: s.player.Lane(s.track),
		Opponents:  s.traffic.Bounds(),
		Score:      s.score.Total(),
		Level:      s.traffic.Level(),
		Speed:      s.traffic.CurrentSpeed(),
		Running:    s.state == StateRunning,
	}
}
