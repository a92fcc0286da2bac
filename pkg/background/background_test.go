package background

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/neonrush/pkg/road"
)

func TestPropsStayOffTheRoad(t *testing.T) {
	g := NewGenerator(480, 720, road.DefaultTrack())
	props := g.Props(42)
	assert.NotEmpty(t, props)

	left, right := int(g.Track.X), int(g.Track.Right())
	for _, p := range props {
		onLeft := p.X+p.Width <= left
		onRight := p.X >= right
		assert.True(t, onLeft || onRight, "prop at x=%d w=%d overlaps road", p.X, p.Width)
	}
}

func TestPropsAreSeeded(t *testing.T) {
	g := NewGenerator(480, 720, road.DefaultTrack())
	assert.Equal(t, g.Props(9), g.Props(9))
}
