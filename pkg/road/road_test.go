package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTrackLanes(t *testing.T) {
	track := DefaultTrack()
	require.NoError(t, track.Validate())

	assert.Equal(t, 120.0, track.LaneWidth())
	assert.Equal(t, 120.0, track.LaneCenterX(0))
	assert.Equal(t, 240.0, track.LaneCenterX(1))
	assert.Equal(t, 360.0, track.LaneCenterX(2))
	assert.Equal(t, 420.0, track.Right())
}

func TestLaneAt(t *testing.T) {
	track := DefaultTrack()
	cases := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{61, 0},
		{179, 0},
		{180, 1},
		{300, 2},
		{1000, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, track.LaneAt(c.x), "x=%v", c.x)
	}
}

func TestNewTrackRejectsBadGeometry(t *testing.T) {
	_, err := NewTrack(0, 0, 100, 100)
	assert.Error(t, err)
	_, err = NewTrack(4, 0, 3, 100)
	assert.Error(t, err)
	_, err = NewTrack(2, 0, 100, 0)
	assert.Error(t, err)

	track, err := NewTrack(2, 10, 200, 400)
	require.NoError(t, err)
	assert.Equal(t, 60.0, track.LaneCenterX(0))
}
