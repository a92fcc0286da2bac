package model

import (
	"encoding/binary"
	"math"
	"time"
)

// Tone synthesizes a sine beep as 16-bit signed little-endian stereo PCM,
// with a short linear fade out to avoid a click at the end
func Tone(sampleRate int, hz float64, d time.Duration, volume float64) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*4)
	fade := n / 10
	for i := 0; i < n; i++ {
		amp := volume
		if remaining := n - i; fade > 0 && remaining < fade {
			amp *= float64(remaining) / float64(fade)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*hz*float64(i)/float64(sampleRate)))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
