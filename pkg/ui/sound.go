package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/ui/model"
)

const sampleRate = 48000

var (
	crashTone = model.Tone(sampleRate, 220, 180*time.Millisecond, 0.4)
	// held so the player is not collected while it plays
	crashPlayer *audio.Player
)

// audioContext returns the process-wide audio context, creating it on first use
func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// playCrash plays the crash beep
func playCrash(muted bool) {
	if muted {
		return
	}
	if crashPlayer != nil {
		_ = crashPlayer.Close()
	}
	crashPlayer = audioContext().NewPlayerFromBytes(crashTone)
	crashPlayer.Play()
	log.Debug().Msg("crash beep")
}
