// Package audio plays the simulation's sound cues as short synthesized
// square-wave tones through the system speaker.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/block-breaker/internal/games/breaker"
)

const sampleRate = beep.SampleRate(44100)

// Player implements breaker.AudioSink. A zero Player is silent.
type Player struct {
	enabled bool
}

// Open initializes the speaker. On failure it returns a silent player along
// with the error, so callers can log it and keep running.
func Open() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return &Player{}, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Player{enabled: true}, nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool { return p.enabled }

// Play queues the tone for c without blocking.
func (p *Player) Play(c breaker.Cue) {
	if !p.enabled {
		return
	}
	if s := cueStreamer(c); s != nil {
		speaker.Play(s)
	}
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// cueStreamer builds the tone for a cue, or nil for an unknown cue.
func cueStreamer(c breaker.Cue) beep.Streamer {
	switch c {
	case breaker.CuePaddleHit:
		return squareWave(880, 50*time.Millisecond)
	case breaker.CueBlockHit:
		return squareWave(440, 30*time.Millisecond)
	case breaker.CueGameOver:
		// Descending three-note phrase
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	default:
		return nil
	}
}

// squareWave generates a square tone of the given frequency and length.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	remaining := sampleRate.N(duration)
	phase := 0.0
	step := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			val := 0.2
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += step
			remaining--
		}
		return len(samples), true
	})
}
