package breaker

import "time"

// Cue identifies a fire-and-forget sound effect.
type Cue int

const (
	CuePaddleHit Cue = iota // Ball reflected off the paddle
	CueBlockHit             // Ball destroyed a block
	CueGameOver             // The run reached a terminal outcome
)

// String returns the name of the cue.
func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle-hit"
	case CueBlockHit:
		return "block-hit"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// AudioSink plays cues. Implementations must not block the tick.
type AudioSink interface {
	Play(c Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements AudioSink.
func (NopAudio) Play(Cue) {}

// Clock reports monotonic time elapsed since the run started.
// The enemy uses it to pace beam emission.
type Clock interface {
	Now() time.Duration
}

// wallClock measures elapsed time from its creation.
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() time.Duration {
	return time.Since(c.start)
}
