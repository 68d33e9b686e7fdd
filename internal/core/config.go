package core

// RuntimeConfig contains configuration passed to the simulation by the platform.
// Frontends use the screen size to scale the logical canvas.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
	}
}

// Outcome tells the loop whether (and why) the run has ended.
type Outcome int

const (
	OutcomeRunning    Outcome = iota // Keep scheduling ticks
	OutcomeOutOfLives                // Lives reached zero
	OutcomeDefeated                  // A beam struck the paddle
	OutcomeQuit                      // Explicit quit or escape request
)

// Terminal reports whether the outcome ends the run.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeOutOfLives:
		return "out of lives"
	case OutcomeDefeated:
		return "defeated by the enemy"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState represents the current state of the run.
type GameState struct {
	Score   int     // Current score
	Lives   int     // Remaining lives
	Outcome Outcome // Whether the run has ended
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
