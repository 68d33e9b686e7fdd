package breaker

import "fmt"

// Score tracks points and remaining lives.
type Score struct {
	points    int
	lives     int
	exhausted bool
}

// NewScore creates a tracker with the given starting lives.
func NewScore(lives int) *Score {
	return &Score{lives: lives}
}

// Points returns the accumulated score.
func (s *Score) Points() int { return s.points }

// Lives returns the remaining lives.
func (s *Score) Lives() int { return s.lives }

// AddScore adds n points. Negative amounts are ignored so the score never decreases.
func (s *Score) AddScore(n int) {
	if n > 0 {
		s.points += n
	}
}

// SubtractLife removes one life, flooring at zero.
// It returns true exactly once: on the call that exhausts the last life.
func (s *Score) SubtractLife() bool {
	if s.lives > 0 {
		s.lives--
	}
	if s.lives == 0 && !s.exhausted {
		s.exhausted = true
		return true
	}
	return false
}

// String renders the HUD status line.
func (s *Score) String() string {
	return fmt.Sprintf("SCORE: %d | LIVES: %d", s.points, s.lives)
}
