package breaker

import "github.com/vovakirdan/block-breaker/internal/core"

// Sprite is the render-facing view of one entity.
type Sprite struct {
	ID    EntityID
	Kind  Kind
	Rect  core.Rect
	Glyph rune
	Color core.Color
}

// Frame is a read-only snapshot of the simulation after a tick.
// Sprites are listed in draw order.
type Frame struct {
	Tick    int
	Score   int
	Lives   int
	Status  string // HUD line
	Outcome core.Outcome
	Sprites []Sprite
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Frame {
	sprites := make([]Sprite, 0, g.world.Len())
	for _, e := range g.world.order {
		sprites = append(sprites, e.sprite())
	}
	return Frame{
		Tick:    g.tick,
		Score:   g.score.Points(),
		Lives:   g.score.Lives(),
		Status:  g.score.String(),
		Outcome: g.outcome,
		Sprites: sprites,
	}
}
