package breaker

import "github.com/vovakirdan/block-breaker/internal/core"

// Beam is an enemy projectile falling at constant speed.
type Beam struct {
	body
	Speed float64
}

// newBeam creates a beam with its top-left corner at (x, y).
func (g *Game) newBeam(x, y float64) *Beam {
	b := &Beam{Speed: g.cfg.Beam.Speed}
	b.rect = core.NewRect(x, y, g.cfg.Beam.Width, g.cfg.Beam.Height)
	return b
}

// Kind implements Entity.
func (b *Beam) Kind() Kind { return KindBeam }

func (b *Beam) sprite() Sprite {
	return Sprite{ID: b.id, Kind: KindBeam, Rect: b.rect, Glyph: '|', Color: core.ColorRed}
}

// updateBeam moves the beam, removes it once it has left the viewport and
// ends the run when it strikes the paddle.
func (g *Game) updateBeam(b *Beam) {
	b.rect.Translate(0, b.Speed)

	if b.rect.Bottom() < g.viewport.Top() || b.rect.Top() > g.viewport.Bottom() {
		g.world.Despawn(b)
		return
	}

	if p := g.world.paddle; p != nil && b.rect.Intersects(p.rect) {
		g.finish(core.OutcomeDefeated)
	}
}
