package breaker

import (
	"time"

	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
)

// Enemy patrols horizontally and periodically fires a beam.
type Enemy struct {
	body
	Speed    float64       // Signed horizontal speed
	LastBeam time.Duration // Clock reading at the last emission
	Interval time.Duration
}

func newEnemy(cfg config.EnemyConfig) *Enemy {
	e := &Enemy{Speed: cfg.Speed, Interval: cfg.BeamInterval}
	e.rect = core.NewRect(cfg.X, cfg.Y, cfg.Width, cfg.Height)
	return e
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind { return KindEnemy }

func (e *Enemy) sprite() Sprite {
	return Sprite{ID: e.id, Kind: KindEnemy, Rect: e.rect, Glyph: 'W', Color: core.ColorMagenta}
}

// updateEnemy moves the enemy, turns it around at the viewport edges and
// emits a beam once the interval has elapsed.
func (g *Game) updateEnemy(e *Enemy) {
	e.rect.Translate(e.Speed, 0)
	if e.rect.Left() < g.viewport.Left() || e.rect.Right() > g.viewport.Right() {
		e.Speed = -e.Speed
	}

	now := g.clock.Now()
	if now-e.LastBeam > e.Interval {
		g.world.Spawn(g.newBeam(e.rect.CenterX(), e.rect.Bottom()))
		e.LastBeam = now
	}
}
