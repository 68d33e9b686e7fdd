package breaker

import "github.com/vovakirdan/block-breaker/internal/core"

// ItemKind identifies a pickup's effect.
type ItemKind int

const (
	ItemIncreaseBalls ItemKind = iota // Declared effect without behavior yet
	ItemBulletBall                    // Balls pass through blocks for a while
	itemKindCount
)

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemIncreaseBalls:
		return "increase_balls"
	case ItemBulletBall:
		return "bullet_ball"
	default:
		return "unknown"
	}
}

// Item is a falling pickup dropped by a destroyed block.
type Item struct {
	body
	Type ItemKind
	DY   float64
}

// newItem creates an item centered on (cx, cy) with a uniformly drawn kind.
func (g *Game) newItem(cx, cy float64) *Item {
	it := &Item{
		Type: ItemKind(g.rng.Intn(int(itemKindCount))),
		DY:   g.cfg.Items.FallSpeed,
	}
	it.rect = core.NewRect(0, 0, g.cfg.Items.Width, g.cfg.Items.Height)
	it.rect.SetCenter(cx, cy)
	return it
}

// Kind implements Entity.
func (it *Item) Kind() Kind { return KindItem }

func (it *Item) sprite() Sprite {
	s := Sprite{ID: it.id, Kind: KindItem, Rect: it.rect}
	switch it.Type {
	case ItemBulletBall:
		s.Glyph, s.Color = '!', core.ColorBrightRed
	default:
		s.Glyph, s.Color = '+', core.ColorBrightGreen
	}
	return s
}

// updateItem moves the item down and resolves paddle pickup and floor exit.
func (g *Game) updateItem(it *Item) {
	it.rect.Translate(0, it.DY)

	if p := g.world.paddle; p != nil && it.DY > 0 && it.rect.Intersects(p.rect) {
		g.applyItem(it.Type)
		g.world.Despawn(it)
		return
	}

	if it.rect.CenterY() > g.viewport.Bottom() {
		g.world.Despawn(it)
	}
}

// applyItem applies a pickup's effect to every live ball.
func (g *Game) applyItem(kind ItemKind) {
	switch kind {
	case ItemIncreaseBalls:
		g.logger.Debug("item picked up", "kind", kind, "effect", "none")
	case ItemBulletBall:
		for _, b := range g.world.balls {
			b.Bullet = true
			b.BulletTicks = g.cfg.Items.BulletTicks
		}
		g.logger.Debug("item picked up", "kind", kind, "ticks", g.cfg.Items.BulletTicks)
	}
}
