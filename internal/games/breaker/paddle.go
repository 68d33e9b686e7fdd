package breaker

import (
	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
)

// Paddle is the player-controlled bar near the floor.
type Paddle struct {
	body
}

// newPaddle centers the paddle horizontally with its bottom FloorGap above
// the viewport bottom.
func newPaddle(cfg config.PaddleConfig, viewport core.Rect) *Paddle {
	p := &Paddle{}
	p.rect = core.NewRect(0, 0, cfg.Width, cfg.Height)
	p.rect.SetCenterX(viewport.CenterX())
	p.rect.SetBottom(viewport.Bottom() - cfg.FloorGap)
	return p
}

// Kind implements Entity.
func (p *Paddle) Kind() Kind { return KindPaddle }

func (p *Paddle) sprite() Sprite {
	return Sprite{ID: p.id, Kind: KindPaddle, Rect: p.rect, Glyph: '=', Color: core.ColorBrightCyan}
}

// updatePaddle centers the paddle on the pointer and keeps it inside the viewport.
func (g *Game) updatePaddle(p *Paddle, pointerX float64) {
	p.rect.SetCenterX(pointerX)
	p.rect = p.rect.ClampInside(g.viewport)
}
