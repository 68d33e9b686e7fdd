package breaker

import (
	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
)

// Row glyphs and colors, cycling down the grid.
var (
	blockGlyphs = []rune{'█', '▓', '▒', '░'}
	blockColors = []core.Color{
		core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen, core.ColorCyan,
		core.ColorBlue, core.ColorMagenta, core.ColorBrightRed, core.ColorBrightYellow, core.ColorBrightGreen,
	}
)

// Block is a destructible obstacle placed on the grid.
type Block struct {
	body
	Column   int
	Row      int
	DropRate float64
}

// newBlock places a block at grid cell (col, row) measured from the viewport origin.
func newBlock(col, row int, cfg config.BlocksConfig, viewport core.Rect) *Block {
	b := &Block{Column: col, Row: row, DropRate: cfg.DropRate}
	b.rect = core.NewRect(
		viewport.Left()+float64(col)*cfg.Width,
		viewport.Top()+float64(row)*cfg.Height,
		cfg.Width, cfg.Height,
	)
	return b
}

// Kind implements Entity.
func (b *Block) Kind() Kind { return KindBlock }

func (b *Block) sprite() Sprite {
	return Sprite{
		ID:    b.id,
		Kind:  KindBlock,
		Rect:  b.rect,
		Glyph: blockGlyphs[b.Row%len(blockGlyphs)],
		Color: blockColors[b.Row%len(blockColors)],
	}
}

// crushBlock destroys a block and rolls for an item drop at its center.
func (g *Game) crushBlock(b *Block) {
	g.world.Despawn(b)
	if g.rng.Float64() < b.DropRate {
		cx, cy := b.rect.Center()
		g.world.Spawn(g.newItem(cx, cy))
	}
}
