package breaker

import (
	"math"

	"github.com/vovakirdan/block-breaker/internal/core"
)

// hudRows is the number of screen rows reserved above the canvas.
const hudRows = 1

// Render draws the current frame. It is the render sink used by every backend.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.Snapshot(), g.viewport)
}

// RenderFrame draws the HUD on the first row and scales the logical canvas
// into the rest of the screen. Sprites are drawn in frame order.
func RenderFrame(dst *core.Screen, f Frame, viewport core.Rect) {
	dst.Clear()
	dst.DrawText(1, 0, f.Status, core.ColorBrightWhite)

	rows := dst.Height() - hudRows
	if rows <= 0 || dst.Width() <= 0 {
		return
	}
	sx := float64(dst.Width()) / viewport.W
	sy := float64(rows) / viewport.H

	for _, s := range f.Sprites {
		x, y, w, h := project(s.Rect, sx, sy)
		dst.FillRect(x, y+hudRows, w, h, s.Glyph, s.Color)
	}

	if f.Outcome.Terminal() {
		dst.DrawTextCentered(hudRows+rows/2, " "+f.Outcome.String()+" ", core.ColorBrightYellow)
	}
}

// project maps a logical rect onto screen cells. Every visible entity covers
// at least one cell.
func project(r core.Rect, sx, sy float64) (x, y, w, h int) {
	x = int(math.Floor(r.Left() * sx))
	y = int(math.Floor(r.Top() * sy))
	w = max(1, int(math.Ceil(r.Right()*sx))-x)
	h = max(1, int(math.Ceil(r.Bottom()*sy))-y)
	return x, y, w, h
}
