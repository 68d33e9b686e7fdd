package breaker

import (
	"math"

	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
)

// BallState is the ball's per-life state.
type BallState int

const (
	BallIdle     BallState = iota // Resting on the paddle, waiting for fire
	BallLaunched                  // In flight
)

// String returns the name of the state.
func (s BallState) String() string {
	switch s {
	case BallIdle:
		return "idle"
	case BallLaunched:
		return "launched"
	default:
		return "unknown"
	}
}

// Ball is the primary moving entity.
type Ball struct {
	body
	DX, DY      float64
	State       BallState
	Hit         int // Blocks destroyed since the last paddle contact
	Bullet      bool
	BulletTicks int
	Speed       float64
	AngleLeft   float64 // Degrees at the paddle's left anchor
	AngleRight  float64 // Degrees at the paddle's right anchor
}

func newBall(cfg config.BallConfig) *Ball {
	b := &Ball{
		State:      BallIdle,
		Speed:      cfg.Speed,
		AngleLeft:  cfg.AngleLeft,
		AngleRight: cfg.AngleRight,
	}
	b.rect = core.NewRect(0, 0, cfg.Width, cfg.Height)
	return b
}

// Kind implements Entity.
func (b *Ball) Kind() Kind { return KindBall }

func (b *Ball) sprite() Sprite {
	s := Sprite{ID: b.id, Kind: KindBall, Rect: b.rect, Glyph: '●', Color: core.ColorBrightWhite}
	if b.Bullet {
		s.Color = core.ColorBrightRed
	}
	return s
}

// Velocity returns the ball's speed magnitude.
func (b *Ball) Velocity() float64 {
	return math.Hypot(b.DX, b.DY)
}

// updateBall is the single update entry point; it dispatches on state.
func (g *Game) updateBall(b *Ball, in core.InputFrame) {
	switch b.State {
	case BallIdle:
		g.updateIdleBall(b, in)
	case BallLaunched:
		g.updateLaunchedBall(b, in)
	}
}

// updateIdleBall locks the ball on top of the paddle until fire is held.
func (g *Game) updateIdleBall(b *Ball, in core.InputFrame) {
	if p := g.world.paddle; p != nil {
		b.rect.SetCenterX(p.rect.CenterX())
		b.rect.SetBottom(p.rect.Top())
	}
	if in.Has(core.ActionFire) {
		b.DX = 0
		b.DY = -b.Speed
		b.State = BallLaunched
	}
}

func (g *Game) updateLaunchedBall(b *Ball, in core.InputFrame) {
	prev := b.rect

	b.rect.Translate(b.DX, b.DY)

	g.bounceOffWalls(b)

	if p := g.world.paddle; p != nil && b.DY > 0 && b.rect.Intersects(p.rect) {
		b.Hit = 0
		theta := ReflectionAngle(b.rect, p.rect, b.AngleLeft, b.AngleRight) * math.Pi / 180
		b.DX = b.Speed * math.Cos(theta)
		b.DY = -b.Speed * math.Sin(theta)
		g.audio.Play(CuePaddleHit)
	}

	if b.rect.Top() > g.viewport.Bottom() {
		b.State = BallIdle
		g.logger.Debug("ball lost", "lives", g.score.Lives()-1)
		if g.score.SubtractLife() {
			g.finish(core.OutcomeOutOfLives)
			return
		}
	}

	for _, blk := range g.world.blocksOverlapping(b.rect) {
		if !b.Bullet {
			b.bounceOff(prev, blk.rect)
		}
		b.Hit++
		g.score.AddScore(b.Hit * g.cfg.Gameplay.PointsPerHit)
		g.audio.Play(CueBlockHit)
		g.crushBlock(blk)
	}

	if b.Bullet {
		b.BulletTicks--
		if b.BulletTicks <= 0 {
			b.Bullet = false
			b.BulletTicks = 0
		}
	}

	switch {
	case in.Has(core.ActionSizeSmall):
		b.rect.Resize(g.cfg.Ball.SmallSize, g.cfg.Ball.SmallSize)
		g.keepInsideWalls(b)
	case in.Has(core.ActionSizeLarge):
		b.rect.Resize(g.cfg.Ball.LargeSize, g.cfg.Ball.LargeSize)
		g.keepInsideWalls(b)
	}
}

// keepInsideWalls pushes a resized ball back inside the left, right and top
// edges without touching its velocity.
func (g *Game) keepInsideWalls(b *Ball) {
	if b.rect.Left() < g.viewport.Left() {
		b.rect.SetLeft(g.viewport.Left())
	}
	if b.rect.Right() > g.viewport.Right() {
		b.rect.SetRight(g.viewport.Right())
	}
	if b.rect.Top() < g.viewport.Top() {
		b.rect.SetTop(g.viewport.Top())
	}
}

// bounceOffWalls clamps the ball to the left, right and top viewport edges,
// inverting the matching velocity component. The bottom edge is open.
func (g *Game) bounceOffWalls(b *Ball) {
	if b.rect.Left() < g.viewport.Left() {
		b.rect.SetLeft(g.viewport.Left())
		b.DX = -b.DX
	}
	if b.rect.Right() > g.viewport.Right() {
		b.rect.SetRight(g.viewport.Right())
		b.DX = -b.DX
	}
	if b.rect.Top() < g.viewport.Top() {
		b.rect.SetTop(g.viewport.Top())
		b.DY = -b.DY
	}
}

// bounceOff resolves a block contact by comparing the ball's AABB before
// this tick's move with the block. Every matching side applies, so one
// contact can invert both axes.
func (b *Ball) bounceOff(prev, block core.Rect) {
	if prev.Left() < block.Left() && prev.Right() < block.Right() {
		b.rect.SetRight(block.Left())
		b.DX = -b.DX
	}
	if block.Left() < prev.Left() && block.Right() < prev.Right() {
		b.rect.SetLeft(block.Right())
		b.DX = -b.DX
	}
	if prev.Top() < block.Top() && prev.Bottom() < block.Bottom() {
		b.rect.SetBottom(block.Top())
		b.DY = -b.DY
	}
	if block.Top() < prev.Top() && block.Bottom() < prev.Bottom() {
		b.rect.SetTop(block.Bottom())
		b.DY = -b.DY
	}
}

// ReflectionAngle maps the ball's left edge onto a paddle reflection angle in
// degrees. The anchor paddle.Left()-ball.W yields left and paddle.Right()
// yields right; positions in between are linearly interpolated.
func ReflectionAngle(ball, paddle core.Rect, left, right float64) float64 {
	x1 := paddle.Left() - ball.W
	x2 := paddle.Right()
	return (right-left)/(x2-x1)*(ball.Left()-x1) + left
}
