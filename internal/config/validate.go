package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
// All problems are reported at once.
func (c BreakerConfig) Validate() error {
	var errs []error
	positive := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, field, v))
		}
	}
	positiveInt := func(field string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field, v))
		}
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positiveInt("loop.tick_rate", c.Loop.TickRate)

	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	if c.Paddle.FloorGap < 0 {
		errs = append(errs, fmt.Errorf("%w: paddle.floor_gap must not be negative, got %v", ErrInvalidConfig, c.Paddle.FloorGap))
	}
	if c.Paddle.Width > c.Viewport.Width {
		errs = append(errs, fmt.Errorf("%w: paddle.width %v exceeds viewport width %v", ErrInvalidConfig, c.Paddle.Width, c.Viewport.Width))
	}
	if c.Paddle.Height+c.Paddle.FloorGap > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("%w: paddle does not fit in viewport height %v", ErrInvalidConfig, c.Viewport.Height))
	}

	positive("ball.width", c.Ball.Width)
	positive("ball.height", c.Ball.Height)
	positive("ball.speed", c.Ball.Speed)
	positive("ball.small_size", c.Ball.SmallSize)
	positive("ball.large_size", c.Ball.LargeSize)
	for _, size := range []struct {
		field string
		v     float64
	}{
		{"ball.width", c.Ball.Width},
		{"ball.height", c.Ball.Height},
		{"ball.small_size", c.Ball.SmallSize},
		{"ball.large_size", c.Ball.LargeSize},
	} {
		if size.v > min(c.Viewport.Width, c.Viewport.Height) {
			errs = append(errs, fmt.Errorf("%w: %s %v does not fit in the viewport", ErrInvalidConfig, size.field, size.v))
		}
	}
	if c.Ball.AngleLeft == c.Ball.AngleRight {
		errs = append(errs, fmt.Errorf("%w: ball.angle_left and ball.angle_right must differ", ErrInvalidConfig))
	}

	positiveInt("blocks.columns", c.Blocks.Columns)
	positiveInt("blocks.rows", c.Blocks.Rows)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	if c.Blocks.OriginColumn < 0 || c.Blocks.OriginRow < 0 {
		errs = append(errs, fmt.Errorf("%w: blocks origin must not be negative", ErrInvalidConfig))
	}
	if float64(c.Blocks.OriginColumn+c.Blocks.Columns)*c.Blocks.Width > c.Viewport.Width {
		errs = append(errs, fmt.Errorf("%w: blocks.columns grid is wider than viewport width %v", ErrInvalidConfig, c.Viewport.Width))
	}
	if float64(c.Blocks.OriginRow+c.Blocks.Rows)*c.Blocks.Height > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("%w: blocks.rows grid is taller than viewport height %v", ErrInvalidConfig, c.Viewport.Height))
	}
	if c.Blocks.DropRate < 0 || c.Blocks.DropRate > 1 {
		errs = append(errs, fmt.Errorf("%w: blocks.drop_rate must be within [0, 1], got %v", ErrInvalidConfig, c.Blocks.DropRate))
	}

	positive("items.width", c.Items.Width)
	positive("items.height", c.Items.Height)
	positive("items.fall_speed", c.Items.FallSpeed)
	positiveInt("items.bullet_ticks", c.Items.BulletTicks)

	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.speed", c.Enemy.Speed)
	if c.Enemy.X < 0 || c.Enemy.Y < 0 ||
		c.Enemy.X+c.Enemy.Width > c.Viewport.Width || c.Enemy.Y+c.Enemy.Height > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("%w: enemy start (%v, %v) does not fit in the viewport", ErrInvalidConfig, c.Enemy.X, c.Enemy.Y))
	}
	if c.Enemy.BeamInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: enemy.beam_interval must be positive, got %s", ErrInvalidConfig, c.Enemy.BeamInterval))
	}

	positive("beam.width", c.Beam.Width)
	positive("beam.height", c.Beam.Height)
	positive("beam.speed", c.Beam.Speed)

	positiveInt("gameplay.lives", c.Gameplay.Lives)
	positiveInt("gameplay.points_per_hit", c.Gameplay.PointsPerHit)

	return errors.Join(errs...)
}
