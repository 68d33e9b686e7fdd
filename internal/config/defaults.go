package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the default block breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Viewport: ViewportConfig{
			Width:  400,
			Height: 400,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Paddle: PaddleConfig{
			Width:    60,
			Height:   10,
			FloorGap: 20,
		},
		Ball: BallConfig{
			Width:      10,
			Height:     10,
			Speed:      5,
			AngleLeft:  135,
			AngleRight: 45,
			SmallSize:  15,
			LargeSize:  20,
		},
		Blocks: BlocksConfig{
			Columns:      14,
			Rows:         10,
			Width:        25,
			Height:       10,
			OriginColumn: 1,
			OriginRow:    1,
			DropRate:     0.9,
		},
		Items: ItemsConfig{
			Width:       10,
			Height:      10,
			FallSpeed:   1,
			BulletTicks: 200,
		},
		Enemy: EnemyConfig{
			// Below the block grid; y 10 would overlap the blocks.
			X:            14,
			Y:            130,
			Width:        40,
			Height:       20,
			Speed:        4,
			BeamInterval: 2500 * time.Millisecond,
		},
		Beam: BeamConfig{
			Width:  5,
			Height: 15,
			Speed:  5,
		},
		Gameplay: GameplayConfig{
			Lives:        2,
			PointsPerHit: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakerYAML
}
