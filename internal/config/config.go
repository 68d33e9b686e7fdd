// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the block breaker.
package config

import "time"

// BreakerConfig contains all construction-time parameters of a run.
type BreakerConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Loop     LoopConfig     `yaml:"loop"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Items    ItemsConfig    `yaml:"items"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Beam     BeamConfig     `yaml:"beam"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ViewportConfig defines the logical canvas size.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoopConfig defines simulation pacing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FloorGap float64 `yaml:"floor_gap"` // Distance from paddle bottom to viewport bottom
}

// BallConfig defines ball size, speed and paddle reflection.
type BallConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`       // Units per tick
	AngleLeft  float64 `yaml:"angle_left"`  // Degrees, reflection at the paddle's left edge
	AngleRight float64 `yaml:"angle_right"` // Degrees, reflection at the paddle's right edge
	SmallSize  float64 `yaml:"small_size"`  // Side length while the small modifier is held
	LargeSize  float64 `yaml:"large_size"`  // Side length while the large modifier is held
}

// BlocksConfig defines the block grid.
type BlocksConfig struct {
	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	OriginColumn int     `yaml:"origin_column"` // Grid index of the first column
	OriginRow    int     `yaml:"origin_row"`    // Grid index of the first row
	DropRate     float64 `yaml:"drop_rate"`     // Probability a destroyed block drops an item
}

// ItemsConfig defines falling pickups.
type ItemsConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FallSpeed   float64 `yaml:"fall_speed"`
	BulletTicks int     `yaml:"bullet_ticks"` // Bullet mode duration
}

// EnemyConfig defines the patrolling enemy.
type EnemyConfig struct {
	X            float64       `yaml:"x"`
	Y            float64       `yaml:"y"`
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	Speed        float64       `yaml:"speed"`
	BeamInterval time.Duration `yaml:"beam_interval"`
}

// BeamConfig defines enemy projectiles.
type BeamConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	PointsPerHit int `yaml:"points_per_hit"` // Multiplied by the consecutive hit counter
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// "no preset" and is returned as-is.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
