package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// user and local config files cannot leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultBreakerConfig() {
		t.Errorf("embedded defaults drifted from DefaultBreakerConfig:\n%+v\n%+v", cfg, DefaultBreakerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultBreakerConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadBreakerFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadBreaker("")
	if err != nil {
		t.Fatalf("LoadBreaker: %v", err)
	}
	if cfg != DefaultBreakerConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadBreakerCustomPathPartialOverride(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  speed: 8\nenemy:\n  beam_interval: 1s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreaker(path)
	if err != nil {
		t.Fatalf("LoadBreaker: %v", err)
	}
	if cfg.Ball.Speed != 8 {
		t.Errorf("ball.speed = %v, expected 8", cfg.Ball.Speed)
	}
	if cfg.Enemy.BeamInterval != time.Second {
		t.Errorf("enemy.beam_interval = %s, expected 1s", cfg.Enemy.BeamInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Blocks.Columns != 14 || cfg.Gameplay.Lives != 2 {
		t.Errorf("partial override clobbered defaults: %+v", cfg)
	}
}

func TestLoadBreakerLocalDirectory(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(localConfigPath, []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreaker("")
	if err != nil {
		t.Fatalf("LoadBreaker: %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("lives = %d, expected 4 from ./configs", cfg.Gameplay.Lives)
	}
}

func TestLoadBreakerErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadBreaker(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing custom file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("ball: [oops"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadBreaker(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("viewport:\n  width: 0\nball:\n  speed: -5\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadBreaker(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
		for _, field := range []string{"viewport.width", "ball.speed"} {
			if !strings.Contains(err.Error(), field) {
				t.Errorf("error should mention %s: %v", field, err)
			}
		}
	})
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakerConfig)
		field  string
	}{
		{"zero viewport", func(c *BreakerConfig) { c.Viewport.Height = 0 }, "viewport.height"},
		{"negative ball speed", func(c *BreakerConfig) { c.Ball.Speed = -1 }, "ball.speed"},
		{"negative enemy speed", func(c *BreakerConfig) { c.Enemy.Speed = -4 }, "enemy.speed"},
		{"drop rate above one", func(c *BreakerConfig) { c.Blocks.DropRate = 1.5 }, "drop_rate"},
		{"no lives", func(c *BreakerConfig) { c.Gameplay.Lives = 0 }, "gameplay.lives"},
		{"equal angles", func(c *BreakerConfig) { c.Ball.AngleRight = c.Ball.AngleLeft }, "angle"},
		{"paddle wider than viewport", func(c *BreakerConfig) { c.Paddle.Width = 500 }, "paddle.width"},
		{"zero tick rate", func(c *BreakerConfig) { c.Loop.TickRate = 0 }, "tick_rate"},
		{"enemy past right edge", func(c *BreakerConfig) { c.Enemy.X = 390 }, "enemy start"},
		{"enemy above top edge", func(c *BreakerConfig) { c.Enemy.Y = -5 }, "enemy start"},
		{"grid wider than viewport", func(c *BreakerConfig) { c.Blocks.Columns = 40 }, "blocks.columns"},
		{"grid taller than viewport", func(c *BreakerConfig) { c.Blocks.Rows = 40 }, "blocks.rows"},
		{"ball larger than viewport", func(c *BreakerConfig) { c.Ball.Width = 450 }, "ball.width"},
		{"large size larger than viewport", func(c *BreakerConfig) { c.Ball.LargeSize = 401 }, "ball.large_size"},
		{"small size larger than viewport", func(c *BreakerConfig) { c.Ball.SmallSize = 500 }, "ball.small_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestApplyBreakerPreset(t *testing.T) {
	easy := DefaultBreakerConfig()
	ApplyBreakerPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives <= 2 || easy.Enemy.BeamInterval <= 2500*time.Millisecond {
		t.Errorf("easy preset should be more forgiving: %+v", easy)
	}

	hard := DefaultBreakerConfig()
	ApplyBreakerPreset(&hard, DifficultyHard)
	if hard.Ball.Speed <= 5 || hard.Enemy.BeamInterval >= 2500*time.Millisecond {
		t.Errorf("hard preset should be harsher: %+v", hard)
	}

	normal := DefaultBreakerConfig()
	ApplyBreakerPreset(&normal, DifficultyNormal)
	if normal != DefaultBreakerConfig() {
		t.Error("normal preset should keep configured values")
	}

	for _, cfg := range []BreakerConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) rejected", s)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset accepted")
	}
}

func TestMarshalEncodesDuration(t *testing.T) {
	data, err := DefaultBreakerConfig().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "beam_interval: 2.5s") {
		t.Errorf("duration should encode as a string:\n%s", data)
	}
}
