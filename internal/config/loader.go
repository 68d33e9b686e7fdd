package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is the working-directory override checked after the user file.
const localConfigPath = "configs/breaker.yaml"

// LoadBreaker loads and validates the block breaker configuration.
// Search order: customPath -> ~/.arcade/configs/breaker.yaml -> ./configs/breaker.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadBreaker(customPath string) (BreakerConfig, error) {
	cfg, err := loadBreaker(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadBreaker(customPath string) (BreakerConfig, error) {
	cfg := DefaultBreakerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breaker.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", localConfigPath, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakerYAML, &cfg); err != nil {
		return DefaultBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders the configuration as YAML.
func (c BreakerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ApplyBreakerPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyBreakerPreset(cfg *BreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ball.Speed = 4
		cfg.Enemy.Speed = 3
		cfg.Enemy.BeamInterval = cfg.Enemy.BeamInterval * 3 / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Ball.Speed = 7
		cfg.Enemy.Speed = 6
		cfg.Enemy.BeamInterval = cfg.Enemy.BeamInterval * 2 / 3
	}
}
