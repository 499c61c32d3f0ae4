package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadRunner loads the endless runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner.yaml", customPath, defaultRunnerYAML, DefaultRunnerConfig)
}

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders.yaml", customPath, defaultInvadersYAML, DefaultInvadersConfig)
}

// load decodes the first readable source over the hard-coded defaults, so a
// file only needs the keys it overrides.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Warn("ignoring unparsable config", "path", path, "err", err)
			continue
		}
		log.Debug("loaded config", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
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

func applyProgression(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyProgression(&cfg.Difficulty, preset)

	// Adjust spawning based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Interval = 1600 * time.Millisecond
		cfg.Obstacles.HoleChance = 0.2
		cfg.Flyers.Interval = 5 * time.Second
	case DifficultyHard:
		cfg.Obstacles.Interval = 1000 * time.Millisecond
		cfg.Obstacles.HoleChance = 0.4
		cfg.Flyers.Interval = 3 * time.Second
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyProgression(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Bullets.FireChance = 0.01
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Bullets.FireChance = 0.03
		cfg.Formation.BaseInterval = 500 * time.Millisecond
	}
}
