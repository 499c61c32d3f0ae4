package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultRunnerConfig returns the default endless runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:        1200,
			Height:       600,
			GroundHeight: 50,
			Gravity:      0.9,
			ScorePerSec:  100,
		},
		Player: RunnerPlayer{
			X:             150,
			Size:          50,
			JumpVelocity:  -18,
			BoostDuration: 500 * time.Millisecond,
			BoostCooldown: 3 * time.Second,
			BoostSpeed:    20,
			BoostMaxShift: 200,
			ReturnSpeed:   5,
		},
		Obstacles: RunnerObstacles{
			Interval:    1300 * time.Millisecond,
			Speed:       10,
			HoleChance:  0.3,
			BlockWidth:  40,
			BlockHeight: 70,
			HoleWidth:   70,
		},
		Flyers: RunnerFlyers{
			Interval:  4 * time.Second,
			Speed:     7,
			Size:      40,
			Amplitude: 100,
			Frequency: 0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 120, // Two minutes
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: InvadersWorld{
			Width:  1024,
			Height: 768,
		},
		Player: InvadersPlayer{
			Width:        80,
			Height:       60,
			Speed:        8,
			Lives:        3,
			BottomMargin: 40,
		},
		Bullets: InvadersBullets{
			Width:       6,
			Height:      18,
			PlayerSpeed: 12,
			EnemySpeed:  5,
			MaxPlayer:   3,
			FireChance:  0.02,
		},
		Formation: InvadersFormation{
			Rows:         5,
			Cols:         12,
			OriginX:      100,
			OriginY:      80,
			SpacingX:     70,
			SpacingY:     60,
			EnemyWidth:   60,
			EnemyHeight:  50,
			Step:         10,
			Descend:      28,
			EdgeMargin:   10,
			BaseInterval: 600 * time.Millisecond,
			MinInterval:  80 * time.Millisecond,
			PerKill:      12 * time.Millisecond,
		},
		Shields: InvadersShields{
			Count:     4,
			Rows:      8,
			Cols:      12,
			CellSize:  10,
			OffsetX:   150,
			TopOffset: 200,
		},
		Effects: InvadersEffects{
			Lifetime: 180 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
