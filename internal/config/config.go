// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
//
// Positions and sizes are in world units, velocities in world units per tick
// and intervals are durations written as strings ("1300ms").
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	World      RunnerWorld      `yaml:"world"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Flyers     RunnerFlyers     `yaml:"flyers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerWorld defines the playfield of the runner.
type RunnerWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	Gravity      float64 `yaml:"gravity"`
	ScorePerSec  int     `yaml:"score_per_second"`
}

// RunnerPlayer defines the runner's body, jump and boost.
type RunnerPlayer struct {
	X             float64       `yaml:"x"`
	Size          float64       `yaml:"size"`
	JumpVelocity  float64       `yaml:"jump_velocity"`
	BoostDuration time.Duration `yaml:"boost_duration"`
	BoostCooldown time.Duration `yaml:"boost_cooldown"`
	BoostSpeed    float64       `yaml:"boost_speed"`
	BoostMaxShift float64       `yaml:"boost_max_offset"`
	ReturnSpeed   float64       `yaml:"return_speed"`
}

// RunnerObstacles defines ground obstacles.
type RunnerObstacles struct {
	Interval    time.Duration `yaml:"interval"`
	Speed       float64       `yaml:"speed"`
	HoleChance  float64       `yaml:"hole_chance"`
	BlockWidth  float64       `yaml:"block_width"`
	BlockHeight float64       `yaml:"block_height"`
	HoleWidth   float64       `yaml:"hole_width"`
}

// RunnerFlyers defines the sine-wave flying enemies.
type RunnerFlyers struct {
	Interval  time.Duration `yaml:"interval"`
	Speed     float64       `yaml:"speed"`
	Size      float64       `yaml:"size"`
	Amplitude float64       `yaml:"amplitude"`
	Frequency float64       `yaml:"frequency"`
}

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	World      InvadersWorld     `yaml:"world"`
	Player     InvadersPlayer    `yaml:"player"`
	Bullets    InvadersBullets   `yaml:"bullets"`
	Formation  InvadersFormation `yaml:"formation"`
	Shields    InvadersShields   `yaml:"shields"`
	Effects    InvadersEffects   `yaml:"effects"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersWorld defines the playfield of the invaders game.
type InvadersWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersPlayer defines the ship.
type InvadersPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	Lives        int     `yaml:"lives"`
	BottomMargin float64 `yaml:"bottom_margin"` // Distance from the ship's bottom to the world bottom
}

// InvadersBullets defines both sides' projectiles.
type InvadersBullets struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	MaxPlayer   int     `yaml:"max_player"`
	FireChance  float64 `yaml:"enemy_fire_chance"` // Per tick, while no enemy bullet is in flight
}

// InvadersFormation defines the enemy grid and its stepping.
type InvadersFormation struct {
	Rows         int           `yaml:"rows"`
	Cols         int           `yaml:"cols"`
	OriginX      float64       `yaml:"origin_x"`
	OriginY      float64       `yaml:"origin_y"`
	SpacingX     float64       `yaml:"spacing_x"`
	SpacingY     float64       `yaml:"spacing_y"`
	EnemyWidth   float64       `yaml:"enemy_width"`
	EnemyHeight  float64       `yaml:"enemy_height"`
	Step         float64       `yaml:"step"`
	Descend      float64       `yaml:"descend"`
	EdgeMargin   float64       `yaml:"edge_margin"`
	BaseInterval time.Duration `yaml:"base_interval"`
	MinInterval  time.Duration `yaml:"min_interval"`
	PerKill      time.Duration `yaml:"interval_per_kill"` // Interval shrink per destroyed enemy
}

// InvadersShields defines the destructible bunkers.
type InvadersShields struct {
	Count     int     `yaml:"count"`
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	CellSize  float64 `yaml:"cell_size"`
	OffsetX   float64 `yaml:"offset_x"`
	TopOffset float64 `yaml:"top_offset"` // Distance from the world bottom to the bunker tops
}

// InvadersEffects defines explosion flashes.
type InvadersEffects struct {
	Lifetime time.Duration `yaml:"lifetime"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", core.ErrInvalidConfiguration, s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports values the runner cannot start with.
func (c *RunnerConfig) Validate() error {
	var bad []string
	positive := func(name string, v float64) {
		if v <= 0 {
			bad = append(bad, name)
		}
	}
	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.size", c.Player.Size)
	positive("obstacles.block_width", c.Obstacles.BlockWidth)
	positive("obstacles.block_height", c.Obstacles.BlockHeight)
	positive("obstacles.hole_width", c.Obstacles.HoleWidth)
	positive("flyers.size", c.Flyers.Size)
	positive("obstacles.interval", float64(c.Obstacles.Interval))
	positive("flyers.interval", float64(c.Flyers.Interval))
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		bad = append(bad, "world.ground_height")
	}
	if c.Player.BoostDuration < 0 || c.Player.BoostCooldown < 0 {
		bad = append(bad, "player.boost_duration/boost_cooldown")
	}
	if c.Obstacles.HoleChance < 0 || c.Obstacles.HoleChance > 1 {
		bad = append(bad, "obstacles.hole_chance")
	}
	return invalid("runner", bad)
}

// Validate reports values the invaders game cannot start with.
func (c *InvadersConfig) Validate() error {
	var bad []string
	positive := func(name string, v float64) {
		if v <= 0 {
			bad = append(bad, name)
		}
	}
	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.lives", float64(c.Player.Lives))
	positive("bullets.width", c.Bullets.Width)
	positive("bullets.height", c.Bullets.Height)
	positive("bullets.max_player", float64(c.Bullets.MaxPlayer))
	positive("formation.rows", float64(c.Formation.Rows))
	positive("formation.cols", float64(c.Formation.Cols))
	positive("formation.enemy_width", c.Formation.EnemyWidth)
	positive("formation.enemy_height", c.Formation.EnemyHeight)
	positive("formation.min_interval", float64(c.Formation.MinInterval))
	positive("shields.cell_size", c.Shields.CellSize)
	positive("effects.lifetime", float64(c.Effects.Lifetime))
	if c.Bullets.FireChance < 0 || c.Bullets.FireChance > 1 {
		bad = append(bad, "bullets.enemy_fire_chance")
	}
	if c.Formation.BaseInterval < c.Formation.MinInterval {
		bad = append(bad, "formation.base_interval")
	}
	if c.Shields.Count < 0 || c.Shields.Rows < 0 || c.Shields.Cols < 0 {
		bad = append(bad, "shields")
	}
	return invalid("invaders", bad)
}

func invalid(game string, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: bad values for %v", core.ErrInvalidConfiguration, game, fields)
}
