package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blitz-arcade/internal/config"
	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/engine"
)

// session is the state of one run. It is replaced wholesale on restart.
type session struct {
	ids engine.IDSource

	player    *engine.Entity
	obstacles *engine.Collection
	flyers    *engine.Collection

	obstacleSpawner *engine.Spawner
	flyerSpawner    *engine.Spawner

	start time.Duration
	score int
}

func newSession(cfg *config.RunnerConfig, now time.Duration, rng *rand.Rand, obstacleSpeed, flyerSpeed func() float64) *session {
	s := &session{
		obstacles: engine.NewCollection(16),
		flyers:    engine.NewCollection(4),
		start:     now,
	}

	groundY := cfg.World.Height - cfg.World.GroundHeight
	p := cfg.Player
	s.player = &engine.Entity{
		ID:     s.ids.Next(),
		Kind:   engine.KindPlayer,
		X:      p.X,
		Y:      groundY - p.Size,
		W:      p.Size,
		H:      p.Size,
		Color:  core.ColorBrightGreen,
		Sprite: "player",
		Runner: &engine.RunnerBody{
			HomeX:         p.X,
			JumpVelocity:  p.JumpVelocity,
			BoostSpeed:    p.BoostSpeed,
			MaxOffset:     p.BoostMaxShift,
			ReturnSpeed:   p.ReturnSpeed,
			BoostDuration: p.BoostDuration,
			Cooldown:      engine.ReadyTimer(p.BoostCooldown, now),
		},
	}

	obs := cfg.Obstacles
	s.obstacleSpawner = engine.NewSpawner(obs.Interval, now, rng, func(time.Duration) *engine.Entity {
		e := &engine.Entity{
			ID:   s.ids.Next(),
			Kind: engine.KindObstacle,
			X:    cfg.World.Width,
			VX:   -obstacleSpeed(),
		}
		if rng.Float64() < obs.HoleChance {
			e.Obstacle = engine.ObstacleHole
			e.Y = groundY
			e.W = obs.HoleWidth
			e.H = cfg.World.GroundHeight
			e.Color = core.ColorBlack
			return e
		}
		e.Obstacle = engine.ObstacleBlock
		e.Y = groundY - obs.BlockHeight
		e.W = obs.BlockWidth
		e.H = obs.BlockHeight
		e.Color = core.ColorRed
		e.Sprite = "block"
		return e
	})

	fl := cfg.Flyers
	minY := cfg.World.Height / 4
	maxBase := cfg.World.Height / 2
	s.flyerSpawner = engine.NewSpawner(fl.Interval, now, rng, func(time.Duration) *engine.Entity {
		baseY := minY + rng.Float64()*(maxBase-minY)
		return &engine.Entity{
			ID:     s.ids.Next(),
			Kind:   engine.KindFlyingEnemy,
			X:      cfg.World.Width,
			Y:      baseY,
			W:      fl.Size,
			H:      fl.Size,
			VX:     -flyerSpeed(),
			Color:  core.ColorMagenta,
			Sprite: "flyer",
			Wave: &engine.Wave{
				BaseY:     baseY,
				Amplitude: fl.Amplitude,
				Frequency: fl.Frequency,
				MinY:      minY,
				MaxY:      maxBase + fl.Amplitude,
			},
		}
	})

	return s
}

func (s *session) elapsed(now time.Duration) time.Duration {
	return now - s.start
}

// scoreAt converts time survived into points.
func (s *session) scoreAt(now time.Duration, perSecond int) int {
	return int(s.elapsed(now) * time.Duration(perSecond) / time.Second)
}
