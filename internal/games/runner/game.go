// Package runner implements a side-scrolling endless runner.
// The player jumps over ground blocks, runs across holes and dodges flying
// enemies, with a short invulnerable boost on a cooldown.
package runner

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blitz-arcade/internal/config"
	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/engine"
	"github.com/vovakirdan/blitz-arcade/internal/registry"
)

// Sound cue names.
const (
	SoundJump     = "shoot"
	SoundBoost    = "invader_shoot"
	SoundHit      = "hit"
	SoundGameOver = "game_over"
	SoundMusic    = "background_music"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}

type sounds struct {
	jump     core.Sound
	boost    core.Sound
	hit      core.Sound
	gameOver core.Sound
	music    core.Sound
}

// Game implements the endless runner.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	clock      *engine.GameClock
	rng        *rand.Rand
	sounds     sounds

	phase    engine.Phase
	s        *session
	lastTick time.Duration
}

// New creates a new runner instance. Reset must be called before Step.
func New() *Game {
	return &Game{cfg: config.DefaultRunnerConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blitz Runner"
}

func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyRunnerPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Validate loads the configuration Reset would use and checks it.
func (g *Game) Validate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.WithDefaults()

	cfg, err := loadConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Warn("runner: using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.clock = engine.NewGameClock(g.runtime.Clock)
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))

	audio := g.runtime.Audio
	g.sounds = sounds{
		jump:     audio.LoadSound(SoundJump),
		boost:    audio.LoadSound(SoundBoost),
		hit:      audio.LoadSound(SoundHit),
		gameOver: audio.LoadSound(SoundGameOver),
		music:    audio.LoadSound(SoundMusic),
	}

	g.startRun()
}

// startRun replaces the session and enters Playing.
func (g *Game) startRun() {
	now := g.clock.Now()
	g.s = newSession(&g.cfg, now, g.rng, g.obstacleSpeed, g.flyerSpeed)
	g.lastTick = now
	g.phase = engine.PhasePlaying
	g.runtime.Audio.PlayMusicLoop(g.sounds.music)
	log.Debug("runner: run started", "at", now)
}

// Bounds returns the world rectangle.
func (g *Game) Bounds() core.Box {
	return core.NewBox(0, 0, g.cfg.World.Width, g.cfg.World.Height)
}

func (g *Game) groundY() float64 {
	return g.cfg.World.Height - g.cfg.World.GroundHeight
}

func (g *Game) obstacleSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Obstacles.Speed, g.s.score, g.s.elapsed(g.clock.Now()))
}

func (g *Game) flyerSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Flyers.Speed, g.s.score, g.s.elapsed(g.clock.Now()))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.phase == engine.PhasePlaying {
		if g.clock.Paused() {
			g.clock.Resume()
		} else {
			g.clock.Pause()
		}
	}
	if g.clock.Paused() {
		return core.StepResult{State: g.State()}
	}

	now := g.clock.Now()
	dt := now - g.lastTick
	g.lastTick = now

	switch g.phase {
	case engine.PhasePlaying:
		g.stepPlaying(in, now, dt)
	case engine.PhaseGameOver:
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.startRun()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame, now, dt time.Duration) {
	s := g.s
	player := s.player

	// Input
	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && player.Jump() {
		g.runtime.Audio.Play(g.sounds.jump)
	}
	if in.Has(core.ActionBoost) && player.Boost(now) {
		g.runtime.Audio.Play(g.sounds.boost)
	}

	// Advance
	world := engine.World{
		Now:     now,
		DT:      dt,
		Bounds:  g.Bounds(),
		Gravity: g.cfg.World.Gravity,
		GroundY: g.groundY(),
	}
	engine.Update(player, world)
	s.obstacles.UpdateAll(world)
	s.flyers.UpdateAll(world)

	// Spawn
	s.obstacles.Add(s.obstacleSpawner.Tick(now))
	s.flyers.Add(s.flyerSpawner.Tick(now))

	// Cull
	bounds := g.Bounds()
	offLeft := func(e *engine.Entity) bool { return e.Box().OffScreen(bounds, core.DirLeft) }
	s.obstacles.RemoveIf(offLeft)
	s.flyers.RemoveIf(offLeft)

	// Collide
	if !player.Invulnerable() {
		hit := false
		s.obstacles.TestAgainstSingle(player, engine.AllHits, func(e *engine.Entity) {
			if e.Solid() {
				hit = true
			}
		})
		if s.flyers.TestAgainstSingle(player, engine.FirstHit, nil) > 0 {
			hit = true
		}
		if hit {
			g.endRun(now)
			return
		}
	}

	// Score
	s.score = s.scoreAt(now, g.cfg.World.ScorePerSec)
}

func (g *Game) endRun(now time.Duration) {
	g.s.score = g.s.scoreAt(now, g.cfg.World.ScorePerSec)
	g.phase = engine.PhaseGameOver

	audio := g.runtime.Audio
	audio.Play(g.sounds.hit)
	audio.StopMusic()
	audio.Play(g.sounds.gameOver)
	log.Debug("runner: game over", "score", g.s.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:    g.phase.String(),
		GameOver: g.phase == engine.PhaseGameOver,
	}
	if g.s != nil {
		st.Score = g.s.score
	}
	if g.clock != nil {
		st.Paused = g.clock.Paused()
	}
	return st
}
