// Package invaders implements a Space Invaders style shooter.
// A formation of invaders marches side to side and descends while the
// player shoots from behind destructible shields.
package invaders

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
	SoundShoot      = "shoot"
	SoundEnemyShoot = "invader_shoot"
	SoundHit        = "hit"
	SoundExplosion  = "explosion"
	SoundGameOver   = "game_over"
	SoundMusic      = "background_music"
)

// Explosion flash sizes in world units.
const (
	flashEnemy  = 8
	flashPlayer = 12
	flashShield = 6
)

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
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

type sounds struct {
	shoot, enemyShoot, hit, explosion, gameOver, music core.Sound
}

// Game implements the invaders shooter.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager
	clock      *engine.GameClock
	rng        *rand.Rand
	sounds     sounds

	phase    engine.Phase
	s        *session
	lastTick time.Duration
}

// New creates a new invaders instance. Reset must be called before Step.
func New() *Game {
	return &Game{cfg: config.DefaultInvadersConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

func loadConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyInvadersPreset(&cfg, difficultyPreset)
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

// Reset loads the configuration and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.WithDefaults()

	cfg, err := loadConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Warn("invaders: using default config", "err", err)
		cfg = config.DefaultInvadersConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.clock = engine.NewGameClock(g.runtime.Clock)
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))

	audio := g.runtime.Audio
	g.sounds = sounds{
		shoot:      audio.LoadSound(SoundShoot),
		enemyShoot: audio.LoadSound(SoundEnemyShoot),
		hit:        audio.LoadSound(SoundHit),
		explosion:  audio.LoadSound(SoundExplosion),
		gameOver:   audio.LoadSound(SoundGameOver),
		music:      audio.LoadSound(SoundMusic),
	}

	g.s = nil
	g.phase = engine.PhaseTitle
	g.lastTick = g.clock.Now()
}

// startGame replaces the session and enters Playing.
func (g *Game) startGame() {
	now := g.clock.Now()
	g.s = newSession(&g.cfg, now, g.rng, g.enemyBulletSpeed)
	g.lastTick = now
	g.phase = engine.PhasePlaying
	g.runtime.Audio.PlayMusicLoop(g.sounds.music)
	log.Debug("invaders: game started", "at", now)
}

func (g *Game) enemyBulletSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Bullets.EnemySpeed, g.s.score, 0)
}

// Bounds returns the world rectangle.
func (g *Game) Bounds() core.Box {
	return core.NewBox(0, 0, g.cfg.World.Width, g.cfg.World.Height)
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
	case engine.PhaseTitle, engine.PhaseGameOver:
		if in.Any() {
			g.startGame()
		}
	case engine.PhasePlaying:
		g.stepPlaying(in, now, dt)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame, now, dt time.Duration) {
	s := g.s
	player := s.player
	audio := g.runtime.Audio

	// Input
	player.VX = 0
	if in.IsHeld(core.ActionLeft) {
		player.VX -= player.Ship.Speed
	}
	if in.IsHeld(core.ActionRight) {
		player.VX += player.Ship.Speed
	}
	if in.Has(core.ActionJump) && s.playerBullets.Len() < g.cfg.Bullets.MaxPlayer {
		s.playerBullets.Add(g.playerBullet())
		audio.Play(g.sounds.shoot)
	}

	// Advance
	world := engine.World{Now: now, DT: dt, Bounds: g.Bounds()}
	engine.Update(player, world)
	s.playerBullets.UpdateAll(world)
	s.enemyBullets.UpdateAll(world)
	s.effects.UpdateAll(world)

	f := g.cfg.Formation
	s.stepTimer.Interval = s.stepInterval(f)
	if s.stepTimer.TryFire(now) {
		s.stepFormation(f, g.cfg.World.Width)
	}

	// Spawn
	if b := s.enemyFire.Tick(now); b != nil {
		s.enemyBullets.Add(b)
		audio.Play(g.sounds.enemyShoot)
	}

	// Cull
	s.playerBullets.Sweep()
	s.enemyBullets.Sweep()
	s.effects.Sweep()

	// Collide
	g.resolveCollisions()

	s.invaders.Sweep()
	s.shields.Sweep()
	s.playerBullets.Sweep()
	s.enemyBullets.Sweep()

	if g.phase != engine.PhasePlaying {
		return
	}

	if s.invaders.Any(func(e *engine.Entity) bool { return e.Bottom() >= player.Y }) {
		g.lose("formation landed")
		return
	}
	if s.invaders.Empty() {
		s.won = true
		g.phase = engine.PhaseGameOver
		audio.StopMusic()
		log.Debug("invaders: wave cleared", "score", s.score)
	}
}

func (g *Game) resolveCollisions() {
	s := g.s
	audio := g.runtime.Audio

	engine.TestPairwise(s.playerBullets, s.invaders, true, true, func(_, enemy *engine.Entity) {
		s.score += enemy.Points
		s.effects.Add(g.flash(enemy.Box(), core.ColorWhite, flashEnemy))
		audio.Play(g.sounds.hit)
	})

	engine.TestPairwise(s.enemyBullets, s.ship, true, false, func(_, player *engine.Entity) {
		player.Ship.Lives--
		s.effects.Add(g.flash(player.Box(), core.ColorRed, flashPlayer))
		audio.Play(g.sounds.explosion)
	})
	if s.player.Ship.Lives <= 0 {
		g.lose("out of lives")
		return
	}

	// Only the first shield hit per group flashes.
	for _, bullets := range []*engine.Collection{s.playerBullets, s.enemyBullets} {
		flashed := false
		engine.TestPairwise(bullets, s.shields, true, true, func(bullet, _ *engine.Entity) {
			if flashed {
				return
			}
			flashed = true
			s.effects.Add(g.flash(bullet.Box(), core.ColorGreen, flashShield))
		})
	}
}

// lose ends the game with the game-over cue. It runs at most once per game.
func (g *Game) lose(reason string) {
	if g.phase != engine.PhasePlaying {
		return
	}
	g.phase = engine.PhaseGameOver
	audio := g.runtime.Audio
	audio.StopMusic()
	audio.Play(g.sounds.gameOver)
	log.Debug("invaders: game over", "reason", reason, "score", g.s.score)
}

func (g *Game) playerBullet() *engine.Entity {
	b := g.cfg.Bullets
	p := g.s.player
	return &engine.Entity{
		ID:    g.s.ids.Next(),
		Kind:  engine.KindBullet,
		X:     p.Box().CenterX() - b.Width/2,
		Y:     p.Y - b.Height,
		W:     b.Width,
		H:     b.Height,
		VY:    -b.PlayerSpeed,
		Color: core.ColorBrightWhite,
	}
}

// flash creates an explosion effect centered on at.
func (g *Game) flash(at core.Box, color core.Color, size float64) *engine.Entity {
	return &engine.Entity{
		ID:    g.s.ids.Next(),
		Kind:  engine.KindEffect,
		X:     at.CenterX() - size/2,
		Y:     at.CenterY() - size/2,
		W:     size,
		H:     size,
		Color: color,
		Life:  g.cfg.Effects.Lifetime,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:    g.phase.String(),
		GameOver: g.phase == engine.PhaseGameOver,
	}
	if g.s != nil {
		st.Score = g.s.score
		st.Lives = g.s.player.Ship.Lives
		st.Won = g.s.won
	}
	if g.clock != nil {
		st.Paused = g.clock.Paused()
	}
	return st
}
