package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blitz-arcade/internal/config"
	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/engine"
)

// tierColors indexes invader colors by score tier, top rows first.
var tierColors = []core.Color{core.ColorBlue, core.ColorWhite, core.ColorRed}

// session is the state of one game. It is replaced wholesale on restart.
type session struct {
	ids engine.IDSource

	player        *engine.Entity
	ship          *engine.Collection // Holds only the player, for pairwise tests
	playerBullets *engine.Collection
	enemyBullets  *engine.Collection
	invaders      *engine.Collection
	shields       *engine.Collection
	effects       *engine.Collection

	enemyFire *engine.Spawner
	stepTimer engine.Timer
	dir       float64 // +1 moving right, -1 moving left
	total     int

	score int
	won   bool
}

func newSession(cfg *config.InvadersConfig, now time.Duration, rng *rand.Rand, enemyBulletSpeed func() float64) *session {
	s := &session{
		ship:          engine.NewCollection(1),
		playerBullets: engine.NewCollection(cfg.Bullets.MaxPlayer),
		enemyBullets:  engine.NewCollection(1),
		invaders:      engine.NewCollection(cfg.Formation.Rows * cfg.Formation.Cols),
		shields:       engine.NewCollection(cfg.Shields.Count * cfg.Shields.Rows * cfg.Shields.Cols),
		effects:       engine.NewCollection(8),
		stepTimer:     engine.NewTimer(cfg.Formation.BaseInterval, now),
		dir:           1,
		total:         cfg.Formation.Rows * cfg.Formation.Cols,
	}

	p := cfg.Player
	s.player = &engine.Entity{
		ID:     s.ids.Next(),
		Kind:   engine.KindPlayer,
		X:      cfg.World.Width/2 - p.Width/2,
		Y:      cfg.World.Height - p.BottomMargin - p.Height,
		W:      p.Width,
		H:      p.Height,
		Color:  core.ColorGreen,
		Sprite: "ship",
		Ship:   &engine.ShipBody{Speed: p.Speed, Lives: p.Lives},
	}
	s.ship.Add(s.player)

	s.buildFormation(cfg)
	s.buildShields(cfg)

	b := cfg.Bullets
	s.enemyFire = engine.NewSpawner(0, now, rng, func(time.Duration) *engine.Entity {
		live := s.invaders.Live()
		if len(live) == 0 {
			return nil
		}
		shooter := live[rng.Intn(len(live))]
		return &engine.Entity{
			ID:    s.ids.Next(),
			Kind:  engine.KindBullet,
			X:     shooter.Box().CenterX() - b.Width/2,
			Y:     shooter.Bottom() - b.Height,
			W:     b.Width,
			H:     b.Height,
			VY:    enemyBulletSpeed(),
			Color: core.ColorRed,
		}
	})
	s.enemyFire.Chance = b.FireChance
	s.enemyFire.Gate = func() bool {
		return s.enemyBullets.Empty() && !s.invaders.Empty()
	}

	return s
}

func (s *session) buildFormation(cfg *config.InvadersConfig) {
	f := cfg.Formation
	for r := 0; r < f.Rows; r++ {
		tier := r / 2
		if tier >= len(tierColors) {
			tier = len(tierColors) - 1
		}
		for c := 0; c < f.Cols; c++ {
			s.invaders.Add(&engine.Entity{
				ID:     s.ids.Next(),
				Kind:   engine.KindInvader,
				X:      f.OriginX + float64(c)*f.SpacingX,
				Y:      f.OriginY + float64(r)*f.SpacingY,
				W:      f.EnemyWidth,
				H:      f.EnemyHeight,
				Color:  tierColors[tier],
				Sprite: "invader",
				Tier:   tier,
				Points: (3 - tier) * 10,
			})
		}
	}
}

// buildShields lays out the bunkers as grids of cells with an arch carved
// out of the top middle.
func (s *session) buildShields(cfg *config.InvadersConfig) {
	sh := cfg.Shields
	if sh.Count == 0 {
		return
	}
	spacing := cfg.World.Width / float64(sh.Count)
	top := cfg.World.Height - sh.TopOffset
	for bunker := 0; bunker < sh.Count; bunker++ {
		for row := 0; row < sh.Rows; row++ {
			for col := 0; col < sh.Cols; col++ {
				if inArch(row, col, sh.Cols) {
					continue
				}
				s.shields.Add(&engine.Entity{
					ID:    s.ids.Next(),
					Kind:  engine.KindShieldCell,
					X:     sh.OffsetX + float64(bunker)*spacing + float64(col)*sh.CellSize,
					Y:     top + float64(row)*sh.CellSize,
					W:     sh.CellSize,
					H:     sh.CellSize,
					Color: core.ColorGreen,
				})
			}
		}
	}
}

// inArch reports whether a cell falls in the carved opening: the top three
// rows of the middle third of columns (cols 4..7 of 12).
func inArch(row, col, cols int) bool {
	lo, hi := cols/3, cols-cols/3
	return row < 3 && col >= lo && col < hi
}

// stepInterval shortens the formation cadence as invaders are destroyed.
func (s *session) stepInterval(f config.InvadersFormation) time.Duration {
	killed := s.total - s.invaders.Len()
	interval := f.BaseInterval - time.Duration(killed)*f.PerKill
	if interval < f.MinInterval {
		return f.MinInterval
	}
	return interval
}

// stepFormation moves the whole formation one step. An invader at the edge
// in the current direction reverses and descends instead of moving sideways.
func (s *session) stepFormation(f config.InvadersFormation, worldW float64) {
	atEdge := s.invaders.Any(func(e *engine.Entity) bool {
		if s.dir > 0 {
			return e.Right() >= worldW-f.EdgeMargin
		}
		return e.X <= f.EdgeMargin
	})
	if atEdge {
		s.dir = -s.dir
		s.invaders.Each(func(e *engine.Entity) { e.Y += f.Descend })
		return
	}
	s.invaders.Each(func(e *engine.Entity) { e.X += f.Step * s.dir })
}
