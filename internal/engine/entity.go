// Package engine is the fixed-timestep simulation kernel shared by the games.
// It provides tagged entities with per-kind update rules, ordered collections
// with collision queries, cooldown timers, spawners and a pausable game clock.
// Like core, it never touches the terminal or audio device directly.
package engine

import (
	"math"
	"time"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

// ID identifies an entity within one game session.
type ID uint32

// IDSource hands out session-unique entity IDs.
type IDSource struct {
	next ID
}

// Next returns a fresh ID. IDs start at 1.
func (s *IDSource) Next() ID {
	s.next++
	return s.next
}

// Kind is the closed set of entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindObstacle
	KindFlyingEnemy
	KindShieldCell
	KindEffect
	KindInvader
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindObstacle:
		return "obstacle"
	case KindFlyingEnemy:
		return "flying-enemy"
	case KindShieldCell:
		return "shield-cell"
	case KindEffect:
		return "effect"
	case KindInvader:
		return "invader"
	default:
		return "unknown"
	}
}

// ObstacleKind distinguishes solid blocks from gaps in the ground.
type ObstacleKind uint8

const (
	ObstacleBlock ObstacleKind = iota // Solid, collides with the player
	ObstacleHole                      // Gap in the ground, never collides
)

// String returns the obstacle kind name.
func (k ObstacleKind) String() string {
	if k == ObstacleHole {
		return "hole"
	}
	return "block"
}

// TrailLength is how many past positions a boosting runner remembers.
const TrailLength = 10

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// RunnerBody is the payload of the runner's player.
type RunnerBody struct {
	HomeX         float64 // Resting x position
	JumpVelocity  float64 // Upward impulse applied by Jump (negative)
	BoostSpeed    float64 // Forward displacement per tick while boosting
	MaxOffset     float64 // Furthest a boost may carry the player past HomeX
	ReturnSpeed   float64 // Displacement per tick back toward HomeX
	BoostDuration time.Duration

	Airborne   bool
	Boosting   bool
	BoostStart time.Duration
	Cooldown   Timer   // Gates Boost
	Trail      []Point // Recent positions while boosting, oldest first
}

// ShipBody is the payload of the shooter's player.
type ShipBody struct {
	Speed float64 // Horizontal displacement per tick while a direction is held
	Lives int
}

// Wave is the payload of a flying enemy following a sine path.
type Wave struct {
	BaseY     float64
	Phase     float64
	Amplitude float64
	Frequency float64 // Phase advance per tick
	MinY      float64
	MaxY      float64
}

// Entity is a positioned, renderable, updatable simulation object.
// Kind selects which payload fields are meaningful.
type Entity struct {
	ID   ID
	Kind Kind

	X, Y   float64 // Top-left corner
	W, H   float64
	VX, VY float64 // Displacement per tick

	Color  core.Color // Fill color, also used when the sprite is missing
	Sprite string     // Image name, empty to draw a plain box

	Runner   *RunnerBody   // KindPlayer in the runner
	Ship     *ShipBody     // KindPlayer in the shooter
	Obstacle ObstacleKind  // KindObstacle
	Wave     *Wave         // KindFlyingEnemy
	Life     time.Duration // KindEffect remaining lifetime
	Tier     int           // KindInvader score tier, 0 is the top tier
	Points   int           // KindInvader value when destroyed

	dead bool
}

// Box returns the collision envelope.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Alive reports whether the entity has not been destroyed.
func (e *Entity) Alive() bool {
	return !e.dead
}

// Kill marks the entity destroyed. Its collection drops it on the next sweep.
func (e *Entity) Kill() {
	e.dead = true
}

// Solid reports whether the entity takes part in player collisions.
func (e *Entity) Solid() bool {
	return !(e.Kind == KindObstacle && e.Obstacle == ObstacleHole)
}

// Invulnerable reports whether hazard collisions should be ignored this frame.
func (e *Entity) Invulnerable() bool {
	return e.Runner != nil && e.Runner.Boosting
}

// Jump applies the upward impulse if the runner is on the ground.
func (e *Entity) Jump() bool {
	r := e.Runner
	if r == nil || r.Airborne {
		return false
	}
	e.VY = r.JumpVelocity
	r.Airborne = true
	return true
}

// Boost starts a dash if the cooldown has elapsed and no dash is running.
func (e *Entity) Boost(now time.Duration) bool {
	r := e.Runner
	if r == nil || r.Boosting || !r.Cooldown.Ready(now) {
		return false
	}
	r.Cooldown.Fire(now)
	r.Boosting = true
	r.BoostStart = now
	return true
}

// World holds the read-only parameters of one simulation step.
type World struct {
	Now     time.Duration // Game clock at this tick
	DT      time.Duration // Time since the previous tick
	Bounds  core.Box      // Playable area
	Gravity float64       // Added to a runner's vertical velocity each tick
	GroundY float64       // Y of the ground surface
}

// Update advances e by one tick. Dead entities are left untouched.
func Update(e *Entity, w World) {
	if e.dead {
		return
	}
	switch e.Kind {
	case KindPlayer:
		if e.Runner != nil {
			updateRunner(e, w)
		} else {
			updateShip(e, w)
		}
	case KindBullet:
		e.X += e.VX
		e.Y += e.VY
		if e.Bottom() < w.Bounds.Y || e.Y > w.Bounds.Bottom() {
			e.dead = true
		}
	case KindObstacle:
		e.X += e.VX
	case KindFlyingEnemy:
		updateFlyer(e)
	case KindEffect:
		e.Life -= w.DT
		if e.Life <= 0 {
			e.dead = true
		}
	case KindShieldCell, KindInvader:
		// Static between formation steps.
	}
}

// Bottom returns the y-coordinate of the bottom edge.
func (e *Entity) Bottom() float64 {
	return e.Y + e.H
}

// Right returns the x-coordinate of the right edge.
func (e *Entity) Right() float64 {
	return e.X + e.W
}

func updateRunner(e *Entity, w World) {
	r := e.Runner
	if r.Boosting && w.Now-r.BoostStart < r.BoostDuration {
		r.Trail = append(r.Trail, Point{X: e.X, Y: e.Y})
		if len(r.Trail) > TrailLength {
			r.Trail = r.Trail[len(r.Trail)-TrailLength:]
		}
		e.X += r.BoostSpeed
		if e.X > r.HomeX+r.MaxOffset {
			e.X = r.HomeX + r.MaxOffset
		}
	} else {
		if r.Boosting {
			r.Boosting = false
			r.Trail = r.Trail[:0]
		}
		if e.X > r.HomeX {
			e.X = math.Max(r.HomeX, e.X-r.ReturnSpeed)
		}
	}

	e.VY += w.Gravity
	e.Y += e.VY

	groundTop := w.GroundY - e.H
	if e.Y >= groundTop {
		e.Y = groundTop
		e.VY = 0
		r.Airborne = false
	}
}

func updateShip(e *Entity, w World) {
	e.X += e.VX
	e.X = core.ClampF(e.X, w.Bounds.X, w.Bounds.Right()-e.W)
}

func updateFlyer(e *Entity) {
	e.X += e.VX
	wave := e.Wave
	if wave == nil {
		return
	}
	wave.Phase += wave.Frequency
	e.Y = core.ClampF(wave.BaseY+wave.Amplitude*math.Sin(wave.Phase), wave.MinY, wave.MaxY)
}

// Draw renders e onto the canvas. It never mutates simulation state.
func Draw(e *Entity, c core.Canvas) {
	if e.dead {
		return
	}
	switch e.Kind {
	case KindPlayer:
		if e.Runner != nil {
			drawRunner(e, c)
			return
		}
		drawSprite(e, c)
	case KindObstacle:
		if e.Obstacle == ObstacleHole {
			c.DrawRect(e.Box(), core.ColorBlack, 0)
			return
		}
		drawSprite(e, c)
	case KindFlyingEnemy, KindInvader:
		drawSprite(e, c)
	default:
		c.DrawRect(e.Box(), e.Color, 0)
	}
}

func drawRunner(e *Entity, c core.Canvas) {
	img := spriteFor(e, c)
	for _, p := range e.Runner.Trail {
		ghost := img
		ghost.Color = core.ColorBlue
		c.DrawImage(ghost, core.NewBox(p.X, p.Y, e.W, e.H))
	}
	c.DrawImage(img, e.Box())
	if e.Runner.Boosting {
		c.DrawRect(e.Box(), core.ColorYellow, 1)
	}
}

func drawSprite(e *Entity, c core.Canvas) {
	if e.Sprite == "" {
		c.DrawRect(e.Box(), e.Color, 0)
		return
	}
	c.DrawImage(spriteFor(e, c), e.Box())
}

func spriteFor(e *Entity, c core.Canvas) core.Image {
	img := c.LoadImage(e.Sprite)
	if img.Placeholder || img.Color == core.ColorDefault {
		img.Color = e.Color
	}
	return img
}
