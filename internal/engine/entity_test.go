package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

func newRunner(now time.Duration) *Entity {
	return &Entity{
		ID:   1,
		Kind: KindPlayer,
		X:    150, Y: 500, W: 50, H: 50,
		Runner: &RunnerBody{
			HomeX:         150,
			JumpVelocity:  -18,
			BoostSpeed:    20,
			MaxOffset:     200,
			ReturnSpeed:   5,
			BoostDuration: 500 * time.Millisecond,
			Cooldown:      ReadyTimer(3*time.Second, now),
		},
	}
}

func runnerWorld(now time.Duration) World {
	return World{
		Now:     now,
		DT:      time.Second / 60,
		Bounds:  core.NewBox(0, 0, 1200, 600),
		Gravity: 0.9,
		GroundY: 550,
	}
}

func TestRunnerJumpLands(t *testing.T) {
	e := newRunner(0)
	if !e.Jump() {
		t.Fatal("Jump() from the ground should succeed")
	}
	if e.Jump() {
		t.Error("second Jump() while airborne should be rejected")
	}

	peak := e.Y
	for i := 0; i < 120; i++ {
		Update(e, runnerWorld(0))
		if e.Y < peak {
			peak = e.Y
		}
		if e.Y > 500 {
			t.Fatalf("runner fell through the ground: y=%v", e.Y)
		}
	}
	if peak >= 500 {
		t.Errorf("peak y = %v, expected the runner to rise", peak)
	}
	if e.Runner.Airborne || e.Y != 500 || e.VY != 0 {
		t.Errorf("after landing: airborne=%v y=%v vy=%v", e.Runner.Airborne, e.Y, e.VY)
	}
}

func TestRunnerBoost(t *testing.T) {
	e := newRunner(0)
	if !e.Boost(0) {
		t.Fatal("first Boost() should succeed")
	}
	if !e.Invulnerable() {
		t.Error("boosting runner should be invulnerable")
	}

	now := time.Duration(0)
	for i := 0; i < 20; i++ {
		now += time.Second / 60
		Update(e, runnerWorld(now))
	}
	if e.X != 350 {
		t.Errorf("x after long boost = %v, expected cap at 350", e.X)
	}
	if n := len(e.Runner.Trail); n != TrailLength {
		t.Errorf("trail length = %d, expected %d", n, TrailLength)
	}

	now = 600 * time.Millisecond
	Update(e, runnerWorld(now))
	if e.Runner.Boosting {
		t.Error("boost should end after its duration")
	}
	if len(e.Runner.Trail) != 0 {
		t.Error("trail should clear when the boost ends")
	}
	if e.X != 345 {
		t.Errorf("x after first return tick = %v, expected 345", e.X)
	}

	if e.Boost(now) {
		t.Error("Boost() during cooldown should be rejected")
	}
	if !e.Boost(3 * time.Second) {
		t.Error("Boost() once the cooldown elapsed should succeed")
	}
}

func TestRunnerReturnsHome(t *testing.T) {
	e := newRunner(0)
	e.X = 152
	Update(e, runnerWorld(0))
	if e.X != 150 {
		t.Errorf("x = %v, expected clamp to home 150", e.X)
	}
}

func TestShipClampedToBounds(t *testing.T) {
	w := World{Bounds: core.NewBox(0, 0, 1024, 768)}
	e := &Entity{Kind: KindPlayer, Ship: &ShipBody{Speed: 8, Lives: 3}, X: 4, W: 80, H: 60, VX: -8}
	Update(e, w)
	if e.X != 0 {
		t.Errorf("x = %v, expected 0", e.X)
	}
	e.X, e.VX = 940, 8
	Update(e, w)
	if e.X != 944 {
		t.Errorf("x = %v, expected 944", e.X)
	}
}

func TestBulletLeavesBounds(t *testing.T) {
	w := World{Bounds: core.NewBox(0, 0, 1024, 768)}
	up := &Entity{Kind: KindBullet, Y: 2, W: 6, H: 18, VY: -12}
	Update(up, w)
	if !up.Alive() {
		t.Error("bullet still overlapping the top edge should live")
	}
	Update(up, w)
	if up.Alive() {
		t.Error("bullet above the top edge should be destroyed")
	}

	down := &Entity{Kind: KindBullet, Y: 766, W: 6, H: 18, VY: 5}
	Update(down, w)
	if down.Alive() {
		t.Error("bullet below the bottom edge should be destroyed")
	}
}

func TestFlyerStaysInBand(t *testing.T) {
	e := &Entity{
		Kind: KindFlyingEnemy, X: 1200, Y: 200, W: 40, H: 40, VX: -7,
		Wave: &Wave{BaseY: 200, Amplitude: 100, Frequency: 0.02, MinY: 150, MaxY: 400},
	}
	for i := 0; i < 400; i++ {
		Update(e, World{})
		if e.Y < 150 || e.Y > 400 {
			t.Fatalf("tick %d: y=%v outside [150, 400]", i, e.Y)
		}
	}
	if e.X != 1200-7*400 {
		t.Errorf("x = %v, expected %v", e.X, 1200-7*400)
	}
}

func TestEffectExpires(t *testing.T) {
	e := &Entity{Kind: KindEffect, Life: 180 * time.Millisecond}
	w := World{DT: 100 * time.Millisecond}
	Update(e, w)
	if !e.Alive() {
		t.Error("effect should survive its first 100ms")
	}
	Update(e, w)
	if e.Alive() {
		t.Error("effect should expire after 200ms")
	}
}

func TestHoleNotSolid(t *testing.T) {
	hole := &Entity{Kind: KindObstacle, Obstacle: ObstacleHole}
	block := &Entity{Kind: KindObstacle, Obstacle: ObstacleBlock}
	if hole.Solid() || !block.Solid() {
		t.Errorf("Solid(): hole=%v block=%v", hole.Solid(), block.Solid())
	}
}

func TestKindString(t *testing.T) {
	if KindFlyingEnemy.String() != "flying-enemy" || Kind(99).String() != "unknown" {
		t.Error("unexpected kind names")
	}
	if ObstacleHole.String() != "hole" || ObstacleBlock.String() != "block" {
		t.Error("unexpected obstacle kind names")
	}
	if PhaseGameOver.String() != "gameover" {
		t.Error("unexpected phase name")
	}
}
