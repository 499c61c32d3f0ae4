package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/engine"
)

type fakeSound string

func (s fakeSound) Name() string { return string(s) }

type recordAudio struct {
	played []string
	music  string
	stops  int
}

func (a *recordAudio) LoadSound(name string) core.Sound { return fakeSound(name) }

func (a *recordAudio) Play(s core.Sound) {
	if s != nil {
		a.played = append(a.played, s.Name())
	}
}

func (a *recordAudio) PlayMusicLoop(s core.Sound) {
	if s != nil {
		a.music = s.Name()
	}
}

func (a *recordAudio) StopMusic() {
	a.stops++
	a.music = ""
}

func (a *recordAudio) count(name string) int {
	n := 0
	for _, p := range a.played {
		if p == name {
			n++
		}
	}
	return n
}

const tick = time.Second / 60

func newTestGame(t *testing.T) (*Game, *core.ManualClock, *recordAudio) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	clock := &core.ManualClock{}
	audio := &recordAudio{}
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 60,
		Seed:     42,
		Clock:    clock,
		Audio:    audio,
	})
	return g, clock, audio
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetStartsPlaying(t *testing.T) {
	g, _, audio := newTestGame(t)

	st := g.State()
	if st.Phase != "playing" || st.GameOver || st.Score != 0 {
		t.Errorf("initial state = %+v", st)
	}
	if audio.music != SoundMusic {
		t.Errorf("music = %q, expected %q looping", audio.music, SoundMusic)
	}
	if got := g.Bounds(); got.W != 1200 || got.H != 600 {
		t.Errorf("Bounds() = %+v, expected 1200x600", got)
	}
}

func TestJumpAndBoostCues(t *testing.T) {
	g, clock, audio := newTestGame(t)
	player := g.s.player

	clock.Advance(tick)
	g.Step(press(core.ActionJump))
	clock.Advance(tick)
	g.Step(press(core.ActionBoost))
	if !player.Runner.Airborne || !player.Runner.Boosting {
		t.Fatalf("runner should be airborne and boosting, got %+v", player.Runner)
	}

	clock.Advance(tick)
	g.Step(press(core.ActionJump, core.ActionBoost))

	if n := audio.count(SoundJump); n != 1 {
		t.Errorf("jump cue played %d times, expected 1 (no cue for a jump in the air)", n)
	}
	if n := audio.count(SoundBoost); n != 1 {
		t.Errorf("boost cue played %d times, expected 1 (no cue while boosting)", n)
	}
}

func TestJumpArcLandsOnGround(t *testing.T) {
	g, clock, _ := newTestGame(t)
	player := g.s.player
	ground := player.Y

	clock.Advance(tick)
	g.Step(press(core.ActionJump))
	if !player.Runner.Airborne {
		t.Fatal("player should be airborne after jumping")
	}

	peak := player.Y
	for i := 0; i < 50; i++ {
		clock.Advance(tick)
		g.Step(core.NewInputFrame())
		if player.Y < peak {
			peak = player.Y
		}
	}

	// Impulse 18 under gravity 0.9 peaks near 171 units up.
	if rise := ground - peak; rise < 160 || rise > 180 {
		t.Errorf("jump height = %v, expected about 171", rise)
	}
	if player.Y != ground || player.Runner.Airborne {
		t.Errorf("player should have landed: y=%v ground=%v", player.Y, ground)
	}
}

func placeOnPlayer(g *Game, kind engine.Kind, obstacle engine.ObstacleKind) *engine.Entity {
	p := g.s.player
	e := &engine.Entity{
		ID:       g.s.ids.Next(),
		Kind:     kind,
		Obstacle: obstacle,
		X:        p.X,
		Y:        p.Y,
		W:        40,
		H:        40,
	}
	return e
}

func TestBlockCollisionEndsRun(t *testing.T) {
	g, clock, audio := newTestGame(t)
	g.s.obstacles.Add(placeOnPlayer(g, engine.KindObstacle, engine.ObstacleBlock))

	clock.Advance(tick)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("overlapping a block should end the run")
	}
	if audio.count(SoundHit) != 1 || audio.count(SoundGameOver) != 1 {
		t.Errorf("sounds played = %v, expected one hit and one game over", audio.played)
	}
	if audio.music != "" || audio.stops != 1 {
		t.Errorf("music should stop once, stops=%d music=%q", audio.stops, audio.music)
	}

	// Game over freezes the simulation and the cue is not repeated.
	score := res.State.Score
	for i := 0; i < 30; i++ {
		clock.Advance(tick)
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != score || audio.count(SoundGameOver) != 1 {
		t.Errorf("game over should be frozen: score %d -> %d, cues %v", score, g.State().Score, audio.played)
	}
}

func TestFlyerCollisionEndsRun(t *testing.T) {
	g, clock, _ := newTestGame(t)
	g.s.flyers.Add(placeOnPlayer(g, engine.KindFlyingEnemy, 0))

	clock.Advance(tick)
	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("touching a flying enemy should end the run")
	}
}

func TestHoleIsHarmless(t *testing.T) {
	g, clock, _ := newTestGame(t)
	g.s.obstacles.Add(placeOnPlayer(g, engine.KindObstacle, engine.ObstacleHole))

	clock.Advance(tick)
	if g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("holes are not solid")
	}
}

func TestBoostingRunnerSurvivesOverlap(t *testing.T) {
	g, clock, _ := newTestGame(t)
	wall := &engine.Entity{ID: g.s.ids.Next(), Kind: engine.KindObstacle, X: 100, Y: 0, W: 400, H: 600}
	g.s.obstacles.Add(wall)

	clock.Advance(tick)
	if g.Step(press(core.ActionBoost)).State.GameOver {
		t.Fatal("boosting runner should pass through obstacles")
	}
	for i := 0; i < 10; i++ {
		clock.Advance(tick)
		if g.Step(core.NewInputFrame()).State.GameOver {
			t.Fatalf("tick %d: boost still active, run should continue", i)
		}
	}

	clock.Advance(500 * time.Millisecond)
	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("once the boost ends the overlap should be fatal")
	}
}

func TestScoreTracksTime(t *testing.T) {
	g, clock, _ := newTestGame(t)

	clock.Advance(time.Second)
	if got := g.Step(core.NewInputFrame()).State.Score; got != 100 {
		t.Errorf("score after 1s = %d, expected 100", got)
	}

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	clock.Advance(5 * time.Second)
	if got := g.Step(core.NewInputFrame()).State.Score; got != 100 {
		t.Errorf("score while paused = %d, expected 100", got)
	}

	g.Step(press(core.ActionPause))
	clock.Advance(time.Second)
	if got := g.Step(core.NewInputFrame()).State.Score; got != 200 {
		t.Errorf("score after resume = %d, expected 200", got)
	}
}

func TestSpawnersFillTheRoad(t *testing.T) {
	g, clock, _ := newTestGame(t)

	clock.Advance(1300 * time.Millisecond)
	g.Step(core.NewInputFrame())
	if g.s.obstacles.Len() != 1 {
		t.Fatalf("obstacles after 1.3s = %d, expected 1", g.s.obstacles.Len())
	}
	o := g.s.obstacles.Live()[0]
	if o.X != 1200 || o.VX != -10 {
		t.Errorf("obstacle spawned at x=%v vx=%v, expected right edge moving left at 10", o.X, o.VX)
	}
	switch o.Obstacle {
	case engine.ObstacleBlock:
		if o.Bottom() != 550 {
			t.Errorf("block bottom = %v, expected ground top 550", o.Bottom())
		}
	case engine.ObstacleHole:
		if o.Y != 550 {
			t.Errorf("hole top = %v, expected ground top 550", o.Y)
		}
	}

	clock.Advance(2700 * time.Millisecond)
	g.Step(core.NewInputFrame())
	if g.s.flyers.Len() != 1 {
		t.Fatalf("flyers after 4s = %d, expected 1", g.s.flyers.Len())
	}
	f := g.s.flyers.Live()[0]
	if f.Y < 150 || f.Y > 300 {
		t.Errorf("flyer base y = %v, expected within [150, 300]", f.Y)
	}
}

func TestObstaclesCulledOffLeft(t *testing.T) {
	g, clock, _ := newTestGame(t)
	gone := &engine.Entity{ID: g.s.ids.Next(), Kind: engine.KindObstacle, X: -35, Y: 480, W: 40, H: 70, VX: -10}
	g.s.obstacles.Add(gone)

	clock.Advance(tick)
	g.Step(core.NewInputFrame())
	if g.s.obstacles.Len() != 0 {
		t.Error("obstacle past the left edge should be removed")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, clock, audio := newTestGame(t)
	g.s.obstacles.Add(placeOnPlayer(g, engine.KindObstacle, engine.ObstacleBlock))
	clock.Advance(time.Second)
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	old := g.s
	clock.Advance(tick)
	st := g.Step(press(core.ActionJump)).State
	if st.GameOver || st.Score != 0 || st.Phase != "playing" {
		t.Errorf("state after restart = %+v", st)
	}
	if g.s == old {
		t.Error("restart should replace the session")
	}
	if audio.music != SoundMusic {
		t.Error("restart should resume music")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("/nonexistent/runner.yaml")
	defer SetConfigPath("")

	if err := New().Validate(); err == nil {
		t.Error("missing custom config should fail validation")
	}
}
