package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/storage"
)

// scriptedGame records each input frame and reports a preset state.
type scriptedGame struct {
	frames []core.InputFrame
	state  core.GameState
	resets int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Bounds() core.Box { return core.NewBox(0, 0, 100, 100) }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Render(dst core.Canvas) { dst.DrawText("hi", 0, 0, core.ColorWhite) }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	for a, on := range in.Held {
		if on {
			frame.Hold(a)
		}
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func newTestModel(t *testing.T, game *scriptedGame, store *storage.Store) (GameModel, *time.Time) {
	t.Helper()
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, "tester")
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	return m, &now
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelDeliversPressesOnce(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, TickMsg{})
	if !game.last().Has(core.ActionJump) {
		t.Error("jump should reach the next tick")
	}

	m = send(t, m, TickMsg{})
	if game.last().Has(core.ActionJump) {
		t.Error("jump should be consumed after one tick")
	}
}

func TestGameModelHeldWindow(t *testing.T) {
	game := &scriptedGame{}
	m, now := newTestModel(t, game, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, TickMsg{})
	if !game.last().IsHeld(core.ActionLeft) {
		t.Fatal("left should be held right after the press")
	}

	*now = now.Add(heldWindow / 2)
	m = send(t, m, TickMsg{})
	if !game.last().IsHeld(core.ActionLeft) {
		t.Error("left should stay held inside the window")
	}

	*now = now.Add(heldWindow)
	m = send(t, m, TickMsg{})
	if game.last().IsHeld(core.ActionLeft) {
		t.Error("left should be released after the window")
	}

	// Opposite direction replaces the held one
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	send(t, m, TickMsg{})
	if game.last().IsHeld(core.ActionLeft) || !game.last().IsHeld(core.ActionRight) {
		t.Error("pressing right should release left")
	}
}

func TestGameModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m, _ := newTestModel(t, game, store)

	game.state = core.GameState{Score: 120, GameOver: true, Won: true}
	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}

	// Restart, then a second game over
	game.state = core.GameState{Score: 10}
	m = send(t, m, TickMsg{})
	game.state = core.GameState{Score: 40, GameOver: true}
	m = send(t, m, TickMsg{})
	send(t, m, TickMsg{})

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 saved scores, got %d", len(scores))
	}
	if scores[0].Score != 120 || !scores[0].Won || scores[0].Player != "tester" {
		t.Errorf("first score = %+v", scores[0])
	}
	if scores[1].Score != 40 || scores[1].Won {
		t.Errorf("second score = %+v", scores[1])
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	game := &scriptedGame{state: core.GameState{Phase: "playing"}}
	m, _ := newTestModel(t, game, nil)
	m = send(t, m, TickMsg{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	game.state.GameOver = true
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave after game over")
	}
}

func TestGameModelQuit(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game, nil)

	next, cmd := m.Update(runeKey("q"))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelView(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game, nil)

	if m.View() == "" {
		t.Error("view should render the game")
	}
	if m.screen.Get(0, 0) != 'h' {
		t.Errorf("expected game text at origin, got %q", m.screen.Get(0, 0))
	}
}
