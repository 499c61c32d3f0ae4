package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blitz-arcade/internal/core"
	"github.com/vovakirdan/blitz-arcade/internal/registry"
	"github.com/vovakirdan/blitz-arcade/internal/storage"
)

// heldWindow is how long a key counts as held after its last press.
// Terminals report no key releases, only auto-repeat presses.
const heldWindow = 500 * time.Millisecond

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	player    string
	keyMapper *KeyMapper
	now       func() time.Time

	inputFrame core.InputFrame
	held       map[core.Action]time.Time
	gameState  core.GameState

	embedded   bool // Runs inside a SessionModel; never quits the program on back
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game. Scores are saved under player;
// an empty player means the local terminal.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg.WithDefaults(),
		player:     player,
		keyMapper:  NewKeyMapper(),
		now:        time.Now,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]time.Time),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers keyboard input until the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && m.canLeave() {
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		delete(m.held, core.ActionRight)
		m.held[action] = m.now()
	case core.ActionRight:
		delete(m.held, core.ActionLeft)
		m.held[action] = m.now()
	}

	m.inputFrame.Set(action)
	return m, nil
}

// canLeave reports whether back returns to the menu instead of reaching the game.
func (m GameModel) canLeave() bool {
	return m.gameState.GameOver || m.gameState.Paused || m.gameState.Phase == "title"
}

// handleTick runs one simulation step with the buffered input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	now := m.now()
	for a, at := range m.held {
		if now.Sub(at) < heldWindow {
			m.inputFrame.Hold(a)
		} else {
			delete(m.held, a)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.FrameInterval())
}

// saveScore records the finished game. Failures are logged and play continues.
func (m GameModel) saveScore() {
	st := m.gameState
	if m.store == nil || st.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, st.Score, st.Won); err != nil {
		log.Error("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	log.Info("score saved", "game", m.game.ID(), "player", m.player, "score", st.Score, "won", st.Won)
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("screenshot: cannot create directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("screenshot: write failed", "err", err)
	}
}

// render draws the current frame into the screen buffer.
func (m GameModel) render() {
	m.screen.Clear()
	m.game.Render(NewCanvas(m.screen, m.game.Bounds()))
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunResult describes how a game program ended.
type RunResult struct {
	Quit bool // The player asked to leave the arcade, not just this game
}

// Run starts the Bubble Tea program for a single game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewGameModel(game, store, cfg, storage.LocalPlayer)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return RunResult{Quit: true}, nil
	}
	return RunResult{Quit: m.IsQuitting()}, nil
}
