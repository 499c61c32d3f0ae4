// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides the clock, audio sink and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame onto the canvas in world coordinates.
	Render(dst core.Canvas)

	// Bounds returns the world rectangle the canvas should map to the screen.
	Bounds() core.Box

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Validator is implemented by games whose configuration can be checked
// before the first frame.
type Validator interface {
	Validate() error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an ID nothing registered.
var ErrUnknownGame = errors.New("unknown game")

type entry struct {
	title   string
	factory Factory
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register adds a game factory under id, usually from the game package's
// init(). The title is read from one throwaway instance. Registering an id
// twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for id, e := range games {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a fresh instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := games[id]
	return ok
}

// Validate runs the game's configuration check if it has one.
func Validate(g Game) error {
	v, ok := g.(Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("registry: %s: %w", g.ID(), err)
	}
	return nil
}
