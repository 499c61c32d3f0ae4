package core

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfiguration is fatal at startup, before any frame runs.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAssetMissing is recovered locally with a placeholder or silence.
	ErrAssetMissing = errors.New("asset missing")
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Clock    Clock // Monotonic time source; nil means a fresh SystemClock
	Audio    Audio // Sound output; nil means NopAudio
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Validate reports settings no frame can run with.
func (c RuntimeConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfiguration, c.TickRate)
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalidConfiguration, c.ScreenW, c.ScreenH)
	}
	return nil
}

// FrameInterval returns the target duration of one tick.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// WithDefaults fills in a clock and audio sink when they are unset.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Clock == nil {
		c.Clock = NewSystemClock()
	}
	if c.Audio == nil {
		c.Audio = NopAudio{}
	}
	return c
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Coarse phase name ("title", "playing", "gameover")
	Score    int    // Current score
	Lives    int    // Remaining lives, 0 for games without lives
	GameOver bool   // Whether the game has ended
	Won      bool   // Whether the game ended in a win
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
