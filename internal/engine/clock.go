package engine

import (
	"time"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

// GameClock wraps a monotonic source and can be frozen. Time spent paused is
// excluded, so timers and lifetimes resume where they stopped.
type GameClock struct {
	src      core.Clock
	paused   bool
	pausedAt time.Duration
	offset   time.Duration
}

// NewGameClock creates a running clock over src.
func NewGameClock(src core.Clock) *GameClock {
	return &GameClock{src: src, offset: src.Now()}
}

// Now returns game time, starting at zero when the clock was created.
func (c *GameClock) Now() time.Duration {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return c.src.Now() - c.offset
}

// Pause freezes game time. Pausing twice is a no-op.
func (c *GameClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.src.Now()
}

// Resume continues game time from where Pause froze it.
func (c *GameClock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.src.Now() - c.pausedAt
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *GameClock) Paused() bool {
	return c.paused
}
