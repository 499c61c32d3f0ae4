package engine

import (
	"math/rand"
	"time"
)

// Spawner produces entities on a timer, optionally gated by a predicate and a
// per-tick probability.
type Spawner struct {
	Timer  Timer
	Chance float64     // Probability per eligible tick; 0 or >= 1 always fires
	Gate   func() bool // Extra precondition, nil means always open

	// Make builds the entity. Returning nil means nothing was eligible and
	// the timer is left unchanged.
	Make func(now time.Duration) *Entity

	rng *rand.Rand
}

// NewSpawner creates a spawner whose first spawn is one interval after now.
func NewSpawner(interval, now time.Duration, rng *rand.Rand, build func(time.Duration) *Entity) *Spawner {
	return &Spawner{
		Timer: NewTimer(interval, now),
		Make:  build,
		rng:   rng,
	}
}

// Tick returns a new entity if every condition holds at now, nil otherwise.
// The timer restarts only when an entity is produced.
func (s *Spawner) Tick(now time.Duration) *Entity {
	if s.Gate != nil && !s.Gate() {
		return nil
	}
	if !s.Timer.Ready(now) {
		return nil
	}
	if s.Chance > 0 && s.Chance < 1 && s.rng.Float64() >= s.Chance {
		return nil
	}
	e := s.Make(now)
	if e == nil {
		return nil
	}
	s.Timer.Fire(now)
	return e
}
