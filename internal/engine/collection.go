package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

// Collection is an ordered set of entities sharing a role, such as
// "obstacles" or "enemy bullets". Iteration follows insertion order.
//
// Removal is mark-then-compact: Kill and RemoveIf only flag members, and the
// backing slice is filtered once in place. Loops over the collection never see
// a shifted slice.
type Collection struct {
	items []*Entity
}

// NewCollection creates an empty collection.
func NewCollection(capacity int) *Collection {
	return &Collection{items: make([]*Entity, 0, capacity)}
}

// Add appends entities. Nil entities are ignored.
func (c *Collection) Add(es ...*Entity) {
	for _, e := range es {
		if e != nil {
			c.items = append(c.items, e)
		}
	}
}

// Len returns the number of live members.
func (c *Collection) Len() int {
	n := 0
	for _, e := range c.items {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Empty reports whether no live member remains.
func (c *Collection) Empty() bool {
	for _, e := range c.items {
		if e.Alive() {
			return false
		}
	}
	return true
}

// Live returns the live members in order. The slice is a fresh copy.
func (c *Collection) Live() []*Entity {
	out := make([]*Entity, 0, len(c.items))
	for _, e := range c.items {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// Each calls fn for every live member in order.
func (c *Collection) Each(fn func(*Entity)) {
	for _, e := range c.items {
		if e.Alive() {
			fn(e)
		}
	}
}

// Any reports whether pred holds for some live member.
func (c *Collection) Any(pred func(*Entity) bool) bool {
	for _, e := range c.items {
		if e.Alive() && pred(e) {
			return true
		}
	}
	return false
}

// UpdateAll advances every live member by one tick.
func (c *Collection) UpdateAll(w World) {
	for _, e := range c.items {
		Update(e, w)
	}
}

// DrawAll renders every live member.
func (c *Collection) DrawAll(cv core.Canvas) {
	for _, e := range c.items {
		Draw(e, cv)
	}
}

// RemoveIf destroys every live member satisfying pred and compacts the
// collection. Returns the number removed.
func (c *Collection) RemoveIf(pred func(*Entity) bool) int {
	removed := 0
	for _, e := range c.items {
		if e.Alive() && pred(e) {
			e.Kill()
			removed++
		}
	}
	c.Sweep()
	return removed
}

// Sweep drops members that are already dead. Returns the number dropped.
func (c *Collection) Sweep() int {
	kept := c.items[:0]
	for _, e := range c.items {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	dropped := len(c.items) - len(kept)
	// Release pointers held past the new length
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = nil
	}
	c.items = kept
	return dropped
}

// Clear removes every member.
func (c *Collection) Clear() {
	for _, e := range c.items {
		e.Kill()
	}
	c.Sweep()
}

// HitPolicy selects how many members a single-target test reports.
type HitPolicy int

const (
	FirstHit HitPolicy = iota // Only the first intersecting member in order
	AllHits                   // Every intersecting member
)

// TestAgainstSingle checks target against every live member and calls onHit
// for each reported intersection. Returns the number of hits.
func (c *Collection) TestAgainstSingle(target *Entity, policy HitPolicy, onHit func(*Entity)) int {
	if target == nil || !target.Alive() {
		return 0
	}
	box := target.Box()
	hits := 0
	for _, e := range c.items {
		if !e.Alive() || !box.Intersects(e.Box()) {
			continue
		}
		hits++
		if onHit != nil {
			onHit(e)
		}
		if policy == FirstHit {
			break
		}
	}
	return hits
}

// TestPairwise checks every live member of a against the live members of b.
// Each entity takes part in at most one pairing per call: a member of a pairs
// with the first unpaired member of b it intersects. Entities killed during
// the call, by the remove flags or by onHit, are excluded from later pairs.
// Returns the number of pairs.
func TestPairwise(a, b *Collection, removeA, removeB bool, onHit func(ea, eb *Entity)) int {
	paired := intmap.New[ID, struct{}](len(b.items))
	pairs := 0
	for _, ea := range a.items {
		if !ea.Alive() {
			continue
		}
		boxA := ea.Box()
		for _, eb := range b.items {
			if !eb.Alive() || paired.Has(eb.ID) {
				continue
			}
			if !boxA.Intersects(eb.Box()) {
				continue
			}
			paired.Put(eb.ID, struct{}{})
			if removeA {
				ea.Kill()
			}
			if removeB {
				eb.Kill()
			}
			pairs++
			if onHit != nil {
				onHit(ea, eb)
			}
			break
		}
	}
	return pairs
}
