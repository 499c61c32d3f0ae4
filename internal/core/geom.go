// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned bounding box in world coordinates.
// Entities use it for both collision and rendering.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, never negative
}

// NewBox creates a new box with the given position and dimensions.
// Negative sizes are clamped to zero.
func NewBox(x, y, w, h float64) Box {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Intersects returns true if the two boxes overlap with non-zero area.
// Edges are half-open, so boxes that only touch do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Direction is the side of the bounds an entity travels toward.
type Direction int

const (
	DirAny Direction = iota // Outside on any side
	DirLeft
	DirRight
	DirUp
	DirDown
)

// OffScreen returns true if the box lies entirely outside bounds on the side
// it is travelling toward. DirAny checks every side.
func (b Box) OffScreen(bounds Box, dir Direction) bool {
	switch dir {
	case DirLeft:
		return b.Right() <= bounds.X
	case DirRight:
		return b.X >= bounds.Right()
	case DirUp:
		return b.Bottom() <= bounds.Y
	case DirDown:
		return b.Y >= bounds.Bottom()
	default:
		return b.Right() <= bounds.X || b.X >= bounds.Right() ||
			b.Bottom() <= bounds.Y || b.Y >= bounds.Bottom()
	}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
