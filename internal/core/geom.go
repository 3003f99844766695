// Package core provides fundamental types and utilities shared by the game
// logic and the presentation layers. It has no external dependencies (no
// Bubble Tea, no Ebiten) so the simulation stays pure and testable.
package core

// Rect represents an axis-aligned bounding box in world or cell units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.OverlapsX(other) && r.Y < other.Bottom() && other.Y < r.Bottom()
}

// OverlapsX reports whether the horizontal spans of the two rectangles overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right()
}
