// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell coordinate. Y grows downward, X grows rightward.
type Point struct {
	Y, X int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{Y: p.Y + q.Y, X: p.X + q.X}
}

// Neg returns the vector pointing the opposite way.
func (p Point) Neg() Point {
	return Point{Y: -p.Y, X: -p.X}
}

// In reports whether p lies inside [0, rows) x [0, cols).
func (p Point) In(rows, cols int) bool {
	return p.Y >= 0 && p.Y < rows && p.X >= 0 && p.X < cols
}

// Unit direction vectors.
var (
	Up    = Point{Y: -1, X: 0}
	Down  = Point{Y: 1, X: 0}
	Left  = Point{Y: 0, X: -1}
	Right = Point{Y: 0, X: 1}
)

// Rect represents an axis-aligned box on the screen.
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
