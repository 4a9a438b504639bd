// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Direction represents a movement direction on the grid.
// The zero value is DirRight, the direction a new game starts with.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is a grid-aligned position. Coordinates are in board units
// (pixels), always a multiple of the configured unit size.
type Cell struct {
	X, Y int
}

// Step returns the cell one unit away from c in direction d.
func (c Cell) Step(d Direction, unit int) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - unit}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + unit}
	case DirLeft:
		return Cell{X: c.X - unit, Y: c.Y}
	default:
		return Cell{X: c.X + unit, Y: c.Y}
	}
}

// Rect represents an axis-aligned box.
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

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsCell is Contains for a Cell.
func (r Rect) ContainsCell(c Cell) bool {
	return r.Contains(c.X, c.Y)
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
