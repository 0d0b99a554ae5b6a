package vmath

import "fmt"

// Point is a grid position in pixel units, aligned to the cell size
type Point struct {
	X, Y int
}

// P is a convenience constructor for Point
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Offset moves p along h by stepX horizontally or stepY vertically
// Negative steps move against the heading
func (p Point) Offset(h Heading, stepX, stepY int) Point {
	dx, dy := h.Delta()
	return p.Add(dx*stepX, dy*stepY)
}

// Wrap folds p onto the torus [0,width) x [0,height)
// Any overshoot is reduced modulo the extent, so a point one cell past the
// right edge lands on 0 and one cell before 0 lands on width-cell
func (p Point) Wrap(width, height int) Point {
	return Point{X: wrapAxis(p.X, width), Y: wrapAxis(p.Y, height)}
}

// Equal reports exact integer equality on both axes
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func wrapAxis(v, extent int) int {
	if extent <= 0 {
		return v
	}
	v %= extent
	if v < 0 {
		v += extent
	}
	return v
}
