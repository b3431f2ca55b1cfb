package core

import "fmt"

// Coord is an integer grid coordinate.
type Coord struct {
	X int
	Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Less orders coordinates by X, then Y.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// In reports whether c lies in the half-open box [lo, hi) on both axes.
func (c Coord) In(lo, hi Coord) bool {
	return lo.X <= c.X && c.X < hi.X && lo.Y <= c.Y && c.Y < hi.Y
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Point is a position on the display surface in pixel units.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Rect is an axis-aligned rectangle on the display surface.
type Rect struct {
	Min Point
	W   float64
	H   float64
}

// Max returns the exclusive bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.Min.X + r.W, Y: r.Min.Y + r.H} }
