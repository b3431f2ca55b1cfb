package core

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidExtent is returned when a board or surface extent has a
// non-positive axis.
var ErrInvalidExtent = errors.New("extent axes must be positive")

// Within reports whether p lies on a board of the given extent, with the
// implicit origin (0,0).
func Within(extent, p Coord) bool {
	return p.In(Coord{}, extent)
}

// Geometry maps between board cells and a display surface. Both extents are
// fixed for the lifetime of a run.
type Geometry struct {
	board   Coord
	surface Coord
}

// NewGeometry validates both extents and returns the resulting Geometry.
func NewGeometry(board, surface Coord) (Geometry, error) {
	if board.X <= 0 || board.Y <= 0 {
		return Geometry{}, errors.Wrapf(ErrInvalidExtent, "board %v", board)
	}
	if surface.X <= 0 || surface.Y <= 0 {
		return Geometry{}, errors.Wrapf(ErrInvalidExtent, "surface %v", surface)
	}
	return Geometry{board: board, surface: surface}, nil
}

// MustGeometry is NewGeometry for extents known to be valid. It panics
// otherwise.
func MustGeometry(board, surface Coord) Geometry {
	g, err := NewGeometry(board, surface)
	if err != nil {
		panic(err)
	}
	return g
}

// Board returns the exclusive upper bound of the cell grid.
func (g Geometry) Board() Coord { return g.board }

// Surface returns the display surface size in pixels.
func (g Geometry) Surface() Coord { return g.surface }

// Contains reports whether p is a cell of the board.
func (g Geometry) Contains(p Coord) bool { return Within(g.board, p) }

// CellSize returns the per-axis size of one cell in pixels. The values need
// not be integral.
func (g Geometry) CellSize() (w, h float64) {
	return float64(g.surface.X) / float64(g.board.X), float64(g.surface.Y) / float64(g.board.Y)
}

// ToSurfaceRect returns the rectangle covered by cell on the surface.
func (g Geometry) ToSurfaceRect(cell Coord) Rect {
	w, h := g.CellSize()
	return Rect{
		Min: Point{X: float64(cell.X) * w, Y: float64(cell.Y) * h},
		W:   w,
		H:   h,
	}
}

// ToGridPoint scales a surface point into fractional grid units.
func (g Geometry) ToGridPoint(p Point) (x, y float64) {
	w, h := g.CellSize()
	return p.X / w, p.Y / h
}

// ToGrid returns the cell under surface point p. Each axis is floored, so
// points left of or above the surface map to negative indices.
func (g Geometry) ToGrid(p Point) Coord {
	x, y := g.ToGridPoint(p)
	return Coord{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Neighbors returns the on-board neighbours of p.
func (g Geometry) Neighbors(p Coord) []Coord {
	return Neighbors(g.Contains, p)
}

// ToggleAt flips the cell under p. Points that map off the board leave cells
// untouched and report false.
func (g Geometry) ToggleAt(p Point, cells CellSet) (CellSet, bool) {
	cell := g.ToGrid(p)
	if !g.Contains(cell) {
		return cells, false
	}
	return cells.Toggle(cell), true
}

// Clip returns the members of cells that lie on the board, along with the
// number of cells dropped.
func (g Geometry) Clip(cells CellSet) (CellSet, int) {
	out := NewCellSet()
	dropped := 0
	for c := range cells.m {
		if !g.Contains(c) {
			dropped++
			continue
		}
		out.m[c] = struct{}{}
	}
	return out, dropped
}
