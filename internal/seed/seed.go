// Package seed builds initial generations from text grids, built-in
// patterns and random fills.
package seed

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"boardlife/internal/core"
)

// Alive is the character marking a live cell in a text grid.
const Alive = 'x'

// LoadRows returns the live cells of a character grid. Row y, column x
// holding Alive yields Coord{x, y}. Other characters are dead and rows may
// differ in length; columns count runes, not bytes.
func LoadRows(rows []string) core.CellSet {
	var cells []core.Coord
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if r == Alive {
				cells = append(cells, core.Coord{X: x, Y: y})
			}
			x++
		}
	}
	return core.NewCellSet(cells...)
}

// Load reads a character grid line by line from r.
func Load(r io.Reader) (core.CellSet, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return core.CellSet{}, errors.Wrap(err, "read seed")
	}
	return LoadRows(rows), nil
}

// LoadFile reads a character grid from the file at path.
func LoadFile(path string) (core.CellSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.CellSet{}, errors.Wrapf(err, "open seed %s", path)
	}
	defer f.Close()

	cells, err := Load(f)
	if err != nil {
		return core.CellSet{}, errors.Wrapf(err, "load seed %s", path)
	}
	return cells, nil
}

// Random returns a board of the given extent where each cell is alive with
// probability density.
func Random(rng *core.RNG, board core.Coord, density float64) core.CellSet {
	var cells []core.Coord
	for y := 0; y < board.Y; y++ {
		for x := 0; x < board.X; x++ {
			if rng.Chance(density) {
				cells = append(cells, core.Coord{X: x, Y: y})
			}
		}
	}
	return core.NewCellSet(cells...)
}

// Offset returns cells translated by d.
func Offset(cells core.CellSet, d core.Coord) core.CellSet {
	var out []core.Coord
	cells.Each(func(c core.Coord) { out = append(out, c.Add(d)) })
	return core.NewCellSet(out...)
}

// Center translates cells so their bounding box sits in the middle of a
// board of the given extent.
func Center(cells core.CellSet, board core.Coord) core.CellSet {
	if cells.Len() == 0 {
		return cells
	}
	lo, hi := cells.Bounds()
	w, h := hi.X-lo.X, hi.Y-lo.Y
	d := core.Coord{X: (board.X-w)/2 - lo.X, Y: (board.Y-h)/2 - lo.Y}
	return Offset(cells, d)
}
