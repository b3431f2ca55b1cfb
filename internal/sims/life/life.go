// Package life holds the state of one interactive Game of Life run on a
// bounded board.
package life

import (
	"boardlife/internal/core"
	"boardlife/internal/seed"
)

// Life owns the current generation and the controls applied to it between
// ticks. It is not safe for concurrent use.
type Life struct {
	geo     core.Geometry
	log     core.Logger
	initial core.CellSet
	cells   core.CellSet

	running    bool
	generation int
}

// Option configures a Life.
type Option func(*Life)

// WithLogger directs diagnostics to l.
func WithLogger(l core.Logger) Option {
	return func(lf *Life) {
		if l != nil {
			lf.log = l
		}
	}
}

// New returns a paused run on geo starting from initial. Cells of initial
// that lie off the board are dropped and logged.
func New(geo core.Geometry, initial core.CellSet, opts ...Option) *Life {
	l := &Life{geo: geo, log: core.NopLogger}
	for _, opt := range opts {
		opt(l)
	}
	l.initial = l.clip(initial)
	l.cells = l.initial
	return l
}

func (l *Life) clip(cells core.CellSet) core.CellSet {
	clipped, dropped := l.geo.Clip(cells)
	if dropped > 0 {
		l.log.Printf("dropped %d seed cells outside board %v", dropped, l.geo.Board())
	}
	return clipped
}

// Geometry returns the board and surface mapping of the run.
func (l *Life) Geometry() core.Geometry { return l.geo }

// Cells returns the current generation.
func (l *Life) Cells() core.CellSet { return l.cells }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cells.Len() }

// Running reports whether the simulation advances on each tick.
func (l *Life) Running() bool { return l.running }

// SetRunning starts or pauses the simulation.
func (l *Life) SetRunning(on bool) { l.running = on }

// ToggleRunning flips between running and paused.
func (l *Life) ToggleRunning() { l.running = !l.running }

// Step advances one generation regardless of the running flag.
func (l *Life) Step() {
	l.cells = core.Step(l.cells, l.geo.Neighbors)
	l.generation++
}

// Tick advances one generation if the simulation is running and reports
// whether it did.
func (l *Life) Tick() bool {
	if !l.running {
		return false
	}
	l.Step()
	return true
}

// ToggleAt flips the cell under surface point p and returns it. Points off
// the board are ignored and report false.
func (l *Life) ToggleAt(p core.Point) (core.Coord, bool) {
	cell := l.geo.ToGrid(p)
	next, ok := l.geo.ToggleAt(p, l.cells)
	if !ok {
		l.log.Printf("ignoring click at %v outside board (cell %v)", p, cell)
		return cell, false
	}
	if next.Contains(cell) {
		l.log.Printf("adding cell from %v at %v", p, cell)
	} else {
		l.log.Printf("removing cell from %v at %v", p, cell)
	}
	l.cells = next
	return cell, true
}

// Clear kills every cell and pauses.
func (l *Life) Clear() {
	l.cells = core.NewCellSet()
	l.generation = 0
	l.running = false
}

// Reset restores the initial generation and pauses.
func (l *Life) Reset() {
	l.cells = l.initial
	l.generation = 0
	l.running = false
}

// Load replaces the initial generation and resets to it.
func (l *Life) Load(cells core.CellSet) {
	l.initial = l.clip(cells)
	l.Reset()
}

// Randomize replaces the initial generation with a random fill and resets
// to it.
func (l *Life) Randomize(rngSeed int64, density float64) {
	l.Load(seed.Random(core.NewRNG(rngSeed), l.geo.Board(), density))
}
