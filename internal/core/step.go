package core

// Step applies Conway's rule to cells and returns the next generation.
// neighbors supplies the adjacent coordinates that take part in the count,
// usually Geometry.Neighbors. cells is not modified.
func Step(cells CellSet, neighbors func(Coord) []Coord) CellSet {
	counts := make(map[Coord]int, len(cells.m)*4)
	for c := range cells.m {
		for _, n := range neighbors(c) {
			counts[n]++
		}
	}

	next := CellSet{m: make(map[Coord]struct{}, len(cells.m))}
	for c, n := range counts {
		if alive(n, cells.Contains(c)) {
			next.m[c] = struct{}{}
		}
	}
	return next
}

// alive reports whether a cell with n live neighbours is alive next
// generation.
func alive(n int, wasAlive bool) bool {
	return n == 3 || (n == 2 && wasAlive)
}

// Toggle flips the cell that derasterize maps p to. No bounds check is
// applied; see Geometry.ToggleAt for the checked form.
func Toggle(derasterize func(Point) Coord, p Point, cells CellSet) CellSet {
	return cells.Toggle(derasterize(p))
}
