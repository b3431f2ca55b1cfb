package core

// offsets lists the eight compass directions in enumeration order.
var offsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the coordinates adjacent to p that satisfy within. A nil
// predicate accepts every coordinate.
func Neighbors(within func(Coord) bool, p Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, off := range offsets {
		n := p.Add(off)
		if within != nil && !within(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}
