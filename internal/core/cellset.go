package core

import "slices"

// CellSet is the set of live cells of one generation. The mutating
// operations return a new set and leave the receiver untouched.
type CellSet struct {
	m map[Coord]struct{}
}

// NewCellSet returns a set holding the given cells.
func NewCellSet(cells ...Coord) CellSet {
	s := CellSet{m: make(map[Coord]struct{}, len(cells))}
	for _, c := range cells {
		s.m[c] = struct{}{}
	}
	return s
}

// Len returns the number of live cells.
func (s CellSet) Len() int { return len(s.m) }

// Contains reports whether c is alive.
func (s CellSet) Contains(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

// Clone returns an independent copy of s.
func (s CellSet) Clone() CellSet {
	out := CellSet{m: make(map[Coord]struct{}, len(s.m))}
	for c := range s.m {
		out.m[c] = struct{}{}
	}
	return out
}

// With returns s with c added.
func (s CellSet) With(c Coord) CellSet {
	if s.Contains(c) {
		return s
	}
	out := s.Clone()
	out.m[c] = struct{}{}
	return out
}

// Without returns s with c removed.
func (s CellSet) Without(c Coord) CellSet {
	if !s.Contains(c) {
		return s
	}
	out := s.Clone()
	delete(out.m, c)
	return out
}

// Toggle returns s with the membership of c flipped.
func (s CellSet) Toggle(c Coord) CellSet {
	if s.Contains(c) {
		return s.Without(c)
	}
	return s.With(c)
}

// Union returns the cells alive in either set.
func (s CellSet) Union(o CellSet) CellSet {
	out := s.Clone()
	for c := range o.m {
		out.m[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same cells.
func (s CellSet) Equal(o CellSet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for c := range s.m {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Each calls fn for every live cell in unspecified order.
func (s CellSet) Each(fn func(Coord)) {
	for c := range s.m {
		fn(c)
	}
}

// Sorted returns the live cells ordered by Coord.Less.
func (s CellSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Bounds returns the smallest half-open box [lo, hi) containing every live
// cell. Both are zero for an empty set.
func (s CellSet) Bounds() (lo, hi Coord) {
	first := true
	for c := range s.m {
		if first {
			lo, hi = c, c.Add(Coord{1, 1})
			first = false
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X+1), max(hi.Y, c.Y+1)
	}
	return lo, hi
}
