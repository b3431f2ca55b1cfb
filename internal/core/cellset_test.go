package core

import (
	"slices"
	"testing"
)

func TestCellSetImmutableOps(t *testing.T) {
	base := NewCellSet(C(1, 1))
	with := base.With(C(2, 2))
	if base.Contains(C(2, 2)) || !with.Contains(C(2, 2)) {
		t.Fatal("With must copy")
	}
	without := with.Without(C(1, 1))
	if !with.Contains(C(1, 1)) || without.Contains(C(1, 1)) {
		t.Fatal("Without must copy")
	}
	if !base.Toggle(C(1, 1)).Equal(NewCellSet()) {
		t.Fatal("Toggle of a member should remove it")
	}
	var zero CellSet
	if zero.Len() != 0 || zero.Contains(C(0, 0)) {
		t.Fatal("zero CellSet should be empty")
	}
	if !zero.With(C(0, 0)).Contains(C(0, 0)) {
		t.Fatal("With on the zero value should work")
	}
}

func TestCellSetSortedAndBounds(t *testing.T) {
	s := NewCellSet(C(3, 1), C(0, 4), C(3, 0), C(1, 1))
	want := []Coord{C(0, 4), C(1, 1), C(3, 0), C(3, 1)}
	if got := s.Sorted(); !slices.Equal(got, want) {
		t.Fatalf("Sorted = %v, want %v", got, want)
	}
	lo, hi := s.Bounds()
	if lo != C(0, 0) || hi != C(4, 5) {
		t.Fatalf("Bounds = %v %v", lo, hi)
	}
	lo, hi = NewCellSet().Bounds()
	if lo != (Coord{}) || hi != (Coord{}) {
		t.Fatal("empty bounds should be zero")
	}
}

func TestCellSetUnion(t *testing.T) {
	a := NewCellSet(C(0, 0), C(1, 1))
	b := NewCellSet(C(1, 1), C(2, 2))
	u := a.Union(b)
	if u.Len() != 3 || a.Len() != 2 || b.Len() != 2 {
		t.Fatalf("unexpected union %v", u.Sorted())
	}
}
