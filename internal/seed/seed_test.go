package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"boardlife/internal/core"
)

func TestLoadRows(t *testing.T) {
	cells := LoadRows([]string{"x.", ".x"})
	want := core.NewCellSet(core.C(0, 0), core.C(1, 1))
	if !cells.Equal(want) {
		t.Fatalf("LoadRows = %v, want %v", cells.Sorted(), want.Sorted())
	}

	if empty := LoadRows([]string{"...", "...", "."}); empty.Len() != 0 {
		t.Fatalf("dead rows produced %v", empty.Sorted())
	}
}

func TestLoadRowsIgnoresOtherCharacters(t *testing.T) {
	cells := LoadRows([]string{"X o x", "", "  x#"})
	want := core.NewCellSet(core.C(4, 0), core.C(2, 2))
	if !cells.Equal(want) {
		t.Fatalf("LoadRows = %v, want %v", cells.Sorted(), want.Sorted())
	}
}

func TestLoadReader(t *testing.T) {
	cells, err := Load(strings.NewReader(".x\r\nxx\n\n...x"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := core.NewCellSet(core.C(1, 0), core.C(0, 1), core.C(1, 1), core.C(3, 3))
	if !cells.Equal(want) {
		t.Fatalf("Load = %v, want %v", cells.Sorted(), want.Sorted())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glider.txt")
	if err := os.WriteFile(path, []byte(".x.\n..x\nxxx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cells, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	glider, _ := Pattern("glider")
	if !cells.Equal(glider) {
		t.Fatalf("file = %v, want %v", cells.Sorted(), glider.Sorted())
	}

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	if err == nil || !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestPatternRegistry(t *testing.T) {
	names := Patterns()
	for _, want := range []string{"beacon", "blinker", "block", "glider", "toad"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("pattern %q not registered: %v", want, names)
		}
	}
	if _, err := Pattern("nope"); errors.Cause(err) != ErrUnknownPattern {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	block, err := Pattern("block")
	if err != nil || block.Len() != 4 {
		t.Fatalf("block = %v, %v", block.Sorted(), err)
	}
}

func TestGliderTranslates(t *testing.T) {
	g := core.MustGeometry(core.C(20, 20), core.C(200, 200))
	glider, _ := Pattern("glider")
	cells := Offset(glider, core.C(5, 5))
	for i := 0; i < 4; i++ {
		cells = core.Step(cells, g.Neighbors)
	}
	want := Offset(glider, core.C(6, 6))
	if !cells.Equal(want) {
		t.Fatalf("glider after 4 steps = %v, want %v", cells.Sorted(), want.Sorted())
	}
}

func TestOscillatorPeriods(t *testing.T) {
	g := core.MustGeometry(core.C(12, 12), core.C(120, 120))
	for _, name := range []string{"blinker", "toad", "beacon"} {
		p, _ := Pattern(name)
		start := Center(p, g.Board())
		one := core.Step(start, g.Neighbors)
		two := core.Step(one, g.Neighbors)
		if one.Equal(start) {
			t.Fatalf("%s should change after one step", name)
		}
		if !two.Equal(start) {
			t.Fatalf("%s should return after two steps: %v vs %v", name, two.Sorted(), start.Sorted())
		}
	}
}

func TestRandomDensity(t *testing.T) {
	board := core.C(50, 40)
	a := Random(core.NewRNG(7), board, 0.25)
	b := Random(core.NewRNG(7), board, 0.25)
	if !a.Equal(b) {
		t.Fatal("Random should be deterministic for a seed")
	}
	total := board.X * board.Y
	if a.Len() < total/8 || a.Len() > total/2 {
		t.Fatalf("population %d far from density 0.25 of %d", a.Len(), total)
	}
	a.Each(func(c core.Coord) {
		if !core.Within(board, c) {
			t.Fatalf("%v off board", c)
		}
	})
	if Random(core.NewRNG(1), board, 0).Len() != 0 {
		t.Fatal("zero density should be empty")
	}
	if Random(core.NewRNG(1), board, 1).Len() != total {
		t.Fatal("full density should fill the board")
	}
}

func TestCenter(t *testing.T) {
	block, _ := Pattern("block")
	got := Center(block, core.C(10, 6))
	want := core.NewCellSet(core.C(4, 2), core.C(5, 2), core.C(4, 3), core.C(5, 3))
	if !got.Equal(want) {
		t.Fatalf("Center = %v, want %v", got.Sorted(), want.Sorted())
	}
}
