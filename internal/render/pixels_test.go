package render

import (
	"image/color"
	"testing"

	"boardlife/internal/core"
)

func TestRectsOrderedByCell(t *testing.T) {
	geo := core.MustGeometry(core.C(4, 4), core.C(40, 20))
	cells := core.NewCellSet(core.C(3, 1), core.C(0, 2))
	rects := Rects(geo, cells)
	want := []core.Rect{
		{Min: core.Point{X: 0, Y: 10}, W: 10, H: 5},
		{Min: core.Point{X: 30, Y: 5}, W: 10, H: 5},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestRasterize(t *testing.T) {
	geo := core.MustGeometry(core.C(3, 2), core.C(6, 4))
	cells := core.NewCellSet(core.C(1, 0), core.C(2, 1))
	img := Rasterize(geo, cells, CellColor, Background)

	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			lit := (x/2 == 1 && y/2 == 0) || (x/2 == 2 && y/2 == 1)
			want := Background
			if lit {
				want = CellColor
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRasterizeFractionalCells(t *testing.T) {
	// 3 cells over 10 pixels: pixel centres 0.5..9.5 split 3/4/3.
	geo := core.MustGeometry(core.C(3, 1), core.C(10, 1))
	img := Rasterize(geo, core.NewCellSet(core.C(1, 0)), color.White, color.Black)
	lit := 0
	for x := 0; x < 10; x++ {
		if img.RGBAAt(x, 0) == (color.RGBA{255, 255, 255, 255}) {
			lit++
		}
	}
	if lit != 4 {
		t.Fatalf("lit %d pixels, want 4", lit)
	}
}
