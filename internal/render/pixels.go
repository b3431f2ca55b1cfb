// Package render turns a generation into shapes and pixels for display.
package render

import (
	"image"
	"image/color"

	"boardlife/internal/core"
)

var (
	// Background is the colour of dead space.
	Background = color.RGBA{A: 255}
	// CellColor is the fill colour of live cells.
	CellColor = color.RGBA{G: 224, A: 255}
)

// Rects returns the surface rectangle of every live cell, ordered by cell.
func Rects(geo core.Geometry, cells core.CellSet) []core.Rect {
	sorted := cells.Sorted()
	out := make([]core.Rect, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, geo.ToSurfaceRect(c))
	}
	return out
}

// Rasterize renders cells into an image the size of the surface. A pixel is
// lit when its centre falls inside a live cell.
func Rasterize(geo core.Geometry, cells core.CellSet, on, off color.Color) *image.RGBA {
	s := geo.Surface()
	img := image.NewRGBA(image.Rect(0, 0, s.X, s.Y))
	alive := func(x, y int) bool {
		return cells.Contains(geo.ToGrid(core.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}))
	}
	fillCellsRGBA(img.Pix, s.X, s.Y, alive, on, off)
	return img
}

// fillCellsRGBA writes one RGBA pixel per (x, y) into buf in row-major
// order, using on where alive reports true and off elsewhere.
func fillCellsRGBA(buf []byte, w, h int, alive func(x, y int) bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			if alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
