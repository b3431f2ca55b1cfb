//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudHeight  = 13 + 2*hudPadding
)

// HUD draws a one-line status bar in the top-left corner.
type HUD struct {
	bg color.Color
	fg color.Color
}

// NewHUD constructs a HUD with its default colours.
func NewHUD() *HUD {
	return &HUD{
		bg: color.RGBA{R: 16, G: 16, B: 20, A: 200},
		fg: color.RGBA{R: 220, G: 220, B: 220, A: 255},
	}
}

// Draw paints s onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil {
		return
	}
	line := s.String()
	face := basicfont.Face7x13
	width := text.BoundString(face, line).Dx() + 2*hudPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width), hudHeight, h.bg, false)
	text.Draw(screen, line, face, hudPadding, hudPadding+face.Ascent, h.fg)
}
