//go:build ebiten

package app

import (
	"time"

	"boardlife/internal/core"
	"boardlife/internal/render"
	"boardlife/internal/sims/life"
	"boardlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game adapts a life run to the ebiten.Game interface.
type Game struct {
	life  *life.Life
	pacer *core.FixedStep
	hud   *ui.HUD
	log   core.Logger

	density float64
	rngSeed int64

	dragging bool
	lastCell core.Coord
}

// New constructs a Game for the provided run.
func New(l *life.Life, cfg *Config, log core.Logger) *Game {
	if log == nil {
		log = core.NopLogger
	}
	g := &Game{
		life:    l,
		pacer:   core.NewFixedStep(cfg.GPS),
		log:     log,
		density: cfg.Density,
		rngSeed: cfg.RNGSeed,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD()
	}
	return g
}

// Update handles input and advances the run when its step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.life.ToggleRunning()
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.life.SetRunning(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.life.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.life.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.life.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.rngSeed = time.Now().UnixNano()
		g.log.Printf("random board with seed %d", g.rngSeed)
		g.life.Randomize(g.rngSeed, g.density)
	}

	g.updatePointer()

	if g.life.Running() && g.pacer.ShouldStep() {
		g.life.Tick()
	}
	return nil
}

// updatePointer toggles the cell under the cursor on press, then once for
// each further cell entered while the button is held.
func (g *Game) updatePointer() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	p := core.Point{X: float64(x), Y: float64(y)}
	cell := g.life.Geometry().ToGrid(p)
	if g.dragging && cell == g.lastCell {
		return
	}
	g.dragging = true
	g.lastCell = cell
	g.life.ToggleAt(p)
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	for _, r := range render.Rects(g.life.Geometry(), g.life.Cells()) {
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.W), float32(r.H), render.CellColor, false)
	}
	if g.hud != nil {
		g.hud.Draw(screen, ui.StatusOf(g.life))
	}
}

// Layout returns the logical screen size, which is the surface extent.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.life.Geometry().Surface()
	return s.X, s.Y
}
