//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"golbench/internal/core"
	"golbench/internal/engine"
	"golbench/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game steps a Life board with the configured engine and renders it.
type Game struct {
	eng     engine.Engine
	cur     *core.Grid
	nxt     *core.Grid
	painter *render.GridPainter
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	generation int
	lastStep   time.Duration
}

// New constructs a Game stepping the provided board with the given engine.
func New(eng engine.Engine, initial *core.Grid, scale, tps int, seed int64) (*Game, error) {
	nxt, err := core.NewGrid(initial.N())
	if err != nil {
		return nil, err
	}
	return &Game{
		eng:      eng,
		cur:      initial.Clone(),
		nxt:      nxt,
		painter:  render.NewGridPainter(initial.N()),
		pacer:    core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}, nil
}

// Reset reseeds the board and restarts the generation counter.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.cur.Randomize(seed)
	g.generation = 0
	g.tickOnce = false
	g.lastStep = 0
}

func (g *Game) step() error {
	start := time.Now()
	if _, err := g.eng.Step(g.cur, g.nxt); err != nil {
		return err
	}
	g.lastStep = time.Since(start)
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
	return nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.tickOnce = false
		return g.step()
	}
	return nil
}

// Draw renders the current board and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cur.Cells(), g.onColor, g.offColor, g.scale)
	status := fmt.Sprintf("gen %d  alive %d  %s %s", g.generation, g.cur.Alive(), g.eng.Name(), g.lastStep)
	text.Draw(screen, status, basicfont.Face7x13, 4, 12, color.RGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cur.N() * g.scale, g.cur.N() * g.scale
}
