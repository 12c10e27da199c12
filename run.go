package emojifall

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int // initial window width; defaults to 1280
	Height  int // initial window height; defaults to 720
	ShowFPS bool
}

// Run opens a resizable window and drives world with the standard game
// loop: fixed-step physics in Update, the render pass plus the cleanup pass
// in Draw, and a full world rebuild whenever the window size changes. It
// blocks until the window closes.
func Run(world *World, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Title == "" {
		cfg.Title = "emojifall"
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{world: world}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("emojifall: run: %w", err)
	}
	return nil
}

// game adapts a World to ebiten.Game.
type game struct {
	world *World
	fps   *fpsOverlay
}

func (g *game) Update() error {
	g.world.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	// Cleanup is tied to the rendered frame, not the physics tick.
	g.world.EndFrame()
}

// Layout reports the playfield at window size and rebuilds the world when
// the size changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	pf := g.world.Playfield()
	if pf.Width != float64(outsideWidth) || pf.Height != float64(outsideHeight) {
		g.world.SetDimensions(Playfield{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
			Top:    pf.Top,
		})
	}
	return outsideWidth, outsideHeight
}

// fpsOverlay draws the current FPS and TPS in the top-left corner,
// refreshed every half second.
type fpsOverlay struct {
	img  *ebiten.Image
	last time.Time
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if time.Since(f.last) >= 500*time.Millisecond {
		f.last = time.Now()
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{A: 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}
