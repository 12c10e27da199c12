// emojirain feeds a fake emote stream into an emojifall world: a few random
// symbols drop in every second, C clears the pile, and Space pauses the
// simulation. Stands in for the real event-stream client.
package main

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/emojifall"
)

const (
	screenW = 1280
	screenH = 720

	// Spawn cadence of the fake stream, in frames.
	spawnEvery = 12
	burstMax   = 3
)

// symbols is what the fake stream emits. The default glyph face is a plain
// bitmap font, so the demo sticks to ASCII; a real host installs an
// emoji-capable face with World.SetGlyphFace and feeds actual emotes.
var symbols = []string{"@", "#", "*", "&", "%", "O", "X"}

type demo struct {
	world *emojifall.World
	frame int
}

func (d *demo) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		d.world.ClearAllEmojis()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if d.world.Running() {
			d.world.Stop()
		} else {
			d.world.Start()
		}
	}

	d.frame++
	if d.world.Running() && d.frame%spawnEvery == 0 {
		for i := 0; i < 1+rand.IntN(burstMax); i++ {
			d.world.CreateEmojiBall(symbols[rand.IntN(len(symbols))])
		}
	}

	d.world.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	d.world.Draw(screen)
	d.world.EndFrame()
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	pf := d.world.Playfield()
	if pf.Width != float64(outsideWidth) || pf.Height != float64(outsideHeight) {
		d.world.SetDimensions(emojifall.Playfield{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
		})
	}
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowTitle("Emojifall — emoji rain")
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	world := emojifall.NewWorld(emojifall.Playfield{Width: screenW, Height: screenH})
	if err := ebiten.RunGame(&demo{world: world}); err != nil {
		log.Fatal(err)
	}
}
