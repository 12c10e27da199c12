package emojifall

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// Palette. Flat colors; emoji balls carry their own texture.
var (
	colorBackground = color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff}
	colorStrip      = color.RGBA{R: 0x3a, G: 0x3a, B: 0x4a, A: 0xff}
	colorObstacle   = color.RGBA{R: 0x6e, G: 0x6e, B: 0x8a, A: 0xff}
	colorPendulum   = color.RGBA{R: 0xd9, G: 0x8e, B: 0x2b, A: 0xff}
	colorRope       = color.RGBA{R: 0x55, G: 0x55, B: 0x66, A: 0xff}
	colorBall       = color.RGBA{R: 0xcc, G: 0xcc, B: 0xd6, A: 0xff}
)

// whitePixel is a 1x1 white image scaled and rotated into every solid bar.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Draw renders one frame of the world onto screen: boundary strips, the
// obstacle course, the pendulum and its rope, then the emoji balls on top.
// Drawing mutates no world state; pair it with EndFrame for the per-frame
// cleanup pass.
func (w *World) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for _, b := range w.boundaries {
		drawFlatBody(screen, b, colorStrip)
	}
	for _, b := range w.course.Bodies {
		drawFlatBody(screen, b, colorObstacle)
	}
	w.drawPendulum(screen)
	for _, b := range w.pop.balls {
		drawEmojiBall(screen, b)
	}
}

// drawFlatBody renders an untextured body from its tag geometry: a circle,
// a bar, or a paddlewheel (hub circle plus tip-to-tip paddles).
func drawFlatBody(dst *ebiten.Image, b *cp.Body, clr color.Color) {
	t := tagOf(b)
	if t == nil || !t.visible {
		return
	}
	pos := b.Position()

	switch {
	case t.radius > 0 && t.length > 0:
		// Paddlewheel: hub plus wheelPaddles bars through the center.
		vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y),
			float32(t.radius*0.25), clr, true)
		for i := 0; i < wheelPaddles; i++ {
			angle := b.Angle() + float64(i)*math.Pi/wheelPaddles
			drawBar(dst, pos, angle, t.length, t.thick, clr)
		}
	case t.radius > 0:
		vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y),
			float32(t.radius), clr, true)
	case t.length > 0:
		drawBar(dst, pos, b.Angle(), t.length, t.thick, clr)
	}
}

// drawBar renders a solid rotated rectangle centered at pos by scaling the
// shared white pixel.
func drawBar(dst *ebiten.Image, pos cp.Vector, angle, length, thick float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thick)
	op.GeoM.Translate(-length/2, -thick/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel, op)
}

// drawSprite renders img centered at pos, scaled so its larger edge spans
// the given diameter, rotated by angle and faded by alpha.
func drawSprite(dst, img *ebiten.Image, pos cp.Vector, angle, diameter, scale, alpha float64) {
	bounds := img.Bounds()
	edge := max(bounds.Dx(), bounds.Dy())
	if edge == 0 {
		return
	}
	s := diameter / float64(edge) * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}

// drawPendulum renders the rope from the anchor, the ball, and the optional
// image fading in over it. A missing image just leaves the flat ball.
func (w *World) drawPendulum(screen *ebiten.Image) {
	p := w.pendulum
	if p.body == nil {
		return
	}
	pos := p.body.Position()

	vector.StrokeLine(screen,
		float32(p.anchor.X), float32(p.anchor.Y),
		float32(pos.X), float32(pos.Y),
		2, colorRope, true)
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y),
		PendulumRadius, colorPendulum, true)
	if p.image != nil {
		drawSprite(screen, p.image, pos, p.body.Angle(), 2*PendulumRadius, 1, p.fadeAlpha)
	}
}

// drawEmojiBall renders one emoji ball: its cached glyph texture with the
// spawn pop scale, or a flat disc when it has no texture.
func drawEmojiBall(dst *ebiten.Image, b *cp.Body) {
	t := tagOf(b)
	if t == nil {
		return
	}
	scale := t.popScale
	if t.pop == nil {
		scale = 1
	}
	pos := b.Position()
	if t.texture == nil {
		vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y),
			float32(t.radius*scale), colorBall, true)
		return
	}
	drawSprite(dst, t.texture, pos, b.Angle(), 2*t.radius, scale, 1)
}
