package emojifall

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // decodable pendulum asset formats
	_ "image/png"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PendulumRadius is the collision radius of the swinging ball.
const PendulumRadius = 40

const (
	pendulumMass = 50.0

	// swingForce is the constant horizontal drive. It has to beat gravity's
	// restoring pull with room to spare, or the swing never reaches its
	// upper reversal angle.
	swingForce = 2 * pendulumMass * gravityY

	// Reversal thresholds of the swing state machine, as |angle| from the
	// anchor's vertical.
	swingHighAngle = 0.7 * math.Pi
	swingLowAngle  = 0.3 * math.Pi

	pendulumFadeIn = 0.8 // seconds
)

// swingDirection is the side the drive force currently pushes toward.
type swingDirection int8

const (
	swingLeft  swingDirection = iota // force toward negative x
	swingRight                       // force toward positive x
)

// Pendulum owns the single large swinging body, the rope pinning it to the
// top of the playfield, and the oscillation-direction state machine. The
// drive is deliberately not a passive pendulum: a direction-reversing
// horizontal force keeps it swinging forever without re-energizing.
type Pendulum struct {
	body   *cp.Body
	joint  *cp.Constraint
	anchor cp.Vector
	dir    swingDirection

	image     *ebiten.Image
	fade      *gween.Tween
	fadeAlpha float64
}

// Attach creates the pendulum body in space, hanging from a fixed anchor at
// the top center of pf on a pin joint whose rest length parks the ball just
// above the bottom strip. Rotational inertia is infinite so collisions can
// only translate the ball along its arc, never spin it.
func (p *Pendulum) Attach(space *cp.Space, pf Playfield) {
	p.anchor = cp.Vector{X: pf.Width / 2, Y: pf.Top}
	rest := pf.Height - bottomStripRise - stripThickness/2 - PendulumRadius

	p.body = cp.NewBody(pendulumMass, math.Inf(1))
	p.body.SetPosition(cp.Vector{X: p.anchor.X, Y: p.anchor.Y + rest})

	shape := cp.NewCircle(p.body, PendulumRadius, cp.Vector{})
	shape.SetElasticity(0.3)
	shape.SetFriction(0.2)

	p.body.UserData = &bodyTag{
		kind:    BodyPendulum,
		shapes:  []*cp.Shape{shape},
		radius:  PendulumRadius,
		texture: p.image,
		visible: true,
	}
	space.AddBody(p.body)
	space.AddShape(shape)

	// Pin joints capture the anchor distance at creation, so positioning
	// the body at rest length above already set the rope length.
	p.joint = space.AddConstraint(cp.NewPinJoint(p.body, space.StaticBody, cp.Vector{}, p.anchor))
	p.dir = swingLeft
}

// Body returns the pendulum's physics body, or nil before Attach.
func (p *Pendulum) Body() *cp.Body {
	return p.body
}

// theta returns the body's signed angle from the anchor's straight-down
// vertical, positive toward +x.
func (p *Pendulum) theta() float64 {
	pos := p.body.Position()
	return math.Atan2(pos.X-p.anchor.X, pos.Y-p.anchor.Y)
}

// updateDirection advances the swing state machine for the given angle.
// The direction flips to right only past the high reversal angle while
// swinging left, and back to left only under the low reversal angle while
// swinging right. No other condition flips it.
func (p *Pendulum) updateDirection(theta float64) {
	abs := math.Abs(theta)
	switch p.dir {
	case swingLeft:
		if abs > swingHighAngle {
			p.dir = swingRight
		}
	case swingRight:
		if abs < swingLowAngle {
			p.dir = swingLeft
		}
	}
}

// driveForce returns the horizontal drive for the given angle, and whether
// any drive applies. The force is only applied in the half of the arc before
// the current direction's reversal angle.
func (p *Pendulum) driveForce(theta float64) (float64, bool) {
	abs := math.Abs(theta)
	switch p.dir {
	case swingLeft:
		if abs < math.Pi/2 {
			return -swingForce, true
		}
	case swingRight:
		if abs > math.Pi/2 {
			return swingForce, true
		}
	}
	return 0, false
}

// StepForce runs the per-tick force law: update the swing direction, then
// apply the horizontal drive at the body's center.
func (p *Pendulum) StepForce() {
	theta := p.theta()
	p.updateDirection(theta)
	if f, ok := p.driveForce(theta); ok {
		p.body.ApplyForceAtWorldPoint(cp.Vector{X: f}, p.body.Position())
	}
}

// SetImage dresses the pendulum ball with an image, fading it in. A nil
// image reverts to the flat circle.
func (p *Pendulum) SetImage(img *ebiten.Image) {
	p.image = img
	p.fade = gween.New(0, 1, pendulumFadeIn, ease.InOutQuad)
	p.fadeAlpha = 0
	if t := tagOf(p.body); t != nil {
		t.texture = img
	}
}

// LoadImage decodes raw image data (PNG, JPEG, ...) and applies it via
// SetImage. The caller decides whether a failure is worth logging; physics
// is unaffected either way.
func (p *Pendulum) LoadImage(data []byte) error {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("emojifall: decode pendulum image: %w", err)
	}
	p.SetImage(ebiten.NewImageFromImage(src))
	return nil
}

// stepFade advances the image fade-in by dt seconds.
func (p *Pendulum) stepFade(dt float64) {
	if p.fade == nil {
		return
	}
	v, done := p.fade.Update(float32(dt))
	p.fadeAlpha = float64(v)
	if done {
		p.fade = nil
	}
}
