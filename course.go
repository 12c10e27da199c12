package emojifall

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

// LayoutKind identifies one of the four mutually exclusive obstacle courses.
type LayoutKind uint8

const (
	LayoutPegs    LayoutKind = iota // quincunx grid of static pegs
	LayoutSlats                     // zig-zag chute of tilted static bars
	LayoutWheels                    // two free-spinning paddlewheels
	LayoutPaddles                   // two facing pivoted paddles
)

// String returns the layout's name for logs and test failures.
func (k LayoutKind) String() string {
	switch k {
	case LayoutPegs:
		return "pegs"
	case LayoutSlats:
		return "slats"
	case LayoutWheels:
		return "wheels"
	case LayoutPaddles:
		return "paddles"
	default:
		return "unknown"
	}
}

// chooseLayout maps a uniform roll in [0, 1) to a LayoutKind. Pure, so the
// random choice stays injectable.
func chooseLayout(roll float64) LayoutKind {
	switch {
	case roll < 0.25:
		return LayoutPegs
	case roll < 0.5:
		return LayoutSlats
	case roll < 0.75:
		return LayoutWheels
	default:
		return LayoutPaddles
	}
}

// Course holds the bodies and constraints of one built obstacle layout, so a
// rebuild can account for every piece it owns.
type Course struct {
	Layout      LayoutKind
	Bodies      []*cp.Body
	Constraints []*cp.Constraint
}

// CourseBuilder constructs obstacle layouts scaled to the playfield. The
// zero value is ready to use; set Rand for a deterministic layout roll.
type CourseBuilder struct {
	Rand *rand.Rand
}

// Obstacle geometry tuning.
const (
	pegRadius     = 8
	pegRowPitch   = 75   // one peg row per this many pixels of height
	pegColPitch   = 33.3 // one peg column per this many pixels of height
	slatPitch     = 150  // one slat per this many pixels of height
	slatTilt      = math.Pi / 8
	slatThickness = 12
	wheelPaddles  = 4 // rectangles through the hub; eight effective faces
)

func (b *CourseBuilder) roll() float64 {
	if b.Rand != nil {
		return b.Rand.Float64()
	}
	return rand.Float64()
}

// Build rolls a layout and constructs its bodies inside space, scaled to pf.
// Called once per world (re)initialization, so the layout changes on every
// rebuild.
func (b *CourseBuilder) Build(space *cp.Space, pf Playfield) *Course {
	c := &Course{Layout: chooseLayout(b.roll())}
	switch c.Layout {
	case LayoutPegs:
		b.buildPegs(space, pf, c)
	case LayoutSlats:
		b.buildSlats(space, pf, c)
	case LayoutWheels:
		b.buildWheels(space, pf, c)
	case LayoutPaddles:
		b.buildPaddles(space, pf, c)
	}
	return c
}

// buildPegs lays a quincunx grid of static pegs, centered horizontally and
// filling the upper half of the playfield. Odd rows shift half a column so
// falling balls cannot tunnel straight through.
func (b *CourseBuilder) buildPegs(space *cp.Space, pf Playfield, c *Course) {
	rows := max(int(pf.Height/pegRowPitch), 1)
	cols := max(int(pf.Height/pegColPitch), 2)

	colGap := pf.Width / float64(cols+1)
	rowGap := (pf.Height / 2) / float64(rows+1)
	// Quincunx: the half-column shift on odd rows is rebalanced by a
	// quarter-column shift on the whole grid.
	baseX := (pf.Width-colGap*float64(cols-1))/2 - colGap/4

	for row := 0; row < rows; row++ {
		y := pf.Top + rowGap*float64(row+1)
		xOff := 0.0
		if row%2 == 1 {
			xOff = colGap / 2
		}
		for col := 0; col < cols; col++ {
			body := cp.NewStaticBody()
			body.SetPosition(cp.Vector{X: baseX + colGap*float64(col) + xOff, Y: y})

			shape := cp.NewCircle(body, pegRadius, cp.Vector{})
			shape.SetElasticity(0.5)
			shape.SetFriction(0.2)

			body.UserData = &bodyTag{
				kind:    BodyObstacle,
				shapes:  []*cp.Shape{shape},
				radius:  pegRadius,
				visible: true,
			}
			space.AddBody(body)
			space.AddShape(shape)
			c.Bodies = append(c.Bodies, body)
		}
	}
}

// buildSlats stacks tilted static bars into a zig-zag chute: tilt and
// horizontal offset both alternate per bar.
func (b *CourseBuilder) buildSlats(space *cp.Space, pf Playfield, c *Course) {
	count := max(int(pf.Height/slatPitch), 1)
	length := pf.Width * 0.45
	half := length / 2

	for i := 0; i < count; i++ {
		tilt := slatTilt
		shift := pf.Width * 0.15
		if i%2 == 1 {
			tilt = -slatTilt
			shift = -shift
		}

		body := cp.NewStaticBody()
		body.SetPosition(cp.Vector{
			X: pf.Width/2 + shift,
			Y: pf.Top + pf.Height*float64(i+1)/float64(count+1),
		})
		body.SetAngle(tilt)

		shape := cp.NewSegment(body, cp.Vector{X: -half}, cp.Vector{X: half}, slatThickness/2)
		shape.SetElasticity(0.3)
		shape.SetFriction(0.1)

		body.UserData = &bodyTag{
			kind:    BodyObstacle,
			shapes:  []*cp.Shape{shape},
			length:  length,
			thick:   slatThickness,
			visible: true,
		}
		space.AddBody(body)
		space.AddShape(shape)
		c.Bodies = append(c.Bodies, body)
	}
}

// buildWheels pins two free-spinning paddlewheels left and right of center.
// Each wheel is one compound body: a hub circle plus four paddles through
// the hub at even angles, held by a zero-length pivot so it rotates in place.
// The right wheel shrinks when its radius would reach into the pendulum's
// anchor column.
func (b *CourseBuilder) buildWheels(space *cp.Space, pf Playfield, c *Course) {
	radius := pf.Height / 6
	midY := pf.Top + pf.Height/2

	for _, cx := range []float64{pf.Width * 0.25, pf.Width * 0.75} {
		r := radius
		if clear := cx - (pf.Width/2 + PendulumRadius); cx > pf.Width/2 && r > clear {
			r = math.Max(clear, radius/2)
		}
		hub := r * 0.25

		const mass = 5.0
		part := mass / (wheelPaddles + 1)
		moment := cp.MomentForCircle(part, 0, hub, cp.Vector{})
		for i := 0; i < wheelPaddles; i++ {
			a, bb := paddleEnds(r, float64(i)*math.Pi/wheelPaddles)
			moment += cp.MomentForSegment(part, a, bb, slatThickness/2)
		}

		body := cp.NewBody(mass, moment)
		body.SetPosition(cp.Vector{X: cx, Y: midY})

		tag := &bodyTag{kind: BodyObstacle, radius: r, length: 2 * r, thick: slatThickness, visible: true}
		hubShape := cp.NewCircle(body, hub, cp.Vector{})
		hubShape.SetFriction(0.3)
		tag.shapes = append(tag.shapes, hubShape)
		for i := 0; i < wheelPaddles; i++ {
			a, bb := paddleEnds(r, float64(i)*math.Pi/wheelPaddles)
			s := cp.NewSegment(body, a, bb, slatThickness/2)
			s.SetElasticity(0.4)
			s.SetFriction(0.3)
			tag.shapes = append(tag.shapes, s)
		}

		body.UserData = tag
		space.AddBody(body)
		for _, s := range tag.shapes {
			space.AddShape(s)
		}

		pivot := cp.NewPivotJoint(body, space.StaticBody, body.Position())
		space.AddConstraint(pivot)

		c.Bodies = append(c.Bodies, body)
		c.Constraints = append(c.Constraints, pivot)
	}
}

// paddleEnds returns the local endpoints of a tip-to-tip paddle of the given
// radius at the given angle.
func paddleEnds(r, angle float64) (cp.Vector, cp.Vector) {
	d := cp.Vector{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
	return d.Neg(), d
}

// buildPaddles pins two facing kinetic paddles at center height, symmetric
// about the playfield's vertical midline.
func (b *CourseBuilder) buildPaddles(space *cp.Space, pf Playfield, c *Course) {
	length := pf.Width * 0.2
	midY := pf.Top + pf.Height/2

	for _, cx := range []float64{pf.Width * 0.3, pf.Width * 0.7} {
		const mass = 2.0
		body := cp.NewBody(mass, cp.MomentForBox(mass, length, slatThickness))
		body.SetPosition(cp.Vector{X: cx, Y: midY})

		shape := cp.NewBox(body, length, slatThickness, 0)
		shape.SetElasticity(0.4)
		shape.SetFriction(0.2)

		body.UserData = &bodyTag{
			kind:    BodyObstacle,
			shapes:  []*cp.Shape{shape},
			length:  length,
			thick:   slatThickness,
			visible: true,
		}
		space.AddBody(body)
		space.AddShape(shape)

		pivot := cp.NewPivotJoint(body, space.StaticBody, body.Position())
		space.AddConstraint(pivot)

		c.Bodies = append(c.Bodies, body)
		c.Constraints = append(c.Constraints, pivot)
	}
}
