package emojifall

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
)

// Debug enables soft-failure logging (capacity rejects, missing assets) to
// stderr. Off by default; hot paths skip formatting entirely when unset.
var Debug bool

// Simulation tuning constants. Distances are in pixels, times in seconds.
const (
	// MaxEmojis caps the number of live emoji balls. Spawns past the cap
	// are silently rejected.
	MaxEmojis = 1000

	// EmojiRadius is the collision radius of every emoji ball.
	EmojiRadius = 10

	emojiFriction   = 0.05
	emojiElasticity = 0.7
	emojiMass       = 1.0

	// spawnJitter is the horizontal spawn spread around playfield center,
	// as a fraction of playfield width.
	spawnJitter = 0.02

	gravityY  = 980.0
	fixedStep = 1.0 / 60.0
)

// Playfield is the visible simulation region. Top is the vertical offset of
// the region within the host window; the open bottom edge sits at
// Top + Height.
type Playfield struct {
	Width  float64
	Height float64
	Top    float64
}

// Bottom returns the y coordinate of the playfield's open bottom edge.
func (p Playfield) Bottom() float64 {
	return p.Top + p.Height
}

// BodyKind tags every body at creation time so lifecycle rules can check
// what a body is rather than what shape it happens to have.
type BodyKind uint8

const (
	BodyBoundary BodyKind = iota // static top/bottom strip
	BodyObstacle                 // piece of the current obstacle course
	BodyPendulum                 // the one swinging ball
	BodyEmoji                    // transient, spawned from the symbol feed
)

// String returns the kind's name for logs and test failures.
func (k BodyKind) String() string {
	switch k {
	case BodyBoundary:
		return "boundary"
	case BodyObstacle:
		return "obstacle"
	case BodyPendulum:
		return "pendulum"
	case BodyEmoji:
		return "emoji"
	default:
		return "unknown"
	}
}

// bodyTag is attached to every cp.Body via UserData. It carries the kind,
// the shapes to remove alongside the body, and per-body render state.
type bodyTag struct {
	kind   BodyKind
	shapes []*cp.Shape

	// Render state. texture may be nil (drawn as a flat shape).
	texture *ebiten.Image
	radius  float64 // circles: collision radius
	length  float64 // bars/segments: end-to-end length
	thick   float64 // bars/segments: thickness
	visible bool

	// Spawn pop tween: scale 0→1 at birth. Nil once finished.
	pop      *gween.Tween
	popScale float64
}

// tagOf returns the bodyTag attached to b, or nil for untagged bodies
// (such as the space's built-in static body).
func tagOf(b *cp.Body) *bodyTag {
	if b == nil || b.UserData == nil {
		return nil
	}
	t, _ := b.UserData.(*bodyTag)
	return t
}

// removeBody detaches a tagged body and all its shapes from the space.
// Constraints on the body must be removed by the caller first.
func removeBody(space *cp.Space, b *cp.Body) {
	if t := tagOf(b); t != nil {
		for _, s := range t.shapes {
			space.RemoveShape(s)
		}
	}
	space.RemoveBody(b)
}
