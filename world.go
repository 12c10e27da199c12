package emojifall

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
)

// Boundary strip geometry.
const (
	stripThickness = 20
	// bottomStripRise lifts the visible floor strip above the true bottom
	// edge, leaving open gutters at its sides for balls to fall out.
	bottomStripRise = 20
	bottomStripFrac = 0.8 // floor strip width as a fraction of playfield width
)

// maxFrameTime bounds how much simulated time one Step call may consume, so
// a long host stall cannot trigger a catch-up death spiral.
const maxFrameTime = 0.25

// World owns the physics space and everything in it: the boundary strips,
// one obstacle course, the pendulum, and the emoji population. All methods
// must be called from the host's single update thread; nothing here locks.
type World struct {
	space      *cp.Space
	pf         Playfield
	cache      *TextureCache
	builder    *CourseBuilder
	course     *Course
	pendulum   *Pendulum
	pop        *Population
	boundaries []*cp.Body

	running bool
	accum   float64
}

// NewWorld creates a world for the given playfield, builds it, and starts
// stepping. Construction is the start call: the host only ever calls Stop
// if it wants a frozen world.
func NewWorld(pf Playfield) *World {
	w := &World{
		pf:       pf,
		cache:    NewTextureCache(nil),
		builder:  &CourseBuilder{},
		pendulum: &Pendulum{},
		pop:      &Population{},
	}
	w.Init()
	w.running = true
	return w
}

// SetGlyphFace replaces the face used to rasterize emoji textures. Call it
// before the first CreateEmojiBall; earlier cache entries keep the old face.
func (w *World) SetGlyphFace(face text.Face) {
	w.cache = NewTextureCache(face)
}

// SetPendulumImage decodes and applies an image for the pendulum ball. A
// decode failure is logged and the pendulum stays a flat circle; the
// simulation is never disturbed by a missing asset.
func (w *World) SetPendulumImage(data []byte) {
	if err := w.pendulum.LoadImage(data); err != nil {
		log.Printf("emojifall: %v (pendulum stays bare)", err)
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})
	return space
}

// Init discards the physics space and rebuilds the world from the current
// playfield: two boundary strips, a freshly rolled obstacle course, the
// pendulum, and an empty population. Idempotent; every resize goes through
// here, so the old space and all its bodies and constraints are dropped
// wholesale rather than removed piecewise.
func (w *World) Init() {
	w.space = newSpace()
	w.boundaries = w.boundaries[:0]
	w.addBoundaries()
	w.course = w.builder.Build(w.space, w.pf)
	w.pendulum.Attach(w.space, w.pf)
	w.pop.reset(w.space, w.pf)
}

// addBoundaries creates the invisible ceiling strip spanning the full width
// and the visible floor strip spanning bottomStripFrac of it. Left, right,
// and bottom edges stay open: that is where escaped balls get culled.
func (w *World) addBoundaries() {
	// The ceiling sits clear of the spawn row so fresh balls never start
	// in contact with it.
	w.addStrip(cp.Vector{
		X: w.pf.Width / 2,
		Y: w.pf.Top - stripThickness/2 - EmojiRadius,
	}, w.pf.Width, false)
	w.addStrip(cp.Vector{
		X: w.pf.Width / 2,
		Y: w.pf.Bottom() - bottomStripRise,
	}, w.pf.Width*bottomStripFrac, true)
}

func (w *World) addStrip(center cp.Vector, width float64, visible bool) {
	body := cp.NewStaticBody()
	body.SetPosition(center)

	shape := cp.NewBox(body, width, stripThickness, 0)
	shape.SetElasticity(0.4)
	shape.SetFriction(0.3)

	body.UserData = &bodyTag{
		kind:    BodyBoundary,
		shapes:  []*cp.Shape{shape},
		length:  width,
		thick:   stripThickness,
		visible: visible,
	}
	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.boundaries = append(w.boundaries, body)
}

// SetDimensions updates the playfield and rebuilds the world. A resize is a
// fresh start: the obstacle layout is re-rolled and all emoji balls vanish.
func (w *World) SetDimensions(pf Playfield) {
	w.pf = pf
	w.Init()
}

// Playfield returns the current playfield dimensions.
func (w *World) Playfield() Playfield {
	return w.pf
}

// Layout returns the obstacle layout rolled by the latest Init.
func (w *World) Layout() LayoutKind {
	return w.course.Layout
}

// Population returns the live emoji ball count.
func (w *World) Population() int {
	return w.pop.Count()
}

// CreateEmojiBall resolves a texture for symbol and spawns one emoji ball
// carrying it. Reports false when the spawn was rejected at the population
// cap; fire-and-forget callers can ignore the result.
func (w *World) CreateEmojiBall(symbol string) bool {
	return w.pop.Spawn(w.cache.GetTexture(symbol))
}

// ClearAllEmojis removes every emoji ball; the pendulum and obstacles stay.
func (w *World) ClearAllEmojis() {
	w.pop.ClearAll()
}

// Start resumes stepping after a Stop. Worlds start running.
func (w *World) Start() {
	w.running = true
}

// Stop freezes the integration loop; Step becomes a no-op until Start.
func (w *World) Stop() {
	w.running = false
	w.accum = 0
}

// Running reports whether Step advances the simulation.
func (w *World) Running() bool {
	return w.running
}

// Step advances the simulation by dt seconds of wall time, consumed in
// fixed-size physics ticks. The pendulum's force law runs once per tick;
// leftover time carries over to the next call.
func (w *World) Step(dt float64) {
	if !w.running {
		return
	}
	w.accum += dt
	if w.accum > maxFrameTime {
		w.accum = maxFrameTime
	}
	for w.accum >= fixedStep {
		w.pendulum.StepForce()
		w.space.Step(fixedStep)
		w.accum -= fixedStep
	}

	// Visual-only animation state; never feeds back into physics.
	w.pop.stepTweens(dt)
	w.pendulum.stepFade(dt)
}

// EndFrame runs the per-frame cleanup pass. Call once after each rendered
// frame, not per physics tick.
func (w *World) EndFrame() {
	w.pop.Cleanup()
}
