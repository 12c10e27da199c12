package emojifall

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const popDuration = 0.3 // seconds of spawn scale-in

// Population tracks the bounded set of transient emoji balls in a space:
// spawning under the cap, per-frame culling of escaped balls, and clear-all.
// The counter is kept exact: it always equals the number of live emoji
// bodies in the space.
type Population struct {
	// Rand supplies the horizontal spawn jitter; nil uses the shared
	// global source.
	Rand *rand.Rand

	space *cp.Space
	pf    Playfield
	balls []*cp.Body
	count int
}

// reset points the population at a freshly built space. Any previous balls
// went away with the old space.
func (p *Population) reset(space *cp.Space, pf Playfield) {
	p.space = space
	p.pf = pf
	p.balls = p.balls[:0]
	p.count = 0
}

// Count returns the number of live emoji balls.
func (p *Population) Count() int {
	return p.count
}

func (p *Population) jitter() float64 {
	if p.Rand != nil {
		return p.Rand.Float64()
	}
	return rand.Float64()
}

// Spawn drops a new emoji ball carrying texture from the top of the
// playfield, with a small random horizontal offset around center. It
// reports false with no side effects when the population is at MaxEmojis.
// The counter is incremented before body insertion and rolled back if the
// insertion does not take, so it can never drift from the true population.
func (p *Population) Spawn(texture *ebiten.Image) bool {
	if p.count >= MaxEmojis {
		if Debug {
			log.Printf("emojifall: spawn rejected, population at cap (%d)", MaxEmojis)
		}
		return false
	}
	p.count++

	body := p.newBall(texture)
	if body == nil {
		p.count--
		if Debug {
			log.Print("emojifall: ball creation failed, spawn dropped")
		}
		return false
	}
	p.balls = append(p.balls, body)
	return true
}

// newBall builds and inserts one emoji body. Returns nil if the body could
// not be added to the space.
func (p *Population) newBall(texture *ebiten.Image) *cp.Body {
	x := p.pf.Width/2 + (p.jitter()*2-1)*spawnJitter*p.pf.Width

	body := cp.NewBody(emojiMass, cp.MomentForCircle(emojiMass, 0, EmojiRadius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: p.pf.Top})

	shape := cp.NewCircle(body, EmojiRadius, cp.Vector{})
	shape.SetFriction(emojiFriction)
	shape.SetElasticity(emojiElasticity)

	body.UserData = &bodyTag{
		kind:    BodyEmoji,
		shapes:  []*cp.Shape{shape},
		radius:  EmojiRadius,
		texture: texture,
		visible: true,
		pop:     gween.New(0, 1, popDuration, ease.OutBack),
	}
	if p.space.AddBody(body) == nil {
		return nil
	}
	p.space.AddShape(shape)
	return body
}

// Cleanup removes every emoji ball whose center has left the playfield
// through its open left, right, or bottom edge, decrementing the counter
// per removal. Invoked once per rendered frame, so the cost is linear in
// the live population. Only bodies tagged BodyEmoji are ever touched; the
// pendulum and circular obstacle pieces are exempt by kind, not by shape.
func (p *Population) Cleanup() {
	kept := p.balls[:0]
	for _, b := range p.balls {
		pos := b.Position()
		if pos.X < 0 || pos.X > p.pf.Width || pos.Y > p.pf.Bottom() {
			removeBody(p.space, b)
			p.count--
			continue
		}
		kept = append(kept, b)
	}
	p.balls = kept
}

// ClearAll removes every emoji ball regardless of position and resets the
// counter to zero. Everything else in the space is untouched.
func (p *Population) ClearAll() {
	for _, b := range p.balls {
		removeBody(p.space, b)
	}
	p.balls = p.balls[:0]
	p.count = 0
}

// stepTweens advances the spawn pop animation on every live ball.
func (p *Population) stepTweens(dt float64) {
	for _, b := range p.balls {
		t := tagOf(b)
		if t == nil || t.pop == nil {
			continue
		}
		v, done := t.pop.Update(float32(dt))
		t.popScale = float64(v)
		if done {
			t.pop = nil
			t.popScale = 1
		}
	}
}
