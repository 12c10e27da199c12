package emojifall

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestChooseLayout(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want LayoutKind
	}{
		{"zero", 0, LayoutPegs},
		{"low pegs", 0.1, LayoutPegs},
		{"pegs upper edge", 0.2499, LayoutPegs},
		{"slats lower edge", 0.25, LayoutSlats},
		{"slats", 0.4, LayoutSlats},
		{"wheels lower edge", 0.5, LayoutWheels},
		{"wheels", 0.7, LayoutWheels},
		{"paddles lower edge", 0.75, LayoutPaddles},
		{"paddles upper edge", 0.999, LayoutPaddles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseLayout(tt.roll); got != tt.want {
				t.Errorf("chooseLayout(%v) = %v, want %v", tt.roll, got, tt.want)
			}
		})
	}
}

func TestCourseBuilder_RollIsInjectable(t *testing.T) {
	want := chooseLayout(rand.New(rand.NewPCG(7, 7)).Float64())

	b := &CourseBuilder{Rand: rand.New(rand.NewPCG(7, 7))}
	c := b.Build(newSpace(), Playfield{Width: 1000, Height: 600})

	if c.Layout != want {
		t.Errorf("Build rolled %v, want %v from the injected source", c.Layout, want)
	}
}

func TestBuildPegs(t *testing.T) {
	pf := Playfield{Width: 1000, Height: 600}
	c := &Course{Layout: LayoutPegs}
	(&CourseBuilder{}).buildPegs(newSpace(), pf, c)

	rows := max(int(pf.Height/pegRowPitch), 1)
	cols := max(int(pf.Height/pegColPitch), 2)
	if got, want := len(c.Bodies), rows*cols; got != want {
		t.Fatalf("peg count = %d, want %d (rows %d x cols %d)", got, want, rows, cols)
	}
	if len(c.Constraints) != 0 {
		t.Errorf("pegs created %d constraints, want 0", len(c.Constraints))
	}

	for i, b := range c.Bodies {
		tag := tagOf(b)
		if tag == nil || tag.kind != BodyObstacle {
			t.Fatalf("peg %d is not tagged as an obstacle", i)
		}
		pos := b.Position()
		if pos.Y >= pf.Height/2 {
			t.Errorf("peg %d at y=%v, want grid above the midline (%v)", i, pos.Y, pf.Height/2)
		}
		if pos.X < 0 || pos.X > pf.Width {
			t.Errorf("peg %d at x=%v, outside the playfield", i, pos.X)
		}
	}
}

func TestBuildSlats(t *testing.T) {
	pf := Playfield{Width: 1000, Height: 600}
	c := &Course{Layout: LayoutSlats}
	(&CourseBuilder{}).buildSlats(newSpace(), pf, c)

	want := max(int(pf.Height/slatPitch), 1)
	if got := len(c.Bodies); got != want {
		t.Fatalf("slat count = %d, want %d", got, want)
	}

	for i, b := range c.Bodies {
		wantTilt := slatTilt
		wantSide := 1.0
		if i%2 == 1 {
			wantTilt = -slatTilt
			wantSide = -1
		}
		if got := b.Angle(); got != wantTilt {
			t.Errorf("slat %d tilt = %v, want %v", i, got, wantTilt)
		}
		if off := b.Position().X - pf.Width/2; off*wantSide <= 0 {
			t.Errorf("slat %d offset = %v, want sign %v (zig-zag)", i, off, wantSide)
		}
	}
}

func TestBuildWheels(t *testing.T) {
	pf := Playfield{Width: 1000, Height: 600}
	c := &Course{Layout: LayoutWheels}
	(&CourseBuilder{}).buildWheels(newSpace(), pf, c)

	if got := len(c.Bodies); got != 2 {
		t.Fatalf("wheel count = %d, want 2", got)
	}
	if got := len(c.Constraints); got != 2 {
		t.Fatalf("wheel pivot count = %d, want 2", got)
	}

	left, right := tagOf(c.Bodies[0]), tagOf(c.Bodies[1])
	// Hub plus one shape per paddle.
	for i, tag := range []*bodyTag{left, right} {
		if got, want := len(tag.shapes), wheelPaddles+1; got != want {
			t.Errorf("wheel %d has %d shapes, want %d", i, got, want)
		}
	}
	// The right wheel shrinks to stay clear of the pendulum anchor column.
	if right.radius > left.radius {
		t.Errorf("right wheel radius %v > left %v", right.radius, left.radius)
	}
	if edge := c.Bodies[1].Position().X - right.radius; edge < pf.Width/2+PendulumRadius {
		t.Errorf("right wheel reaches x=%v, inside the anchor column ending at %v",
			edge, pf.Width/2+PendulumRadius)
	}
}

func TestBuildPaddles(t *testing.T) {
	pf := Playfield{Width: 1000, Height: 600}
	c := &Course{Layout: LayoutPaddles}
	(&CourseBuilder{}).buildPaddles(newSpace(), pf, c)

	if got := len(c.Bodies); got != 2 {
		t.Fatalf("paddle count = %d, want 2", got)
	}
	if got := len(c.Constraints); got != 2 {
		t.Fatalf("paddle pivot count = %d, want 2", got)
	}

	lx := c.Bodies[0].Position().X
	rx := c.Bodies[1].Position().X
	if math.Abs((pf.Width-rx)-lx) > 1e-9 {
		t.Errorf("paddles at x=%v and x=%v are not symmetric about the midline", lx, rx)
	}
	for i, b := range c.Bodies {
		if got := b.Position().Y; got != pf.Height/2 {
			t.Errorf("paddle %d at y=%v, want center height %v", i, got, pf.Height/2)
		}
	}
}

// Every layout must scale with the playfield rather than assume one size.
func TestCourseBuilder_ScalesWithPlayfield(t *testing.T) {
	small := Playfield{Width: 400, Height: 300}
	big := Playfield{Width: 2000, Height: 1200}

	smallPegs := &Course{}
	bigPegs := &Course{}
	(&CourseBuilder{}).buildPegs(newSpace(), small, smallPegs)
	(&CourseBuilder{}).buildPegs(newSpace(), big, bigPegs)
	if len(bigPegs.Bodies) <= len(smallPegs.Bodies) {
		t.Errorf("peg count did not grow with playfield: %d (big) vs %d (small)",
			len(bigPegs.Bodies), len(smallPegs.Bodies))
	}

	smallSlats := &Course{}
	bigSlats := &Course{}
	(&CourseBuilder{}).buildSlats(newSpace(), small, smallSlats)
	(&CourseBuilder{}).buildSlats(newSpace(), big, bigSlats)
	if len(bigSlats.Bodies) <= len(smallSlats.Bodies) {
		t.Errorf("slat count did not grow with playfield: %d (big) vs %d (small)",
			len(bigSlats.Bodies), len(smallSlats.Bodies))
	}
}
