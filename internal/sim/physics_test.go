package sim

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func testIntegrator() Integrator {
	return DefaultConfig().integrator()
}

func TestIntegrateGravity(t *testing.T) {
	in := testIntegrator()
	o := circle(Meteor, 200, 100, 32)
	o.Spin = 0.01

	in.Integrate(o, 1)

	if o.Vel.Y != 0.5 {
		t.Errorf("Vel.Y = %v, expected 0.5", o.Vel.Y)
	}
	if o.Pos.Y != 100.5 {
		t.Errorf("Pos.Y = %v, expected 100.5", o.Pos.Y)
	}
	if o.Rotation != 0.01 {
		t.Errorf("Rotation = %v, expected 0.01", o.Rotation)
	}
}

func TestIntegrateSkipsStatic(t *testing.T) {
	in := testIntegrator()
	o := circle(Meteor, 200, 100, 32)
	o.SetStatic()

	in.Integrate(o, 1)

	if o.Pos != (cp.Vector{X: 200, Y: 100}) || o.Vel != (cp.Vector{}) {
		t.Errorf("static object moved: pos=%v vel=%v", o.Pos, o.Vel)
	}
}

func TestIntegrateContainment(t *testing.T) {
	tests := []struct {
		name    string
		pos     cp.Vector
		vel     cp.Vector
		wantPos cp.Vector
		wantVel cp.Vector
		static  bool
	}{
		{
			name:    "left wall",
			pos:     cp.Vector{X: 33, Y: 300},
			vel:     cp.Vector{X: -10},
			wantPos: cp.Vector{X: 32, Y: 300.5},
			wantVel: cp.Vector{X: 5, Y: 0.5},
		},
		{
			name:    "right wall",
			pos:     cp.Vector{X: 360, Y: 300},
			vel:     cp.Vector{X: 20},
			wantPos: cp.Vector{X: 368, Y: 300.5},
			wantVel: cp.Vector{X: -10, Y: 0.5},
		},
		{
			name:    "floor bounce",
			pos:     cp.Vector{X: 200, Y: 560},
			vel:     cp.Vector{Y: 10},
			wantPos: cp.Vector{X: 200, Y: 568},
			wantVel: cp.Vector{Y: -5.25},
		},
		{
			name:    "floor rest",
			pos:     cp.Vector{X: 200, Y: 567.5},
			vel:     cp.Vector{Y: 1},
			wantPos: cp.Vector{X: 200, Y: 568},
			wantVel: cp.Vector{},
			static:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := testIntegrator()
			o := circle(Meteor, tc.pos.X, tc.pos.Y, 32)
			o.Vel = tc.vel

			in.Integrate(o, 1)

			if o.Pos != tc.wantPos {
				t.Errorf("Pos = %v, expected %v", o.Pos, tc.wantPos)
			}
			if o.Vel != tc.wantVel {
				t.Errorf("Vel = %v, expected %v", o.Vel, tc.wantVel)
			}
			if o.Static != tc.static {
				t.Errorf("Static = %v, expected %v", o.Static, tc.static)
			}
		})
	}
}

func TestAttract(t *testing.T) {
	in := testIntegrator()
	hole := circle(BlackHole, 200, 300, 95)
	near := circle(Meteor, 100, 300, 32)
	far := circle(Meteor, 200, 60, 32)
	settled := circle(Mars, 300, 300, 38)
	settled.SetStatic()

	in.Attract([]*Object{hole, near, far, settled}, 1)

	expected := 0.5 / (100 * 100)
	if math.Abs(near.Vel.X-expected) > 1e-12 || near.Vel.Y != 0 {
		t.Errorf("near.Vel = %v, expected (%v, 0)", near.Vel, expected)
	}
	if far.Vel != (cp.Vector{}) {
		t.Errorf("object out of range was pulled: %v", far.Vel)
	}
	if settled.Vel != (cp.Vector{}) {
		t.Errorf("static object was pulled: %v", settled.Vel)
	}
	if hole.Vel != (cp.Vector{}) {
		t.Errorf("hole itself moved: %v", hole.Vel)
	}
}

func TestAttractIgnoresOtherHoles(t *testing.T) {
	in := testIntegrator()
	a := circle(BlackHole, 100, 300, 95)
	b := circle(BlackHole, 250, 300, 95)

	in.Attract([]*Object{a, b}, 1)

	if a.Vel != (cp.Vector{}) || b.Vel != (cp.Vector{}) {
		t.Errorf("holes attracted each other: %v %v", a.Vel, b.Vel)
	}
}

func TestSeparate(t *testing.T) {
	a := circle(Meteor, 100, 100, 32)
	b := circle(Mars, 150, 100, 32)
	a.Vel = cp.Vector{X: 1, Y: 2}
	b.Vel = cp.Vector{X: 3, Y: 4}
	before := a.Pos.Distance(b.Pos)

	Separate(a, b)

	if a.Pos.X != 93 || b.Pos.X != 157 {
		t.Errorf("positions = %v, %v; expected x 93 and 157", a.Pos, b.Pos)
	}
	if after := a.Pos.Distance(b.Pos); after < before {
		t.Errorf("distance shrank from %v to %v", before, after)
	}
	if a.Vel != (cp.Vector{X: 3, Y: 4}) || b.Vel != (cp.Vector{X: 1, Y: 2}) {
		t.Errorf("velocities not exchanged: a=%v b=%v", a.Vel, b.Vel)
	}
}

func TestSeparateCoincident(t *testing.T) {
	a := circle(Meteor, 100, 100, 32)
	b := circle(Mars, 100, 100, 38)
	a.Vel = cp.Vector{X: 1}
	b.Vel = cp.Vector{Y: -1}

	Separate(a, b)

	if a.Pos != (cp.Vector{X: 100, Y: 100}) || b.Pos != (cp.Vector{X: 100, Y: 100}) {
		t.Errorf("coincident objects moved: %v %v", a.Pos, b.Pos)
	}
	if math.IsNaN(a.Pos.X) || math.IsNaN(b.Pos.Y) {
		t.Fatal("NaN position")
	}
	if a.Vel != (cp.Vector{Y: -1}) || b.Vel != (cp.Vector{X: 1}) {
		t.Errorf("velocities not exchanged: a=%v b=%v", a.Vel, b.Vel)
	}
}

func TestSeparateStaticPartner(t *testing.T) {
	a := circle(Meteor, 100, 100, 32)
	a.SetStatic()
	b := circle(Mars, 150, 100, 32)
	b.Vel = cp.Vector{Y: 3}

	Separate(a, b)

	if a.Pos != (cp.Vector{X: 100, Y: 100}) {
		t.Errorf("static object moved to %v", a.Pos)
	}
	if b.Pos.X != 164 {
		t.Errorf("b.Pos.X = %v, expected 164", b.Pos.X)
	}
	if a.Vel != (cp.Vector{}) || b.Vel != (cp.Vector{}) {
		t.Errorf("velocities = %v %v, expected both zero", a.Vel, b.Vel)
	}
}
