package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Attraction configures the terminal tier's pull on smaller objects.
type Attraction struct {
	Range    float64 // Objects farther than this are unaffected
	Strength float64 // k in k/d²
	Pulse    float64 // Cosmetic scale amplitude
}

// Integrator moves objects and keeps them inside the field.
type Integrator struct {
	Field       Field
	Gravity     float64
	WallDamping float64 // Fraction of speed kept after hitting a wall, reversed
	RestSpeed   float64 // Vertical speed below which a floor bounce settles
	Attraction  Attraction
}

// Integrate advances a single non-static object by dt.
func (in Integrator) Integrate(o *Object, dt float64) {
	if o.Static {
		return
	}
	o.Vel.Y += in.Gravity * dt
	o.Pos = o.Pos.Add(o.Vel.Mult(dt))
	o.Rotation += o.Spin * dt
	in.contain(o)
}

func (in Integrator) contain(o *Object) {
	r := o.Radius

	if o.Pos.X < r {
		o.Pos.X = r
		o.Vel.X = -o.Vel.X * in.WallDamping
	} else if o.Pos.X > in.Field.W-r {
		o.Pos.X = in.Field.W - r
		o.Vel.X = -o.Vel.X * in.WallDamping
	}

	if o.Pos.Y < r {
		o.Pos.Y = r
		if o.Vel.Y < 0 {
			o.Vel.Y = -o.Vel.Y * in.WallDamping
		}
	} else if o.Pos.Y > in.Field.H-r {
		o.Pos.Y = in.Field.H - r
		o.Vel.Y = -o.Vel.Y * in.WallDamping
		if math.Abs(o.Vel.Y) < in.RestSpeed {
			o.SetStatic()
		}
	}
}

// Attract applies every terminal object's pull to the other objects in the
// live set. Terminal objects never pull each other and static objects are
// not moved.
func (in Integrator) Attract(objects []*Object, dt float64) {
	a := in.Attraction
	if a.Strength == 0 || a.Range <= 0 {
		return
	}
	for _, hole := range objects {
		if !hole.Tier.Terminal() || hole.Merging {
			continue
		}
		for _, o := range objects {
			if o == hole || o.Static || o.Merging || o.Tier.Terminal() {
				continue
			}
			delta := hole.Pos.Sub(o.Pos)
			d := delta.Length()
			if d == 0 || d >= a.Range {
				continue
			}
			force := a.Strength / (d * d)
			o.Vel = o.Vel.Add(delta.Mult(force * dt / d))
		}
	}
}

// Separate pushes two overlapping objects apart along the line between their
// centers and exchanges their velocities. A static object does not move, so
// its partner takes the whole correction. Coincident centers have no normal;
// only the velocity exchange happens then.
func Separate(a, b *Object) {
	delta := b.Pos.Sub(a.Pos)
	d := delta.Length()
	if pen := a.Radius + b.Radius - d; pen > 0 && d > 0 {
		n := delta.Mult(1 / d)
		switch {
		case a.Static && b.Static:
		case a.Static:
			b.Pos = b.Pos.Add(n.Mult(pen))
		case b.Static:
			a.Pos = a.Pos.Sub(n.Mult(pen))
		default:
			half := n.Mult(pen / 2)
			a.Pos = a.Pos.Sub(half)
			b.Pos = b.Pos.Add(half)
		}
	}

	a.Vel, b.Vel = b.Vel, a.Vel
	if a.Static {
		a.Vel = cp.Vector{}
	}
	if b.Static {
		b.Vel = cp.Vector{}
	}
}
