package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ObjectID identifies an object for its whole life. IDs are never reused
// within a Simulation.
type ObjectID uint64

// Object is one circle in the simulation.
type Object struct {
	ID       ObjectID
	Tier     Tier
	Pos      cp.Vector
	Vel      cp.Vector
	Radius   float64
	Rotation float64
	Spin     float64 // Cosmetic rotation per frame
	Static   bool
	Merging  bool
	Mask     *Mask
}

// SetStatic settles the object. Static objects keep colliding and merging but
// no longer move on their own.
func (o *Object) SetStatic() {
	o.Static = true
	o.Vel = cp.Vector{}
	o.Spin = 0
}

// Top returns the y coordinate of the object's upper edge.
func (o *Object) Top() float64 {
	return o.Pos.Y - o.Radius
}

// Bounds returns the object's bounding square. In screen coordinates B is the
// upper edge and T the lower one.
func (o *Object) Bounds() cp.BB {
	return cp.NewBBForCircle(o.Pos, o.Radius)
}

// Scale returns the cosmetic draw scale. Only the terminal tier pulses; the
// collision radius is never affected.
func (o *Object) Scale(pulse float64) float64 {
	if !o.Tier.Terminal() {
		return 1
	}
	return 1 + math.Sin(o.Rotation*2)*pulse
}

// CanMerge reports whether a and b are eligible to fuse. Whether a successor
// exists is checked separately by the resolver.
func CanMerge(a, b *Object) bool {
	return a.Tier == b.Tier && !a.Merging && !b.Merging
}
