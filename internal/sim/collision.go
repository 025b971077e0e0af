package sim

import (
	"fmt"
	"math"
)

// UnreadyPolicy decides how the narrow phase treats a pair whose masks are
// missing or still decoding.
type UnreadyPolicy int

const (
	// UnreadyIgnore reports no collision until both masks are ready.
	UnreadyIgnore UnreadyPolicy = iota
	// UnreadyCircle falls back to the circle test.
	UnreadyCircle
)

func (p UnreadyPolicy) String() string {
	switch p {
	case UnreadyIgnore:
		return "ignore"
	case UnreadyCircle:
		return "circle"
	default:
		return fmt.Sprintf("UnreadyPolicy(%d)", int(p))
	}
}

// ParseUnreadyPolicy parses the names produced by String.
func ParseUnreadyPolicy(s string) (UnreadyPolicy, error) {
	switch s {
	case "", "ignore":
		return UnreadyIgnore, nil
	case "circle":
		return UnreadyCircle, nil
	default:
		return 0, fmt.Errorf("sim: unknown unready mask policy %q", s)
	}
}

// Detector answers whether two objects touch.
type Detector struct {
	PixelPerfect   bool
	AlphaThreshold uint8 // Opacity a pixel must exceed to count as solid
	Unready        UnreadyPolicy
}

// Overlaps is the broad phase: centers closer than the sum of radii.
// Touching circles do not overlap.
func Overlaps(a, b *Object) bool {
	sum := a.Radius + b.Radius
	return a.Pos.DistanceSq(b.Pos) < sum*sum
}

// Collides runs the broad phase and, in pixel mode, the narrow phase.
func (d Detector) Collides(a, b *Object) bool {
	if !Overlaps(a, b) {
		return false
	}
	if !d.PixelPerfect {
		return true
	}
	if !a.Mask.Ready() || !b.Mask.Ready() {
		return d.Unready == UnreadyCircle
	}
	return masksOverlap(a, b, d.AlphaThreshold)
}

// masksOverlap scans the integer world pixels shared by both bounding squares
// and stops at the first one that is solid in both masks.
func masksOverlap(a, b *Object, threshold uint8) bool {
	ab, bb := a.Bounds(), b.Bounds()

	left := math.Max(ab.L, bb.L)
	right := math.Min(ab.R, bb.R)
	top := math.Max(ab.B, bb.B)
	bottom := math.Min(ab.T, bb.T)
	if left >= right || top >= bottom {
		return false
	}

	for py := math.Ceil(top); py < bottom; py++ {
		ay := int(math.Floor(py - ab.B))
		by := int(math.Floor(py - bb.B))
		for px := math.Ceil(left); px < right; px++ {
			ax := int(math.Floor(px - ab.L))
			bx := int(math.Floor(px - bb.L))
			if a.Mask.Alpha(ax, ay) > threshold && b.Mask.Alpha(bx, by) > threshold {
				return true
			}
		}
	}
	return false
}
