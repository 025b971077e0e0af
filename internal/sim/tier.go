// Package sim is the physics and merge core of Space Merge: circles fall under
// gravity inside a fixed field, collide, and fuse into the next tier when two
// of the same tier touch. It has no rendering or input code; front ends drive a
// Simulation through a handful of calls and read Snapshots back.
package sim

import (
	"fmt"
	"math"
	"strings"
)

// Tier is an object type. Tiers are totally ordered from Meteor to BlackHole.
type Tier uint8

const (
	Meteor Tier = iota
	Mars
	Earth
	Purple
	Blue
	Sunny
	BlackHole
)

// TierCount is the number of tiers.
const TierCount = int(BlackHole) + 1

type tierInfo struct {
	name    string
	next    Tier
	hasNext bool
}

// tierTable is the single source of truth for succession. Nothing else infers
// the successor from declaration order.
var tierTable = [TierCount]tierInfo{
	Meteor:    {name: "meteor", next: Mars, hasNext: true},
	Mars:      {name: "mars", next: Earth, hasNext: true},
	Earth:     {name: "earth", next: Purple, hasNext: true},
	Purple:    {name: "purple", next: Blue, hasNext: true},
	Blue:      {name: "blue", next: Sunny, hasNext: true},
	Sunny:     {name: "sunny", next: BlackHole, hasNext: true},
	BlackHole: {name: "blackHole"},
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return int(t) < TierCount
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tier(%d)", t)
	}
	return tierTable[t].name
}

// Next returns the tier two objects of type t merge into. The second result
// is false for the terminal tier.
func (t Tier) Next() (Tier, bool) {
	if !t.Valid() {
		return t, false
	}
	info := tierTable[t]
	if !info.hasNext {
		return t, false
	}
	return info.next, true
}

// Terminal reports whether t has no successor.
func (t Tier) Terminal() bool {
	_, ok := t.Next()
	return !ok
}

// ParseTier looks a tier up by name, case-insensitively.
func ParseTier(s string) (Tier, error) {
	for i, info := range tierTable {
		if strings.EqualFold(info.name, s) {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("sim: unknown tier %q", s)
}

// AllTiers returns every tier in ascending order.
func AllTiers() []Tier {
	tiers := make([]Tier, TierCount)
	for i := range tiers {
		tiers[i] = Tier(i)
	}
	return tiers
}

// Field is the play area in simulation units. The origin is the top-left
// corner and y grows downward.
type Field struct {
	W, H float64
}

// TierScale controls how radius grows with tier.
type TierScale struct {
	BaseRadius   float64 // Radius of the smallest tier
	Growth       float64 // Multiplier per tier step
	MaxSizeRatio float64 // Largest diameter as a fraction of the shorter field side
}

// Radius returns the collision radius of tier t in field f.
func (s TierScale) Radius(t Tier, f Field) float64 {
	r := s.BaseRadius * math.Pow(s.Growth, float64(t))
	if limit := math.Min(f.W, f.H) * s.MaxSizeRatio / 2; limit > 0 && r > limit {
		r = limit
	}
	return r
}
