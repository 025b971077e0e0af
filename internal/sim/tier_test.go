package sim

import (
	"math"
	"testing"
)

func TestTierNext(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected Tier
		ok       bool
	}{
		{Meteor, Mars, true},
		{Mars, Earth, true},
		{Earth, Purple, true},
		{Purple, Blue, true},
		{Blue, Sunny, true},
		{Sunny, BlackHole, true},
		{BlackHole, BlackHole, false},
	}

	for _, tc := range tests {
		t.Run(tc.tier.String(), func(t *testing.T) {
			next, ok := tc.tier.Next()
			if next != tc.expected || ok != tc.ok {
				t.Errorf("Next() = (%v, %v), expected (%v, %v)", next, ok, tc.expected, tc.ok)
			}
			if tc.tier.Terminal() == tc.ok {
				t.Errorf("Terminal() = %v, expected %v", tc.tier.Terminal(), !tc.ok)
			}
		})
	}
}

func TestTierRadius(t *testing.T) {
	cfg := DefaultConfig()

	prev := 0.0
	for _, tier := range AllTiers() {
		r := cfg.Tiers.Radius(tier, cfg.Field)
		expected := 32 * math.Pow(1.2, float64(tier))
		if math.Abs(r-expected) > 1e-9 {
			t.Errorf("Radius(%v) = %v, expected %v", tier, r, expected)
		}
		if r <= prev {
			t.Errorf("Radius(%v) = %v should exceed previous tier %v", tier, r, prev)
		}
		prev = r
	}
}

func TestTierRadiusCap(t *testing.T) {
	scale := TierScale{BaseRadius: 32, Growth: 2, MaxSizeRatio: 0.6}
	field := Field{W: 400, H: 600}

	if r := scale.Radius(BlackHole, field); r != 120 {
		t.Errorf("Radius(BlackHole) = %v, expected cap 120", r)
	}
	if r := scale.Radius(Meteor, field); r != 32 {
		t.Errorf("Radius(Meteor) = %v, expected 32", r)
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"meteor", Meteor, false},
		{"BlackHole", BlackHole, false},
		{"SUNNY", Sunny, false},
		{"pluto", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseTier(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTier(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseTier(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
