package assets

import (
	"testing"
	"time"

	"github.com/vovakirdan/space-merge/internal/sim"
)

func TestDecodeEveryTier(t *testing.T) {
	for _, tier := range sim.AllTiers() {
		t.Run(tier.String(), func(t *testing.T) {
			img, err := Decode(tier)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
				t.Errorf("bounds = %v, expected 64x64", b)
			}
			_, _, _, a := img.At(32, 32).RGBA()
			if a == 0 {
				t.Error("sprite center should be opaque")
			}
			_, _, _, a = img.At(0, 0).RGBA()
			if a != 0 {
				t.Error("sprite corner should be transparent")
			}
		})
	}
}

func TestMaskCache(t *testing.T) {
	c := NewMaskCache(nil)

	m := c.Mask(sim.Mars, 77)
	if again := c.Mask(sim.Mars, 77); again != m {
		t.Error("cache returned a different mask for the same key")
	}
	if other := c.Mask(sim.Mars, 80); other == m {
		t.Error("different diameters should not share a mask")
	}

	deadline := time.Now().Add(5 * time.Second)
	for !m.Ready() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if !m.Ready() {
		t.Fatal("mask never became ready")
	}
	if m.Size() != 77 {
		t.Errorf("Size() = %d, expected 77", m.Size())
	}
	if m.Alpha(38, 38) <= 10 {
		t.Errorf("center alpha = %d, expected opaque", m.Alpha(38, 38))
	}
	if m.Alpha(0, 0) > 10 {
		t.Errorf("corner alpha = %d, expected transparent", m.Alpha(0, 0))
	}
}

func TestSunnyMaskHasGapsBetweenRays(t *testing.T) {
	img, err := Decode(sim.Sunny)
	if err != nil {
		t.Fatal(err)
	}
	m := sim.NewMaskFromImage(img, 64)

	// Rays point every 30 degrees starting at 0; 15 degrees is between two.
	if m.Alpha(60, 32) <= 10 {
		t.Error("expected a ray pointing right")
	}
	if m.Alpha(59, 39) > 10 {
		t.Error("expected empty space between rays")
	}
}
