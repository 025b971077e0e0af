package window

import (
	"testing"

	"github.com/vovakirdan/space-merge/internal/sim"
)

func TestViewportSize(t *testing.T) {
	tests := []struct {
		scale float64
		w, h  int
	}{
		{1, 400, 600 + hudHeight},
		{1.5, 600, 900 + hudHeight},
		{0, 400, 600 + hudHeight},
	}

	for _, tc := range tests {
		v := newViewport(sim.Field{W: 400, H: 600}, tc.scale)
		if w, h := v.size(); w != tc.w || h != tc.h {
			t.Errorf("scale %v: size() = %dx%d, expected %dx%d", tc.scale, w, h, tc.w, tc.h)
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(sim.Field{W: 400, H: 600}, 2)

	px, py := v.toScreen(100, 50)
	if px != 200 || py != 100+hudHeight {
		t.Errorf("toScreen(100, 50) = (%v, %v)", px, py)
	}

	x, ok := v.toField(int(px), int(py))
	if !ok || x != 100 {
		t.Errorf("toField(%v, %v) = (%v, %v), expected (100, true)", px, py, x, ok)
	}
}

func TestViewportOutsideField(t *testing.T) {
	v := newViewport(sim.Field{W: 400, H: 600}, 1)

	tests := []struct {
		name   string
		px, py int
	}{
		{"in the HUD", 100, hudHeight - 1},
		{"left of field", -1, 100},
		{"right of field", 400, 100},
		{"below field", 100, 600 + hudHeight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := v.toField(tc.px, tc.py); ok {
				t.Errorf("toField(%d, %d) should be outside", tc.px, tc.py)
			}
		})
	}
}
