// Package window runs Space Merge in a desktop window through Ebitengine.
// It draws the same run the terminal shows, using the tier sprites.
package window

import "github.com/vovakirdan/space-merge/internal/sim"

// hudHeight is the strip above the field reserved for the score line.
const hudHeight = 24

// viewport maps field units to window pixels.
type viewport struct {
	field sim.Field
	scale float64
}

func newViewport(f sim.Field, scale float64) viewport {
	if scale <= 0 {
		scale = 1
	}
	return viewport{field: f, scale: scale}
}

// size is the logical window size in pixels.
func (v viewport) size() (int, int) {
	return int(v.field.W * v.scale), int(v.field.H*v.scale) + hudHeight
}

// toScreen converts a field position to pixels.
func (v viewport) toScreen(x, y float64) (float64, float64) {
	return x * v.scale, y*v.scale + hudHeight
}

// toField converts a pixel column to a field x. The second result is false
// when the pixel lies outside the field.
func (v viewport) toField(px, py int) (float64, bool) {
	w, h := v.size()
	if px < 0 || px >= w || py < hudHeight || py >= h {
		return 0, false
	}
	return float64(px) / v.scale, true
}
