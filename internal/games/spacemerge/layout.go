package spacemerge

import (
	"math"

	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/sim"
)

// layout maps field units onto terminal cells. Cells are about twice as tall
// as they are wide, so a cell covers twice as many units vertically.
type layout struct {
	frame  core.Rect // Border around the field
	inner  core.Rect // Cells that show the field
	unitsX float64   // Field units per cell column
	unitsY float64   // Field units per cell row
}

// Rows reserved outside the frame: HUD on top, status line at the bottom.
const (
	hudRows    = 1
	statusRows = 1
)

func computeLayout(screenW, screenH int, f sim.Field) layout {
	rows := screenH - hudRows - statusRows - 2
	cols := screenW - 2
	if rows < 1 || cols < 1 || f.W <= 0 || f.H <= 0 {
		return layout{}
	}

	uy := f.H / float64(rows)
	ux := uy / 2
	if f.W/ux > float64(cols) {
		ux = f.W / float64(cols)
		uy = ux * 2
	}

	innerW := int(math.Ceil(f.W/ux - 1e-9))
	innerH := int(math.Ceil(f.H/uy - 1e-9))

	frame := core.NewRect((screenW-innerW-2)/2, hudRows, innerW+2, innerH+2)
	return layout{
		frame:  frame,
		inner:  frame.Inset(1),
		unitsX: ux,
		unitsY: uy,
	}
}

// worldX returns the field x at the center of screen column col.
func (l layout) worldX(col int) float64 {
	return (float64(col-l.inner.X) + 0.5) * l.unitsX
}

// worldPoint returns the field point at the center of cell (col, row).
func (l layout) worldPoint(col, row int) (float64, float64) {
	return l.worldX(col), (float64(row-l.inner.Y) + 0.5) * l.unitsY
}

// cellOf returns the screen cell containing field point (x, y).
func (l layout) cellOf(x, y float64) (int, int) {
	return l.inner.X + int(math.Floor(x/l.unitsX)), l.inner.Y + int(math.Floor(y/l.unitsY))
}
