package spacemerge

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/sim"
)

type tierStyle struct {
	glyph rune
	color core.Color
}

// tierStyles gives every tier a distinct glyph so the field stays readable
// without color.
var tierStyles = [sim.TierCount]tierStyle{
	sim.Meteor:    {'░', core.ColorGray},
	sim.Mars:      {'▒', core.ColorRed},
	sim.Earth:     {'▓', core.ColorBlue},
	sim.Purple:    {'█', core.ColorMagenta},
	sim.Blue:      {'#', core.ColorBrightCyan},
	sim.Sunny:     {'*', core.ColorBrightYellow},
	sim.BlackHole: {'@', core.ColorBrightMagenta},
}

const guideChar = '┊'

// Render draws the HUD, the field and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH), core.ColorDefault)
		return
	}

	snap := g.sim.Snapshot()
	g.renderHUD(dst, snap)
	dst.DrawBox(g.layout.frame, core.ColorGray)
	g.renderGuide(dst, snap)
	g.renderObjects(dst, snap)
	g.renderStatus(dst, snap)
	g.renderOverlay(dst, snap)
}

func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	next := fmt.Sprintf("Next: %c %s", tierStyles[g.next].glyph, g.next)
	dst.DrawTextCentered(0, next, tierStyles[g.next].color)

	best := fmt.Sprintf("Best: %s", snap.BestTier)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(best)-1, 0, best, tierStyles[snap.BestTier].color)
}

// renderGuide draws a dotted drop line under the held object.
func (g *Game) renderGuide(dst *core.Screen, snap sim.Snapshot) {
	if snap.Controlled == nil || g.state != StatePlaying {
		return
	}
	col, row := g.layout.cellOf(snap.Controlled.X, snap.Controlled.Y+snap.Controlled.Radius)
	for y := row + 1; y < g.layout.inner.Bottom(); y++ {
		dst.SetColored(col, y, guideChar, core.ColorGray)
	}
}

// renderObjects samples the field at every cell center. Later objects paint
// over earlier ones and the held object is drawn last.
func (g *Game) renderObjects(dst *core.Screen, snap sim.Snapshot) {
	objects := snap.Objects
	if snap.Controlled != nil {
		objects = append(objects, *snap.Controlled)
	}
	threshold := g.cfg.Collision.AlphaThreshold

	for _, o := range objects {
		r := o.Radius * o.Scale
		left, top := g.layout.cellOf(o.X-r, o.Y-r)
		right, bottom := g.layout.cellOf(o.X+r, o.Y+r)
		style := tierStyles[o.Tier]

		for row := top; row <= bottom; row++ {
			for col := left; col <= right; col++ {
				if !g.layout.inner.Contains(col, row) {
					continue
				}
				x, y := g.layout.worldPoint(col, row)
				if covers(o, r, x, y, threshold) {
					dst.SetColored(col, row, style.glyph, style.color)
				}
			}
		}

		// Make sure even a tiny object shows up.
		if col, row := g.layout.cellOf(o.X, o.Y); g.layout.inner.Contains(col, row) {
			dst.SetColored(col, row, style.glyph, style.color)
		}
	}
}

// covers reports whether field point (x, y) is inside the drawn shape of o.
// Objects with a ready mask use its outline, scaled to the drawn radius.
func covers(o sim.ObjectView, r, x, y float64, threshold uint8) bool {
	dx, dy := x-o.X, y-o.Y
	if dx*dx+dy*dy >= r*r {
		return false
	}
	if !o.Mask.Ready() {
		return true
	}
	scale := float64(o.Mask.Size()) / (2 * r)
	mx := int(math.Floor((dx + r) * scale))
	my := int(math.Floor((dy + r) * scale))
	return o.Mask.Alpha(mx, my) > threshold
}

func (g *Game) renderStatus(dst *core.Screen, snap sim.Snapshot) {
	y := dst.Height() - 1
	if g.event != "" && snap.Tick < g.eventUntil {
		dst.DrawTextCentered(y, g.event, core.ColorBrightGreen)
		return
	}
	hint := "←/→ or mouse aim  SPACE drop  P pause  Q quit"
	if utf8.RuneCountInString(hint) > dst.Width() {
		hint = "←/→ aim  SPACE drop"
	}
	dst.DrawTextCentered(y, hint, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch g.state {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	if boxW > dst.Width() {
		boxW = dst.Width()
	}
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, box.Y+3, subtitle, core.ColorDefault)
}
