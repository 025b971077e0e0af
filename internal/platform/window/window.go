package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-merge/internal/assets"
	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/games/spacemerge"
	"github.com/vovakirdan/space-merge/internal/sim"
	"github.com/vovakirdan/space-merge/internal/storage"
)

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("window: quit")

var (
	backgroundColor = color.RGBA{10, 10, 28, 255}
	fieldColor      = color.RGBA{20, 20, 44, 255}
	guideColor      = color.RGBA{120, 120, 160, 160}
	dangerColor     = color.RGBA{200, 60, 60, 200}
)

// Options configures a Window.
type Options struct {
	Scale  float64
	Store  *storage.Store
	Logger *log.Logger
}

// Window is an ebiten.Game that plays one Space Merge mode.
type Window struct {
	game    *spacemerge.Game
	runtime core.RuntimeConfig
	view    viewport
	sprites [sim.TierCount]*ebiten.Image

	store    *storage.Store
	logger   *log.Logger
	runSaved bool

	gamepads   []ebiten.GamepadID
	lastCursor core.Pointer
}

// New builds a window for game. The run starts immediately.
func New(game *spacemerge.Game, runtime core.RuntimeConfig, opts Options) (*Window, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	w := &Window{
		game:    game,
		runtime: runtime,
		store:   opts.Store,
		logger:  opts.Logger,
	}
	for _, t := range sim.AllTiers() {
		img, err := assets.Decode(t)
		if err != nil {
			return nil, fmt.Errorf("window: sprite for %s: %w", t, err)
		}
		w.sprites[t] = ebiten.NewImageFromImage(img)
	}

	w.game.Reset(runtime)
	w.view = newViewport(w.game.Snapshot().Field, opts.Scale)
	return w, nil
}

// Size returns the window size in pixels for the current field.
func (w *Window) Size() (int, int) {
	return w.view.size()
}

// Update advances one tick.
func (w *Window) Update() error {
	w.gamepads = ebiten.AppendGamepadIDs(w.gamepads[:0])
	frame := readInput(w.gamepads)
	if frame.Has(core.ActionQuit) {
		return errQuit
	}

	// The game reads pointers in terminal cells; the window aims directly,
	// and only when the cursor moved so keys can still steer.
	cursor := frame.Pointer
	frame.Pointer = core.Pointer{}
	if cursor != w.lastCursor {
		if x, ok := w.view.toField(cursor.X, cursor.Y); ok && w.game.Phase() == spacemerge.StatePlaying {
			w.game.AimAt(x)
		}
		w.lastCursor = cursor
	}

	if frame.Has(core.ActionRestart) && w.game.State().GameOver {
		w.runtime.Seed = time.Now().UnixNano()
		w.game.Reset(w.runtime)
		w.view = newViewport(w.game.Snapshot().Field, w.view.scale)
		w.runSaved = false
		return nil
	}

	res := w.game.Step(frame)
	if res.State.GameOver && !w.runSaved {
		w.saveRun()
		w.runSaved = true
	}
	for _, e := range res.Events {
		w.logger.Debug("event", "text", e)
	}
	return nil
}

func (w *Window) saveRun() {
	sum := w.game.Summary()
	if w.store == nil || sum.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:   w.game.ID(),
		Score:    sum.Score,
		BestTier: sum.BestTier,
		Merges:   sum.Merges,
		Drops:    sum.Drops,
	}
	if _, err := w.store.SaveRun(run); err != nil {
		w.logger.Warn("cannot save run", "game", run.GameID, "error", err)
	}
}

// Draw renders the field, the objects and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := w.game.Snapshot()

	fw, fh := w.view.size()
	vector.DrawFilledRect(screen, 0, hudHeight, float32(fw), float32(fh-hudHeight), fieldColor, false)

	// Top edge: objects resting above it end the run.
	vector.StrokeLine(screen, 0, hudHeight, float32(fw), hudHeight, 2, dangerColor, false)

	for _, o := range snap.Objects {
		w.drawObject(screen, o)
	}
	if c := snap.Controlled; c != nil {
		x, y := w.view.toScreen(c.X, c.Y)
		vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(fh), 1, guideColor, false)
		w.drawObject(screen, *c)
	}

	w.drawHUD(screen, snap)
}

// drawObject draws a sprite centred on the object, sized to its diameter,
// rotated by its spin and scaled by its pulse.
func (w *Window) drawObject(screen *ebiten.Image, o sim.ObjectView) {
	img := w.sprites[o.Tier]
	if img == nil {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	diameter := 2 * o.Radius * w.view.scale * o.Scale
	x, y := w.view.toScreen(o.X, o.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Scale(diameter/float64(iw), diameter/float64(ih))
	op.GeoM.Rotate(o.Rotation)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (w *Window) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	hud := fmt.Sprintf("Score %d   Next %s   Best %s", snap.Score, w.game.Next(), snap.BestTier)
	ebitenutil.DebugPrintAt(screen, hud, 6, 4)

	fw, fh := w.view.size()
	switch w.game.Phase() {
	case spacemerge.StatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - P to resume", fw/2-60, fh/2)
	case spacemerge.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", fw/2-27, fh/2-10)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   R to restart", snap.Score), fw/2-75, fh/2+8)
	}
}

// Layout keeps the logical size fixed; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.view.size()
}

// Run opens the window and blocks until it is closed.
func Run(game *spacemerge.Game, runtime core.RuntimeConfig, opts Options) error {
	w, err := New(game, runtime, opts)
	if err != nil {
		return err
	}

	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
