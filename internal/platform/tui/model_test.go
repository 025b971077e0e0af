package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/storage"
)

// fakeGame ends the run after a fixed number of ticks.
type fakeGame struct {
	resets  int
	steps   int
	endAt   int
	score   int
	last    core.InputFrame
	resized [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.endAt > 0 && g.steps >= g.endAt}
}

func (g *fakeGame) Summary() core.RunSummary {
	return core.RunSummary{Score: g.score, BestTier: "Earth", Merges: 2, Drops: 5}
}

func (g *fakeGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAt: 2, score: 40}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	runs, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	if runs[0].Score != 40 || runs[0].BestTier != "Earth" || runs[0].Merges != 2 || runs[0].Drops != 5 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAt: 1}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
	tick(t, m)

	if runs, _ := store.TopScores("fake", 10); len(runs) != 0 {
		t.Errorf("zero-score run should not be saved, got %d", len(runs))
	}
}

func TestModelRestart(t *testing.T) {
	game := &fakeGame{endAt: 1, score: 10}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("fake game should be over after one tick")
	}

	next, _ := m.Update(runeKey('r'))
	m = tick(t, next.(Model))

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.runSaved {
		t.Error("restart should clear the saved flag")
	}
}

func TestModelInputReachesGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	next, _ := m.Update(runeKey('a'))
	next, _ = next.(Model).Update(tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionMotion})
	m = tick(t, next.(Model))

	if !game.last.Has(core.ActionLeft) {
		t.Error("game should see ActionLeft")
	}
	if game.last.Pointer != (core.Pointer{X: 7, Y: 3, Valid: true}) {
		t.Errorf("game pointer = %+v", game.last.Pointer)
	}

	m = tick(t, m)
	if game.last.Has(core.ActionLeft) {
		t.Error("actions should be cleared between ticks")
	}
	if !game.last.Pointer.Valid {
		t.Error("pointer position should persist between ticks")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = next.(Model)

	if game.resized != [2]int{90, 30} {
		t.Errorf("Resize got %v, expected [90 30]", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resizable game should not be reset, resets = %d", game.resets)
	}
	if m.screen.Width() != 90 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 90x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelConfigNotice(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 60, ScreenH: 5, TickRate: 60, Seed: 1})
	m.showNotice("config changed, applies on restart")

	view := m.View()
	if !strings.Contains(view, "config changed") {
		t.Errorf("notice missing from view:\n%s", view)
	}
	if !strings.Contains(view, "fake") {
		t.Error("game render missing from view")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "abc")
	s.SetColored(0, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abc   " {
		t.Errorf("uncolored row = %q, expected plain text", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("colored row lost its rune: %q", lines[1])
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(0); got != tickInterval(60) {
		t.Errorf("tickInterval(0) = %v, expected the 60 Hz period", got)
	}
}
