package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-merge/internal/core"
	_ "github.com/vovakirdan/space-merge/internal/games/spacemerge"
	"github.com/vovakirdan/space-merge/internal/registry"
	"github.com/vovakirdan/space-merge/internal/storage"
)

func menuCfg() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func press(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsModesWithBestScore(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{GameID: "spacemerge_pixel", Score: 120})

	m := NewMenuModel(store, menuCfg())
	if len(m.items) != 2 {
		t.Fatalf("expected 2 modes, got %d", len(m.items))
	}
	if m.items[0].GameID != "spacemerge" || m.items[1].GameID != "spacemerge_pixel" {
		t.Errorf("items = %+v", m.items)
	}
	if m.items[1].Best != 120 || m.items[0].Best != 0 {
		t.Errorf("best scores = %d, %d", m.items[0].Best, m.items[1].Best)
	}

	view := m.View()
	for _, want := range []string{"Space Merge", "Space Merge (Pixel)", "120"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, menuCfg())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected clamp at %d", m.cursor, len(m.items)-1)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	if res.GameID != "spacemerge_pixel" || res.Quit || res.WantsScoreboard {
		t.Errorf("result = %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	tests := []struct {
		name       string
		msg        tea.KeyMsg
		scoreboard bool
		quit       bool
	}{
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, true, false},
		{"q quits", runeKey('q'), false, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := press(t, NewMenuModel(nil, menuCfg()), tc.msg).result()
			if res.WantsScoreboard != tc.scoreboard || res.Quit != tc.quit {
				t.Errorf("result = %+v", res)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("overlong text should be unchanged, got %q", got)
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{GameID: "spacemerge", Score: 30, BestTier: "Earth", Merges: 3})
	store.SaveRun(storage.Run{GameID: "spacemerge", Score: 90, BestTier: "Jupiter", Merges: 8})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 90 {
		t.Fatalf("scores = %+v", m.scores)
	}

	view := m.View()
	for _, want := range []string{"Space Merge", "Jupiter", "2 runs", "Classic", "Pixel"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 0 {
		t.Errorf("pixel mode should have no runs, got %d", len(m.scores))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty mode should show the placeholder")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestModeLabel(t *testing.T) {
	tests := []struct {
		title, expected string
	}{
		{"Space Merge", "Classic"},
		{"Space Merge (Pixel)", "Pixel"},
		{"Other", "Other"},
	}

	for _, tc := range tests {
		if got := modeLabel(registry.GameInfo{Title: tc.title}); got != tc.expected {
			t.Errorf("modeLabel(%q) = %q, expected %q", tc.title, got, tc.expected)
		}
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
