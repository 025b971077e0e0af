// Package registry maps game mode ids to factories. Modes register themselves
// from init(), so front ends can list and build them without importing each
// implementation by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/space-merge/internal/core"
)

// Game is what a platform drives. Implementations hold pure logic and never
// touch the terminal or window directly.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score table (e.g. "spacemerge_pixel").
	ID() string

	// Title is the human-readable mode name.
	Title() string

	// Reset starts a fresh run sized for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick using the input gathered since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Describer is implemented by games that provide a one-line description for
// menus and listings.
type Describer interface {
	Description() string
}

// Summarizer is implemented by games that can describe a finished run in
// more detail than its score.
type Summarizer interface {
	Summary() core.RunSummary
}

// Factory builds a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a factory. It panics on duplicate ids, which can only happen
// through a programming error in an init function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	factories[id] = f
	infos[id] = info
}

// List returns all registered modes sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new instance of the mode with the given id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
