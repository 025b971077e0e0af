// Package spacemerge adapts the merge simulation to the arcade platform: it
// turns input frames into aim and drop calls, picks the upcoming drops and
// draws the field into a character screen.
package spacemerge

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-merge/internal/assets"
	"github.com/vovakirdan/space-merge/internal/config"
	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/registry"
	"github.com/vovakirdan/space-merge/internal/sim"
)

// Run states.
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Mode selects the collision model.
type Mode int

const (
	ModeClassic Mode = iota // Circle collisions
	ModePixel               // Sprite-accurate collisions
)

// eventTicks is how long a merge notice stays on the status line.
const eventTicks = 90

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config file used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger shared by all games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game is a Space Merge run.
type Game struct {
	mode Mode

	sim        *sim.Simulation
	cfg        config.MergeConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	state string
	next  sim.Tier
	aimX  float64
	drops int

	event      string
	eventUntil uint64

	layout         layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewPixel creates a game with sprite-accurate collisions.
func NewPixel() *Game {
	return &Game{mode: ModePixel}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModePixel {
		return "spacemerge_pixel"
	}
	return "spacemerge"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModePixel {
		return "Space Merge (Pixel)"
	}
	return "Space Merge"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.mode == ModePixel {
		return "Collisions follow the sprite outlines"
	}
	return "Drop, collide and merge up to a black hole"
}

// Reset starts a new run. The configuration is reloaded every time so edits
// to the config file take effect on restart.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultMergeConfig()
	}
	if difficultyPreset != "" {
		cfg.ApplyPreset(difficultyPreset)
	}
	if g.mode == ModePixel {
		cfg.Collision.PixelPerfect = true
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	simCfg := cfg.SimConfig()
	opts := []sim.Option{
		sim.WithLogger(logger),
		sim.WithRand(rand.New(rand.NewSource(runtime.Seed + 1))),
	}
	if simCfg.Collision.PixelPerfect {
		masks := assets.NewMaskCache(logger)
		masks.Preload(simCfg)
		opts = append(opts, sim.WithMasks(masks))
	}
	g.sim = sim.New(simCfg, opts...)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.minScreenW = 24
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	g.layout = computeLayout(runtime.ScreenW, runtime.ScreenH, simCfg.Field)

	g.state = StatePlaying
	g.drops = 0
	g.event = ""
	g.eventUntil = 0
	g.aimX = simCfg.Field.W / 2
	if simCfg.Spawn.X > 0 {
		g.aimX = simCfg.Spawn.X
	}

	g.spawn(sim.Meteor)
	g.next = g.randomTier()
}

// Resize refits the field to a new screen without restarting the run.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.screenTooSmall = screenW < g.minScreenW || screenH < g.minScreenH
	if g.sim != nil {
		g.layout = computeLayout(screenW, screenH, g.sim.Config().Field)
	}
}

// randomTier picks a drop uniformly from the smallest tiers.
func (g *Game) randomTier() sim.Tier {
	pool := g.cfg.Spawn.Pool
	if pool < 1 {
		pool = 1
	}
	return sim.Tier(g.rng.Intn(pool))
}

func (g *Game) spawn(t sim.Tier) {
	g.sim.SpawnControlled(t)
	g.sim.SetControlledX(g.aimX)
}

// AimAt moves the held object to field coordinate x.
func (g *Game) AimAt(x float64) {
	margin := g.cfg.Spawn.Margin
	g.aimX = core.ClampF(x, margin, g.cfg.Field.Width-margin)
	g.sim.SetControlledX(g.aimX)
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	if in.Pointer.Valid && g.layout.inner.Contains(in.Pointer.X, in.Pointer.Y) {
		g.AimAt(g.layout.worldX(in.Pointer.X))
	}
	if in.Has(core.ActionLeft) {
		g.AimAt(g.aimX - g.cfg.Spawn.MoveStep)
	}
	if in.Has(core.ActionRight) {
		g.AimAt(g.aimX + g.cfg.Spawn.MoveStep)
	}

	if in.Has(core.ActionDrop) && g.sim.Release() {
		g.drops++
		g.spawn(g.next)
		g.next = g.randomTier()
	}

	snap := g.sim.Snapshot()
	g.sim.SetGravity(g.difficulty.Gravity(g.cfg.Physics.Gravity, snap.Score, snap.Tick))

	over := g.sim.Step(g.runtime.FrameDelta())

	var events []string
	for _, m := range g.sim.LastReport().Merges {
		msg := fmt.Sprintf("%s + %s = %s", m.From, m.From, m.Into)
		events = append(events, msg)
		g.event = msg
		g.eventUntil = snap.Tick + eventTicks
	}

	if over {
		g.state = StateGameOver
		logger.Info("run finished", "mode", g.ID(), "score", g.sim.Score(), "drops", g.drops)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Summary implements registry.Summarizer.
func (g *Game) Summary() core.RunSummary {
	snap := g.sim.Snapshot()
	return core.RunSummary{
		Score:    snap.Score,
		BestTier: snap.BestTier.String(),
		Merges:   snap.Merges,
		Drops:    g.drops,
	}
}

// Snapshot exposes the simulation state for graphical front ends.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// Next returns the tier that will be held after the current drop.
func (g *Game) Next() sim.Tier {
	return g.next
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.MergeConfig {
	return g.cfg
}

// Phase returns the run state name.
func (g *Game) Phase() string {
	return g.state
}

func init() {
	registry.Register("spacemerge", func() registry.Game {
		return New()
	})
	registry.Register("spacemerge_pixel", func() registry.Game {
		return NewPixel()
	})
}
