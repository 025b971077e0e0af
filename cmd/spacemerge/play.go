package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-merge/internal/config"
	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/registry"
	"github.com/vovakirdan/space-merge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [classic|pixel]",
	Short: "Play a mode",
	Long: `Start playing Space Merge. The mode defaults to classic.

Modes:
  classic  - Circle collisions
  pixel    - Collisions follow the sprite outlines

Controls:
  Left/Right, A/D, H/L  - Move the held object
  Mouse                 - Aim; click to drop
  Space/Down/Enter      - Drop
  P/Esc                 - Pause
  R                     - Restart (after game over)
  Ctrl+S                - Save a text screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Gravity starts at base and ramps up with score
  normal - Starts at 30% of the ramp
  hard   - Starts at 70% of the ramp
  fixed  - No progression

Examples:
  spacemerge play
  spacemerge play pixel
  spacemerge play --difficulty hard
  spacemerge play --config ./my-spacemerge.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// modeID maps a mode name or registered id to a registry id.
func modeID(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "classic":
		return "spacemerge", nil
	case "pixel":
		return "spacemerge_pixel", nil
	}
	if registry.Exists(name) {
		return name, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'spacemerge modes' to list them)", name)
}

func runPlay(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	gameID, err := modeID(name)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return playOnce(game, store, runtimeConfig())
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A missing database is not fatal:
// the game runs without recording scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		return nil
	}
	return store
}

// openWatcher watches the config files the game may load. Edits apply on the
// next restart.
func openWatcher() *config.Watcher {
	paths := config.WatchPaths(flagConfig)
	if len(paths) == 0 {
		return nil
	}
	w, err := config.NewWatcher(paths...)
	if err != nil {
		logger.Warn("config watch disabled", "error", err)
		return nil
	}
	go func() {
		for err := range w.Errors() {
			logger.Warn("config watch", "error", err)
		}
	}()
	return w
}
