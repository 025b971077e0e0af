package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-merge/internal/config"
	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/games/spacemerge"
	"github.com/vovakirdan/space-merge/internal/platform/tui"
	"github.com/vovakirdan/space-merge/internal/registry"
	"github.com/vovakirdan/space-merge/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start Space Merge in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. Unless --difficulty is given, a difficulty picker follows the
mode choice. After a run you return to the menu.

Examples:
  spacemerge menu
  spacemerge menu --fps 30
  spacemerge menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	chosenPreset := ""
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagDifficulty == "" {
			current, _ := config.ParsePreset(chosenPreset)
			preset, quit, err := tui.RunDifficultySelector(game.Title(), current, cfg)
			if err != nil {
				return fmt.Errorf("difficulty: %w", err)
			}
			if quit {
				return nil
			}
			if preset == nil {
				continue
			}
			chosenPreset = string(*preset)
			spacemerge.SetDifficultyPreset(chosenPreset)
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := playOnce(game, store, cfg); err != nil {
			return err
		}
	}
}

// playOnce runs a single game with its own config watcher, so no stale watch
// outlives the program that started it.
func playOnce(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	opts := []tui.Option{tui.WithLogger(logger)}
	if watcher := openWatcher(); watcher != nil {
		defer watcher.Close()
		opts = append(opts, tui.WithWatcher(watcher))
	}
	if err := tui.Run(game, store, cfg, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
