// spacemerge-window plays Space Merge in a desktop window.
//
// Usage:
//
//	spacemerge-window [--pixel] [--config path] [--scale 1.5]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-merge/internal/core"
	"github.com/vovakirdan/space-merge/internal/games/spacemerge"
	"github.com/vovakirdan/space-merge/internal/platform/window"
	"github.com/vovakirdan/space-merge/internal/storage"
)

var (
	flagPixel      bool
	flagConfig     string
	flagDifficulty string
	flagScale      float64
	flagDBPath     string
	flagSeed       int64
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacemerge-window",
	Short: "Play Space Merge in a desktop window",
	Long: `Play Space Merge in a desktop window.

Controls:
  Mouse              - Aim; release the left button to drop
  Left/Right, A/D    - Move the held object
  Space/Down         - Drop
  P/Esc              - Pause
  R                  - Restart (after game over)
  Q                  - Quit

Gamepads with a standard layout work too: left stick aims, bottom face
button drops.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagPixel, "pixel", false, "Use sprite-accurate collisions")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window pixels per field unit")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.spacemerge/scores.db", "Path to scores database")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

func run(_ *cobra.Command, _ []string) error {
	if flagScale <= 0 || flagScale > 4 {
		return fmt.Errorf("--scale must be in (0, 4], got %v", flagScale)
	}

	// The window leaves the terminal free, so logs go to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spacemerge"})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	spacemerge.SetLogger(logger)
	spacemerge.SetConfigPath(flagConfig)
	spacemerge.SetDifficultyPreset(flagDifficulty)

	game := spacemerge.New()
	if flagPixel {
		game = spacemerge.NewPixel()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	return window.Run(game, runtime, window.Options{
		Scale:  flagScale,
		Store:  store,
		Logger: logger,
	})
}
