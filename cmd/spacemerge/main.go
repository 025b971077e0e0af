// spacemerge is a falling-object merge game for the terminal.
//
// Usage:
//
//	spacemerge play [classic|pixel]  - Play a mode
//	spacemerge menu                  - Pick a mode interactively
//	spacemerge scores [mode]         - Show the best runs
//	spacemerge modes                 - List available modes
//	spacemerge config                - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible drops
//	--db <path>          - Set database path (default: ~/.spacemerge/scores.db)
//	--config <path>      - Use a custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write logs to a file
//	--debug              - Log at debug level
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-merge/internal/config"
	"github.com/vovakirdan/space-merge/internal/games/spacemerge"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

// logger is built in PersistentPreRunE. The TUI owns the terminal, so logs
// go to --log-file or nowhere.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacemerge",
	Short: "Space Merge - drop planets, merge them into a black hole",
	Long: `Space Merge is a falling-object merge game. Drop celestial bodies into
the field; two of the same kind merge into the next one, from meteors up to
black holes. The run ends when the pile reaches the top.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View the best runs
  modes    - List available modes
  config   - Print the effective configuration

Examples:
  spacemerge play
  spacemerge play pixel --difficulty hard
  spacemerge menu --log-file /tmp/spacemerge.log --debug
  spacemerge scores classic`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacemerge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the global flags and hands them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		if errors.Is(err, config.ErrUnknownPreset) {
			return fmt.Errorf("%w (use easy, normal, hard or fixed)", err)
		}
		return err
	}

	l, f, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	logger, logFile = l, f

	spacemerge.SetLogger(logger)
	spacemerge.SetConfigPath(flagConfig)
	spacemerge.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger opens path for appending, or discards output when path is empty.
func newLogger(path string, debug bool) (*log.Logger, *os.File, error) {
	var (
		w io.Writer = io.Discard
		f *os.File
	)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "spacemerge",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l, f, nil
}
