package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-merge/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new run would use, after the search order and
the --difficulty preset are applied.

Search order:
  --config <path>
  ~/.spacemerge/configs/spacemerge.yaml
  ./configs/spacemerge.yaml
  built-in defaults

Examples:
  spacemerge config > ~/.spacemerge/configs/spacemerge.yaml
  spacemerge config --path`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print only the file that would be loaded")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigPath {
		path := config.Resolve(flagConfig)
		if path == "" {
			path = "(built-in defaults)"
		}
		fmt.Println(path)
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		cfg.ApplyPreset(preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
