package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-merge/internal/registry"
	"github.com/vovakirdan/space-merge/internal/storage"
)

var flagScoreLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|pixel]",
	Short: "Show the best runs",
	Long: `Display the best runs for a mode, or for every mode when none is given.

Examples:
  spacemerge scores
  spacemerge scores pixel --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	var ids []string
	if len(args) > 0 {
		id, err := modeID(args[0])
		if err != nil {
			return err
		}
		ids = append(ids, id)
	} else {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for i, id := range ids {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, id); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %-5s  %s\n", "Rank", "Score", "Best", "Merges", "Drops", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-10s  %-6d  %-5d  %s\n",
			i+1, e.Score, e.BestTier, e.Merges, e.Drops, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
