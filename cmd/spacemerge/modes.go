package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-merge/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List available modes",
	Args:    cobra.NoArgs,
	Run:     runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	games := registry.List()

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'spacemerge play classic' or 'spacemerge play pixel' to start.")
}
