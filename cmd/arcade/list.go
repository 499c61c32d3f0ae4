package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blitz-arcade/internal/registry"
	"github.com/vovakirdan/blitz-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best recorded score.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	// Scores are optional here; a missing database only hides the column values.
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer s.Close()
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Best")
	for _, g := range games {
		best := "-"
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil && high > 0 {
				best = fmt.Sprintf("%d", high)
			}
		}
		fmt.Printf("  %-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, or 'arcade menu' to pick one.")
	return nil
}
