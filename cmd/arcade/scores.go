package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blitz-arcade/internal/registry"
	"github.com/vovakirdan/blitz-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  arcade scores runner
  arcade scores invaders
  arcade scores invaders --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

var flagClearScores bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-3s  %s\n", "Rank", "Player", "Score", "Won", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-3s  %s\n", "----", "------", "-----", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-3s  %s\n", i+1, entry.Player, entry.Score, won, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d  Average: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	return nil
}
