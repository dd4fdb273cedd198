package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghostbrawl/internal/game"
	"github.com/vovakirdan/ghostbrawl/internal/platform/tui"
	"github.com/vovakirdan/ghostbrawl/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs recorded by play and window.

Examples:
  ghostbrawl scores
  ghostbrawl scores --limit 25
  ghostbrawl scores --interactive
  ghostbrawl scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	g := game.New()
	gameID := g.ID()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, g.Title(), width, height)
	}

	// Get top scores
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", g.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ghostbrawl play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Ghosts", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %s\n", i+1, entry.Score, entry.Level, entry.Banished, dateStr)
	}

	// Show summary
	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Best level: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
	return nil
}
