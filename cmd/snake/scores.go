package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
	flagRunID  string
)

var errRunNotFound = errors.New("run not found")

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs with their final length and how they ended.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --recent
  snake scores --id 0b7c1e4a-5f0e-4a7d-9a55-3c2f1d8e6b90
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
	scoresCmd.Flags().StringVar(&flagRunID, "id", "", "Show the details of one run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagRunID != "" {
		if err := showRun(os.Stdout, store, flagRunID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunEntry
	title := "Best runs"
	if flagRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Snake - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-12s  %-16s  %s\n", "Rank", "Score", "Length", "Ended", "Player", "Date", "Run ID")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-12s  %-16s  %s\n", "----", "-----", "------", "-----", "------", "----", "------")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-8s  %-12s  %-16s  %s\n",
			i+1, r.Score, r.MaxLength, r.EndReason, r.Player, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.RunID)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Longest snake: %d\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.LongestRun)
	}
}

// showRun prints every recorded field of a single run.
func showRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("%w: %s", errRunNotFound, runID)
	}

	fmt.Fprintf(w, "Snake - Run %s\n\n", run.RunID)
	fmt.Fprintf(w, "  Player:        %s\n", run.Player)
	fmt.Fprintf(w, "  Score:         %d\n", run.Score)
	fmt.Fprintf(w, "  Longest snake: %d\n", run.MaxLength)
	fmt.Fprintf(w, "  Apples:        %d\n", run.Apples)
	fmt.Fprintf(w, "  Rotten apples: %d\n", run.Rotten)
	fmt.Fprintf(w, "  Ticks:         %d\n", run.Ticks)
	fmt.Fprintf(w, "  Ended by:      %s\n", run.EndReason)
	fmt.Fprintf(w, "  Played:        %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}
