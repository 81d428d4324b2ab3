package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagHistoryBest  bool
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show run history",
	Long: `Display recent runs and overall statistics.

Examples:
  tetris history
  tetris history --best
  tetris history --limit 50 --db ./history.db
  tetris history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryBest, "best", false, "List runs with the most locked pieces instead of the most recent")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to list")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every recorded run")
}

func runHistory(_ *cobra.Command, _ []string) {
	if err := showHistory(os.Stdout); err != nil {
		fail("%v", err)
	}
}

func showHistory(w io.Writer) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns("tetris"); err != nil {
			return err
		}
		fmt.Fprintln(w, "Run history cleared.")
		return nil
	}

	var runs []storage.Run
	title := "Recent Runs"
	if flagHistoryBest {
		title = "Best Runs"
		runs, err = store.BestRuns("tetris", flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns("tetris", flagHistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "Tetris - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tetris play' to start your history!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-7s  %-6s  %s\n", "#", "Player", "Locked", "Gravity", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-7s  %-6s  %s\n", "--", "------", "------", "-------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-12s  %-6d  %-7d  %-6s  %s\n",
			i+1, r.Player, r.Locks, r.GravityTicks,
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats("tetris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not compute stats: %v\n", err)
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d   Best: %d locked   Average: %.1f locked   Total play: %ds\n",
		stats.Runs, stats.BestLocks, stats.AvgLocks, stats.TotalDuration)
	return nil
}
