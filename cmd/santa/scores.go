package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa-catch/internal/storage"
)

var (
	flagClear   bool
	flagRoundID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and round history",
	Long: `Display the best score and the top 10 recorded rounds.

The best score lives in the record file and is never cleared;
--clear only wipes the round history. Round IDs are written to the
log file when a round finishes; --round shows one of them in detail.

Examples:
  santa scores
  santa scores --clear
  santa scores --round 0f8c2a4e-6f0b-4f7e-9d61-3b1f2c9a7d10
  santa scores --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
	scoresCmd.Flags().StringVar(&flagRoundID, "round", "", "Show a single round by its ID")
}

func runScores(_ *cobra.Command, _ []string) {
	best := storage.OpenBestScore(flagRecordPath, nil)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Round history cleared.")

	case flagRoundID != "":
		round, err := store.RoundByID(flagRoundID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving round: %v\n", err)
			os.Exit(1)
		}
		if round == nil {
			fmt.Fprintf(os.Stderr, "No round with ID %s\n", flagRoundID)
			os.Exit(1)
		}
		printRound(os.Stdout, round)

	default:
		rounds, err := store.TopRounds(10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
		stats, err := store.GetStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		printTopRounds(os.Stdout, best.Best(), rounds, stats)
	}
}

// printTopRounds writes the score table. stats may be nil.
func printTopRounds(w io.Writer, best int, rounds []storage.RoundRecord, stats *storage.Stats) {
	fmt.Fprintln(w, "Santa and the Gifts - High Scores")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'santa play' to catch your first gifts!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-9s  %-5s  %-6s  %s\n", "Rank", "Score", "Outcome", "Speed", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-9s  %-5s  %-6s  %s\n", "----", "-----", "-------", "-----", "----", "----")

	for i, r := range rounds {
		fmt.Fprintf(w, "  %-4d  %-6d  %-9s  %-5.1f  %-6s  %s\n",
			i+1, r.Score, r.Outcome, r.MaxSpeed,
			r.Duration.Round(time.Second), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rounds: %d  Victories: %d  Average: %.1f\n", stats.RoundsCount, stats.Victories, stats.AvgScore)
	}
}

// printRound writes the details of one recorded round.
func printRound(w io.Writer, r *storage.RoundRecord) {
	fmt.Fprintf(w, "Round     %s\n", r.RoundID)
	fmt.Fprintf(w, "Score     %d\n", r.Score)
	fmt.Fprintf(w, "Outcome   %s\n", r.Outcome)
	fmt.Fprintf(w, "Lives     %d\n", r.LivesLeft)
	fmt.Fprintf(w, "Speed     %.1f\n", r.MaxSpeed)
	fmt.Fprintf(w, "Time      %s\n", r.Duration.Round(time.Second))
	fmt.Fprintf(w, "Played    %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"))
}
