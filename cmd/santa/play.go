package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa-catch/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round right away",
	Long: `Start playing without going through the menu.

Controls:
  1-4        - Move Santa to a lane
  +/=        - Continue after the 100-gift milestone
  Space      - Play again after the round ends
  Esc        - Back to the menu
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot

Examples:
  santa play
  santa play --seed 42
  santa play --fps 30
  santa play --config ./my-santa.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	goBack, runErr := tui.Run(s.newGame(), s.options(), s.runtime)

	// Close storage before potential exit
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if goBack {
		runMenu(cmd, args)
	}
}
