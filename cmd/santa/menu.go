package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa-catch/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	cfg := s.runtime

	for {
		menuResult, err := tui.RunMenu(s.best, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(s.history, s.best, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return

		case tui.ChoicePlay:
			// Fresh seed for each visit unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			goBack, runErr := tui.Run(s.newGame(), s.options(), cfg)
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}
			if goBack {
				continue
			}
			return

		default:
			return
		}
	}
}
