// santa is a terminal edition of "Santa and the Gifts": catch falling gifts
// in Santa's sack before they hit the ground.
//
// Usage:
//
//	santa                    - Start the main menu
//	santa play               - Start a round right away
//	santa scores             - Show the best score and round history
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Round history database (default: ~/.santa/history.db)
//	--record <path>    - Best score file (default: ~/.santa/record.txt)
//	--config <path>    - Custom game config YAML
//	--log-file <path>  - Log file (default: ~/.santa/santa.log)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagRecordPath string
	flagConfig     string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "santa",
	Short: "Santa and the Gifts - catch presents in your terminal",
	Long: `Santa and the Gifts is a lane-based catching game for the terminal.
Gifts fall down four lanes; move Santa's sack under them before they
reach the ground. Every ten gifts the fall speeds up.

Available commands:
  play     - Start a round right away
  scores   - Show the best score and round history

Without a command the main menu opens.

Examples:
  santa
  santa play --seed 42
  santa scores
  santa --config ./my-santa.yaml`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.santa/history.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagRecordPath, "record", "~/.santa/record.txt", "Path to best score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.santa/santa.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
