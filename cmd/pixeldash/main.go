// pixeldash is a terminal dashboard for pixel-raster runner games.
//
// Usage:
//
//	pixeldash list              - List available games
//	pixeldash play <game>       - Play a game fullscreen
//	pixeldash dash              - Start the multi-pane dashboard
//	pixeldash serve             - Start SSH server for remote play
//	pixeldash scores <game>     - Show best runs for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 25)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pixeldash/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pixel-dash/internal/games/trex"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixeldash",
	Short: "Pixel Dash - runner games on a terminal pixel raster",
	Long: `Pixel Dash renders low-resolution pixel games in your terminal using
half-block characters, two pixels per character cell.

Available commands:
  list     - Show all available games
  play     - Play a specific game fullscreen
  dash     - Multi-pane dashboard with a live game and log pane
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  pixeldash list
  pixeldash play trex
  pixeldash play trex --seed 42
  pixeldash dash
  pixeldash serve --ssh :2222
  pixeldash scores trex --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 25, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixeldash/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
