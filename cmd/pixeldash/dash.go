package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/platform/tui"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

var flagDashGame string

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Start the multi-pane dashboard",
	Long: `Start the dashboard: the live game on the left, reserved panes for
upcoming games on the right, and a diagnostic log strip at the bottom.

Examples:
  pixeldash dash
  pixeldash dash --game trex
  pixeldash dash --fps 30`,
	Run: runDash,
}

func init() {
	dashCmd.Flags().StringVar(&flagDashGame, "game", "trex", "Game to run in the live pane")
}

func runDash(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagDashGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagDashGame)
		os.Exit(1)
	}

	game, err := registry.Create(flagDashGame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	runErr := tui.RunDashboard(game, store, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", runErr)
		os.Exit(1)
	}
}
