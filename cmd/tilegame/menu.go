package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilegame/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Show the stored levels in a picker. After a level is quit you return
to the picker to choose another.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Play
  Q/Esc        - Quit

Examples:
  tilegame menu
  tilegame menu --db ./levels.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()

	logger, cleanup, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	store, err := openStore(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening levels database: %v\n", err)
		os.Exit(1)
	}
	levels, err := store.Levels(ctx)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading levels: %v\n", err)
		os.Exit(1)
	}

	for {
		width, height := terminalSize()
		selected, err := tui.RunMenu(levels, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if selected == nil {
			return
		}

		if err := play(ctx, selected.Stage, selected.Level); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
