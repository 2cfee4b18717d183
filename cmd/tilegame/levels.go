package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilegame/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List stored levels",
	Long:  `Shows every level in the database with its size and player start tile.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, cleanup, err := newLogger(false)
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
	defer store.Close()

	levels, err := store.Levels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading levels: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No levels stored.")
		return
	}

	fmt.Println("Stored levels:")
	fmt.Println()
	fmt.Printf("  %-6s  %-6s  %-8s  %s\n", "Stage", "Level", "Size", "Start")
	fmt.Printf("  %-6s  %-6s  %-8s  %s\n", "-----", "-----", "----", "-----")
	for _, rec := range levels {
		cols, rows := tui.LevelSize(rec)
		fmt.Printf("  %-6d  %-6d  %-8s  %d,%d\n",
			rec.Stage, rec.Level, fmt.Sprintf("%dx%d", cols, rows), rec.PlayerStartTileX, rec.PlayerStartTileY)
	}

	fmt.Println()
	fmt.Println("Run 'tilegame play --stage N --level N' to play a level.")
}
