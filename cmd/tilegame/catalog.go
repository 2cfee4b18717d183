package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the tile catalog",
	Long:  `Lists every tile definition with its type, drawable and visibility.`,
	Run:   runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) {
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

	catalog, err := store.TileCatalog(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading tiles: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %-8s  %-5s  %s\n", "ID", "Name", "Type", "Drawable", "Glyph", "Visible")
	fmt.Printf("  %-4s  %-14s  %-10s  %-8s  %-5s  %s\n", "--", "----", "----", "--------", "-----", "-------")
	for _, def := range catalog.Sorted() {
		glyph := "-"
		if def.Drawable > 0 {
			if d, err := store.Drawable(def.Drawable); err == nil {
				glyph = d.Glyph
			} else {
				glyph = "?"
			}
		}
		fmt.Printf("  %-4d  %-14s  %-10s  %-8d  %-5s  %t\n",
			def.ID, def.Name, def.Type, def.Drawable, glyph, def.Visible != 0)
	}
}
