// tilegame is a tile-based adventure runtime played in the terminal.
//
// Usage:
//
//	tilegame play            - Play a level
//	tilegame menu            - Pick a level interactively, then play it
//	tilegame levels          - List stored levels
//	tilegame catalog         - Show tile definitions
//	tilegame import <pack>   - Import a YAML level pack
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: from config, 30)
//	--db <path>        - Set database path (default: ~/.tilegame/levels.db)
//	--config <path>    - Use a custom config file
//	--log-file <path>  - Write logs to a file (default: ~/.tilegame/tilegame.log)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilegame",
	Short: "Tile Game - walk a tile maze in your terminal",
	Long: `Tile Game runs tile-based levels in the terminal. A player unit is
steered through walls, hazards and exits with the arrow keys or by clicking
the on-screen controls.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - List stored levels
  catalog  - Show the tile catalog
  import   - Import a YAML level pack

Examples:
  tilegame play
  tilegame play --stage 1 --level 2
  tilegame menu --fps 20
  tilegame import ./my-levels.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilegame/levels.db", "Path to levels database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.tilegame/tilegame.log", "Path to log file used while playing")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(importCmd)
}
