package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilegame/internal/platform/tui"
)

var (
	flagStage int
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level. Without --stage/--level the level named in the
config's start section is played.

Controls:
  Arrows/WASD  - Move (keys hold for a moment; keep pressing to keep moving)
  Mouse        - Click the on-screen arrows
  P/Esc        - Pause
  R            - Restart level
  ?            - Help
  Q/Ctrl+C     - Quit

Examples:
  tilegame play
  tilegame play --stage 1 --level 2
  tilegame play --config ./my-tilegame.yaml --debug`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStage, "stage", 0, "Stage to play (0 = from config)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to play (0 = from config)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stage, lvl := cfg.Start.Stage, cfg.Start.Level
	if flagStage > 0 {
		stage = flagStage
	}
	if flagLevel > 0 {
		lvl = flagLevel
	}

	if err := play(cmd.Context(), stage, lvl); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one level in the terminal until the user quits.
func play(ctx context.Context, stage, lvl int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(true)
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := terminalSize()
	rows := max(height-1, 1) // status bar
	session, err := newSession(ctx, store, cfg, width, rows, logger)
	if err != nil {
		return err
	}
	if err := session.StartLevel(ctx, stage, lvl); err != nil {
		return err
	}

	surface := tui.NewScreenSurface(width, rows, cfg.Display.CellWidth, cfg.Display.CellHeight)
	return tui.Run(ctx, session, surface, tui.Options{
		TickRate: cfg.Display.TickRate,
		Hold:     time.Duration(cfg.Input.HoldMS) * time.Millisecond,
		Logger:   logger.WithPrefix("loop"),
	})
}
