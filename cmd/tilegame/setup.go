package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tilegame/internal/asset"
	"github.com/vovakirdan/tui-tilegame/internal/config"
	"github.com/vovakirdan/tui-tilegame/internal/game"
	"github.com/vovakirdan/tui-tilegame/internal/level"
	"github.com/vovakirdan/tui-tilegame/internal/storage"
)

// newLogger builds the logger for a command. Interactive commands log to a
// file so output does not corrupt the alternate screen.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		cleanup           = func() {}
	)
	if toFile {
		path := expandHome(flagLogFile)
		if path == "" {
			w = io.Discard
		} else {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			cleanup = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilegame",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// loadConfig loads the game config and applies command-line overrides.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, nil
}

// openStore opens the levels database, seeding it with the built-in pack
// the first time.
func openStore(ctx context.Context, logger *log.Logger) (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}

	empty, err := store.Empty(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	if empty {
		pack, err := level.DefaultPack()
		if err != nil {
			store.Close()
			return nil, err
		}
		stats, err := store.Import(ctx, pack)
		if err != nil {
			store.Close()
			return nil, err
		}
		logger.Info("seeded level database", "levels", stats.Levels, "tiles", stats.Tiles, "drawables", stats.Drawables)
	}
	return store, nil
}

// terminalSize returns the terminal size in cells, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// newSession wires a play session over the store for a playfield of
// cols x rows cells.
func newSession(ctx context.Context, store *storage.Store, cfg config.GameConfig, cols, rows int, logger *log.Logger) (*game.Session, error) {
	catalog, err := store.TileCatalog(ctx)
	if err != nil {
		return nil, err
	}
	images := asset.NewCache(store, cfg.Cache.MaxEntries)
	loader := level.NewLoader(store, catalog, images, logger.WithPrefix("level"))
	return game.NewSession(cfg, cfg.Runtime(cols, rows), loader, logger.WithPrefix("game"))
}
