package level

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tilegame/internal/asset"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

// Result is a parsed level ready to play.
type Result struct {
	Record  Record
	Grid    *tile.Grid
	Skipped []Skip
}

// Loader reads level records and parses them against a catalog.
type Loader struct {
	source  Source
	catalog Catalog
	images  *asset.Cache
	logger  *log.Logger
}

// NewLoader creates a loader. Images are resolved through a cache that is
// cleared on every Load. A nil logger discards output.
func NewLoader(source Source, catalog Catalog, images *asset.Cache, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		source:  source,
		catalog: catalog,
		images:  images,
		logger:  logger,
	}
}

// Images returns the loader's image cache.
func (l *Loader) Images() *asset.Cache {
	return l.images
}

// Load fetches and parses the given level. It fails with ErrLevelNotFound or
// ErrMalformedLevelData; unresolved cells are logged and skipped.
func (l *Loader) Load(ctx context.Context, stage, level int) (*Result, error) {
	rec, err := l.source.Level(ctx, stage, level)
	if err != nil {
		if errors.Is(err, ErrLevelNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("level: reading stage %d level %d: %w", stage, level, err)
	}
	if strings.TrimSpace(rec.TileData) == "" {
		return nil, fmt.Errorf("%w: %s has no tile data", ErrMalformedLevelData, rec)
	}

	l.images.Reset()

	grid, skips, err := Parse(rec.TileData, l.catalog, l.images)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, rec)
	}
	grid.StartTileX = rec.PlayerStartTileX
	grid.StartTileY = rec.PlayerStartTileY

	for _, s := range skips {
		l.logger.Debug("skipping cell", "row", s.Row, "col", s.Col, "token", s.Token, "reason", s.Err)
	}
	l.logger.Info("level loaded",
		"stage", rec.Stage,
		"level", rec.Level,
		"tiles", grid.Len(),
		"exits", grid.Count(tile.TypeExit),
		"skipped", len(skips),
		"tile_size", fmt.Sprintf("%dx%d", grid.TileWidth, grid.TileHeight),
	)

	return &Result{Record: rec, Grid: grid, Skipped: skips}, nil
}
