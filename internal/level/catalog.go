// Package level turns stored level records into tile grids.
package level

import (
	"context"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

// RowDelimiter separates rows in a level's tile data.
const RowDelimiter = "//"

// TileDefinition is one catalog entry. A Visible of 0 hides tiles built from it.
type TileDefinition struct {
	ID       int       `yaml:"id"`
	Name     string    `yaml:"name"`
	Type     tile.Type `yaml:"type"`
	Drawable int       `yaml:"drawable"`
	Visible  int       `yaml:"visible"`
}

// Catalog looks up tile definitions by id.
type Catalog interface {
	TileDefinition(id int) (TileDefinition, bool)
}

// MapCatalog is an in-memory Catalog.
type MapCatalog map[int]TileDefinition

// TileDefinition implements Catalog.
func (m MapCatalog) TileDefinition(id int) (TileDefinition, bool) {
	def, ok := m[id]
	return def, ok
}

// Sorted returns the definitions ordered by id.
func (m MapCatalog) Sorted() []TileDefinition {
	defs := make([]TileDefinition, 0, len(m))
	for _, d := range m {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Record is a stored level.
type Record struct {
	Stage            int
	Level            int
	PlayerStartTileX int
	PlayerStartTileY int
	TileData         string
}

// String identifies the record in logs and CLI output.
func (r Record) String() string {
	return fmt.Sprintf("stage %d level %d", r.Stage, r.Level)
}

// Source provides level records. Level returns an error wrapping
// ErrLevelNotFound when nothing matches.
type Source interface {
	Level(ctx context.Context, stage, level int) (Record, error)
	Levels(ctx context.Context) ([]Record, error)
}
