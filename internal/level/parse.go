package level

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tilegame/internal/asset"
	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/entity"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

// Skip records a cell that produced no tile.
type Skip struct {
	Row, Col int
	Token    string
	Err      error
}

type placedCell struct {
	row, col int
	def      TileDefinition
	img      core.Image
}

// Parse builds a grid from tile data: rows separated by RowDelimiter, each a
// comma-separated list of tile ids. Cells whose id cannot be resolved emit
// no tile but still occupy a column. Keys count emitted tiles from 0. Every
// tile is laid out on the size of the first emitted tile.
func Parse(text string, catalog Catalog, images asset.Resolver) (*tile.Grid, []Skip, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrMalformedLevelData
	}

	var (
		cells []placedCell
		skips []Skip
	)
	for row, line := range splitTrailing(text, RowDelimiter) {
		for col, token := range splitTrailing(line, ",") {
			def, img, err := resolveCell(token, catalog, images)
			if err != nil {
				skips = append(skips, Skip{Row: row, Col: col, Token: token, Err: err})
				continue
			}
			cells = append(cells, placedCell{row: row, col: col, def: def, img: img})
		}
	}

	grid := tile.NewGrid()
	if len(cells) > 0 {
		grid.TileWidth = cells[0].img.Width
		grid.TileHeight = cells[0].img.Height
	}
	for key, c := range cells {
		grid.Add(&tile.Tile{
			Sprite: entity.NewSprite(c.img, c.col*grid.TileWidth, c.row*grid.TileHeight),
			Key:    key,
			Type:   c.def.Type,
			Shown:  c.def.Visible != 0,
		})
	}
	return grid, skips, nil
}

func resolveCell(token string, catalog Catalog, images asset.Resolver) (TileDefinition, core.Image, error) {
	id, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return TileDefinition{}, core.Image{}, fmt.Errorf("%w: %q is not a tile id", ErrUnresolvedTileReference, token)
	}
	def, ok := catalog.TileDefinition(id)
	if !ok {
		return TileDefinition{}, core.Image{}, fmt.Errorf("%w: no definition for tile %d", ErrUnresolvedTileReference, id)
	}
	if def.Drawable <= 0 {
		return TileDefinition{}, core.Image{}, fmt.Errorf("%w: tile %d has no drawable", ErrUnresolvedTileReference, id)
	}
	img, err := images.Resolve(def.Drawable)
	if err != nil {
		return TileDefinition{}, core.Image{}, fmt.Errorf("%w: tile %d: %w", ErrUnresolvedTileReference, id, err)
	}
	if img.Empty() {
		return TileDefinition{}, core.Image{}, fmt.Errorf("%w: tile %d drawable %d is empty", ErrUnresolvedTileReference, id, def.Drawable)
	}
	return def, img, nil
}

// splitTrailing splits s on sep and drops trailing empty fields.
func splitTrailing(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
