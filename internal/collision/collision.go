// Package collision resolves movement probes against a tile grid.
package collision

import (
	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/entity"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

// FindBlocking returns the first item, in slice order, that blocks, is
// visible and whose box overlaps the probe [x, x+width) x [y, y+height).
// An item standing exactly at (x, y) is skipped so nothing collides with
// itself.
//
// This is a linear scan; levels are small enough that no spatial index pays off.
func FindBlocking[T entity.Bounded](x, y, width, height int, items []T) (T, bool) {
	probe := core.NewRect(x, y, width, height)
	for _, it := range items {
		if !it.Blocking() || !it.Visible() {
			continue
		}
		b := it.Bounds()
		if b.X == x && b.Y == y {
			continue
		}
		if probe.Intersects(b) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// FindBlockingTile is FindBlocking over a grid's tiles. Returns nil when
// nothing overlaps.
func FindBlockingTile(x, y, width, height int, grid *tile.Grid) *tile.Tile {
	if grid == nil {
		return nil
	}
	t, _ := FindBlocking(x, y, width, height, grid.Tiles)
	return t
}

// PointHitTest reports whether (x, y) lies inside target with both the
// right and bottom edges included.
func PointHitTest(x, y int, target core.Rect) bool {
	return target.ContainsInclusive(x, y)
}
