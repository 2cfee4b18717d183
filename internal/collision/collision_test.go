package collision

import (
	"testing"

	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/entity"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

func newTile(key, x, y int, typ tile.Type, shown bool) *tile.Tile {
	return &tile.Tile{
		Sprite: entity.NewSprite(core.Image{Width: 16, Height: 16}, x, y),
		Key:    key,
		Type:   typ,
		Shown:  shown,
	}
}

func gridOf(tiles ...*tile.Tile) *tile.Grid {
	g := tile.NewGrid()
	g.TileWidth, g.TileHeight = 16, 16
	for _, t := range tiles {
		g.Add(t)
	}
	return g
}

func TestFindBlockingTileEdges(t *testing.T) {
	g := gridOf(newTile(0, 0, 0, tile.TypeObstacle, true))

	if got := FindBlockingTile(16, 0, 16, 16, g); got != nil {
		t.Errorf("probe sharing an edge should not collide, got key %d", got.Key)
	}
	if got := FindBlockingTile(16, 16, 16, 16, g); got != nil {
		t.Error("probe sharing a corner should not collide")
	}
	if got := FindBlockingTile(8, 0, 16, 16, g); got == nil || got.Key != 0 {
		t.Errorf("probe overlapping by half a tile should collide, got %v", got)
	}
}

func TestFindBlockingTileSkipsNonCollisionTiles(t *testing.T) {
	g := gridOf(
		newTile(0, 0, 0, tile.TypeEmpty, true),
		newTile(1, 0, 0, tile.TypeObstacle, false),
	)

	if got := FindBlockingTile(4, 4, 8, 8, g); got != nil {
		t.Errorf("empty and hidden tiles must not be returned, got key %d", got.Key)
	}
}

func TestFindBlockingTileSelfGuard(t *testing.T) {
	g := gridOf(newTile(0, 32, 32, tile.TypeObstacle, true))

	if got := FindBlockingTile(32, 32, 16, 16, g); got != nil {
		t.Error("tile positioned exactly at the probe origin must be skipped")
	}
	if got := FindBlockingTile(33, 32, 16, 16, g); got == nil {
		t.Error("one pixel off the origin must collide")
	}
}

func TestFindBlockingTileFirstMatchWins(t *testing.T) {
	g := gridOf(
		newTile(0, 0, 0, tile.TypeDangerous, true),
		newTile(1, 16, 0, tile.TypeExit, true),
	)

	got := FindBlockingTile(8, 0, 16, 16, g)
	if got == nil || got.Key != 0 {
		t.Fatalf("expected key 0 (storage order), got %v", got)
	}
}

func TestFindBlockingTileDiagonalProbe(t *testing.T) {
	// Player at (0,0) 10x10 moving to (5,5): only the combined box matters.
	open := gridOf(newTile(0, 15, 0, tile.TypeObstacle, true))
	if got := FindBlockingTile(5, 5, 10, 10, open); got != nil {
		t.Error("tile at [15,31) should not overlap [5,15)")
	}

	blocked := gridOf(newTile(0, 14, 14, tile.TypeObstacle, true))
	if got := FindBlockingTile(5, 5, 10, 10, blocked); got == nil {
		t.Error("tile at [14,30)x[14,30) overlaps [5,15)x[5,15)")
	}
}

func TestFindBlockingTileNilGrid(t *testing.T) {
	if FindBlockingTile(0, 0, 1, 1, nil) != nil {
		t.Error("nil grid should never block")
	}
}

func TestFindBlockingAnyBounded(t *testing.T) {
	player := entity.NewUnit(&entity.IDGenerator{}, core.Image{Width: 16, Height: 16}, 3)
	player.X, player.Y = 4, 4
	wall := newTile(0, 8, 8, tile.TypeObstacle, true)

	items := []entity.Bounded{player, wall}
	got, ok := FindBlocking(0, 0, 16, 16, items)
	if !ok || got != entity.Bounded(wall) {
		t.Fatalf("FindBlocking = %v, %v; want the wall", got, ok)
	}

	if _, ok := FindBlocking(0, 0, 16, 16, items[:1]); ok {
		t.Error("units do not block")
	}
}

func TestPointHitTestInclusive(t *testing.T) {
	target := core.NewRect(100, 50, 20, 10)

	tests := []struct {
		name string
		x, y int
		hit  bool
	}{
		{"top-left", 100, 50, true},
		{"bottom-right corner", 120, 60, true},
		{"inside", 110, 55, true},
		{"right of box", 121, 55, false},
		{"below box", 110, 61, false},
		{"left of box", 99, 55, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointHitTest(tc.x, tc.y, target); got != tc.hit {
				t.Errorf("PointHitTest(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.hit)
			}
		})
	}
}
