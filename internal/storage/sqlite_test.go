package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tilegame/internal/asset"
	"github.com/vovakirdan/tui-tilegame/internal/level"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testPack() *level.Pack {
	return &level.Pack{
		Drawables: []asset.Drawable{
			{Ref: 1, Name: "wall", Width: 16, Height: 16, Glyph: "#", Color: "white"},
			{Ref: 2, Name: "exit", Width: 16, Height: 16, Glyph: "E", Color: "green"},
		},
		Tiles: []level.TileDefinition{
			{ID: 0, Name: "floor", Type: tile.TypeEmpty},
			{ID: 1, Name: "wall", Type: tile.TypeObstacle, Drawable: 1, Visible: 1},
			{ID: 2, Name: "exit", Type: tile.TypeExit, Drawable: 2, Visible: 1},
			{ID: 3, Name: "ghost", Type: tile.TypeObstacle, Drawable: 1, Visible: 0},
		},
		Specs: []level.LevelSpec{
			{Stage: 1, Level: 2, TileData: "1,2"},
			{Stage: 1, Level: 1, PlayerStart: level.TileCoord{X: 1, Y: 1}, Rows: []string{"1,1,1", "1,0,2"}},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	empty, err := store.Empty(context.Background())
	if err != nil {
		t.Fatalf("Empty() failed: %v", err)
	}
	if !empty {
		t.Error("new store should be empty")
	}
}

func TestStoreImportRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	stats, err := store.Import(ctx, testPack())
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	if stats != (ImportStats{Drawables: 2, Tiles: 4, Levels: 2}) {
		t.Errorf("stats = %+v", stats)
	}

	rec, err := store.Level(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	if rec.TileData != "1,1,1//1,0,2" || rec.PlayerStartTileX != 1 || rec.PlayerStartTileY != 1 {
		t.Errorf("record = %+v", rec)
	}

	recs, err := store.Levels(ctx)
	if err != nil {
		t.Fatalf("Levels() failed: %v", err)
	}
	if len(recs) != 2 || recs[0].Level != 1 || recs[1].Level != 2 {
		t.Errorf("Levels() = %v", recs)
	}

	cat, err := store.TileCatalog(ctx)
	if err != nil {
		t.Fatalf("TileCatalog() failed: %v", err)
	}
	if len(cat) != 4 {
		t.Fatalf("catalog size = %d, want 4", len(cat))
	}
	if cat[2].Type != tile.TypeExit || cat[3].Visible != 0 {
		t.Errorf("catalog = %+v", cat)
	}

	img, err := store.Resolve(2)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if img.Width != 16 || img.Glyph != 'E' {
		t.Errorf("image = %+v", img)
	}
}

func TestStoreImportUpserts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.Import(ctx, testPack()); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}

	update := &level.Pack{Specs: []level.LevelSpec{{Stage: 1, Level: 2, TileData: "2,2,2"}}}
	if _, err := store.Import(ctx, update); err != nil {
		t.Fatalf("second Import() failed: %v", err)
	}

	rec, err := store.Level(ctx, 1, 2)
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	if rec.TileData != "2,2,2" {
		t.Errorf("TileData = %q, want upserted value", rec.TileData)
	}

	recs, _ := store.Levels(ctx)
	if len(recs) != 2 {
		t.Errorf("levels = %d, want 2", len(recs))
	}
}

func TestStoreNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Level(context.Background(), 4, 4); !errors.Is(err, level.ErrLevelNotFound) {
		t.Errorf("Level() err = %v, want ErrLevelNotFound", err)
	}
	if _, err := store.Resolve(99); !errors.Is(err, asset.ErrUnknownDrawable) {
		t.Errorf("Resolve() err = %v, want ErrUnknownDrawable", err)
	}
}

func TestStoreServesLoader(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.Import(ctx, testPack()); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	cat, err := store.TileCatalog(ctx)
	if err != nil {
		t.Fatalf("TileCatalog() failed: %v", err)
	}

	l := level.NewLoader(store, cat, asset.NewCache(store, 8), nil)
	res, err := l.Load(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if res.Grid.Len() != 5 {
		t.Errorf("tiles = %d, want 5", res.Grid.Len())
	}
	if x, y := res.Grid.PlayerStart(); x != 16 || y != 16 {
		t.Errorf("PlayerStart = (%d,%d), want (16,16)", x, y)
	}
}
