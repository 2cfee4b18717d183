// Package storage provides SQLite-based persistence for levels, tile
// definitions and drawables.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tilegame/internal/asset"
	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/level"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

// Store manages the SQLite database connection for level records.
type Store struct {
	db *sql.DB
}

// ImportStats reports how many rows an Import wrote.
type ImportStats struct {
	Drawables int
	Tiles     int
	Levels    int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS drawables (
			ref INTEGER PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			glyph TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS game_tiles (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			type INTEGER NOT NULL DEFAULT 0,
			drawable INTEGER NOT NULL DEFAULT 0,
			visible INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS game_levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage INTEGER NOT NULL,
			level INTEGER NOT NULL,
			player_start_tile_x INTEGER NOT NULL DEFAULT 0,
			player_start_tile_y INTEGER NOT NULL DEFAULT 0,
			tile_data TEXT NOT NULL,
			UNIQUE (stage, level)
		);
		CREATE INDEX IF NOT EXISTS idx_game_levels_stage ON game_levels(stage, level);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Empty reports whether no level has been stored yet.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM game_levels").Scan(&n); err != nil {
		return false, fmt.Errorf("storage: cannot count levels: %w", err)
	}
	return n == 0, nil
}

// Import upserts every drawable, tile definition and level of the pack in a
// single transaction.
func (s *Store) Import(ctx context.Context, p *level.Pack) (ImportStats, error) {
	var stats ImportStats

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	for _, d := range p.Drawables {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO drawables (ref, name, width, height, glyph, color)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(ref) DO UPDATE SET
			   name = excluded.name, width = excluded.width, height = excluded.height,
			   glyph = excluded.glyph, color = excluded.color`,
			d.Ref, d.Name, d.Width, d.Height, d.Glyph, d.Color,
		); err != nil {
			return stats, fmt.Errorf("storage: cannot save drawable %d: %w", d.Ref, err)
		}
		stats.Drawables++
	}

	for _, t := range p.Tiles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO game_tiles (id, name, type, drawable, visible)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   name = excluded.name, type = excluded.type,
			   drawable = excluded.drawable, visible = excluded.visible`,
			t.ID, t.Name, int(t.Type), t.Drawable, t.Visible,
		); err != nil {
			return stats, fmt.Errorf("storage: cannot save tile %d: %w", t.ID, err)
		}
		stats.Tiles++
	}

	for _, l := range p.Specs {
		rec := l.Record()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO game_levels (stage, level, player_start_tile_x, player_start_tile_y, tile_data)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(stage, level) DO UPDATE SET
			   player_start_tile_x = excluded.player_start_tile_x,
			   player_start_tile_y = excluded.player_start_tile_y,
			   tile_data = excluded.tile_data`,
			rec.Stage, rec.Level, rec.PlayerStartTileX, rec.PlayerStartTileY, rec.TileData,
		); err != nil {
			return stats, fmt.Errorf("storage: cannot save %s: %w", rec, err)
		}
		stats.Levels++
	}

	if err := tx.Commit(); err != nil {
		return ImportStats{}, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return stats, nil
}

// Level implements level.Source.
func (s *Store) Level(ctx context.Context, stage, lvl int) (level.Record, error) {
	rec := level.Record{Stage: stage, Level: lvl}
	err := s.db.QueryRowContext(ctx,
		`SELECT player_start_tile_x, player_start_tile_y, tile_data
		 FROM game_levels
		 WHERE stage = ? AND level = ?`,
		stage, lvl,
	).Scan(&rec.PlayerStartTileX, &rec.PlayerStartTileY, &rec.TileData)

	if errors.Is(err, sql.ErrNoRows) {
		return level.Record{}, fmt.Errorf("%w: stage %d level %d", level.ErrLevelNotFound, stage, lvl)
	}
	if err != nil {
		return level.Record{}, fmt.Errorf("storage: cannot query level: %w", err)
	}
	return rec, nil
}

// Levels implements level.Source. Records are ordered by stage then level.
func (s *Store) Levels(ctx context.Context) ([]level.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT stage, level, player_start_tile_x, player_start_tile_y, tile_data
		 FROM game_levels
		 ORDER BY stage, level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var recs []level.Record
	for rows.Next() {
		var r level.Record
		if err := rows.Scan(&r.Stage, &r.Level, &r.PlayerStartTileX, &r.PlayerStartTileY, &r.TileData); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		recs = append(recs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return recs, nil
}

// TileCatalog loads every tile definition.
func (s *Store) TileCatalog(ctx context.Context) (level.MapCatalog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type, drawable, visible FROM game_tiles`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tiles: %w", err)
	}
	defer rows.Close()

	cat := make(level.MapCatalog)
	for rows.Next() {
		var (
			def level.TileDefinition
			typ int
		)
		if err := rows.Scan(&def.ID, &def.Name, &typ, &def.Drawable, &def.Visible); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		def.Type = tile.Type(typ)
		cat[def.ID] = def
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return cat, nil
}

// Drawable returns the stored drawable for ref.
func (s *Store) Drawable(ref int) (asset.Drawable, error) {
	d := asset.Drawable{Ref: ref}
	err := s.db.QueryRow(
		`SELECT name, width, height, glyph, color FROM drawables WHERE ref = ?`,
		ref,
	).Scan(&d.Name, &d.Width, &d.Height, &d.Glyph, &d.Color)

	if errors.Is(err, sql.ErrNoRows) {
		return asset.Drawable{}, fmt.Errorf("%w: %d", asset.ErrUnknownDrawable, ref)
	}
	if err != nil {
		return asset.Drawable{}, fmt.Errorf("storage: cannot query drawable: %w", err)
	}
	return d, nil
}

// Resolve implements asset.Resolver.
func (s *Store) Resolve(ref int) (core.Image, error) {
	d, err := s.Drawable(ref)
	if err != nil {
		return core.Image{}, err
	}
	return d.Image()
}

var (
	_ level.Source   = (*Store)(nil)
	_ asset.Resolver = (*Store)(nil)
)
