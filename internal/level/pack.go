package level

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tilegame/internal/asset"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

//go:embed defaults/levels.yaml
var defaultPackYAML []byte

// Pack is a YAML bundle of drawables, tile definitions and levels.
// A Pack can serve directly as a Source, Catalog and image resolver, or be
// imported into a store.
type Pack struct {
	Drawables []asset.Drawable `yaml:"drawables"`
	Tiles     []TileDefinition `yaml:"tiles"`
	Specs     []LevelSpec      `yaml:"levels"`
}

var _ Source = (*Pack)(nil)

// LevelSpec is the YAML form of a level record. Rows are joined with
// RowDelimiter unless TileData is given verbatim.
type LevelSpec struct {
	Stage       int       `yaml:"stage"`
	Level       int       `yaml:"level"`
	PlayerStart TileCoord `yaml:"player_start"`
	Rows        []string  `yaml:"rows,omitempty"`
	TileData    string    `yaml:"tile_data,omitempty"`
}

// TileCoord is a position in tile units.
type TileCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Record converts the spec to a level record.
func (s LevelSpec) Record() Record {
	data := s.TileData
	if data == "" {
		rows := make([]string, len(s.Rows))
		for i, r := range s.Rows {
			rows[i] = strings.ReplaceAll(r, " ", "")
		}
		data = strings.Join(rows, RowDelimiter)
	}
	return Record{
		Stage:            s.Stage,
		Level:            s.Level,
		PlayerStartTileX: s.PlayerStart.X,
		PlayerStartTileY: s.PlayerStart.Y,
		TileData:         data,
	}
}

// yamlTile decodes a tile definition with visible defaulting to 1.
type yamlTile struct {
	ID       int       `yaml:"id"`
	Name     string    `yaml:"name"`
	Type     tile.Type `yaml:"type"`
	Drawable int       `yaml:"drawable"`
	Visible  *int      `yaml:"visible"`
}

type yamlPack struct {
	Drawables []asset.Drawable `yaml:"drawables"`
	Tiles     []yamlTile       `yaml:"tiles"`
	Levels    []LevelSpec      `yaml:"levels"`
}

// ParsePack decodes and validates a YAML pack.
func ParsePack(data []byte) (*Pack, error) {
	var raw yamlPack
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	p := &Pack{Drawables: raw.Drawables, Specs: raw.Levels}
	for _, t := range raw.Tiles {
		visible := 1
		if t.Visible != nil {
			visible = *t.Visible
		}
		p.Tiles = append(p.Tiles, TileDefinition{
			ID:       t.ID,
			Name:     t.Name,
			Type:     t.Type,
			Drawable: t.Drawable,
			Visible:  visible,
		})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPackFile reads a pack from disk.
func LoadPackFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading pack %s: %w", path, err)
	}
	p, err := ParsePack(data)
	if err != nil {
		return nil, fmt.Errorf("level: parsing pack %s: %w", path, err)
	}
	return p, nil
}

// DefaultPack returns the built-in pack.
func DefaultPack() (*Pack, error) {
	return ParsePack(defaultPackYAML)
}

// Validate rejects duplicate drawables, tile ids and levels.
func (p *Pack) Validate() error {
	refs := make(map[int]bool)
	for _, d := range p.Drawables {
		if refs[d.Ref] {
			return fmt.Errorf("level: duplicate drawable ref %d", d.Ref)
		}
		if _, err := d.Image(); err != nil {
			return fmt.Errorf("level: %w", err)
		}
		refs[d.Ref] = true
	}

	ids := make(map[int]bool)
	for _, t := range p.Tiles {
		if ids[t.ID] {
			return fmt.Errorf("level: duplicate tile id %d", t.ID)
		}
		ids[t.ID] = true
	}

	levels := make(map[[2]int]bool)
	for _, l := range p.Specs {
		key := [2]int{l.Stage, l.Level}
		if levels[key] {
			return fmt.Errorf("level: duplicate stage %d level %d", l.Stage, l.Level)
		}
		levels[key] = true
	}
	return nil
}

// Catalog returns the tile definitions as a MapCatalog.
func (p *Pack) Catalog() MapCatalog {
	m := make(MapCatalog, len(p.Tiles))
	for _, t := range p.Tiles {
		m[t.ID] = t
	}
	return m
}

// Resolver returns the drawables as an image resolver.
func (p *Pack) Resolver() asset.Static {
	s := make(asset.Static, len(p.Drawables))
	for _, d := range p.Drawables {
		s[d.Ref] = d
	}
	return s
}

// Level implements Source.
func (p *Pack) Level(_ context.Context, stage, level int) (Record, error) {
	for _, l := range p.Specs {
		if l.Stage == stage && l.Level == level {
			return l.Record(), nil
		}
	}
	return Record{}, fmt.Errorf("%w: stage %d level %d", ErrLevelNotFound, stage, level)
}

// Levels implements Source, ordered by stage then level.
func (p *Pack) Levels(_ context.Context) ([]Record, error) {
	recs := make([]Record, 0, len(p.Specs))
	for _, l := range p.Specs {
		recs = append(recs, l.Record())
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Stage != recs[j].Stage {
			return recs[i].Stage < recs[j].Stage
		}
		return recs[i].Level < recs[j].Level
	})
	return recs, nil
}
