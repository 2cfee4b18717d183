// Package tile defines level tiles and the grid they are placed in.
package tile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tilegame/internal/entity"
)

// Type governs how a tile behaves on contact.
type Type int

const (
	TypeEmpty Type = iota
	TypeObstacle
	TypeDangerous
	TypeExit
)

// String returns the lower-case type name.
func (t Type) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeObstacle:
		return "obstacle"
	case TypeDangerous:
		return "dangerous"
	case TypeExit:
		return "exit"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// ParseType accepts a type name or its numeric code.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return TypeEmpty, nil
	case "obstacle", "wall", "regular":
		return TypeObstacle, nil
	case "dangerous", "danger":
		return TypeDangerous, nil
	case "exit":
		return TypeExit, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return TypeEmpty, fmt.Errorf("tile: unknown type %q", s)
	}
	return Type(n), nil
}

// UnmarshalYAML lets level packs spell types by name.
func (t *Type) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML writes the type name.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Tile is one placed cell of a level.
type Tile struct {
	entity.Sprite
	Key   int
	Type  Type
	Shown bool
}

// IsCollisionTile reports whether the tile can be hit: non-empty and visible.
func (t *Tile) IsCollisionTile() bool {
	return t.Type != TypeEmpty && t.Shown
}

// IsBlockerTile reports whether the tile halts movement. Visibility does not
// matter.
func (t *Tile) IsBlockerTile() bool {
	return t.Type != TypeEmpty
}

// Blocking implements entity.Bounded.
func (t *Tile) Blocking() bool { return t.IsBlockerTile() }

// Visible implements entity.Bounded.
func (t *Tile) Visible() bool { return t.Shown }
