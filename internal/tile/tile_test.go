package tile

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/entity"
)

func TestCollisionAndBlockerFlags(t *testing.T) {
	tests := []struct {
		typ       Type
		shown     bool
		collision bool
		blocker   bool
	}{
		{TypeEmpty, true, false, false},
		{TypeEmpty, false, false, false},
		{TypeObstacle, true, true, true},
		{TypeObstacle, false, false, true},
		{TypeDangerous, true, true, true},
		{TypeDangerous, false, false, true},
		{TypeExit, true, true, true},
		{TypeExit, false, false, true},
	}

	for _, tc := range tests {
		tl := &Tile{Type: tc.typ, Shown: tc.shown}
		if got := tl.IsCollisionTile(); got != tc.collision {
			t.Errorf("%v shown=%v: IsCollisionTile() = %v, expected %v", tc.typ, tc.shown, got, tc.collision)
		}
		if got := tl.IsBlockerTile(); got != tc.blocker {
			t.Errorf("%v shown=%v: IsBlockerTile() = %v, expected %v", tc.typ, tc.shown, got, tc.blocker)
		}
	}
}

func TestTileImplementsBounded(t *testing.T) {
	var b entity.Bounded = &Tile{
		Sprite: entity.NewSprite(core.Image{Width: 16, Height: 16}, 32, 16),
		Type:   TypeExit,
		Shown:  false,
	}
	if !b.Blocking() {
		t.Error("exit tile should block")
	}
	if b.Visible() {
		t.Error("hidden tile should not be visible")
	}
	if got := b.Bounds(); got != core.NewRect(32, 16, 16, 16) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		err  bool
	}{
		{"obstacle", TypeObstacle, false},
		{"Dangerous", TypeDangerous, false},
		{" exit ", TypeExit, false},
		{"", TypeEmpty, false},
		{"2", TypeDangerous, false},
		{"lava", TypeEmpty, true},
	}
	for _, tc := range tests {
		got, err := ParseType(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParseType(%q) error = %v", tc.in, err)
			continue
		}
		if !tc.err && got != tc.want {
			t.Errorf("ParseType(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestTypeYAML(t *testing.T) {
	var doc struct {
		Types []Type `yaml:"types"`
	}
	if err := yaml.Unmarshal([]byte("types: [obstacle, exit, 2]"), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []Type{TypeObstacle, TypeExit, TypeDangerous}
	for i, w := range want {
		if doc.Types[i] != w {
			t.Errorf("types[%d] = %v, expected %v", i, doc.Types[i], w)
		}
	}
}

func TestGridHelpers(t *testing.T) {
	g := NewGrid()
	g.TileWidth, g.TileHeight = 16, 16
	g.StartTileX, g.StartTileY = 2, 3
	g.Add(&Tile{Sprite: entity.NewSprite(core.Image{Width: 16, Height: 16}, 16, 0), Key: 0, Type: TypeObstacle, Shown: true})
	g.Add(&Tile{Sprite: entity.NewSprite(core.Image{Width: 16, Height: 16}, 16, 16), Key: 1, Type: TypeExit, Shown: true})

	if x, y := g.PlayerStart(); x != 32 || y != 48 {
		t.Errorf("PlayerStart() = (%d, %d), expected (32, 48)", x, y)
	}
	if g.Count(TypeObstacle) != 1 {
		t.Errorf("Count(obstacle) = %d", g.Count(TypeObstacle))
	}

	g.Translate(-4, 2)
	if g.Tiles[0].X != 12 || g.Tiles[0].Y != 2 {
		t.Errorf("after Translate tile 0 at (%d, %d)", g.Tiles[0].X, g.Tiles[0].Y)
	}

	var nilGrid *Grid
	if nilGrid.Len() != 0 {
		t.Error("nil grid should have length 0")
	}
}
