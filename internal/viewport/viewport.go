// Package viewport keeps the player centered on screen by translating the
// rest of the world.
package viewport

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tilegame/internal/entity"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
)

// Mode selects how camera offsets are applied.
type Mode string

const (
	// ModeScreen rewrites tile and player positions in place every frame, so
	// after the first frame the grid is stored in screen space.
	ModeScreen Mode = "screen"
	// ModeWorld keeps positions in world space and derives screen positions
	// at draw time.
	ModeWorld Mode = "world"
)

// ParseMode converts a config string to a Mode. Empty means ModeScreen.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeScreen:
		return ModeScreen, nil
	case ModeWorld:
		return ModeWorld, nil
	default:
		return ModeScreen, fmt.Errorf("viewport: unknown camera mode %q", s)
	}
}

// Viewport tracks the screen center and the offset computed by the last
// Recenter call.
type Viewport struct {
	mode    Mode
	centerX int
	centerY int
	offsetX int
	offsetY int
}

// New creates a viewport for a screen of w x h pixels.
func New(mode Mode, w, h int) *Viewport {
	v := &Viewport{mode: mode}
	v.Resize(w, h)
	return v
}

// Mode returns the camera mode.
func (v *Viewport) Mode() Mode {
	return v.mode
}

// Resize recomputes the screen center.
func (v *Viewport) Resize(w, h int) {
	v.centerX = w / 2
	v.centerY = h / 2
}

// Center returns the screen center in pixels.
func (v *Viewport) Center() (int, int) {
	return v.centerX, v.centerY
}

// Offset returns the translation applied by the last Recenter.
func (v *Viewport) Offset() (int, int) {
	return v.offsetX, v.offsetY
}

// Attach prepares a freshly placed unit. In world mode the unmodified
// position becomes the authoritative world position.
func (v *Viewport) Attach(u *entity.Unit) {
	v.offsetX, v.offsetY = 0, 0
	if v.mode == ModeWorld {
		u.UnmodifiedX, u.UnmodifiedY = u.X, u.Y
	}
}

// Position returns the unit position in the same frame the grid is stored in.
// Movement and collision probes are computed from it.
func (v *Viewport) Position(u *entity.Unit) (int, int) {
	if v.mode == ModeWorld {
		return u.UnmodifiedX, u.UnmodifiedY
	}
	return u.X, u.Y
}

// Move commits a position returned from Position plus some displacement.
func (v *Viewport) Move(u *entity.Unit, x, y int) {
	if v.mode == ModeWorld {
		u.UnmodifiedX, u.UnmodifiedY = x, y
		return
	}
	u.X, u.Y = x, y
}

// Recenter runs the per-frame camera step: the unit is put back at the
// screen center and the offset it had from the center is applied to the grid.
func (v *Viewport) Recenter(u *entity.Unit, g *tile.Grid) {
	if u == nil {
		return
	}
	switch v.mode {
	case ModeWorld:
		v.offsetX = u.UnmodifiedX - v.centerX
		v.offsetY = u.UnmodifiedY - v.centerY
	default:
		u.UnmodifiedX = u.X + v.centerX
		u.UnmodifiedY = u.Y + v.centerY
		v.offsetX = u.X - v.centerX
		v.offsetY = u.Y - v.centerY
		if g != nil {
			g.Translate(-v.offsetX, -v.offsetY)
		}
	}
	u.X = v.centerX
	u.Y = v.centerY
}

// TilePosition returns where a tile is drawn on screen.
func (v *Viewport) TilePosition(t *tile.Tile) (int, int) {
	if v.mode == ModeWorld {
		return t.X - v.offsetX, t.Y - v.offsetY
	}
	return t.X, t.Y
}
