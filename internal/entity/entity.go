// Package entity holds the plain data types every on-screen object is built
// from: a Sprite value embedded by tiles, units and UI controls.
package entity

import (
	"github.com/vovakirdan/tui-tilegame/internal/core"
)

// Sprite is a positioned image. Position and size are in pixels.
type Sprite struct {
	X, Y   int
	Width  int
	Height int
	Image  core.Image
}

// NewSprite creates a sprite sized to its image.
func NewSprite(img core.Image, x, y int) Sprite {
	return Sprite{X: x, Y: y, Width: img.Width, Height: img.Height, Image: img}
}

// Bounds returns the sprite's bounding box.
func (s Sprite) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, s.Width, s.Height)
}

// Draw paints the sprite at its current position.
func (s Sprite) Draw(c core.Canvas) {
	c.DrawImage(s.Image, s.X, s.Y)
}

// Bounded is implemented by anything collision code can test against.
type Bounded interface {
	Blocking() bool
	Visible() bool
	Bounds() core.Rect
}

// ID identifies a unit within one session.
type ID int

// IDGenerator hands out sequential unit ids starting at 1.
// It is owned by the session that creates units; it is not safe for
// concurrent use.
type IDGenerator struct {
	next ID
}

// Next returns the next id.
func (g *IDGenerator) Next() ID {
	g.next++
	return g.next
}

// Count returns how many ids have been issued.
func (g *IDGenerator) Count() int {
	return int(g.next)
}
