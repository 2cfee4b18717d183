// Package asset resolves drawable references to images.
package asset

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tilegame/internal/core"
)

// ErrUnknownDrawable is returned when a reference has no image.
var ErrUnknownDrawable = errors.New("asset: unknown drawable")

// Resolver turns a drawable reference into an image.
type Resolver interface {
	Resolve(ref int) (core.Image, error)
}

// Drawable describes how a reference is painted.
type Drawable struct {
	Ref    int    `yaml:"ref"`
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
}

// Image converts the description to an image.
func (d Drawable) Image() (core.Image, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return core.Image{}, fmt.Errorf("asset: drawable %d has invalid size %dx%d", d.Ref, d.Width, d.Height)
	}
	glyph := ' '
	for _, r := range d.Glyph {
		glyph = r
		break
	}
	color, ok := core.ParseColor(d.Color)
	if !ok {
		return core.Image{}, fmt.Errorf("asset: drawable %d has unknown color %q", d.Ref, d.Color)
	}
	return core.Image{Ref: d.Ref, Width: d.Width, Height: d.Height, Glyph: glyph, Color: color}, nil
}

// Static is an in-memory Resolver.
type Static map[int]Drawable

// Resolve implements Resolver.
func (s Static) Resolve(ref int) (core.Image, error) {
	d, ok := s[ref]
	if !ok {
		return core.Image{}, fmt.Errorf("%w: %d", ErrUnknownDrawable, ref)
	}
	return d.Image()
}
