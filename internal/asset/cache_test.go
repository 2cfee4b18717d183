package asset

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tilegame/internal/core"
)

type countingResolver struct {
	Static
	calls map[int]int
}

func (r *countingResolver) Resolve(ref int) (core.Image, error) {
	if r.calls == nil {
		r.calls = make(map[int]int)
	}
	r.calls[ref]++
	return r.Static.Resolve(ref)
}

func newCounting() *countingResolver {
	return &countingResolver{Static: Static{
		1: {Ref: 1, Width: 16, Height: 16, Glyph: "#", Color: "white"},
		2: {Ref: 2, Width: 16, Height: 16, Glyph: "^", Color: "red"},
		3: {Ref: 3, Width: 16, Height: 16, Glyph: "E", Color: "green"},
	}}
}

func TestCacheHitsAndMisses(t *testing.T) {
	r := newCounting()
	c := NewCache(r, 8)

	img, err := c.Resolve(1)
	if err != nil {
		t.Fatalf("Resolve(1): %v", err)
	}
	if img.Glyph != '#' || img.Width != 16 || img.Color != core.ColorWhite {
		t.Errorf("Resolve(1) = %+v", img)
	}
	if _, err := c.Resolve(1); err != nil {
		t.Fatalf("Resolve(1) again: %v", err)
	}

	if r.calls[1] != 1 {
		t.Errorf("underlying resolver called %d times, expected 1", r.calls[1])
	}
	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	r := newCounting()
	c := NewCache(r, 2)

	c.Resolve(1)
	c.Resolve(2)
	c.Resolve(1) // 2 is now oldest
	c.Resolve(3) // evicts 2

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", c.Len())
	}
	c.Resolve(1)
	if r.calls[1] != 1 {
		t.Error("ref 1 should still be cached")
	}
	c.Resolve(2)
	if r.calls[2] != 2 {
		t.Errorf("ref 2 should have been evicted and re-resolved, calls = %d", r.calls[2])
	}
	// 3 was evicted to make room for 2.
	if s := c.Stats(); s.Evictions != 2 || s.Entries != 2 {
		t.Errorf("Stats() = %+v, expected 2 evictions and 2 entries", s)
	}
}

func TestCacheReset(t *testing.T) {
	r := newCounting()
	c := NewCache(r, 0)

	c.Resolve(1)
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
	if s := c.Stats(); s != (CacheStats{}) {
		t.Errorf("Stats() after Reset = %+v", s)
	}
	c.Resolve(1)
	if r.calls[1] != 2 {
		t.Errorf("Reset should force re-resolution, calls = %d", r.calls[1])
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	c := NewCache(newCounting(), 4)

	_, err := c.Resolve(99)
	if !errors.Is(err, ErrUnknownDrawable) {
		t.Fatalf("Resolve(99) error = %v, expected ErrUnknownDrawable", err)
	}
	if c.Len() != 0 {
		t.Error("failed lookups must not be cached")
	}
}

func TestDrawableImageValidation(t *testing.T) {
	if _, err := (Drawable{Ref: 1, Width: 0, Height: 16}).Image(); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := (Drawable{Ref: 1, Width: 4, Height: 4, Color: "plaid"}).Image(); err == nil {
		t.Error("unknown color should fail")
	}
	img, err := (Drawable{Ref: 5, Width: 4, Height: 8, Glyph: "@"}).Image()
	if err != nil {
		t.Fatalf("Image(): %v", err)
	}
	if img.Glyph != '@' || img.Color != core.ColorDefault || img.Ref != 5 {
		t.Errorf("Image() = %+v", img)
	}
}
