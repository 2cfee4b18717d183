package tui

import (
	"sync"

	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/loop"
)

// ScreenSurface is a double-buffered terminal render target. The loop draws
// into the back buffer through a pixel-addressed canvas; posting a frame
// copies it to the front buffer, which the Bubble Tea view renders.
type ScreenSurface struct {
	mu      sync.Mutex
	cellW   int
	cellH   int
	back    *core.Screen
	front   *core.Screen
	pending [2]int
	resized bool
	hidden  bool
	posted  uint64
}

// NewScreenSurface creates a surface of cols x rows cells, each covering
// cellW x cellH pixels.
func NewScreenSurface(cols, rows, cellW, cellH int) *ScreenSurface {
	return &ScreenSurface{
		cellW: max(cellW, 1),
		cellH: max(cellH, 1),
		back:  core.NewScreen(cols, rows),
		front: core.NewScreen(cols, rows),
	}
}

// Resize schedules a new size. It takes effect on the next LockCanvas so the
// back buffer never changes under a frame in progress.
func (s *ScreenSurface) Resize(cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = [2]int{max(cols, 0), max(rows, 0)}
	s.resized = true
}

// SetHidden marks the surface unavailable, for example while the terminal is
// suspended.
func (s *ScreenSurface) SetHidden(hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = hidden
}

// CellSize returns the pixel size of one cell.
func (s *ScreenSurface) CellSize() (int, int) {
	return s.cellW, s.cellH
}

// PixelSize returns the current surface size in pixels.
func (s *ScreenSurface) PixelSize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.back.Width(), s.back.Height()
	if s.resized {
		w, h = s.pending[0], s.pending[1]
	}
	return w * s.cellW, h * s.cellH
}

// LockCanvas implements loop.Surface.
func (s *ScreenSurface) LockCanvas() (core.Canvas, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resized {
		s.back.Resize(s.pending[0], s.pending[1])
		s.resized = false
	}
	if s.hidden || s.back.Width() == 0 || s.back.Height() == 0 {
		return nil, loop.ErrSurfaceUnavailable
	}
	s.back.Clear()
	return &cellCanvas{screen: s.back, cellW: s.cellW, cellH: s.cellH}, nil
}

// UnlockCanvasAndPost implements loop.Surface.
func (s *ScreenSurface) UnlockCanvasAndPost(core.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.front.CopyFrom(s.back)
	s.posted++
}

// Posted returns how many frames have been presented.
func (s *ScreenSurface) Posted() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posted
}

// Render returns the last presented frame as styled text.
func (s *ScreenSurface) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderScreen(s.front)
}

// Snapshot returns a copy of the last presented frame.
func (s *ScreenSurface) Snapshot() *core.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := core.NewScreen(0, 0)
	out.CopyFrom(s.front)
	return out
}

// cellCanvas maps pixel coordinates onto screen cells. An image covers every
// cell its pixel box touches.
type cellCanvas struct {
	screen *core.Screen
	cellW  int
	cellH  int
}

func (c *cellCanvas) Size() (int, int) {
	return c.screen.Width() * c.cellW, c.screen.Height() * c.cellH
}

func (c *cellCanvas) DrawImage(img core.Image, x, y int) {
	if img.Empty() {
		return
	}
	x0 := max(core.FloorDiv(x, c.cellW), 0)
	y0 := max(core.FloorDiv(y, c.cellH), 0)
	x1 := min(core.FloorDiv(x+img.Width-1, c.cellW), c.screen.Width()-1)
	y1 := min(core.FloorDiv(y+img.Height-1, c.cellH), c.screen.Height()-1)
	if x1 < x0 || y1 < y0 {
		return
	}
	c.screen.FillRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), img.Glyph, img.Color)
}

func (c *cellCanvas) DrawText(x, y int, text string, color core.Color) {
	c.screen.DrawText(core.FloorDiv(x, c.cellW), core.FloorDiv(y, c.cellH), text, color)
}
