package core

// Image is the raster stand-in drawn by a Canvas: a solid block of Width x
// Height pixels painted with one glyph.
type Image struct {
	Ref    int // Drawable reference the image was resolved from
	Width  int
	Height int
	Glyph  rune
	Color  Color
}

// Empty reports whether the image has no drawable area.
func (img Image) Empty() bool {
	return img.Width <= 0 || img.Height <= 0
}

// Canvas is a drawing target addressed in pixels.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)

	// DrawImage paints img with its top-left corner at (x, y).
	DrawImage(img Image, x, y int)

	// DrawText writes text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)
}
