package core

// RuntimeConfig contains configuration passed to the session at start.
// Screen dimensions are in terminal cells; everything the game simulates is
// in pixels, one cell covering CellW x CellH pixels.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Frames per second (default 30)
	Density  float64 // Density scale applied to speeds and paddings
	CellW    int     // Pixels per cell horizontally
	CellH    int     // Pixels per cell vertically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Density:  1.0,
		CellW:    4,
		CellH:    8,
	}
}

// PixelSize returns the screen size in pixels.
func (c RuntimeConfig) PixelSize() (int, int) {
	return c.ScreenW * c.CellW, c.ScreenH * c.CellH
}

// Scale converts a density-independent length to pixels.
func (c RuntimeConfig) Scale(dp int) int {
	return int(float64(dp) * c.Density)
}
