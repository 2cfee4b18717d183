package tile

// Grid is the ordered collection of tiles for one level. Tiles are stored in
// row-major scan order of the level text.
type Grid struct {
	Tiles      []*Tile
	TileWidth  int
	TileHeight int
	StartTileX int
	StartTileY int
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Len returns the number of placed tiles.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Tiles)
}

// Add appends a tile.
func (g *Grid) Add(t *Tile) {
	g.Tiles = append(g.Tiles, t)
}

// PlayerStart converts the start tile coordinates to pixels.
func (g *Grid) PlayerStart() (int, int) {
	return g.StartTileX * g.TileWidth, g.StartTileY * g.TileHeight
}

// Translate shifts every tile by (dx, dy) in place.
func (g *Grid) Translate(dx, dy int) {
	for _, t := range g.Tiles {
		t.X += dx
		t.Y += dy
	}
}

// Count returns how many tiles have the given type.
func (g *Grid) Count(t Type) int {
	n := 0
	for _, tl := range g.Tiles {
		if tl.Type == t {
			n++
		}
	}
	return n
}
