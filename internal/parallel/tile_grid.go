package parallel

// TileGrid divides a width x height pixel grid into tiles.
//
// Tiles are stored in row-major order. Together they cover every pixel
// exactly once.
type TileGrid struct {
	tiles []Tile
}

// NewTileGridSize creates a grid of tileW x tileH tiles.
// Non-positive tile dimensions fall back to TileWidth and TileHeight.
// A grid with non-positive width or height has no tiles.
func NewTileGridSize(width, height, tileW, tileH int) *TileGrid {
	if tileW <= 0 {
		tileW = TileWidth
	}
	if tileH <= 0 {
		tileH = TileHeight
	}

	g := &TileGrid{}
	if width <= 0 || height <= 0 {
		return g
	}

	tilesX := (width + tileW - 1) / tileW
	tilesY := (height + tileH - 1) / tileH
	g.tiles = make([]Tile, 0, tilesX*tilesY)

	for ty := range tilesY {
		for tx := range tilesX {
			minX := tx * tileW
			minY := ty * tileH
			g.tiles = append(g.tiles, Tile{
				X:      tx,
				Y:      ty,
				MinX:   minX,
				MinY:   minY,
				Width:  min(tileW, width-minX),
				Height: min(tileH, height-minY),
			})
		}
	}

	return g
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int {
	return len(g.tiles)
}

// Work builds one closure per tile, suitable for WorkerPool.ExecuteAll.
func (g *TileGrid) Work(fn func(tile Tile)) []func() {
	work := make([]func(), len(g.tiles))
	for i, tile := range g.tiles {
		work[i] = func() { fn(tile) }
	}
	return work
}

// Rows splits [0, n) into at most parts contiguous half-open ranges of
// near-equal length and calls fn for each. It is used for work that is
// naturally one-dimensional, such as normalizing a flat field.
func Rows(n, parts int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if parts <= 0 {
		parts = 1
	}
	parts = min(parts, n)

	chunk := n / parts
	rem := n % parts
	start := 0
	for i := range parts {
		end := start + chunk
		if i < rem {
			end++
		}
		fn(start, end)
		start = end
	}
}
