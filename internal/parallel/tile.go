// Package parallel partitions a pixel grid into disjoint tiles and runs
// per-tile work on a fixed set of goroutines.
//
// A render divides its field into tiles (64x64 by default). Each tile covers a
// rectangle no other tile touches, so workers write their results straight
// into the shared output buffer without locking.
//
//   - TileGrid computes the tile rectangles for a width x height grid
//   - WorkerPool executes one closure per tile with work stealing
//
// Thread safety: TileGrid is immutable after construction. WorkerPool is safe
// for concurrent use.
package parallel

// Default tile dimensions.
const (
	// TileWidth is the default width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the default height of a tile in pixels.
	// 64 rows keep a tile's float64 field slice at 32KB.
	TileHeight = 64
)

// Tile is a rectangular region of the pixel grid.
//
// Edge tiles may be narrower or shorter than the grid's nominal tile size
// when the grid dimensions are not evenly divisible.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// MinX is the leftmost pixel column covered by the tile.
	MinX int

	// MinY is the topmost pixel row covered by the tile.
	MinY int

	// Width is the tile width in pixels.
	Width int

	// Height is the tile height in pixels.
	Height int
}
