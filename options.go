package fractal

// Option configures a Renderer during creation.
//
// Example:
//
//	// One worker per CPU, default 64x64 tiles
//	r := fractal.NewRenderer()
//
//	// Fixed worker count, row-shaped tiles
//	r := fractal.NewRenderer(fractal.WithWorkers(4), fractal.WithTileSize(256, 8))
type Option func(*rendererOptions)

type rendererOptions struct {
	workers      int
	tileW, tileH int
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		workers: 0, // GOMAXPROCS
		tileW:   0, // parallel.TileWidth
		tileH:   0, // parallel.TileHeight
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or a negative value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithTileSize sets the tile dimensions used to partition the field.
// Non-positive values keep the 64x64 default for that axis.
func WithTileSize(w, h int) Option {
	return func(o *rendererOptions) {
		o.tileW = w
		o.tileH = h
	}
}
