package fractal

import (
	"sync/atomic"

	"github.com/gogpu/fractal/internal/parallel"
	"github.com/gogpu/fractal/internal/wide"
)

// Renderer computes fields on a pool of worker goroutines.
//
// The field is split into tiles; each tile is evaluated by one worker, which
// writes only the field slots inside its tile. The config is shared read-only.
//
// Thread safety: a Renderer may be used from several goroutines. Call Close
// when done to stop its workers.
type Renderer struct {
	pool         *parallel.WorkerPool
	tileW, tileH int
	evaluated    atomic.Int64
}

// NewRenderer creates a renderer and starts its workers.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		pool:  parallel.NewWorkerPool(o.workers),
		tileW: o.tileW,
		tileH: o.tileH,
	}
}

// Close stops the renderer's workers. Close is safe to call multiple times.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Workers returns the number of worker goroutines.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Evaluated returns the total number of pixels this renderer has iterated.
func (r *Renderer) Evaluated() int64 {
	return r.evaluated.Load()
}

// Potentials evaluates every pixel of cfg and returns the field of smooth
// potentials, with InteriorSentinel for points that did not escape.
// cfg must satisfy Validate.
func (r *Renderer) Potentials(cfg RenderConfig) *Field {
	field := NewField(cfg.Width, cfg.Height)
	vp := NewViewport(cfg)
	grid := parallel.NewTileGridSize(cfg.Width, cfg.Height, r.tileW, r.tileH)

	Logger().Debug("evaluating field",
		"width", cfg.Width, "height", cfg.Height,
		"mode", cfg.Mode, "max_iterations", cfg.MaxIterations,
		"tiles", grid.TileCount(), "workers", r.pool.Workers(), "lanes", wide.Lanes)

	r.pool.ExecuteAll(grid.Work(func(tile parallel.Tile) {
		for y := tile.MinY; y < tile.MinY+tile.Height; y++ {
			row := field.Row(y)[tile.MinX : tile.MinX+tile.Width]
			evaluateRow(row, vp, cfg, tile.MinX, tile.MinX+tile.Width, y)
		}
	}))

	r.evaluated.Add(int64(cfg.Pixels()))
	return field
}

// Normalize is the parallel form of the package-level Normalize.
func (r *Renderer) Normalize(f *Field, multiplier, offset float64) *Field {
	r.chunks(len(f.data), func(start, end int) {
		normalizeSlice(f.data[start:end], multiplier, offset)
	})
	return f
}

// Field computes the normalized field for cfg: Potentials followed by
// Normalize with the config's color multiplier and offset.
func (r *Renderer) Field(cfg RenderConfig) *Field {
	return r.Normalize(r.Potentials(cfg), cfg.ColorMultiplier, cfg.ColorOffset)
}

// Colorize maps every value of a normalized field through cm.
func (r *Renderer) Colorize(f *Field, cm ColorMap) *Pixmap {
	pm := NewPixmap(f.width, f.height)
	r.chunks(len(f.data), func(start, end int) {
		colorizeSlice(pm.data[start*3:end*3], f.data[start:end], cm)
	})
	return pm
}

// chunks runs fn over [0, n) split into a few contiguous pieces per worker.
func (r *Renderer) chunks(n int, fn func(start, end int)) {
	var work []func()
	parallel.Rows(n, r.pool.Workers()*4, func(start, end int) {
		work = append(work, func() { fn(start, end) })
	})
	r.pool.ExecuteAll(work)
}

// ComputePotentials is a convenience wrapper that evaluates cfg on a
// temporary Renderer.
func ComputePotentials(cfg RenderConfig) *Field {
	r := NewRenderer()
	defer r.Close()
	return r.Potentials(cfg)
}
