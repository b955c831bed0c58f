package mandel

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
)

// DefaultTileSize is the edge length of the square tiles the grid is split
// into.
const DefaultTileSize = 64

type renderConfig struct {
	workers      int
	tileW, tileH int
	onTile       func(tile image.Rectangle, done, total int)
}

type RenderOption func(*renderConfig)

// WithWorkers sets the size of the worker pool. Values below 1 select
// runtime.NumCPU().
func WithWorkers(n int) RenderOption {
	return func(c *renderConfig) { c.workers = n }
}

func WithTileSize(w, h int) RenderOption {
	return func(c *renderConfig) { c.tileW, c.tileH = w, h }
}

// WithOnTileRendered registers a progress hook. It is called from worker
// goroutines, possibly concurrently, after each finished tile.
func WithOnTileRendered(f func(tile image.Rectangle, done, total int)) RenderOption {
	return func(c *renderConfig) { c.onTile = f }
}

// Render computes the whole frame described by s.
//
// The grid is split into tiles that a fixed pool of workers pops from a shared
// scheduler. Every tile is written straight into its own region of the result,
// so pixel writes need no locking; waiting for the pool is the only barrier.
// Invalid settings are rejected before any work starts. A numeric fault in any
// tile stops the remaining workers and no image is returned.
func Render(ctx context.Context, s Settings, opts ...RenderOption) (*Image, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfg := renderConfig{
		workers: runtime.NumCPU(),
		tileW:   DefaultTileSize,
		tileH:   DefaultTileSize,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.NumCPU()
	}
	if cfg.tileW < 1 || cfg.tileH < 1 {
		return nil, fmt.Errorf("tile size %dx%d: must be positive", cfg.tileW, cfg.tileH)
	}

	img := NewImage(s.Bounds())
	sched := newTileScheduler(SplitRect(img.Rect, cfg.tileW, cfg.tileH))

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var wg sync.WaitGroup
	for range min(cfg.workers, sched.total) {
		wg.Go(func() {
			for {
				if ctx.Err() != nil {
					return
				}
				tile, found := sched.popTile()
				if !found {
					return
				}
				if err := renderInto(ctx, img, s, tile); err != nil {
					cancel(err)
					return
				}
				done := sched.tileFinished()
				if cfg.onTile != nil {
					cfg.onTile(tile, done, sched.total)
				}
			}
		})
	}
	wg.Wait()

	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	return img, nil
}

// RenderTile computes a single tile of the frame. The returned image keeps the
// tile's global coordinates. Cancelling ctx stops the tile between rows.
func RenderTile(ctx context.Context, s Settings, tile image.Rectangle) (*Image, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if tile.Empty() || !tile.In(s.Bounds()) {
		return nil, fmt.Errorf("tile %v not within %v", tile, s.Bounds())
	}
	img := NewImage(tile)
	if err := renderInto(ctx, img, s, tile); err != nil {
		return nil, err
	}
	return img, nil
}

// LocalRenderer renders tiles on this machine.
type LocalRenderer struct {
	// OnTileRender is called before a tile is rendered, if set.
	OnTileRender func(tile image.Rectangle)
}

func (r LocalRenderer) RenderTile(ctx context.Context, s Settings, tile image.Rectangle) (*Image, error) {
	if r.OnTileRender != nil {
		r.OnTileRender(tile)
	}
	return RenderTile(ctx, s, tile)
}

var _ Renderer = LocalRenderer{}

// renderInto fills the tile region of dst. Rows are the cancellation points.
func renderInto(ctx context.Context, dst *Image, s Settings, tile image.Rectangle) error {
	bound := s.NormalizationBound()
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}
		for x := tile.Min.X; x < tile.Max.X; x++ {
			res, err := s.Evaluate(s.PlanePoint(x, y))
			if err != nil {
				return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			dst.SetRGB(x, y, Colorize(res, bound))
		}
	}
	return nil
}

// tileScheduler hands out each tile to exactly one worker.
type tileScheduler struct {
	total int

	m         sync.Mutex
	unstarted []image.Rectangle
	finished  int
}

func newTileScheduler(tiles []image.Rectangle) *tileScheduler {
	return &tileScheduler{
		total:     len(tiles),
		unstarted: tiles,
	}
}

func (ts *tileScheduler) popTile() (tile image.Rectangle, found bool) {
	ts.m.Lock()
	defer ts.m.Unlock()

	n := len(ts.unstarted)
	if n == 0 {
		return image.Rectangle{}, false
	}
	tile = ts.unstarted[n-1]
	ts.unstarted = ts.unstarted[:n-1]
	return tile, true
}

// requeue hands tile out again after a renderer failed on it.
func (ts *tileScheduler) requeue(tile image.Rectangle) {
	ts.m.Lock()
	defer ts.m.Unlock()
	ts.unstarted = append(ts.unstarted, tile)
}

func (ts *tileScheduler) remaining() int {
	ts.m.Lock()
	defer ts.m.Unlock()
	return len(ts.unstarted)
}

// tileFinished records a finished tile and returns how many are done.
func (ts *tileScheduler) tileFinished() int {
	ts.m.Lock()
	defer ts.m.Unlock()
	ts.finished++
	return ts.finished
}
