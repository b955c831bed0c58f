package mandel

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
)

// Distribute renders s by spreading tiles over renderers, each driven by its
// own goroutine. Renderers may be remote and may fail: a renderer that returns
// an error is dropped and its tile goes back to the queue for the survivors.
// Errors that follow from the settings themselves (invalid settings, numeric
// faults) abort the whole frame, as they would on any other renderer too.
// Every tile request carries ctx, so cancelling it interrupts tiles in flight.
//
// WithWorkers is ignored; the pool is exactly the given renderers.
func Distribute(ctx context.Context, s Settings, renderers []Renderer, opts ...RenderOption) (*Image, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(renderers) == 0 {
		return nil, errors.New("no renderers")
	}

	cfg := renderConfig{tileW: DefaultTileSize, tileH: DefaultTileSize}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.tileW < 1 || cfg.tileH < 1 {
		return nil, fmt.Errorf("tile size %dx%d: must be positive", cfg.tileW, cfg.tileH)
	}

	img := NewImage(s.Bounds())
	sched := newTileScheduler(SplitRect(img.Rect, cfg.tileW, cfg.tileH))

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var lastErr error
	alive := renderers
	for len(alive) > 0 && sched.remaining() > 0 && ctx.Err() == nil {
		var (
			m         sync.Mutex
			survivors []Renderer
			wg        sync.WaitGroup
		)
		for _, r := range alive {
			wg.Go(func() {
				err := drainTiles(ctx, s, r, img, sched, cfg.onTile)
				m.Lock()
				defer m.Unlock()
				switch {
				case err == nil:
					survivors = append(survivors, r)
				case errors.Is(err, ErrNumericFault) || errors.Is(err, ErrInvalidSettings):
					cancel(err)
				default:
					lastErr = err
				}
			})
		}
		wg.Wait()
		alive = survivors
	}

	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	if left := sched.remaining(); left > 0 {
		return nil, fmt.Errorf("all renderers failed with %d tiles left: %w", left, lastErr)
	}
	return img, nil
}

// drainTiles renders tiles on r until the queue is empty or r fails. A failed
// tile is requeued.
func drainTiles(ctx context.Context, s Settings, r Renderer, img *Image, sched *tileScheduler, onTile func(tile image.Rectangle, done, total int)) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		tile, found := sched.popTile()
		if !found {
			return nil
		}
		tileImg, err := r.RenderTile(ctx, s, tile)
		if err != nil && ctx.Err() != nil {
			// frame abandoned; r stays usable
			sched.requeue(tile)
			return nil
		}
		if err == nil && tileImg.Rect != tile {
			err = fmt.Errorf("renderer returned %v for tile %v", tileImg.Rect, tile)
		}
		if err == nil {
			// tiles are disjoint, so concurrent draws never overlap
			err = img.Draw(tileImg)
		}
		if err != nil {
			sched.requeue(tile)
			return fmt.Errorf("tile %v: %w", tile, err)
		}
		done := sched.tileFinished()
		if onTile != nil {
			onTile(tile, done, sched.total)
		}
	}
}
