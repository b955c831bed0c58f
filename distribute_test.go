package mandel

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var errFlaky = errors.New("connection lost")

// flakyRenderer renders ok tiles and then fails every call.
type flakyRenderer struct {
	m  sync.Mutex
	ok int
}

func (f *flakyRenderer) RenderTile(ctx context.Context, s Settings, tile image.Rectangle) (*Image, error) {
	f.m.Lock()
	defer f.m.Unlock()
	if f.ok == 0 {
		return nil, errFlaky
	}
	f.ok--
	return RenderTile(ctx, s, tile)
}

type faultyRenderer struct{}

func (faultyRenderer) RenderTile(context.Context, Settings, image.Rectangle) (*Image, error) {
	return nil, &NumericFaultError{Mu: 0}
}

// shiftedRenderer returns tiles at the wrong position.
type shiftedRenderer struct{}

func (shiftedRenderer) RenderTile(_ context.Context, s Settings, tile image.Rectangle) (*Image, error) {
	return NewImage(tile.Add(image.Pt(1, 0))), nil
}

func TestDistributeMatchesRender(t *testing.T) {
	s := TripleSpiral.Settings(50, 40, 300, 2)
	want, err := Render(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}

	renderers := []Renderer{LocalRenderer{}, LocalRenderer{}, &flakyRenderer{ok: 2}, shiftedRenderer{}}
	var calls int
	var m sync.Mutex
	got, err := Distribute(context.Background(), s, renderers, WithTileSize(8, 8),
		WithOnTileRendered(func(image.Rectangle, int, int) {
			m.Lock()
			calls++
			m.Unlock()
		}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want.Pix, got.Pix); diff != "" {
		t.Errorf("distributed frame differs (-render +distribute):\n%s", diff)
	}
	if want := len(SplitRect(s.Bounds(), 8, 8)); calls != want {
		t.Errorf("progress called %d times, want %d", calls, want)
	}
}

func TestDistributeAllRenderersFail(t *testing.T) {
	s := FullSet.Settings(16, 16, 18, 3)
	_, err := Distribute(context.Background(), s, []Renderer{&flakyRenderer{ok: 1}, &flakyRenderer{}}, WithTileSize(4, 4))
	if !errors.Is(err, errFlaky) {
		t.Errorf("err = %v, want wrapped %v", err, errFlaky)
	}
}

func TestDistributeAbortsOnNumericFault(t *testing.T) {
	s := FullSet.Settings(16, 16, 18, 3)
	img, err := Distribute(context.Background(), s, []Renderer{faultyRenderer{}}, WithTileSize(2, 2))
	if !errors.Is(err, ErrNumericFault) {
		t.Errorf("err = %v, want ErrNumericFault", err)
	}
	if img != nil {
		t.Errorf("partial image returned")
	}
}

func TestDistributeRejects(t *testing.T) {
	if _, err := Distribute(context.Background(), FullSet.Settings(0, 4, 18, 3), []Renderer{LocalRenderer{}}); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("invalid settings: err = %v", err)
	}
	if _, err := Distribute(context.Background(), FullSet.Settings(4, 4, 18, 3), nil); err == nil {
		t.Errorf("no renderers accepted")
	}
}

// blockingRenderer holds every tile until its context ends.
type blockingRenderer struct {
	started chan struct{}
}

func (b blockingRenderer) RenderTile(ctx context.Context, _ Settings, _ image.Rectangle) (*Image, error) {
	select {
	case b.started <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return nil, context.Cause(ctx)
}

func TestDistributeCancelInterruptsTile(t *testing.T) {
	s := FullSet.Settings(16, 16, 18, 3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := blockingRenderer{started: make(chan struct{}, 1)}
	done := make(chan error, 1)
	go func() {
		_, err := Distribute(ctx, s, []Renderer{r}, WithTileSize(4, 4))
		done <- err
	}()

	<-r.started
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Distribute did not return after cancel")
	}
}
