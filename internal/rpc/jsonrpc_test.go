package rpc

import (
	"bytes"
	"context"
	"errors"
	"image"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	mandel "github.com/marben/smooth_mandel"
	"github.com/sourcegraph/jsonrpc2"
)

// connectJSON serves one end of an in-memory pipe with srv and returns a
// JSON-RPC client for the other end.
func connectJSON(t *testing.T, srv *Server, onProgress func(ProgressParams)) *JSONClient {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	srvConn, cliConn := net.Pipe()
	done := make(chan struct{})
	go func() {
		srv.ServeJSONConn(ctx, srvConn)
		close(done)
	}()
	c := NewJSONClient(ctx, cliConn, onProgress)
	t.Cleanup(func() {
		c.Close()
		cancel()
		<-done
	})
	return c
}

func TestJSONValidate(t *testing.T) {
	c := connectJSON(t, NewServer(), nil)
	ctx := testContext(t)
	validate := func(p SettingsParams) error {
		return fromRPCError(c.conn.Call(ctx, MethodValidate, p, nil))
	}

	if err := validate(ParamsOf(mandel.FullSet.Settings(4, 4, 18, 3))); err != nil {
		t.Errorf("validate(valid) = %v", err)
	}
	err := validate(ParamsOf(mandel.FullSet.Settings(4, 4, 18, 1)))
	if !errors.Is(err, mandel.ErrInvalidSettings) || !strings.Contains(err.Error(), "escape_radius") {
		t.Errorf("validate(radius 1) = %v", err)
	}
	p := ParamsOf(mandel.FullSet.Settings(4, 4, 18, 3))
	p.Width = nil
	if err := validate(p); !errors.Is(err, mandel.ErrInvalidSettings) {
		t.Errorf("validate(no width) = %v", err)
	}
}

func TestJSONRegions(t *testing.T) {
	c := connectJSON(t, NewServer(), nil)
	got, err := c.Regions(testContext(t))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mandel.RegionNames(), got); diff != "" {
		t.Errorf("Regions (-want +got):\n%s", diff)
	}
}

func TestJSONRender(t *testing.T) {
	var (
		m        sync.Mutex
		progress []ProgressParams
	)
	c := connectJSON(t, NewServer(WithTileSize(16)), func(p ProgressParams) {
		m.Lock()
		progress = append(progress, p)
		m.Unlock()
	})

	s := mandel.FullSet.Settings(40, 40, 18, 3)
	got, err := c.Render(testContext(t), ParamsOf(s))
	if err != nil {
		t.Fatal(err)
	}
	want, err := mandel.Render(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if got.Rect != want.Rect || !bytes.Equal(got.Pix, want.Pix) {
		t.Errorf("remote frame differs from local frame")
	}

	m.Lock()
	defer m.Unlock()
	if len(progress) != 9 {
		t.Fatalf("got %d progress notifications, want 9", len(progress))
	}
	for _, p := range progress {
		if p.Total != 9 || p.Done < 1 || p.Done > 9 {
			t.Errorf("progress %+v", p)
		}
	}
}

func TestJSONRenderPreset(t *testing.T) {
	c := connectJSON(t, NewServer(), nil)
	w, h, iter, r := uint32(8), uint32(8), uint32(50), 2.0
	got, err := c.Render(testContext(t), SettingsParams{
		Region: "seahorse-valley", Width: &w, Height: &h, MaxIterations: &iter, EscapeRadius: &r,
	})
	if err != nil {
		t.Fatal(err)
	}
	want, _ := mandel.Render(context.Background(), mandel.SeahorseValley.Settings(w, h, iter, r))
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Errorf("preset frame differs")
	}
}

func TestJSONRenderNumericFault(t *testing.T) {
	c := connectJSON(t, NewServer(), nil)
	s := mandel.Settings{
		TopLeft:       mandel.Complex{Re: 1e200, Im: 0},
		BottomRight:   mandel.Complex{Re: 2e200, Im: 1},
		Width:         4,
		Height:        4,
		MaxIterations: 18,
		EscapeRadius:  3,
	}
	_, err := c.Render(testContext(t), ParamsOf(s))
	if !errors.Is(err, mandel.ErrNumericFault) {
		t.Errorf("err = %v, want ErrNumericFault", err)
	}
}

func TestJSONRenderTile(t *testing.T) {
	c := connectJSON(t, NewServer(), nil)
	ctx := testContext(t)
	s := mandel.ElephantValley.Settings(30, 20, 100, 2)
	tile := image.Rect(5, 5, 20, 12)

	var res ImageResult
	if err := c.conn.Call(ctx, MethodRenderTile, RenderTileParams{ParamsOf(s), RectOf(tile)}, &res); err != nil {
		t.Fatal(err)
	}
	got, err := res.Image()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := mandel.RenderTile(ctx, s, tile)
	if got.Rect != tile || !bytes.Equal(got.Pix, want.Pix) {
		t.Errorf("remote tile %v differs from local tile", got.Rect)
	}

	outside := RenderTileParams{ParamsOf(s), RectOf(image.Rect(25, 0, 31, 5))}
	if err := c.conn.Call(ctx, MethodRenderTile, outside, &res); err == nil {
		t.Errorf("tile outside frame accepted")
	}
}

func TestJSONUnknownMethod(t *testing.T) {
	c := connectJSON(t, NewServer(), nil)
	err := c.conn.Call(testContext(t), "mandel.zoom", nil, nil)
	var rpcErr *jsonrpc2.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.CodeMethodNotFound {
		t.Errorf("err = %v, want method not found", err)
	}
	err = c.conn.Call(testContext(t), MethodRender, nil, nil)
	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.CodeInvalidParams {
		t.Errorf("err = %v, want invalid params", err)
	}
}

func TestServeJSONStopsOnClose(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	served := make(chan error, 1)
	go func() { served <- NewServer().ServeJSON(context.Background(), l) }()

	c, err := DialJSON(testContext(t), l.Addr().String(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, err := c.Regions(testContext(t)); err != nil {
		t.Fatal(err)
	}

	l.Close()
	if err := <-served; err != nil {
		t.Errorf("ServeJSON = %v", err)
	}
}

func TestImageResultRejectsMalformed(t *testing.T) {
	if _, err := (ImageResult{Rect: Rect{0, 0, 2, 2}, Pix: make([]byte, 11)}).Image(); err == nil {
		t.Errorf("short pix accepted")
	}
	if _, err := (ImageResult{Rect: Rect{2, 2, 0, 0}, Pix: make([]byte, 12)}).Image(); err == nil {
		t.Errorf("inverted rect accepted")
	}
}
