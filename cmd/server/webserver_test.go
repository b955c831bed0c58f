package main

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	mandel "github.com/marben/smooth_mandel"
	"github.com/marben/smooth_mandel/internal/rpc"
)

func TestPNGHandler(t *testing.T) {
	h := pngHandler(rpc.NewServer())

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/render.png?width=16&height=12&iterations=18&radius=3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	want, err := mandel.Render(context.Background(), mandel.FullSet.Settings(16, 12, 18, 3))
	if err != nil {
		t.Fatal(err)
	}
	for y := range 12 {
		for x := range 16 {
			r, _, _, _ := img.At(x, y).RGBA()
			if uint8(r>>8) != want.RGBAt(x, y)[0] {
				t.Fatalf("(%d, %d) = %d, want %d", x, y, r>>8, want.RGBAt(x, y)[0])
			}
		}
	}
}

func TestPNGHandlerErrors(t *testing.T) {
	h := pngHandler(rpc.NewServer())
	tests := []struct {
		query string
		want  int
	}{
		{"radius=1", http.StatusBadRequest},
		{"width=0", http.StatusBadRequest},
		{"width=abc", http.StatusBadRequest},
		{"radius=x", http.StatusBadRequest},
		{"radius=1e20", http.StatusBadRequest},
		{"region=atlantis", http.StatusBadRequest},
		{"width=100000&height=100000", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/render.png?"+tt.query, nil))
		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.query, rec.Code, tt.want)
		}
	}
}

func TestSettingsFromQueryDefaults(t *testing.T) {
	s, err := settingsFromQuery(nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := mandel.FullSet.Settings(1024, 768, 18, 3); s != want {
		t.Errorf("settingsFromQuery(nil) = %+v, want %+v", s, want)
	}
}
