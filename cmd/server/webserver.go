package main

import (
	"context"
	"errors"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	mandel "github.com/marben/smooth_mandel"
	"github.com/marben/smooth_mandel/internal/config"
	"github.com/marben/smooth_mandel/internal/rpc"
)

// maxPixels bounds frames requested over http.
const maxPixels = 8192 * 8192

// webServer creates the http server with the websocket irpc endpoint at /ws
// and PNG rendering at /render.png. It returns the net.Listener accepting websocket connections.
func webServer(ctx context.Context, addr string, provider mandel.ImgProvider) (*rpc.WebsocketListener, *http.Server) {
	l := rpc.NewWSListener(ctx, addr+"/ws")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", l.Handler("*")) // TODO: tighten origin patterns once clients are served from a known host
	mux.HandleFunc("/render.png", pngHandler(provider))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", addr)
	return l, srv
}

// pngHandler renders the frame described by the query, e.g.
// /render.png?region=seahorse-valley&width=800&height=600&iterations=200&radius=2
func pngHandler(provider mandel.ImgProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := settingsFromQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if uint64(s.Width)*uint64(s.Height) > maxPixels {
			http.Error(w, "frame too large", http.StatusBadRequest)
			return
		}

		img, err := provider.GetImage(r.Context(), s)
		switch {
		case errors.Is(err, mandel.ErrNumericFault):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case err != nil:
			log.Printf("render %+v: %v", s, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img.RGBA()); err != nil {
			log.Printf("png.Encode: %v", err)
		}
	}
}

func settingsFromQuery(q url.Values) (mandel.Settings, error) {
	f := config.File{Region: "full"}
	if q.Has("region") {
		f.Region = q.Get("region")
	}

	width, err := uintParam(q, "width", 1024)
	if err != nil {
		return mandel.Settings{}, err
	}
	height, err := uintParam(q, "height", 768)
	if err != nil {
		return mandel.Settings{}, err
	}
	iterations, err := uintParam(q, "iterations", 18)
	if err != nil {
		return mandel.Settings{}, err
	}
	radius := 3.0
	if v := q.Get("radius"); v != "" {
		radius, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return mandel.Settings{}, err
		}
	}

	f.Width, f.Height, f.MaxIterations, f.EscapeRadius = &width, &height, &iterations, &radius
	return f.Settings()
}

func uintParam(q url.Values, name string, def uint32) (uint32, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
