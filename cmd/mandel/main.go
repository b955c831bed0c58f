// mandel renders a grayscale Mandelbrot frame on this machine and saves it as PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	mandel "github.com/marben/smooth_mandel"
	"github.com/marben/smooth_mandel/internal/cache"
	"github.com/marben/smooth_mandel/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

var errTerminal = errors.New("refusing to write PNG to a terminal")

func run(args []string, stdout *os.File) error {
	def := config.Default()

	fs := flag.NewFlagSet("mandel", flag.ContinueOnError)
	configPath := fs.String("config", "", "settings file (.yaml, .yml or .toml); overrides the frame flags")
	region := fs.String("region", "full", "preset region")
	width := fs.Uint("width", uint(def.Width), "frame width in pixels")
	height := fs.Uint("height", uint(def.Height), "frame height in pixels")
	iterations := fs.Uint("iterations", uint(def.MaxIterations), "maximum iterations")
	radius := fs.Float64("radius", def.EscapeRadius, "escape radius, must exceed 1")
	workers := fs.Int("workers", 0, "render workers; 0 uses every CPU")
	tile := fs.Int("tile", mandel.DefaultTileSize, "tile edge length in pixels")
	cachePath := fs.String("cache", "", "bbolt file caching rendered frames")
	out := fs.String("o", "mandelbrot.png", "output file, - for stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		settings mandel.Settings
		err      error
	)
	if *configPath != "" {
		settings, err = config.Load(*configPath)
	} else {
		w, h, it := uint32(*width), uint32(*height), uint32(*iterations)
		settings, err = config.File{Region: *region, Width: &w, Height: &h, MaxIterations: &it, EscapeRadius: radius}.Settings()
	}
	if err != nil {
		return err
	}

	if *out == "-" && (isatty.IsTerminal(stdout.Fd()) || isatty.IsCygwinTerminal(stdout.Fd())) {
		return errTerminal
	}

	var c *cache.Cache
	if *cachePath != "" {
		if c, err = cache.Open(*cachePath); err != nil {
			return err
		}
		defer c.Close()
	}

	img, err := render(context.Background(), settings, c, *workers, *tile)
	if err != nil {
		return err
	}

	log.Printf("Saving...")
	if *out == "-" {
		err = writePNG(stdout, img)
	} else {
		err = savePNG(*out, img)
	}
	if err != nil {
		return err
	}
	log.Printf("Done")
	return nil
}

// savePNG creates path only once the frame exists, so a failed render leaves
// nothing behind.
func savePNG(path string, img *mandel.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writePNG(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func writePNG(w io.Writer, img *mandel.Image) error {
	if err := png.Encode(w, img.RGBA()); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

func render(ctx context.Context, s mandel.Settings, c *cache.Cache, workers, tile int) (*mandel.Image, error) {
	if c != nil {
		img, found, err := c.Get(s)
		if err != nil {
			log.Printf("cache: %v", err)
		} else if found {
			log.Printf("Loaded from cache")
			return img, nil
		}
	}

	start := time.Now()
	img, err := mandel.Render(ctx, s, mandel.WithWorkers(workers), mandel.WithTileSize(tile, tile))
	if err != nil {
		return nil, err
	}
	log.Printf("Computed in %s", time.Since(start))

	if c != nil {
		if err := c.Put(s, img); err != nil {
			log.Printf("cache: %v", err)
		}
	}
	return img, nil
}
