// cliclient is a CLI client for the Mandelbrot render server.
// It connects to the server, optionally offers its CPU as a worker, requests a frame and saves it as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"runtime"

	mandel "github.com/marben/smooth_mandel"
	"github.com/marben/smooth_mandel/internal/config"
	"github.com/marben/smooth_mandel/internal/rpc"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the Mandelbrot server, requests the rendered frame, and saves it as a PNG file.
// Returns an error if any step fails.
func run() error {
	addr := flag.String("addr", "localhost:8081", "tcp address of the server")
	wsURL := flag.String("ws", "", "websocket url of the server, e.g. ws://localhost:8080/ws; overrides -addr")
	jsonAddr := flag.String("jsonrpc", "", "address of the server's JSON-RPC listener; overrides -addr and -ws, never works for the server")
	listRegions := flag.Bool("regions", false, "print the server's preset regions and exit; needs -jsonrpc")
	configPath := flag.String("config", "", "settings file (.yaml, .yml or .toml); overrides the frame flags")
	region := flag.String("region", "seahorse-valley", "preset region")
	width := flag.Uint("width", 1920, "frame width in pixels")
	height := flag.Uint("height", 1080, "frame height in pixels")
	iterations := flag.Uint("iterations", 1000, "maximum iterations")
	radius := flag.Float64("radius", 2, "escape radius, must exceed 1")
	slots := flag.Int("slots", runtime.NumCPU(), "tiles rendered for the server at once; 0 does not work for the server")
	frame := flag.Bool("frame", true, "request a frame; with -frame=false the client only works for the server until it disconnects")
	out := flag.String("o", "mandel.png", "output file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Step 1: Resolve frame settings locally, so bad settings fail before connecting
	var settings mandel.Settings
	var err error
	if *configPath != "" {
		settings, err = config.Load(*configPath)
	} else {
		w, h, it := uint32(*width), uint32(*height), uint32(*iterations)
		settings, err = config.File{Region: *region, Width: &w, Height: &h, MaxIterations: &it, EscapeRadius: radius}.Settings()
	}
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	var img *mandel.Image
	switch {
	case *jsonAddr != "":
		img, err = requestJSON(ctx, *jsonAddr, settings, *listRegions)
	case *listRegions:
		return fmt.Errorf("-regions needs -jsonrpc")
	default:
		img, err = requestIrpc(ctx, *addr, *wsURL, settings, *slots, *frame)
	}
	if err != nil || img == nil {
		return err
	}

	// Step 5: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", *out)
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img.RGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	log.Printf("Fully rendered image saved to %q", *out)
	return nil
}

// requestIrpc gets the frame over irpc and renders tiles for the server while waiting.
// Without frame it only works for the server and returns a nil image once the server disconnects.
func requestIrpc(ctx context.Context, addr, wsURL string, settings mandel.Settings, slots int, frame bool) (*mandel.Image, error) {
	// Step 2: Connect to Mandelbrot server
	var opts []rpc.ClientOption
	if slots > 0 {
		// The server calls our renderer to render tiles using our CPU
		renderer := mandel.LocalRenderer{OnTileRender: func(tile image.Rectangle) { log.Printf("Rendering tile: %s", tile) }}
		opts = append(opts, rpc.WithRenderer(renderer, slots))
	}

	var (
		client *rpc.Client
		err    error
	)
	if wsURL != "" {
		log.Printf("Connecting to Mandelbrot server at %s...", wsURL)
		client, err = rpc.DialWebsocket(ctx, wsURL, opts...)
	} else {
		log.Printf("Connecting to Mandelbrot server on %s...", addr)
		client, err = rpc.DialTCP(ctx, addr, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer client.Close()

	// Step 3: Report a server that goes away while we wait or work
	done := make(chan struct{})
	defer close(done)
	go func() {
		<-client.DisconnectNotify()
		select {
		case <-done:
		default:
			log.Printf("Server closed the connection")
		}
	}()

	if !frame {
		if slots <= 0 {
			return nil, fmt.Errorf("nothing to do: no frame requested and no slots offered")
		}
		log.Printf("Working for the server with %d slots", slots)
		select {
		case <-client.DisconnectNotify():
		case <-ctx.Done():
		}
		return nil, nil
	}

	// Step 4: Request the fully rendered frame from the server
	log.Printf("Requesting %dx%d frame from server...", settings.Width, settings.Height)
	img, err := client.GetImage(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("client.GetImage: %w", err)
	}
	return img, nil
}

// requestJSON gets the frame over JSON-RPC, logging the server's progress.
func requestJSON(ctx context.Context, addr string, settings mandel.Settings, listRegions bool) (*mandel.Image, error) {
	log.Printf("Connecting to Mandelbrot server's JSON-RPC on %s...", addr)
	client, err := rpc.DialJSON(ctx, addr, func(p rpc.ProgressParams) {
		log.Printf("finished: %d/%d tiles", p.Done, p.Total)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer client.Close()

	if listRegions {
		names, err := client.Regions(ctx)
		if err != nil {
			return nil, fmt.Errorf("client.Regions: %w", err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil, nil
	}

	log.Printf("Requesting %dx%d frame from server...", settings.Width, settings.Height)
	img, err := client.Render(ctx, rpc.ParamsOf(settings))
	if err != nil {
		return nil, fmt.Errorf("client.Render: %w", err)
	}
	return img, nil
}
