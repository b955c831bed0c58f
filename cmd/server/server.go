package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"runtime"

	"github.com/marben/irpc"
	"github.com/marben/smooth_mandel/internal/cache"
	"github.com/marben/smooth_mandel/internal/rpc"
)

// main is the entry point for the Mandelbrot server.
// Frames are rendered by the server's own workers and by every client that offers render slots.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	tcpAddr := flag.String("tcp", ":8081", "address of the irpc tcp listener")
	httpAddr := flag.String("http", ":8080", "address of the http server (/ws and /render.png)")
	jsonAddr := flag.String("jsonrpc", "", "address of the JSON-RPC tcp listener; empty disables it")
	cachePath := flag.String("cache", "", "bbolt file caching rendered frames; empty disables caching")
	workers := flag.Int("workers", runtime.NumCPU(), "local render workers; 0 leaves all rendering to clients")
	tile := flag.Int("tile", 64, "tile edge length in pixels")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []rpc.Option{
		rpc.WithLocalWorkers(*workers),
		rpc.WithTileSize(*tile),
		rpc.WithLogger(log.Default()),
	}
	if *cachePath != "" {
		c, err := cache.Open(*cachePath)
		if err != nil {
			return err
		}
		defer c.Close()
		opts = append(opts, rpc.WithCache(c))
		log.Printf("caching frames in %q", *cachePath)
	}

	// rpcServer serves mandel.ImgProvider over irpc and hands tiles to clients that offer render slots.
	// The same instance backs all listeners, so every kind of client shares the work.
	rpcServer := rpc.NewServer(opts...)

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, *httpAddr, rpcServer)

	errCh := make(chan error, 4)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil {
			errCh <- fmt.Errorf("httpServer: %w", err)
		}
	}()

	// rpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := rpcServer.Serve(tcpListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("serve tcp: %w", err)
		}
	}()
	go func() {
		if err := rpcServer.Serve(websocketListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("serve ws: %w", err)
		}
	}()

	// JSON-RPC for clients without irpc
	var jsonListener net.Listener
	if *jsonAddr != "" {
		log.Printf("json-rpc listening on %s", *jsonAddr)
		if jsonListener, err = net.Listen("tcp", *jsonAddr); err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		go func() {
			if err := rpcServer.ServeJSON(ctx, jsonListener); err != nil {
				errCh <- fmt.Errorf("serve json-rpc: %w", err)
			}
		}()
	}

	log.Printf("mb server waiting for tcp and websocket connections")
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Printf("shutting down")
		if jsonListener != nil {
			jsonListener.Close()
		}
		if err := rpcServer.Close(); err != nil {
			log.Printf("rpcServer.Close: %v", err)
		}
		return httpServer.Close()
	}
}
