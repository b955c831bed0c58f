package rpc

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net"

	mandel "github.com/marben/smooth_mandel"
	"github.com/sourcegraph/jsonrpc2"
)

// ServeJSON accepts JSON-RPC connections from l until it is closed. JSON-RPC
// clients share the server's renderers with irpc clients but never render
// tiles themselves.
func (s *Server) ServeJSON(ctx context.Context, l net.Listener) error {
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go s.ServeJSONConn(ctx, conn)
	}
}

// ServeJSONConn serves a single JSON-RPC connection and returns once it is
// closed.
func (s *Server) ServeJSONConn(ctx context.Context, conn net.Conn) {
	s.logger.Printf("got json-rpc connection from: %s", conn.RemoteAddr())

	c := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.AsyncHandler(s.jsonHandler()),
		jsonrpc2.SetLogger(s.logger))

	select {
	case <-c.DisconnectNotify():
	case <-ctx.Done():
		c.Close()
	}
	s.logger.Printf("json-rpc connection from %s closed", conn.RemoteAddr())
}

type method func(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		return fn(ctx, conn, req)
	})
}

func (s *Server) jsonHandler() jsonrpc2.Handler {
	return routingHandler(map[string]method{
		MethodValidate:   validate,
		MethodRegions:    regions,
		MethodRender:     s.renderFrame,
		MethodRenderTile: renderTileWith(mandel.LocalRenderer{}),
	})
}

func validate(_ context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	var p SettingsParams
	if err := unmarshalParams(req, &p); err != nil {
		return nil, err
	}
	if _, err := p.Settings(); err != nil {
		return nil, toRPCError(err)
	}
	return struct{}{}, nil
}

func regions(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (any, error) {
	return mandel.RegionNames(), nil
}

func (s *Server) renderFrame(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	var p SettingsParams
	if err := unmarshalParams(req, &p); err != nil {
		return nil, err
	}
	settings, err := p.Settings()
	if err != nil {
		return nil, toRPCError(err)
	}

	img, err := s.render(ctx, settings, func(_ image.Rectangle, done, total int) {
		if err := conn.Notify(ctx, NotifyProgress, ProgressParams{done, total}); err != nil {
			s.logger.Printf("notify progress: %v", err)
		}
	})
	if err != nil {
		return nil, toRPCError(err)
	}
	return ImageResultOf(img), nil
}

func renderTileWith(r mandel.Renderer) method {
	return func(ctx context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		var p RenderTileParams
		if err := unmarshalParams(req, &p); err != nil {
			return nil, err
		}
		settings, err := p.Settings.Settings()
		if err != nil {
			return nil, toRPCError(err)
		}
		img, err := r.RenderTile(ctx, settings, p.Tile.Rectangle())
		if err != nil {
			return nil, toRPCError(err)
		}
		return ImageResultOf(img), nil
	}
}
