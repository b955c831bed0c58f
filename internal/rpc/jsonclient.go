package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	mandel "github.com/marben/smooth_mandel"
	"github.com/sourcegraph/jsonrpc2"
)

// JSONClient requests frames over JSON-RPC. It never renders for the server.
type JSONClient struct {
	conn       *jsonrpc2.Conn
	onProgress func(ProgressParams)
}

// DialJSON connects to a server's JSON-RPC listener. onProgress, if not nil,
// receives the progress notifications of Render.
func DialJSON(ctx context.Context, addr string, onProgress func(ProgressParams)) (*JSONClient, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return NewJSONClient(ctx, conn, onProgress), nil
}

func NewJSONClient(ctx context.Context, conn net.Conn, onProgress func(ProgressParams)) *JSONClient {
	c := &JSONClient{onProgress: onProgress}
	c.conn = jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}),
		routingHandler(map[string]method{NotifyProgress: c.progress}))
	return c
}

func (c *JSONClient) Close() error {
	return c.conn.Close()
}

func (c *JSONClient) Regions(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.conn.Call(ctx, MethodRegions, nil, &names); err != nil {
		return nil, fromRPCError(err)
	}
	return names, nil
}

// Render asks the server for a whole frame.
func (c *JSONClient) Render(ctx context.Context, p SettingsParams) (*mandel.Image, error) {
	var res ImageResult
	if err := c.conn.Call(ctx, MethodRender, p, &res); err != nil {
		return nil, fromRPCError(err)
	}
	return res.Image()
}

func (c *JSONClient) progress(_ context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	var p ProgressParams
	if req.Params == nil || json.Unmarshal(*req.Params, &p) != nil {
		return nil, errInvalidParams
	}
	if c.onProgress != nil {
		c.onProgress(p)
	}
	return nil, nil
}
