package rpc

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/coder/websocket"
	"github.com/marben/irpc"
	"github.com/marben/irpc/irpcgen"
	mandel "github.com/marben/smooth_mandel"
)

// Client requests frames from a Server over irpc. A client created with
// WithRenderer also renders tiles for the server, for its own frames and for
// those of other clients.
type Client struct {
	ep       *irpc.Endpoint
	provider *mandel.ImgProviderIrpcClient
}

type clientConfig struct {
	renderer mandel.Renderer
	slots    int
}

type ClientOption func(*clientConfig)

// WithRenderer offers r to the server, which sends it up to slots tiles at
// once.
func WithRenderer(r mandel.Renderer, slots int) ClientOption {
	return func(c *clientConfig) { c.renderer, c.slots = r, slots }
}

// workerSlots implements mandel.Worker.
type workerSlots int

func (n workerSlots) Slots() (int, error) {
	return int(n), nil
}

func NewClient(rwc io.ReadWriteCloser, opts ...ClientOption) (*Client, error) {
	var cfg clientConfig
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.renderer == nil || cfg.slots < 0 {
		cfg.slots = 0
	}

	// the server calls Worker on connect, so every client serves it
	services := []irpcgen.Service{mandel.NewWorkerIrpcService(workerSlots(cfg.slots))}
	epOpts := []irpc.EndpointOption{}
	if cfg.slots > 0 {
		services = append(services, mandel.NewRendererIrpcService(cfg.renderer))
		epOpts = append(epOpts, irpc.WithParallelWorkers(cfg.slots))
	}
	ep := irpc.NewEndpoint(rwc, append(epOpts, irpc.WithEndpointServices(services...))...)

	provider, err := mandel.NewImgProviderIrpcClient(ep)
	if err != nil {
		ep.Close()
		return nil, fmt.Errorf("new ImgProvider client: %w", err)
	}
	return &Client{ep: ep, provider: provider}, nil
}

// DialTCP connects to a server listening on addr.
func DialTCP(ctx context.Context, addr string, opts ...ClientOption) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return NewClient(conn, opts...)
}

// DialWebsocket connects to a server's websocket endpoint, e.g.
// ws://localhost:8080/ws.
func DialWebsocket(ctx context.Context, url string, opts ...ClientOption) (*Client, error) {
	ws, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %s: %w", url, err)
	}
	conn := websocket.NetConn(context.WithoutCancel(ctx), ws, websocket.MessageBinary)
	return NewClient(conn, opts...)
}

func (c *Client) Close() error {
	return c.ep.Close()
}

// DisconnectNotify is closed once the connection is gone, whichever side
// closed it.
func (c *Client) DisconnectNotify() <-chan struct{} {
	return c.ep.Context().Done()
}

// GetImage asks the server for a whole frame. It implements mandel.ImgProvider.
func (c *Client) GetImage(ctx context.Context, s mandel.Settings) (*mandel.Image, error) {
	img, err := c.provider.GetImage(ctx, s)
	if err != nil {
		return nil, remoteError(err)
	}
	return img, nil
}

var _ mandel.ImgProvider = (*Client)(nil)
