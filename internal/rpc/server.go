package rpc

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"net"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/smooth_mandel"
	"github.com/marben/smooth_mandel/internal/cache"
)

// TileTimeout bounds a single tile request to a worker peer.
const TileTimeout = 30 * time.Second

// Server renders frames for its clients. Tiles go to the server's own workers
// and to every connected client that offers render slots.
type Server struct {
	localWorkers int
	tileSize     int
	cache        *cache.Cache
	logger       *log.Logger

	irpcServer *irpc.Server

	m     sync.Mutex
	peers map[*irpc.Endpoint]peer
}

type peer struct {
	renderer mandel.Renderer
	slots    int
}

type Option func(*Server)

// WithLocalWorkers sets how many goroutines render on the server itself. With
// 0 the server only coordinates and all tiles go to connected workers.
func WithLocalWorkers(n int) Option {
	return func(s *Server) { s.localWorkers = n }
}

func WithTileSize(n int) Option {
	return func(s *Server) { s.tileSize = n }
}

// WithCache makes the server look up and store frames in c.
func WithCache(c *cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func NewServer(opts ...Option) *Server {
	s := &Server{
		localWorkers: runtime.NumCPU(),
		tileSize:     mandel.DefaultTileSize,
		logger:       log.New(io.Discard, "", 0),
		peers:        make(map[*irpc.Endpoint]peer),
	}
	for _, o := range opts {
		o(s)
	}

	// every client gets the ImgProvider service and is asked whether it renders
	s.irpcServer = irpc.NewServer(irpc.WithOnConnect(s.onConnect))
	s.irpcServer.AddService(mandel.NewImgProviderIrpcService(s))
	return s
}

// Serve accepts irpc connections from l. It always returns a non-nil error,
// irpc.ErrServerClosed after Close.
func (s *Server) Serve(l net.Listener) error {
	return s.irpcServer.Serve(l)
}

// Close stops all listeners passed to Serve and drops every irpc connection.
func (s *Server) Close() error {
	return s.irpcServer.Close()
}

// onConnect runs in its own goroutine for the lifetime of the connection.
func (s *Server) onConnect(ep *irpc.Endpoint) {
	s.logger.Printf("got connection from: %s", ep.RemoteAddr())
	defer s.logger.Printf("connection from %s closed", ep.RemoteAddr())

	if err := s.join(ep); err != nil {
		s.logger.Printf("worker %s: %v", ep.RemoteAddr(), err)
	}

	<-ep.Context().Done()
	if s.removePeer(ep) {
		s.logger.Printf("worker %s left: %v", ep.RemoteAddr(), context.Cause(ep.Context()))
	}
}

// join asks the client for its render slots and adds it as a peer if it has
// any.
func (s *Server) join(ep *irpc.Endpoint) error {
	worker, err := mandel.NewWorkerIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("new worker client: %w", err)
	}
	slots, err := worker.Slots()
	if err != nil {
		return fmt.Errorf("slots: %w", err)
	}
	if slots <= 0 {
		return nil
	}
	// the endpoint admits no more concurrent calls
	slots = min(slots, irpc.DefaultParallelClientCalls)

	r, err := mandel.NewRendererIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("new renderer client: %w", err)
	}
	s.addPeer(ep, peer{peerRenderer{r}, slots})
	s.logger.Printf("worker %s joined with %d slots", ep.RemoteAddr(), slots)
	return nil
}

// GetImage implements mandel.ImgProvider. Remote clients reach it through the
// ImgProvider irpc service.
func (s *Server) GetImage(ctx context.Context, settings mandel.Settings) (*mandel.Image, error) {
	return s.render(ctx, settings, nil)
}

var _ mandel.ImgProvider = (*Server)(nil)

// Workers returns the number of connected clients that render for the server.
func (s *Server) Workers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.peers)
}

func (s *Server) addPeer(ep *irpc.Endpoint, p peer) {
	s.m.Lock()
	s.peers[ep] = p
	w := len(s.peers)
	s.m.Unlock()

	s.logger.Printf("workers: %d", w)
}

func (s *Server) removePeer(ep *irpc.Endpoint) bool {
	s.m.Lock()
	defer s.m.Unlock()
	_, found := s.peers[ep]
	delete(s.peers, ep)
	return found
}

func (s *Server) renderers() []mandel.Renderer {
	s.m.Lock()
	defer s.m.Unlock()

	var rs []mandel.Renderer
	for range s.localWorkers {
		rs = append(rs, mandel.LocalRenderer{})
	}
	for _, p := range s.peers {
		for range p.slots {
			rs = append(rs, p.renderer)
		}
	}
	return rs
}

func (s *Server) render(ctx context.Context, settings mandel.Settings, onTile func(image.Rectangle, int, int)) (*mandel.Image, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if s.cache != nil {
		img, found, err := s.cache.Get(settings)
		if err != nil {
			s.logger.Printf("cache get: %v", err)
		} else if found {
			s.logger.Printf("frame %dx%d served from cache", settings.Width, settings.Height)
			return img, nil
		}
	}

	opts := []mandel.RenderOption{
		mandel.WithTileSize(s.tileSize, s.tileSize),
		mandel.WithOnTileRendered(onTile),
	}

	start := time.Now()
	var (
		img *mandel.Image
		err error
	)
	rs := s.renderers()
	switch {
	case len(rs) == 0:
		return nil, errors.New("no renderers available")
	case len(rs) == s.localWorkers:
		img, err = mandel.Render(ctx, settings, append(opts, mandel.WithWorkers(s.localWorkers))...)
	default:
		img, err = mandel.Distribute(ctx, settings, rs, opts...)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Printf("frame %dx%d rendered by %d renderers in %s", settings.Width, settings.Height, len(rs), time.Since(start))

	if s.cache != nil {
		if err := s.cache.Put(settings, img); err != nil {
			s.logger.Printf("cache put: %v", err)
		}
	}
	return img, nil
}

// peerRenderer renders tiles on a connected worker.
type peerRenderer struct {
	r mandel.Renderer
}

func (p peerRenderer) RenderTile(ctx context.Context, s mandel.Settings, tile image.Rectangle) (*mandel.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, TileTimeout)
	defer cancel()

	img, err := p.r.RenderTile(ctx, s, tile)
	if err != nil {
		return nil, remoteError(err)
	}
	return img, nil
}

// remoteError restores the sentinels of errors that crossed the wire as text,
// so callers can use errors.Is.
func remoteError(err error) error {
	msg := err.Error()
	for _, sentinel := range []error{mandel.ErrInvalidSettings, mandel.ErrNumericFault} {
		if strings.Contains(msg, sentinel.Error()) {
			return fmt.Errorf("%w: remote: %s", sentinel, msg)
		}
	}
	return err
}
