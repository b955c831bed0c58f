package mandel

import (
	"context"
	"image"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// ImgProvider renders or fetches whole frames.
type ImgProvider interface {
	GetImage(ctx context.Context, s Settings) (*Image, error)
}

// Renderer renders single tiles. Implemented locally by LocalRenderer and
// remotely by RendererIrpcClient.
type Renderer interface {
	RenderTile(ctx context.Context, s Settings, tile image.Rectangle) (*Image, error)
}

// Worker is served by every client of a render server. Slots tells the server
// how many tiles the client renders at once; 0 means it does not render.
type Worker interface {
	Slots() (int, error)
}
