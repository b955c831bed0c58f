// Package rpc serves the renderer to remote clients.
//
// Go clients talk irpc: both sides of a connection serve requests, the server
// answers frame requests and clients with render slots answer tile requests
// from the server. Other clients use the JSON-RPC 2.0 methods declared here.
package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	mandel "github.com/marben/smooth_mandel"
	"github.com/marben/smooth_mandel/internal/config"
	"github.com/sourcegraph/jsonrpc2"
)

const (
	MethodValidate   = "mandel.validate"
	MethodRegions    = "mandel.regions"
	MethodRender     = "mandel.render"
	MethodRenderTile = "mandel.renderTile"

	// NotifyProgress is sent by the server while serving MethodRender.
	NotifyProgress = "mandel.progress"
)

// CodeNumericFault is the JSON-RPC error code of mandel.ErrNumericFault.
const CodeNumericFault = -32001

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// SettingsParams is the wire form of mandel.Settings. Region may name a preset
// in place of both corners.
type SettingsParams struct {
	Region        string      `json:"region,omitempty"`
	TopLeft       *[2]float64 `json:"top_left,omitempty"`
	BottomRight   *[2]float64 `json:"bottom_right,omitempty"`
	Width         *uint32     `json:"width"`
	Height        *uint32     `json:"height"`
	MaxIterations *uint32     `json:"max_iterations"`
	EscapeRadius  *float64    `json:"escape_radius"`
}

func ParamsOf(s mandel.Settings) SettingsParams {
	return SettingsParams{
		TopLeft:       &[2]float64{s.TopLeft.Re, s.TopLeft.Im},
		BottomRight:   &[2]float64{s.BottomRight.Re, s.BottomRight.Im},
		Width:         &s.Width,
		Height:        &s.Height,
		MaxIterations: &s.MaxIterations,
		EscapeRadius:  &s.EscapeRadius,
	}
}

func (p SettingsParams) Settings() (mandel.Settings, error) {
	return config.File{
		Region:        p.Region,
		TopLeft:       p.TopLeft,
		BottomRight:   p.BottomRight,
		Width:         p.Width,
		Height:        p.Height,
		MaxIterations: p.MaxIterations,
		EscapeRadius:  p.EscapeRadius,
	}.Settings()
}

type Rect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

func RectOf(r image.Rectangle) Rect {
	return Rect{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}

func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

type RenderTileParams struct {
	Settings SettingsParams `json:"settings"`
	Tile     Rect           `json:"tile"`
}

// ImageResult carries a frame or tile. Pix is base64 encoded by encoding/json.
type ImageResult struct {
	Rect Rect   `json:"rect"`
	Pix  []byte `json:"pix"`
}

func ImageResultOf(img *mandel.Image) ImageResult {
	return ImageResult{RectOf(img.Rect), img.Pix}
}

func (r ImageResult) Image() (*mandel.Image, error) {
	rect := r.Rect.Rectangle()
	if rect.Min != (image.Point{r.Rect.X0, r.Rect.Y0}) || len(r.Pix) != 3*rect.Dx()*rect.Dy() {
		return nil, fmt.Errorf("malformed image: %v with %d bytes", rect, len(r.Pix))
	}
	return &mandel.Image{Rect: rect, Pix: r.Pix}, nil
}

type ProgressParams struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// toRPCError maps rendering errors to JSON-RPC errors.
func toRPCError(err error) error {
	switch {
	case errors.Is(err, mandel.ErrInvalidSettings):
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	case errors.Is(err, mandel.ErrNumericFault):
		return &jsonrpc2.Error{Code: CodeNumericFault, Message: err.Error()}
	}
	return err
}

// fromRPCError maps JSON-RPC errors back, so callers can use errors.Is.
func fromRPCError(err error) error {
	var rpcErr *jsonrpc2.Error
	if !errors.As(err, &rpcErr) {
		return err
	}
	switch rpcErr.Code {
	case jsonrpc2.CodeInvalidParams:
		return fmt.Errorf("%w: remote: %s", mandel.ErrInvalidSettings, rpcErr.Message)
	case CodeNumericFault:
		return fmt.Errorf("%w: remote: %s", mandel.ErrNumericFault, rpcErr.Message)
	}
	return err
}

func unmarshalParams(req *jsonrpc2.Request, v any) error {
	if req.Params == nil || json.Unmarshal(*req.Params, v) != nil {
		return errInvalidParams
	}
	return nil
}
