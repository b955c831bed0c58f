package mandel

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a dense RGB8 pixel buffer in row-major order. The pixel at (x, y)
// starts at Pix[(y-Rect.Min.Y)*Stride() + (x-Rect.Min.X)*3].
//
// Like image.RGBA, a tile keeps its global coordinates in Rect.
type Image struct {
	Rect image.Rectangle
	Pix  []uint8
}

var _ image.Image = (*Image)(nil)

func NewImage(r image.Rectangle) *Image {
	return &Image{
		Rect: r,
		Pix:  make([]uint8, 3*r.Dx()*r.Dy()),
	}
}

func (m *Image) Stride() int {
	return 3 * m.Rect.Dx()
}

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle { return m.Rect }

func (m *Image) At(x, y int) color.Color {
	return m.RGBAt(x, y)
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride() + (x-m.Rect.Min.X)*3
}

func (m *Image) RGBAt(x, y int) Gray {
	if !(image.Point{x, y}.In(m.Rect)) {
		return Gray{}
	}
	i := m.PixOffset(x, y)
	return Gray{m.Pix[i], m.Pix[i+1], m.Pix[i+2]}
}

func (m *Image) SetRGB(x, y int, c Gray) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	i := m.PixOffset(x, y)
	copy(m.Pix[i:i+3], c[:])
}

// Draw copies tile into m at the tile's own coordinates.
func (m *Image) Draw(tile *Image) error {
	if !tile.Rect.In(m.Rect) {
		return fmt.Errorf("tile %v outside of image %v", tile.Rect, m.Rect)
	}
	if len(tile.Pix) != 3*tile.Rect.Dx()*tile.Rect.Dy() {
		return fmt.Errorf("tile %v: pix length %d", tile.Rect, len(tile.Pix))
	}
	rowLen := tile.Stride()
	for y := tile.Rect.Min.Y; y < tile.Rect.Max.Y; y++ {
		src := tile.Pix[tile.PixOffset(tile.Rect.Min.X, y):][:rowLen]
		copy(m.Pix[m.PixOffset(tile.Rect.Min.X, y):], src)
	}
	return nil
}

// RGBA converts m to an opaque image.RGBA, which image encoders handle
// without going through At.
func (m *Image) RGBA() *image.RGBA {
	dst := image.NewRGBA(m.Rect)
	for i, j := 0, 0; i+2 < len(m.Pix); i, j = i+3, j+4 {
		dst.Pix[j] = m.Pix[i]
		dst.Pix[j+1] = m.Pix[i+1]
		dst.Pix[j+2] = m.Pix[i+2]
		dst.Pix[j+3] = 0xff
	}
	return dst
}
