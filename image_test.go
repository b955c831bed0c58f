package mandel

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestImageSetAndAt(t *testing.T) {
	m := NewImage(image.Rect(2, 3, 5, 7))
	if len(m.Pix) != 3*3*4 {
		t.Fatalf("len(Pix) = %d, want 36", len(m.Pix))
	}
	m.SetRGB(4, 6, Gray{9, 9, 9})
	if got := m.RGBAt(4, 6); got != (Gray{9, 9, 9}) {
		t.Errorf("RGBAt(4, 6) = %v", got)
	}
	if got := m.PixOffset(4, 6); got != len(m.Pix)-3 {
		t.Errorf("PixOffset(4, 6) = %d, want last pixel", got)
	}
	// out of bounds writes are dropped
	m.SetRGB(0, 0, Gray{1, 1, 1})
	if got := m.RGBAt(0, 0); got != (Gray{}) {
		t.Errorf("RGBAt(0, 0) = %v, want zero", got)
	}
}

func TestImageDraw(t *testing.T) {
	full := NewImage(image.Rect(0, 0, 4, 4))
	tile := NewImage(image.Rect(2, 1, 4, 3))
	for y := 1; y < 3; y++ {
		for x := 2; x < 4; x++ {
			tile.SetRGB(x, y, Gray{uint8(10*y + x), 0, 0})
		}
	}
	if err := full.Draw(tile); err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			want := Gray{}
			if (image.Point{x, y}).In(tile.Rect) {
				want = Gray{uint8(10*y + x), 0, 0}
			}
			if got := full.RGBAt(x, y); got != want {
				t.Errorf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if err := full.Draw(NewImage(image.Rect(3, 3, 5, 5))); err == nil {
		t.Errorf("drawing a tile outside the image succeeded")
	}
}

func TestImageEncodesAsPNG(t *testing.T) {
	m := NewImage(image.Rect(0, 0, 3, 2))
	m.SetRGB(1, 1, Gray{200, 200, 200})

	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != m.Bounds() {
		t.Fatalf("bounds = %v, want %v", decoded.Bounds(), m.Bounds())
	}
	r, g, b, a := decoded.At(1, 1).RGBA()
	if r>>8 != 200 || g>>8 != 200 || b>>8 != 200 || a>>8 != 255 {
		t.Errorf("pixel (1, 1) = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestImageRGBA(t *testing.T) {
	m := NewImage(image.Rect(1, 1, 4, 3))
	m.SetRGB(2, 2, Gray{7, 7, 7})
	rgba := m.RGBA()
	if rgba.Rect != m.Rect {
		t.Fatalf("Rect = %v, want %v", rgba.Rect, m.Rect)
	}
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			want := uint8(0)
			if x == 2 && y == 2 {
				want = 7
			}
			c := rgba.RGBAAt(x, y)
			if c.R != want || c.G != want || c.B != want || c.A != 0xff {
				t.Errorf("(%d, %d) = %v", x, y, c)
			}
		}
	}
}
