package mandel

import (
	"image/color"
	"math"
)

// Gray is an RGB8 pixel whose channels are always equal.
type Gray [3]uint8

var black Gray

// RGBA implements color.Color.
func (g Gray) RGBA() (r, gr, b, a uint32) {
	return color.RGBA{g[0], g[1], g[2], 0xff}.RGBA()
}

// Colorize maps an evaluation result to a gray level. Interior points are
// black; escaped points get mu/bound clamped to [0, 1] and scaled to 0..255.
func Colorize(r Result, bound uint64) Gray {
	if !r.Escaped || bound == 0 {
		return black
	}
	v := r.Mu / float64(bound)
	v = min(max(v, 0), 1)
	c := uint8(math.Round(v * 255))
	return Gray{c, c, c}
}
