package mandel

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// NormalizationHeadroom is added to the iteration bound when normalizing smooth
// counts to intensities. It covers the ExtraIterations taken after escape plus
// margin.
const NormalizationHeadroom = 6

// ErrInvalidSettings is matched by every error returned from Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// ConfigError reports a single rejected Settings field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid settings: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidSettings
}

// Settings describe a single frame: the region of the complex plane, the pixel
// grid it is sampled on, and the iteration limits.
// Settings are never mutated once rendering starts.
type Settings struct {
	TopLeft     Complex
	BottomRight Complex

	Width, Height uint32

	MaxIterations uint32
	EscapeRadius  float64
}

// Validate rejects settings for which the smooth count is undefined or the
// pixel mapping degenerates.
func (s Settings) Validate() error {
	switch {
	case s.Width == 0:
		return &ConfigError{"width", "must be positive"}
	case s.Height == 0:
		return &ConfigError{"height", "must be positive"}
	case s.MaxIterations == 0:
		return &ConfigError{"max_iterations", "must be positive"}
	case math.IsNaN(s.EscapeRadius) || math.IsInf(s.EscapeRadius, 0):
		return &ConfigError{"escape_radius", "must be finite"}
	case s.EscapeRadius <= 1:
		// log(log(|z|)) is undefined once |z| may be <= 1
		return &ConfigError{"escape_radius", fmt.Sprintf("must be greater than 1, got %v", s.EscapeRadius)}
	case math.IsInf(s.EscapeRadius*s.EscapeRadius, 0):
		return &ConfigError{"escape_radius", fmt.Sprintf("%v squared overflows", s.EscapeRadius)}
	case math.IsInf(postEscapeAbsSq(s.EscapeRadius), 0):
		return &ConfigError{"escape_radius", fmt.Sprintf("%v too large, |z| overflows after escape", s.EscapeRadius)}
	case !s.TopLeft.isFinite():
		return &ConfigError{"top_left", "must be finite"}
	case !s.BottomRight.isFinite():
		return &ConfigError{"bottom_right", "must be finite"}
	}

	ext := s.extent()
	if ext.Re == 0 || ext.Im == 0 {
		return &ConfigError{"region", fmt.Sprintf("degenerate region %v..%v", s.TopLeft, s.BottomRight)}
	}
	if !ext.isFinite() {
		return &ConfigError{"region", "extent overflows"}
	}
	return nil
}

// NormalizationBound is the divisor used to turn smooth counts into
// intensities.
func (s Settings) NormalizationBound() uint64 {
	return uint64(s.MaxIterations) + NormalizationHeadroom
}

// Bounds returns the pixel grid as a rectangle anchored at the origin.
func (s Settings) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.Width), int(s.Height))
}

func (s Settings) extent() Complex {
	return s.BottomRight.Sub(s.TopLeft)
}

// postEscapeAbsSq bounds |z|² once the ExtraIterations steps after an escape
// past r are done. The escaping step may land anywhere up to |z| ≈ r².
func postEscapeAbsSq(r float64) float64 {
	m := r * r * r * r
	for range ExtraIterations {
		m *= m
	}
	return m
}
