package mandel

import (
	"errors"
	"fmt"
	"math"
)

// ExtraIterations are taken unconditionally after a point escapes. They push
// |z| further out so the smooth count shows less banding.
const ExtraIterations = 2

// ErrNumericFault is matched by errors reporting a non-finite smooth count.
var ErrNumericFault = errors.New("numeric fault")

// NumericFaultError means the settings allowed an undefined smooth count. It
// is a property of the settings, not of a single pixel, so a render that hits
// it is aborted as a whole.
type NumericFaultError struct {
	Point Complex
	Mu    float64
}

func (e *NumericFaultError) Error() string {
	return fmt.Sprintf("numeric fault: smooth count at %v is %v", e.Point, e.Mu)
}

func (e *NumericFaultError) Unwrap() error {
	return ErrNumericFault
}

// Result of evaluating a single point. The zero value is Interior.
type Result struct {
	Escaped bool
	// Mu is the smooth iteration count, only meaningful when Escaped.
	Mu float64
	// N counts iterations taken, extra iterations included.
	N uint32
}

// Interior classifies a point that did not escape within the iteration bound.
var Interior = Result{}

var log10Of2 = math.Log10(2)

// Evaluate iterates z <- z² + c starting at z = c.
//
// Points still within escapeRadius after maxIter-1 steps are Interior. An
// escaped point gets ExtraIterations more steps and its smooth count
// mu = 1 + n - log(log|z|)/log 2, taken in base 10.
func Evaluate(c Complex, maxIter uint32, escapeRadius float64) (Result, error) {
	limit := escapeRadius * escapeRadius
	z := c
	var n uint32
	escaped := false
	for i := uint32(1); i < maxIter; i++ {
		z = z.Mul(z).Add(c)
		n++
		if z.AbsSq() > limit {
			escaped = true
			break
		}
	}
	if !escaped {
		return Interior, nil
	}

	for range ExtraIterations {
		z = z.Mul(z).Add(c)
		n++
	}

	mu := 1 + float64(n) - math.Log10(math.Log10(z.Abs()))/log10Of2
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Result{}, &NumericFaultError{Point: c, Mu: mu}
	}
	return Result{Escaped: true, Mu: mu, N: n}, nil
}

// Evaluate runs Evaluate with the iteration limits of s.
func (s Settings) Evaluate(c Complex) (Result, error) {
	return Evaluate(c, s.MaxIterations, s.EscapeRadius)
}
