package mandel

import (
	"math"
	"testing"
)

func TestComplexArithmetic(t *testing.T) {
	a := Complex{1, 2}
	b := Complex{3, -1}

	if got, want := a.Add(b), (Complex{4, 1}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Complex{-2, 3}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	// (1+2i)(3-i) = 3 - i + 6i - 2i² = 5 + 5i
	if got, want := a.Mul(b), (Complex{5, 5}); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
	if got := a.AbsSq(); got != 5 {
		t.Errorf("AbsSq = %v, want 5", got)
	}
	if got := (Complex{3, 4}).Abs(); got != 5 {
		t.Errorf("Abs = %v, want 5", got)
	}
}

func TestComplexIsFinite(t *testing.T) {
	for _, c := range []Complex{{math.NaN(), 0}, {0, math.Inf(1)}, {math.Inf(-1), 1}} {
		if c.isFinite() {
			t.Errorf("%v reported finite", c)
		}
	}
	if !(Complex{-2, 1e300}).isFinite() {
		t.Errorf("finite value reported non-finite")
	}
}
