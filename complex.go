package mandel

import "math"

// Complex is a point of the complex plane.
type Complex struct {
	Re, Im float64
}

func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re + b.Re, a.Im + b.Im}
}

func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re - b.Re, a.Im - b.Im}
}

func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// AbsSq returns the squared magnitude |a|².
func (a Complex) AbsSq() float64 {
	return a.Re*a.Re + a.Im*a.Im
}

func (a Complex) Abs() float64 {
	return math.Sqrt(a.AbsSq())
}

func (a Complex) isFinite() bool {
	return !math.IsNaN(a.Re) && !math.IsInf(a.Re, 0) && !math.IsNaN(a.Im) && !math.IsInf(a.Im, 0)
}
