package mandel

// PlanePoint maps pixel (x, y) of the grid to its point in the complex plane.
// (0, 0) maps to TopLeft; the grid never reaches BottomRight.
func (s Settings) PlanePoint(x, y int) Complex {
	ext := s.extent()
	fx := float64(x) / float64(s.Width)
	fy := float64(y) / float64(s.Height)
	return Complex{
		Re: fx*ext.Re + s.TopLeft.Re,
		Im: fy*ext.Im + s.TopLeft.Im,
	}
}
