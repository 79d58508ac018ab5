package treemap

// surface holds the 4 coefficients (a, b, c, d) of the quadratic height
// field H(x,y) = a*x^2 + b*y^2 + c*x + d*y over the render area. It is
// passed and copied by value through the recursion: at 4 float64s, copying
// is cheaper than any heap indirection, and each descendant needs its own
// independent accumulation.
type surface struct {
	a, b, c, d float64
}

// normalAt returns (-dH/dx, -dH/dy) at pixel center (x+0.5, y+0.5), the x,y
// components of the surface normal (the z component is always 1).
func (s surface) normalAt(x, y int) (nx, ny float64) {
	fx := float64(x) + 0.5
	fy := float64(y) + 0.5
	nx = -(2*s.a*fx + s.c)
	ny = -(2*s.b*fy + s.d)
	return
}

// addRidge superimposes, onto s, a downward-opening parabola that is zero at
// the edges of rect and h at its center (Van Wijk's cushion-shading ridge).
func addRidge(rect Rectangle, s *surface, h float64) {
	width := rect.Width()
	height := rect.Height()
	if width <= 0 || height <= 0 {
		return
	}

	h4 := 4 * h

	wf := h4 / float64(width)
	s.c += wf * float64(rect.X1+rect.X0)
	s.a -= wf

	hf := h4 / float64(height)
	s.d += hf * float64(rect.Y1+rect.Y0)
	s.b -= hf
}
