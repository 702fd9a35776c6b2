package makima

// Extrema returns the positions strictly inside segments at which the first
// derivative of the spline is zero, in increasing order. Knots at which the
// tangent happens to be zero are not included, and neither are positions in
// segments on which the spline is constant.
func (s *Spline) Extrema() []float64 {
	var out []float64
	for seg := range s.Segments() {
		dxs, n := seg.Poly.Stationary(seg.Width())
		for _, dx := range dxs[:n] {
			out = append(out, seg.X0+dx)
		}
	}
	return out
}

// Range returns the smallest and largest value the spline takes on its domain.
func (s *Spline) Range() (lo, hi float64) {
	lo, hi = s.polys[0].A, s.polys[0].A
	update := func(y float64) {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	for seg := range s.Segments() {
		update(seg.Eval(seg.X1))
	}
	for _, x := range s.Extrema() {
		update(s.Sample(x))
	}
	return lo, hi
}

// Integrate returns the integral of the spline from a to b. Outside the domain
// the straight-line continuation of the spline is integrated. If a > b, the
// result is negative.
func (s *Spline) Integrate(a, b float64) float64 {
	if a > b {
		return -s.Integrate(b, a)
	}
	return s.antiderivative(b) - s.antiderivative(a)
}

// antiderivative returns the integral of the spline from the first knot to x.
func (s *Spline) antiderivative(x float64) float64 {
	if x <= s.knots[0] {
		p, xi := s.locate(x)
		return p.Integral(x - xi)
	}
	var sum float64
	for i, p := range s.polys {
		x0, x1 := s.knots[i], s.knots[i+1]
		if x < x1 {
			return sum + p.Integral(x-x0)
		}
		sum += p.Integral(x1 - x0)
	}
	p, xi := s.locate(x)
	return sum + p.Integral(x-xi)
}
