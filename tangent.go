package makima

import "math"

// tangentSet holds the working state for estimating knot tangents: the secant
// slopes of all segments, extended by two linearly extrapolated slopes at each
// end.
type tangentSet struct {
	// ext[i+2] is the slope of segment i. The first two and last two entries
	// are extrapolated.
	ext []float64
}

// secants returns the slopes of the n-1 segments between sorted points.
func secants(pts []Point) []float64 {
	m := make([]float64, len(pts)-1)
	for i := range m {
		m[i] = (pts[i+1].Y - pts[i].Y) / (pts[i+1].X - pts[i].X)
	}
	return m
}

// newTangentSet extends the secants m, of which there must be at least two.
func newTangentSet(m []float64) *tangentSet {
	n := len(m)
	ext := make([]float64, n+4)
	copy(ext[2:], m)
	ext[1] = 2*ext[2] - ext[3]
	ext[0] = 2*ext[1] - ext[2]
	ext[n+2] = 2*ext[n+1] - ext[n]
	ext[n+3] = 2*ext[n+2] - ext[n+1]
	return &tangentSet{ext: ext}
}

// secant returns the slope of segment i. Segment i connects knots i and i+1;
// indices -2, -1, n-1 and n (for n knots) refer to extrapolated slopes.
func (ts *tangentSet) secant(i int) float64 {
	return ts.ext[i+2]
}

// tangent computes the modified Akima tangent at knot i.
func (ts *tangentSet) tangent(i int) float64 {
	m0, m1 := ts.secant(i-2), ts.secant(i-1)
	m2, m3 := ts.secant(i), ts.secant(i+1)
	w1 := math.Abs(m3-m2) + math.Abs(m3+m2)/2
	w2 := math.Abs(m1-m0) + math.Abs(m1+m0)/2
	num := w1*m1 + w2*m2
	// num is zero whenever both weights are.
	if num == 0 {
		return 0
	}
	return num / (w1 + w2)
}

// tangents returns the tangent at each of n knots.
func (ts *tangentSet) tangents(n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = ts.tangent(i)
	}
	return t
}

// hermite converts the Hermite form of a segment (start value y0, secant m,
// end tangents t0 and t1, width z) to polynomial coefficients.
func hermite(y0, m, t0, t1, z float64) Cubic {
	return Cubic{
		A: y0,
		B: t0,
		C: (3*m - 2*t0 - t1) / z,
		D: (t0 + t1 - 2*m) / (z * z),
	}
}
