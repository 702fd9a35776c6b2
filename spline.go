package makima

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Spline is a modified Akima spline through a set of points. It is immutable
// and safe for concurrent use.
type Spline struct {
	// knots are the sorted x coordinates of the input points.
	knots []float64
	// polys[i] is valid on [knots[i], knots[i+1]].
	polys []Cubic
}

// Segment is a single polynomial piece of a spline.
type Segment struct {
	// X0 and X1 delimit the segment. The polynomial's dx is measured from X0.
	X0, X1 float64
	Poly   Cubic
}

// Eval evaluates the segment at x.
func (seg Segment) Eval(x float64) float64 {
	return seg.Poly.Eval(x - seg.X0)
}

// Width returns X1 - X0.
func (seg Segment) Width() float64 {
	return seg.X1 - seg.X0
}

// New returns the spline through pts. The points don't need to be sorted; pts
// itself is not modified.
//
// At least two points are required. Points sharing an x coordinate produce a
// segment of zero width and thus a meaningless spline; so do NaNs and
// infinities. It is up to the caller to avoid them.
func New(pts []Point) (*Spline, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInsufficientData, len(pts))
	}
	pts = slices.Clone(pts)
	slices.SortStableFunc(pts, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})

	knots := make([]float64, len(pts))
	for i, pt := range pts {
		knots[i] = pt.X
	}

	m := secants(pts)
	if len(m) == 1 {
		// this is just a line
		return &Spline{
			knots: knots,
			polys: []Cubic{{A: pts[0].Y, B: m[0]}},
		}, nil
	}

	t := newTangentSet(m).tangents(len(pts))
	polys := make([]Cubic, len(m))
	for i := range polys {
		z := knots[i+1] - knots[i]
		polys[i] = hermite(pts[i].Y, m[i], t[i], t[i+1], z)
	}
	return &Spline{knots: knots, polys: polys}, nil
}

// NewXY is like [New] but takes the coordinates of the points as two slices,
// which must have the same length.
func NewXY(xs, ys []float64) (*Spline, error) {
	pts, err := Points(xs, ys)
	if err != nil {
		return nil, err
	}
	return New(pts)
}

// locate returns the polynomial to evaluate at x, and the position its dx is
// relative to. Outside the knots, the returned polynomial is the tangent line
// at the nearest knot.
func (s *Spline) locate(x float64) (Cubic, float64) {
	if x <= s.knots[0] {
		// extrapolate linear
		p := s.polys[0]
		return Cubic{A: p.A, B: p.B}, s.knots[0]
	}
	last := len(s.knots) - 1
	if x >= s.knots[last] {
		// extrapolate linear
		p := s.polys[len(s.polys)-1]
		dx := s.knots[last] - s.knots[last-1]
		return Cubic{A: p.Eval(dx), B: p.Deriv(dx)}, s.knots[last]
	}
	i := s.search(x)
	return s.polys[i], s.knots[i]
}

// search returns the index of the segment containing x, which must lie
// strictly between the first and last knot. A knot that x is equal to is
// considered part of the segment that starts at it.
func (s *Spline) search(x float64) int {
	// Invariant: knots[lo] <= x < knots[hi]
	lo, hi := 0, len(s.knots)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.knots[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Sample evaluates the spline at x.
func (s *Spline) Sample(x float64) float64 {
	p, xi := s.locate(x)
	return p.Eval(x - xi)
}

// Deriv1 evaluates the first derivative of the spline at x.
func (s *Spline) Deriv1(x float64) float64 {
	p, xi := s.locate(x)
	return p.Deriv(x - xi)
}

// Deriv2 evaluates the second derivative of the spline at x. The second
// derivative is generally not continuous at the knots.
func (s *Spline) Deriv2(x float64) float64 {
	p, xi := s.locate(x)
	return p.Deriv2(x - xi)
}

// Deriv3 evaluates the third derivative of the spline at x. It is constant
// within each segment.
func (s *Spline) Deriv3(x float64) float64 {
	p, _ := s.locate(x)
	return p.Deriv3()
}

// Knots returns a copy of the spline's knots in increasing order.
func (s *Spline) Knots() []float64 {
	return slices.Clone(s.knots)
}

// Len returns the number of segments, which is one less than the number of
// knots.
func (s *Spline) Len() int {
	return len(s.polys)
}

// Domain returns the first and last knot.
func (s *Spline) Domain() (lo, hi float64) {
	return s.knots[0], s.knots[len(s.knots)-1]
}

// Segment returns the i-th segment.
func (s *Spline) Segment(i int) Segment {
	return Segment{X0: s.knots[i], X1: s.knots[i+1], Poly: s.polys[i]}
}

// Segments returns an iterator over the spline's segments, from left to
// right.
func (s *Spline) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range s.polys {
			if !yield(s.Segment(i)) {
				break
			}
		}
	}
}

func (s *Spline) String() string {
	lo, hi := s.Domain()
	return fmt.Sprintf("Spline{%d segments on [%g, %g]}", len(s.polys), lo, hi)
}
