package makima

import "fmt"

// Point is a single sample of the function being interpolated.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Points pairs up xs and ys by position. It returns a [*DimensionMismatchError]
// if the two slices differ in length.
func Points(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, &DimensionMismatchError{What: "ys", Got: len(ys), Want: len(xs)}
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}
