// Package makima interpolates scattered 1D data with the modified Akima
// ("makima") spline, and estimates partial derivatives on rectangular grids for
// use by bicubic surface evaluators.
//
// # Splines
//
// A [Spline] is a piecewise cubic polynomial that passes through every input
// point. Tangents at the knots are weighted averages of the neighbouring
// secant slopes, with weights that de-emphasize large jumps in slope. Compared
// to natural cubic splines, this greatly reduces overshoot next to flat regions
// and outliers, at the cost of a second derivative that is not continuous
// across knots.
//
// Splines are built with [New] or [NewXY] and are immutable afterwards. A
// single spline can be sampled by any number of goroutines at once.
//
// Inside the data range, [Spline.Sample] evaluates the cubic segment containing
// the position, found by binary search over the knots. Outside the data range,
// the spline continues as a straight line with the slope of the curve at the
// nearest knot, so [Spline.Deriv1] is constant there and [Spline.Deriv2] and
// [Spline.Deriv3] are zero.
//
// Two points produce a straight line. Fewer than two points are rejected with
// [ErrInsufficientData].
//
// # Grids
//
// [GridPartials] fits one spline along every row and every column of a
// rectangular grid and uses their first derivatives as the partial derivatives
// ∂f/∂x and ∂f/∂y at the grid nodes. The cross derivative ∂²f/∂x∂y is
// approximated as zero everywhere. [BicubicFromGrid] passes the result to a
// bicubic surface constructor, such as the one in package
// honnef.co/go/makima/bicubic.
//
// # Literature
//
//   - [Makima Piecewise Cubic Interpolation] by Cleve Moler
//   - [A New Method of Interpolation and Smooth Curve Fitting Based on Local Procedures] by Hiroshi Akima
//
// [Makima Piecewise Cubic Interpolation]: https://blogs.mathworks.com/cleve/2019/04/29/makima-piecewise-cubic-interpolation/
// [A New Method of Interpolation and Smooth Curve Fitting Based on Local Procedures]: https://doi.org/10.1145/321607.321609
package makima
