package makima

import (
	"fmt"
	"math"
)

// Cubic is the polynomial A + B·dx + C·dx² + D·dx³ of a single spline segment,
// where dx is the distance from the segment's start.
type Cubic struct {
	A, B, C, D float64
}

// Eval evaluates the polynomial at dx.
func (c Cubic) Eval(dx float64) float64 {
	return c.A + c.B*dx + c.C*dx*dx + c.D*dx*dx*dx
}

// Deriv evaluates the first derivative at dx.
func (c Cubic) Deriv(dx float64) float64 {
	return c.B + 2*c.C*dx + 3*c.D*dx*dx
}

// Deriv2 evaluates the second derivative at dx.
func (c Cubic) Deriv2(dx float64) float64 {
	return 2*c.C + 6*c.D*dx
}

// Deriv3 returns the third derivative, which is constant.
func (c Cubic) Deriv3() float64 {
	return 6 * c.D
}

// Integral returns the integral of the polynomial over [0, dx].
func (c Cubic) Integral(dx float64) float64 {
	return c.A*dx + c.B*dx*dx/2 + c.C*dx*dx*dx/3 + c.D*dx*dx*dx*dx/4
}

// Stationary returns the values of dx in the open interval (0, width) at which
// the first derivative is zero, in increasing order.
func (c Cubic) Stationary(width float64) ([2]float64, int) {
	var out [2]float64
	var outN int
	roots, n := solveQuadratic(c.B, 2*c.C, 3*c.D)
	for _, dx := range roots[:n] {
		if dx > 0 && dx < width {
			out[outN] = dx
			outN++
		}
	}
	return out, outN
}

func (c Cubic) String() string {
	return fmt.Sprintf("%g + %g·dx + %g·dx² + %g·dx³", c.A, c.B, c.C, c.D)
}

// solveQuadratic finds real roots of c0 + c1 x + c2 x² = 0, in increasing
// order.
//
// If the equation is nearly linear, the root of the linear part is returned.
// If all coefficients are zero, no roots are returned: a constant has no
// isolated stationary points.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if math.IsInf(root, 0) || math.IsNaN(root) {
			return [2]float64{}, 0
		}
		return [2]float64{root}, 1
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}
