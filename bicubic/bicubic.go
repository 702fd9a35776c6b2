// Package bicubic implements bicubic interpolation on rectangular grids with
// known partial derivatives.
//
// Each grid cell is interpolated by a polynomial p(u, v) = Σ αᵢⱼ uⁱ vʲ, i, j ∈
// [0, 3], where u and v are the position inside the cell scaled to [0, 1]. The
// 16 coefficients are determined by the values, first partial derivatives and
// cross derivatives at the cell's four corners, which makes the surface and its
// first partial derivatives continuous across cells.
//
// [New] has the signature expected by honnef.co/go/makima.BicubicFromGrid.
package bicubic

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when the value or derivative slices don't have one
	// entry per grid node.
	ErrShape = errors.New("bicubic: array has wrong length")
	// ErrAxis is returned when an axis has fewer than two coordinates or isn't
	// strictly increasing.
	ErrAxis = errors.New("bicubic: invalid axis")
)

// hermite maps a cell's corner data to polynomial coefficients:
// α = H · F · Hᵀ.
var hermite = mat.NewDense(4, 4, []float64{
	1, 0, 0, 0,
	0, 0, 1, 0,
	-3, 3, -2, -1,
	2, -2, 1, 1,
})

// Surface is a bicubic interpolant. It is immutable and safe for concurrent
// use.
type Surface struct {
	xs, ys []float64
	// cells[row*(len(xs)-1)+col] holds the coefficients of the cell spanning
	// [xs[col], xs[col+1]] × [ys[row], ys[row+1]], indexed [i][j] for uⁱ vʲ.
	cells [][4][4]float64
}

// New returns the bicubic surface through a grid.
//
// xs and ys are the coordinates of the grid along each axis and must be
// strictly increasing, with at least two entries each. f holds the values at
// the grid nodes in row-major order: f[row*len(xs)+col] is the value at
// (xs[col], ys[row]). fx, fy and fxy hold the partial derivatives ∂f/∂x,
// ∂f/∂y and ∂²f/∂x∂y in the same layout.
//
// The slices are copied where needed and may be modified after New returns.
func New(xs, ys, f, fx, fy, fxy []float64) (*Surface, error) {
	if err := checkAxis("xs", xs); err != nil {
		return nil, err
	}
	if err := checkAxis("ys", ys); err != nil {
		return nil, err
	}
	nx, ny := len(xs), len(ys)
	for _, arr := range []struct {
		name string
		vals []float64
	}{{"f", f}, {"fx", fx}, {"fy", fy}, {"fxy", fxy}} {
		if len(arr.vals) != nx*ny {
			return nil, fmt.Errorf("%w: len(%s) = %d, want %d×%d = %d",
				ErrShape, arr.name, len(arr.vals), nx, ny, nx*ny)
		}
	}

	s := &Surface{
		xs:    slices.Clone(xs),
		ys:    slices.Clone(ys),
		cells: make([][4][4]float64, (nx-1)*(ny-1)),
	}
	corners := mat.NewDense(4, 4, nil)
	var tmp, alpha mat.Dense
	for row := range ny - 1 {
		hy := ys[row+1] - ys[row]
		for col := range nx - 1 {
			hx := xs[col+1] - xs[col]
			// Corner (a, b) is the node at (xs[col+a], ys[row+b]).
			for a := range 2 {
				for b := range 2 {
					k := (row+b)*nx + col + a
					corners.Set(a, b, f[k])
					corners.Set(a, b+2, fy[k]*hy)
					corners.Set(a+2, b, fx[k]*hx)
					corners.Set(a+2, b+2, fxy[k]*hx*hy)
				}
			}
			tmp.Mul(hermite, corners)
			alpha.Mul(&tmp, hermite.T())

			cell := &s.cells[row*(nx-1)+col]
			for i := range 4 {
				for j := range 4 {
					cell[i][j] = alpha.At(i, j)
				}
			}
		}
	}
	return s, nil
}

func checkAxis(name string, axis []float64) error {
	if len(axis) < 2 {
		return fmt.Errorf("%w: %s has %d coordinates, need at least 2", ErrAxis, name, len(axis))
	}
	for i := 1; i < len(axis); i++ {
		if !(axis[i] > axis[i-1]) {
			return fmt.Errorf("%w: %s isn't strictly increasing at index %d", ErrAxis, name, i)
		}
	}
	return nil
}

// cell returns the index of the interval of axis containing v. Values outside
// the axis map to the first or last interval.
func cell(axis []float64, v float64) int {
	i, found := slices.BinarySearch(axis, v)
	if !found {
		i--
	}
	return min(max(i, 0), len(axis)-2)
}

// Sample evaluates the surface at (x, y). Outside the grid, the polynomial of
// the nearest boundary cell is extended.
func (s *Surface) Sample(x, y float64) float64 {
	col := cell(s.xs, x)
	row := cell(s.ys, y)
	u := (x - s.xs[col]) / (s.xs[col+1] - s.xs[col])
	v := (y - s.ys[row]) / (s.ys[row+1] - s.ys[row])
	alpha := &s.cells[row*(len(s.xs)-1)+col]

	// Horner's method in both variables.
	var out float64
	for i := 3; i >= 0; i-- {
		c := alpha[i]
		out = out*u + ((c[3]*v+c[2])*v+c[1])*v + c[0]
	}
	return out
}

// Bounds returns the extent of the grid.
func (s *Surface) Bounds() (x0, y0, x1, y1 float64) {
	return s.xs[0], s.ys[0], s.xs[len(s.xs)-1], s.ys[len(s.ys)-1]
}
