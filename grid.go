package makima

import "fmt"

// GridPartials estimates partial derivatives at the nodes of a rectangular
// grid.
//
// xs and ys are the grid's coordinates along each axis and must be strictly
// increasing. f holds the values at the grid nodes in row-major order, with
// f[row*len(xs)+col] being the value at (xs[col], ys[row]).
//
// One spline is fitted along every row and every column. The row splines'
// first derivatives are returned as fx, the column splines' as fy, in the same
// layout as f. fxy is all zeros; the cross derivative isn't estimated.
//
// GridPartials returns a [*DimensionMismatchError] if len(f) isn't
// len(xs)*len(ys), and an error wrapping [ErrInsufficientData] if either axis
// has fewer than two coordinates.
func GridPartials(xs, ys, f []float64) (fx, fy, fxy []float64, err error) {
	nx, ny := len(xs), len(ys)
	if len(f) != nx*ny {
		return nil, nil, nil, &DimensionMismatchError{What: "f", Got: len(f), Want: nx * ny}
	}

	rows := make([]*Spline, ny)
	for row := range rows {
		sp, err := NewXY(xs, f[row*nx:(row+1)*nx])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("row %d: %w", row, err)
		}
		rows[row] = sp
	}

	cols := make([]*Spline, nx)
	vals := make([]float64, ny)
	for col := range cols {
		for row := range vals {
			vals[row] = f[row*nx+col]
		}
		sp, err := NewXY(ys, vals)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("column %d: %w", col, err)
		}
		cols[col] = sp
	}

	fx = make([]float64, len(f))
	fy = make([]float64, len(f))
	for row, y := range ys {
		for col, x := range xs {
			fx[row*nx+col] = rows[row].Deriv1(x)
			fy[row*nx+col] = cols[col].Deriv1(y)
		}
	}
	return fx, fy, make([]float64, len(f)), nil
}

// BicubicFromGrid estimates the partial derivatives of a grid with
// [GridPartials] and passes them, together with the grid, to build. It returns
// build's result unchanged.
//
// build is typically the constructor of a bicubic surface, such as
// honnef.co/go/makima/bicubic.New.
func BicubicFromGrid[S any](
	xs, ys, f []float64,
	build func(xs, ys, f, fx, fy, fxy []float64) (S, error),
) (S, error) {
	fx, fy, fxy, err := GridPartials(xs, ys, f)
	if err != nil {
		var zero S
		return zero, err
	}
	return build(xs, ys, f, fx, fy, fxy)
}
