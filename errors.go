package makima

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when fewer than two points are given.
	ErrInsufficientData = errors.New("makima: at least two points are required")

	// ErrDimensionMismatch matches every [*DimensionMismatchError] when used with
	// [errors.Is].
	ErrDimensionMismatch = errors.New("makima: dimension mismatch")
)

// DimensionMismatchError reports an input slice whose length doesn't match the
// length implied by the other inputs.
type DimensionMismatchError struct {
	// What names the offending input.
	What string
	Got  int
	Want int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("makima: len(%s) = %d, want %d", e.What, e.Got, e.Want)
}

func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
