package calculator

import "errors"

var (
	// ErrUnsupportedSize indicates a matrix outside the calculator's 2..5 range
	// or a non-square grid.
	ErrUnsupportedSize = errors.New("calculator: matrix must be square with order 2..5")

	// ErrUnknownOperation indicates an operation name or value the calculator does not know.
	ErrUnknownOperation = errors.New("calculator: unknown operation")

	// ErrTooManyComponents indicates vector text with more than 3 cells.
	ErrTooManyComponents = errors.New("calculator: a vector has exactly 3 components")
)
