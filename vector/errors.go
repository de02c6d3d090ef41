package vector

import "errors"

var (
	// ErrDimensionMismatch indicates a slice whose length is not 3.
	ErrDimensionMismatch = errors.New("vector: expected exactly 3 components")

	// ErrNaNInf indicates a NaN or ±Inf component.
	ErrNaNInf = errors.New("vector: NaN or Inf component")
)
