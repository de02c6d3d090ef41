package calculator

import (
	"fmt"
	"strings"
)

// MatrixOp selects one of the matrix panel operations.
type MatrixOp int

const (
	OpDeterminant MatrixOp = iota + 1
	OpTranspose
	OpAdjoint
	OpInverse
)

var matrixOpNames = map[MatrixOp]string{
	OpDeterminant: "determinant",
	OpTranspose:   "transpose",
	OpAdjoint:     "adjoint",
	OpInverse:     "inverse",
}

var matrixOpTitles = map[MatrixOp]string{
	OpDeterminant: "Determinant",
	OpTranspose:   "Transpose",
	OpAdjoint:     "Adjoint Matrix",
	OpInverse:     "Inverse Matrix",
}

// String returns the lower-case operation name accepted by ParseMatrixOp.
func (op MatrixOp) String() string {
	if s, ok := matrixOpNames[op]; ok {
		return s
	}

	return fmt.Sprintf("MatrixOp(%d)", int(op))
}

// Title returns the panel heading for the operation.
func (op MatrixOp) Title() string { return matrixOpTitles[op] }

// VectorOp selects one of the vector panel operations.
type VectorOp int

const (
	OpDot VectorOp = iota + 1
	OpCross
	OpCos
	OpSin
	OpAngle // cos θ and sin θ together
)

var vectorOpNames = map[VectorOp]string{
	OpDot:   "dot",
	OpCross: "cross",
	OpCos:   "cos",
	OpSin:   "sin",
	OpAngle: "angle",
}

var vectorOpTitles = map[VectorOp]string{
	OpDot:   "Dot Product",
	OpCross: "Cross Product",
	OpCos:   "Cos θ",
	OpSin:   "Sin θ",
	OpAngle: "Angle",
}

// String returns the lower-case operation name accepted by ParseVectorOp.
func (op VectorOp) String() string {
	if s, ok := vectorOpNames[op]; ok {
		return s
	}

	return fmt.Sprintf("VectorOp(%d)", int(op))
}

// Title returns the panel heading for the operation.
func (op VectorOp) Title() string { return vectorOpTitles[op] }

// ParseMatrixOp resolves a case-insensitive name ("det" is accepted for determinant).
func ParseMatrixOp(s string) (MatrixOp, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "det" {
		return OpDeterminant, nil
	}
	for op, n := range matrixOpNames {
		if n == name {
			return op, nil
		}
	}

	return 0, fmt.Errorf("ParseMatrixOp(%q): %w", s, ErrUnknownOperation)
}

// ParseVectorOp resolves a case-insensitive vector operation name.
func ParseVectorOp(s string) (VectorOp, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for op, n := range vectorOpNames {
		if n == name {
			return op, nil
		}
	}

	return 0, fmt.Errorf("ParseVectorOp(%q): %w", s, ErrUnknownOperation)
}
