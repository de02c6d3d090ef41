// SPDX-License-Identifier: MIT
// Package matrix - Inverse via the adjugate: A⁻¹ = adj(A) / det(A).
//
// Singularity is a regular outcome, not an error: Inverse returns an
// Inversion that callers must branch on (Singular / Matrix comma-ok).
// The error return is reserved for precondition violations.

package matrix

import "math"

// singularText is what Inversion.String prints for the singular variant.
const singularText = "singular"

// Inversion is the two-variant result of Inverse.
//   - Singular variant: |det| < eps; no inverse exists, Matrix() reports ok=false.
//   - Matrix variant:   Matrix() returns the inverse with ok=true.
//
// The zero value is the singular variant with det 0.
type Inversion struct {
	inv *Dense  // nil for the singular variant
	det float64 // determinant of the input, for both variants
}

// Singular reports whether the input had no inverse.
func (r Inversion) Singular() bool { return r.inv == nil }

// Matrix returns the inverse and true, or (nil, false) for the singular variant.
// The returned Dense is owned by the caller.
func (r Inversion) Matrix() (*Dense, bool) {
	if r.inv == nil {
		return nil, false
	}

	return r.inv, true
}

// Determinant returns det(A) as computed during inversion.
func (r Inversion) Determinant() float64 { return r.det }

// String prints "singular" or the inverse rows.
func (r Inversion) String() string {
	if r.inv == nil {
		return singularText
	}

	return r.inv.String()
}

// Inverse computes A⁻¹ = adj(A)/det(A).
//
// Implementation:
//   - Stage 1: resolve options; validate non-nil, square, order.
//   - Stage 2: d = Determinant(A); if |d| < eps return the singular variant.
//   - Stage 3: adj = Adjoint(A); divide every cell by d on the fresh adjugate.
//
// Returns:
//   - Inversion: matrix variant or singular variant.
//   - error    : only for precondition violations.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge.
//
// Complexity:
//   - Time O(N² · (N−1)! + N!), Space O(N²).
//
// Example:
//
//	res, _ := matrix.Inverse(m)
//	if inv, ok := res.Matrix(); ok {
//		fmt.Print(inv)
//	} else {
//		fmt.Println("no inverse")
//	}
func Inverse(m Matrix, opts ...Option) (Inversion, error) {
	o := gatherOptions(opts...)
	if err := ValidateCofactorInput(m, o.maxOrder); err != nil {
		return Inversion{}, matrixErrorf(opInverse, err)
	}

	det, err := Determinant(m, opts...)
	if err != nil {
		return Inversion{}, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) < o.eps {
		return Inversion{det: det}, nil
	}

	adj, err := Adjoint(m, opts...)
	if err != nil {
		return Inversion{}, matrixErrorf(opInverse, err)
	}
	inv, err := asDense(adj)
	if err != nil {
		return Inversion{}, matrixErrorf(opInverse, err)
	}
	// adj is a fresh allocation, so dividing in place keeps Inverse pure.
	if err = inv.Apply(func(_, _ int, v float64) float64 { return v / det }); err != nil {
		return Inversion{}, matrixErrorf(opInverse, err)
	}

	return Inversion{inv: inv, det: det}, nil
}
