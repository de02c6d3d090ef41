// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I_n with n = m.Rows(); m must be square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// CloneMatrix returns a structural clone of m (nil stays nil).
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ---------- Algebra (short names) ----------

// Det is an alias of Determinant.
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// T is an alias of Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Adj is an alias of Adjoint.
func Adj(m Matrix, opts ...Option) (Matrix, error) { return Adjoint(m, opts...) }

// InverseOf is an alias of Inverse.
func InverseOf(m Matrix, opts ...Option) (Inversion, error) { return Inverse(m, opts...) }

// Product is an alias of Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// IsIdentity reports whether m is square and AllClose to I_n with absolute
// tolerance tol. Used to verify A·A⁻¹ ≈ I.
func IsIdentity(m Matrix, tol float64) (bool, error) {
	I, err := IdentityLike(m)
	if err != nil {
		return false, err
	}

	return AllClose(m, I, 0, tol)
}
