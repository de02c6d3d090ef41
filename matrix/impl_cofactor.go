// SPDX-License-Identifier: MIT
// Package matrix - cofactor kernels: Minor, Determinant, Cofactor,
// CofactorMatrix and Adjoint.
//
// Purpose:
//   - Compute determinants by recursive Laplace expansion along row 0.
//   - Build every minor as an independent copy (Dense.Induced); no scratch
//     buffer is shared between recursion levels, so each call is pure.
//
// Determinism & Performance:
//   - Fixed expansion order j = 0..N-1; identical inputs give bit-identical output.
//   - O(N!) time. Acceptable only because order is bounded (DefaultMaxOrder = 5,
//     i.e. at most 120 leaf evaluations).

package matrix

import "fmt"

// cofactorSign returns +1 when (row+col) is even and −1 otherwise.
func cofactorSign(row, col int) float64 {
	if (row+col)%2 == 0 {
		return 1
	}

	return -1
}

// keepIndices returns 0..n-1 without skip, in ascending order.
func keepIndices(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// minorOf deletes row and col from d and returns the copy.
// Indices are assumed valid; Induced re-checks them anyway.
func minorOf(d *Dense, row, col int) (*Dense, error) {
	return d.Induced(keepIndices(d.r, row), keepIndices(d.c, col))
}

// Minor returns the (r−1)×(c−1) matrix obtained by deleting row and col from m.
//
// Implementation:
//   - Stage 1: validate m is non-nil and (row, col) is in range.
//   - Stage 2: copy the kept rows/cols via Dense.Induced.
//
// Behavior highlights:
//   - The result is a fresh allocation; m is never mutated or aliased.
//   - The minor of a 1×1 matrix is the empty 0×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := minorOf(d, row, col)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// laplace is the recursive determinant over a square Dense.
//   - N=0: 1 (empty product; the minor of a 1×1 matrix).
//   - N=1: the sole element.
//   - N=2: a·d − b·c.
//   - N≥3: Σ_j sign(0,j) · d[0][j] · det(minor(0,j)).
func laplace(d *Dense) (float64, error) {
	switch d.r {
	case 0:
		return 1, nil
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	det := ZeroSum
	for j := 0; j < d.c; j++ {
		minor, err := minorOf(d, 0, j)
		if err != nil {
			return 0, err
		}
		sub, err := laplace(minor)
		if err != nil {
			return 0, err
		}
		det += d.data[j] * sub * cofactorSign(0, j)
	}

	return det, nil
}

// Determinant computes det(m) by Laplace expansion along the first row.
//
// Implementation:
//   - Stage 1: resolve options; validate non-nil, square, 1 ≤ N ≤ MaxOrder.
//   - Stage 2: view m as *Dense (copy only if it is another Matrix type).
//   - Stage 3: recurse via laplace.
//
// Returns:
//   - float64: the determinant (plain floating point; no rounding cleanup).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge.
//
// Complexity:
//   - Time O(N!), Space O(N²) per recursion level.
//
// Example:
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := matrix.Determinant(m) // -2
func Determinant(m Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := ValidateCofactorInput(m, o.maxOrder); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := laplace(d)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// cofactorOf computes sign(row,col) · det(minor(row,col)) over a validated Dense.
func cofactorOf(d *Dense, row, col int) (float64, error) {
	minor, err := minorOf(d, row, col)
	if err != nil {
		return 0, err
	}
	det, err := laplace(minor)
	if err != nil {
		return 0, err
	}

	return det * cofactorSign(row, col), nil
}

// Cofactor returns C[row][col] = (−1)^(row+col) · det(Minor(m, row, col)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge, ErrOutOfRange.
//
// Notes:
//   - The cofactor of a 1×1 matrix is 1 (determinant of the empty minor).
func Cofactor(m Matrix, row, col int, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := ValidateCofactorInput(m, o.maxOrder); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	c, err := cofactorOf(d, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	return c, nil
}

// CofactorMatrix returns C with C[i][j] = Cofactor(m, i, j) for all i, j.
//
// Implementation:
//   - Stage 1: validate once (nil, square, order).
//   - Stage 2: fill C in fixed i→j order from independent minors.
//
// Complexity:
//   - Time O(N² · (N−1)!), Space O(N²).
func CofactorMatrix(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateCofactorInput(m, o.maxOrder); err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}

	n := d.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	res.validateNaNInf = d.validateNaNInf

	var i, j int
	var c float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, err = cofactorOf(d, i, j); err != nil {
				return nil, matrixErrorf(opCofactorMatrix, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			res.data[i*n+j] = c
		}
	}

	return res, nil
}

// Adjoint returns the adjugate of m: the transpose of its cofactor matrix.
//
// Behavior highlights:
//   - N=1 returns [[1]] by convention (identity scalar), whatever the element.
//   - m is never mutated; the result is a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge.
//
// Example:
//
//	adjoint([[1,2],[3,4]]) == [[4,-2],[-3,1]]
func Adjoint(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateCofactorInput(m, o.maxOrder); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	if m.Rows() == 1 {
		one, err := NewIdentity(1)
		if err != nil {
			return nil, matrixErrorf(opAdjoint, err)
		}

		return one, nil
	}

	cof, err := CofactorMatrix(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adj, nil
}
