// SPDX-License-Identifier: MIT
// Package matrix_test - tests for Transpose, Mul and AllClose.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestTransposeRectangular(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, rowsOf(t, mt))

	// Generic path gives the same answer.
	mt2, err := matrix.T(hide{m})
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, mt), rowsOf(t, mt2))
}

// TestTransposeInvolution checks (Mᵀ)ᵀ == M for every supported order.
func TestTransposeInvolution(t *testing.T) {
	for n := 1; n <= 5; n++ {
		m := RandomIntSquare(t, n, int64(900+n))
		once, err := matrix.Transpose(m)
		require.NoError(t, err)
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		require.Equal(t, m.Rows2D(), rowsOf(t, twice), "n=%d", n)
	}
}

func TestTransposeSingularAllowed(t *testing.T) {
	mt, err := matrix.Transpose(MustFromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {2, 4}}, rowsOf(t, mt))
}

func TestTransposeNil(t *testing.T) {
	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{0, 1}, {1, 0}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {4, 3}}, rowsOf(t, p))

	p2, err := matrix.Product(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, p), rowsOf(t, p2))

	_, err = matrix.Mul(a, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulIdentityNeutral(t *testing.T) {
	m := RandomIntSquare(t, 4, 5)
	p, err := matrix.Mul(m, IdentityDense(t, 4))
	require.NoError(t, err)
	require.Equal(t, m.Rows2D(), rowsOf(t, p))
}

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4 + 1e-9}})

	ok, err := matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, hide{b}, 0, -1e-8) // negative tol normalized
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityHelpers(t *testing.T) {
	I := IdentityDense(t, 3)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.Rows2D())

	ok, err := matrix.IsIdentity(I, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.NewZeros(2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, z.Rows2D())

	require.Nil(t, matrix.CloneMatrix(nil))
}
