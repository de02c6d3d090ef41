package calculator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/stretchr/testify/require"
)

func TestRandomMatrixReproducible(t *testing.T) {
	for n := calculator.MinOrder; n <= calculator.MaxOrder; n++ {
		a, err := calculator.New(calculator.WithSeed(7)).RandomMatrix(n)
		require.NoError(t, err)
		b, err := calculator.New(calculator.WithSeed(7)).RandomMatrix(n)
		require.NoError(t, err)
		require.Equal(t, a.Rows2D(), b.Rows2D(), "n=%d", n)
	}
}

func TestRandomMatrixShape(t *testing.T) {
	c := calculator.New(calculator.WithRand(rand.New(rand.NewSource(1))))
	for trial := 0; trial < 50; trial++ {
		n := calculator.MinOrder + trial%(calculator.MaxOrder-calculator.MinOrder+1)
		m, err := c.RandomMatrix(n)
		require.NoError(t, err)
		require.Equal(t, n, m.Rows())
		require.Equal(t, n, m.Cols())

		zeros := 0
		for _, row := range m.Rows2D() {
			for _, v := range row {
				require.GreaterOrEqual(t, v, -10.0)
				require.LessOrEqual(t, v, 10.0)
				require.Equal(t, v, float64(int(v)))
				if v == 0 {
					zeros++
				}
			}
		}
		require.Positive(t, zeros, "a zero cell is always forced")
	}

	_, err := c.RandomMatrix(1)
	require.ErrorIs(t, err, calculator.ErrUnsupportedSize)
	_, err = c.RandomMatrix(6)
	require.ErrorIs(t, err, calculator.ErrUnsupportedSize)
}

func TestRandomVectors(t *testing.T) {
	a1, b1 := calculator.New(calculator.WithSeed(3)).RandomVectors()
	a2, b2 := calculator.New(calculator.WithSeed(3)).RandomVectors()
	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)

	for _, v := range append(a1.Slice(), b1.Slice()...) {
		require.GreaterOrEqual(t, v, -10.0)
		require.LessOrEqual(t, v, 10.0)
	}
}
