package calculator_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/vector"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	cases := map[string]float64{
		"3":        3,
		" -2.5 ":   -2.5,
		"1e3":      1000,
		".5":       0.5,
		"2.5cm":    2.5,
		"1e":       1,
		"abc":      0,
		"":         0,
		"-":        0,
		"NaN":      0,
		"Infinity": 0,
		"1e400":    0,
		"0x10":     0,
	}
	for in, want := range cases {
		require.Equal(t, want, calculator.ParseEntry(in), "input %q", in)
	}
}

func TestParseMatrix(t *testing.T) {
	m, err := calculator.ParseMatrix("1, 2; 3, 4")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Rows2D())

	m, err = calculator.ParseMatrix("1 2 3\n4 x 6\n\n7 8 9\n")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 0, 6}, {7, 8, 9}}, m.Rows2D())

	// Empty comma cells count as 0.
	m, err = calculator.ParseMatrix("1,,;,,2;3,,")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 0, 2}, {3, 0, 0}}, m.Rows2D())
}

func TestParseMatrixErrors(t *testing.T) {
	_, err := calculator.ParseMatrix("5")
	require.ErrorIs(t, err, calculator.ErrUnsupportedSize)

	_, err = calculator.ParseMatrix("1;2;3;4;5;6")
	require.ErrorIs(t, err, calculator.ErrUnsupportedSize)

	_, err = calculator.ParseMatrix("1,2,3;4,5,6")
	require.ErrorIs(t, err, calculator.ErrUnsupportedSize)

	_, err = calculator.ParseMatrix("1,2;3")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = calculator.ParseMatrix("")
	require.ErrorIs(t, err, calculator.ErrUnsupportedSize)
}

func TestParseVector(t *testing.T) {
	v, err := calculator.ParseVector("1, 2, 3")
	require.NoError(t, err)
	require.Equal(t, vector.Vec3{1, 2, 3}, v)

	v, err = calculator.ParseVector("4 junk")
	require.NoError(t, err)
	require.Equal(t, vector.Vec3{4, 0, 0}, v)

	v, err = calculator.ParseVector("  ")
	require.NoError(t, err)
	require.Equal(t, vector.Zero, v)

	_, err = calculator.ParseVector("1 2 3 4")
	require.ErrorIs(t, err, calculator.ErrTooManyComponents)
}
