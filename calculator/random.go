package calculator

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/vector"
)

// randomEntry draws an integer in [-randomSpan, randomSpan].
func (c *Calculator) randomEntry() float64 {
	return float64(c.rng.Intn(2*randomSpan+1) - randomSpan)
}

// RandomMatrix draws an n×n demo matrix with integer entries in [-10, 10].
// One randomly chosen cell is always forced to 0.
// n must be within MinOrder..MaxOrder.
func (c *Calculator) RandomMatrix(n int) (*matrix.Dense, error) {
	if n < MinOrder || n > MaxOrder {
		return nil, fmt.Errorf("RandomMatrix(%d): %w", n, ErrUnsupportedSize)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("RandomMatrix(%d): %w", n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, c.randomEntry()); err != nil {
				return nil, fmt.Errorf("RandomMatrix(%d): %w", n, err)
			}
		}
	}
	if err = m.Set(c.rng.Intn(n), c.rng.Intn(n), 0); err != nil {
		return nil, fmt.Errorf("RandomMatrix(%d): %w", n, err)
	}

	return m, nil
}

// RandomVectors draws two demo vectors with integer components in [-10, 10].
func (c *Calculator) RandomVectors() (vector.Vec3, vector.Vec3) {
	var a, b vector.Vec3
	for i := range a {
		a[i] = c.randomEntry()
	}
	for i := range b {
		b[i] = c.randomEntry()
	}

	return a, b
}
