// Package calculator: functional options.
//   • Determinism is explicit: seed the demo generator via WithSeed or WithRand.
//   • Display precision mirrors the panels: 4 decimals for scalars, 3 for cells.
package calculator

import (
	"math/rand" // RNG source for the demo generators
	"time"

	"github.com/katalvlaran/matcalc/matrix"
)

// Defaults.
const (
	// DefaultScalarPrecision is the number of decimals for determinant, dot, cos and sin.
	DefaultScalarPrecision = 4

	// DefaultCellPrecision is the number of decimals for matrix and vector cells.
	DefaultCellPrecision = 3

	// MinOrder and MaxOrder bound the matrix sizes offered by the calculator.
	MinOrder = 2
	MaxOrder = matrix.DefaultMaxOrder

	// randomSpan draws integers in [-randomSpan, randomSpan].
	randomSpan = 10
)

// Option configures a Calculator.
type Option func(*config)

type config struct {
	scalarPrec int
	cellPrec   int
	rng        *rand.Rand
	matrixOpts []matrix.Option
}

// WithRand provides an explicit RNG for RandomMatrix/RandomVectors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("calculator: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithScalarPrecision sets decimals for scalar results. Panics if p < 0.
func WithScalarPrecision(p int) Option {
	if p < 0 {
		panic("calculator: WithScalarPrecision(p<0)")
	}

	return func(c *config) { c.scalarPrec = p }
}

// WithCellPrecision sets decimals for matrix and vector cells. Panics if p < 0.
func WithCellPrecision(p int) Option {
	if p < 0 {
		panic("calculator: WithCellPrecision(p<0)")
	}

	return func(c *config) { c.cellPrec = p }
}

// WithMatrixOptions forwards engine options (e.g. matrix.WithEpsilon) to
// every matrix operation.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(c *config) { c.matrixOpts = append(c.matrixOpts, opts...) }
}

func newConfig(opts ...Option) config {
	c := config{
		scalarPrec: DefaultScalarPrecision,
		cellPrec:   DefaultCellPrecision,
	}
	for _, set := range opts {
		set(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}
