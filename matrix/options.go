// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the engine's numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults + user setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes observable behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the singularity threshold: Inverse reports the
	// singular variant when |det| < DefaultEpsilon.
	DefaultEpsilon = 1e-10

	// DefaultMaxOrder bounds the order N accepted by Determinant, Cofactor,
	// Adjoint and Inverse. Laplace expansion costs O(N!).
	DefaultMaxOrder = 5

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxOrderInvalid = "matrix: WithMaxOrder: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	maxOrder       int     // >= 1; DefaultMaxOrder
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the singularity threshold used by Inverse.
//
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps = 0 only treats an exactly-zero determinant as singular.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxOrder raises (or lowers) the largest square order accepted by the
// cofactor kernels. Panics if n < 1.
func WithMaxOrder(n int) Option {
	if n < 1 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Affects matrices created by NewFromRows; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Use with care: NaN propagates through every cofactor.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Resolution ----------

// NewMatrixOptions resolves the given setters on top of the defaults.
// Exposed for callers that want to inspect or forward a resolved policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

// MaxOrder reports the resolved order bound.
func (o Options) MaxOrder() int { return o.maxOrder }

// ValidateNaNInf reports whether new matrices reject non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults.
// Keep this in sync with the constants above.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		maxOrder:       DefaultMaxOrder,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in kernels.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue // tolerate nil entries from conditional option lists
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
