// SPDX-License-Identifier: MIT
// Package matrix: test-only exports of internal state.
//
// Purpose:
//   - Let external tests (package matrix_test) inspect resolved option state
//     without widening the public Options API.

package matrix

// OptionsSnapshot is a read-only copy of resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	MaxOrder       int
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts through the internal pipeline.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:            o.eps,
		MaxOrder:       o.maxOrder,
		ValidateNaNInf: o.validateNaNInf,
	}
}

// DensePolicy_TestOnly reports the numeric policy carried by d.
func DensePolicy_TestOnly(d *Dense) bool { return d.validateNaNInf }
