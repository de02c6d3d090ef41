// Package matcalc is a small linear-algebra calculator for square matrices
// of order 2..5 and vectors in three dimensions.
//
// The module is organized in three packages and one command:
//
//	matrix/     — Dense storage, Minor, Determinant (Laplace expansion),
//	              Transpose, Cofactor, Adjoint and Inverse with an explicit
//	              singular variant
//	vector/     — Vec3 with Dot, Cross, Magnitude and the cos/sin of the
//	              angle between two vectors
//	calculator/ — lenient text input, panel dispatch, fixed-precision
//	              formatting and seeded random inputs
//	cmd/matcalc — command-line front end
//
// Quick start:
//
//	m, _ := calculator.ParseMatrix("1, 2; 3, 4")
//	res, _ := matrix.Inverse(m)
//	if inv, ok := res.Matrix(); ok {
//		fmt.Print(inv)
//	}
//
// Every operation is pure: inputs are never modified and results are fresh
// allocations. Matrix kernels report bad input through sentinel errors
// (matrix.ErrNonSquare, matrix.ErrOrderTooLarge, ...) wrapped with %w.
//
//	go get github.com/katalvlaran/matcalc
package matcalc
