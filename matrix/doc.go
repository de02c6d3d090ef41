// Package matrix is the matrix half of the matcalc linear-algebra engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-safe At/Set and an optional
//     finite-only numeric policy.
//   - Minor and Determinant (recursive Laplace expansion along row 0).
//   - Transpose, Cofactor, CofactorMatrix and Adjoint (transpose of the cofactor matrix).
//   - Inverse, returning an Inversion that is either a matrix or the singular
//     variant when |det| < epsilon (1e-10 by default).
//   - Mul, NewIdentity and AllClose for composition and verification.
//
// Every operation is pure: inputs are never mutated and each call allocates
// its own result. Cofactor expansion is O(N!) and the engine rejects orders
// above DefaultMaxOrder (5) unless WithMaxOrder raises the bound.
//
// Only preconditions (nil input, non-square shape, order too large, index out
// of range, NaN/Inf on ingestion) are reported as errors; singularity is a
// regular result, see Inversion.
package matrix
