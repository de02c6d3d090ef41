// Package calculator is the thin caller around the matcalc engine.
//
// It owns everything the engine deliberately does not:
//
//   - input normalisation: ParseEntry coerces unparsable text to 0, and
//     ParseMatrix/ParseVector turn grid text into engine values;
//   - operation dispatch: Calculator.Matrix and Calculator.Vectors map a
//     MatrixOp/VectorOp onto the matrix and vector packages and return a
//     tagged Result (scalar, matrix, singular, vector or angle);
//   - display: Calculator.Format renders scalars with 4 decimals and matrix or
//     vector cells with 3 by default;
//   - demo data: RandomMatrix/RandomVectors draw integers in [-10, 10] from a
//     caller-seeded RNG, and RandomMatrix always forces one zero cell.
//
// A Calculator is safe for concurrent use by Matrix, Vectors and Format. The
// Random* methods share the Calculator's RNG and must not be called
// concurrently.
package calculator
