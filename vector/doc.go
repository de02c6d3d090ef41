// Package vector is the vector half of the matcalc linear-algebra engine:
// three-dimensional dot and cross products, magnitude, and the cosine and
// sine of the angle between two vectors.
//
// Vec3 is a [3]float64 value type, so the "both operands have length 3"
// precondition is enforced by the compiler. Slices coming from user input go
// through FromSlice.
//
// Zero-vector convention: the angle between a zero vector and anything is
// undefined, but CosAngle and SinAngle return 0 in that case instead of NaN or
// an error. The calculator shows 0 for a degenerate pair and callers rely on
// that value.
package vector
