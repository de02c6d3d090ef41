package vector

import (
	"fmt"
	"math"
)

// Dim is the fixed dimension of every vector in this package.
const Dim = 3

// Vec3 is a three-dimensional vector (x, y, z).
// It is a value type: every operation returns a new Vec3.
type Vec3 [Dim]float64

// Unit vectors along the axes.
var (
	I = Vec3{1, 0, 0}
	J = Vec3{0, 1, 0}
	K = Vec3{0, 0, 1}
)

// Zero is the zero vector.
var Zero = Vec3{}

// New builds a Vec3 from components.
func New(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// FromSlice converts a caller slice into a Vec3.
// The slice must hold exactly 3 finite values.
func FromSlice(s []float64) (Vec3, error) {
	if len(s) != Dim {
		return Vec3{}, fmt.Errorf("FromSlice: len %d: %w", len(s), ErrDimensionMismatch)
	}
	var v Vec3
	for i, x := range s {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Vec3{}, fmt.Errorf("FromSlice: component %d: %w", i, ErrNaNInf)
		}
		v[i] = x
	}

	return v, nil
}

// Slice returns the components as a fresh []float64.
func (v Vec3) Slice() []float64 { return []float64{v[0], v[1], v[2]} }

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// IsZero reports whether all components are exactly 0.
func (v Vec3) IsZero() bool { return v == Zero }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Dot returns v·w.
func (v Vec3) Dot(w Vec3) float64 { return Dot(v, w) }

// Cross returns v×w.
func (v Vec3) Cross(w Vec3) Vec3 { return Cross(v, w) }

// Magnitude returns |v|.
func (v Vec3) Magnitude() float64 { return Magnitude(v) }

// String renders "[x, y, z]" with %g components.
func (v Vec3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v[0], v[1], v[2])
}

// Dot returns Σ a[i]·b[i].
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the right-handed cross product a×b.
//
//	[a1·b2 − a2·b1, a2·b0 − a0·b2, a0·b1 − a1·b0]
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Magnitude returns the Euclidean length sqrt(x² + y² + z²).
func Magnitude(v Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// CosAngle returns cos θ = a·b / (|a||b|).
// Returns 0 when either vector has zero magnitude (see package doc).
func CosAngle(a, b Vec3) float64 {
	ma, mb := Magnitude(a), Magnitude(b)
	if ma == 0 || mb == 0 {
		return 0
	}

	return Dot(a, b) / (ma * mb)
}

// SinAngle returns sin θ = |a×b| / (|a||b|), which is never negative.
// Returns 0 when either vector has zero magnitude (see package doc).
func SinAngle(a, b Vec3) float64 {
	ma, mb := Magnitude(a), Magnitude(b)
	if ma == 0 || mb == 0 {
		return 0
	}

	return Magnitude(Cross(a, b)) / (ma * mb)
}

// Angle bundles cos θ and sin θ for one vector pair, as shown together in
// the calculator's angle panel.
type Angle struct {
	Cos float64
	Sin float64
}

// AngleBetween returns both CosAngle and SinAngle for a and b.
func AngleBetween(a, b Vec3) Angle {
	return Angle{Cos: CosAngle(a, b), Sin: SinAngle(a, b)}
}
