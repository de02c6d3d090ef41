package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/vector"
	"github.com/stretchr/testify/require"
)

// randomVec draws integer components in [-10, 10].
func randomVec(rng *rand.Rand) vector.Vec3 {
	return vector.New(float64(rng.Intn(21)-10), float64(rng.Intn(21)-10), float64(rng.Intn(21)-10))
}

func TestDotCrossConcrete(t *testing.T) {
	a := vector.Vec3{1, 2, 3}
	b := vector.Vec3{4, 5, 6}

	require.Equal(t, 32.0, vector.Dot(a, b))
	require.Equal(t, 32.0, a.Dot(b))
	require.Equal(t, vector.Vec3{-3, 6, -3}, vector.Cross(a, b))
	require.Equal(t, vector.Vec3{-3, 6, -3}, a.Cross(b))
}

func TestCrossAxes(t *testing.T) {
	require.Equal(t, vector.K, vector.Cross(vector.I, vector.J))
	require.Equal(t, vector.I, vector.Cross(vector.J, vector.K))
	require.Equal(t, vector.J, vector.Cross(vector.K, vector.I))
}

func TestAlgebraicProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a, b := randomVec(rng), randomVec(rng)

		require.Equal(t, vector.Dot(a, b), vector.Dot(b, a))
		require.Equal(t, vector.Cross(a, b), vector.Cross(b, a).Neg())
		require.Equal(t, vector.Zero, vector.Cross(a, a))

		// a×b is orthogonal to both operands.
		c := vector.Cross(a, b)
		require.Equal(t, 0.0, vector.Dot(c, a))
		require.Equal(t, 0.0, vector.Dot(c, b))

		// cos² + sin² = 1 for non-degenerate pairs.
		if !a.IsZero() && !b.IsZero() {
			cs, sn := vector.CosAngle(a, b), vector.SinAngle(a, b)
			require.InDelta(t, 1.0, cs*cs+sn*sn, 1e-12)
			require.GreaterOrEqual(t, sn, 0.0)
			require.LessOrEqual(t, math.Abs(cs), 1.0+1e-12)
		}
	}
}

func TestMagnitude(t *testing.T) {
	require.Equal(t, 5.0, vector.Magnitude(vector.Vec3{3, 4, 0}))
	require.Equal(t, 3.0, vector.Vec3{1, 2, 2}.Magnitude())
	require.Equal(t, 0.0, vector.Magnitude(vector.Zero))
}

func TestAngleOrthogonal(t *testing.T) {
	require.Equal(t, 0.0, vector.CosAngle(vector.I, vector.J))
	require.Equal(t, 1.0, vector.SinAngle(vector.I, vector.J))
}

func TestAngleParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		v := randomVec(rng)
		if v.IsZero() {
			continue
		}
		require.InDelta(t, 1.0, vector.CosAngle(v, v), 1e-12, "v=%v", v)
		require.Equal(t, 0.0, vector.SinAngle(v, v))

		// Anti-parallel.
		require.InDelta(t, -1.0, vector.CosAngle(v, v.Neg()), 1e-12)
	}
}

func TestAngleZeroVectorConvention(t *testing.T) {
	v := vector.Vec3{1, 2, 3}
	for _, pair := range [][2]vector.Vec3{{vector.Zero, v}, {v, vector.Zero}, {vector.Zero, vector.Zero}} {
		require.Equal(t, 0.0, vector.CosAngle(pair[0], pair[1]))
		require.Equal(t, 0.0, vector.SinAngle(pair[0], pair[1]))
		require.Equal(t, vector.Angle{}, vector.AngleBetween(pair[0], pair[1]))
	}
}

func TestAngleBetween(t *testing.T) {
	a := vector.AngleBetween(vector.Vec3{1, 0, 0}, vector.Vec3{1, 1, 0})
	require.InDelta(t, math.Sqrt2/2, a.Cos, 1e-12)
	require.InDelta(t, math.Sqrt2/2, a.Sin, 1e-12)
}

func TestFromSlice(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, -2, 3.5})
	require.NoError(t, err)
	require.Equal(t, vector.New(1, -2, 3.5), v)
	require.Equal(t, []float64{1, -2, 3.5}, v.Slice())
	require.Equal(t, 1.0, v.X())
	require.Equal(t, -2.0, v.Y())
	require.Equal(t, 3.5, v.Z())

	_, err = vector.FromSlice([]float64{1, 2})
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.FromSlice([]float64{1, 2, 3, 4})
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.FromSlice([]float64{1, math.NaN(), 3})
	require.ErrorIs(t, err, vector.ErrNaNInf)
}

func TestString(t *testing.T) {
	require.Equal(t, "[-3, 6, -3]", vector.Vec3{-3, 6, -3}.String())
}
