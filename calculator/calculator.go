package calculator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/vector"
)

// Kind tags which field of a Result carries the value.
type Kind int

const (
	KindScalar   Kind = iota + 1 // Result.Scalar
	KindMatrix                   // Result.Matrix
	KindSingular                 // no value: the matrix has no inverse
	KindVector                   // Result.Vector
	KindAngle                    // Result.Angle
)

// Result is one panel's worth of output.
type Result struct {
	Title  string // panel heading, e.g. "Inverse Matrix"
	Kind   Kind
	Scalar float64
	Matrix *matrix.Dense
	Vector vector.Vec3
	Angle  vector.Angle

	// Determinant is set for OpInverse in both the matrix and singular variants.
	Determinant float64
}

// Calculator dispatches panel operations onto the engine.
type Calculator struct {
	scalarPrec int
	cellPrec   int
	rng        *rand.Rand
	matrixOpts []matrix.Option
}

// New builds a Calculator with the given options.
func New(opts ...Option) *Calculator {
	c := newConfig(opts...)

	return &Calculator{
		scalarPrec: c.scalarPrec,
		cellPrec:   c.cellPrec,
		rng:        c.rng,
		matrixOpts: c.matrixOpts,
	}
}

// checkOrder enforces the calculator's square 2..5 range.
func checkOrder(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()
	if r != c || r < MinOrder || r > MaxOrder {
		return fmt.Errorf("%dx%d: %w", r, c, ErrUnsupportedSize)
	}

	return nil
}

// toDense narrows an engine Matrix result for display.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}

	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Matrix runs op on m. m is not modified.
//
// The singular outcome of OpInverse is a KindSingular Result, not an error;
// errors are reserved for bad input (nil, wrong size) and unknown operations.
func (c *Calculator) Matrix(op MatrixOp, m matrix.Matrix) (Result, error) {
	if err := checkOrder(m); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	res := Result{Title: op.Title()}

	switch op {
	case OpDeterminant:
		det, err := matrix.Determinant(m, c.matrixOpts...)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", op, err)
		}
		res.Kind, res.Scalar = KindScalar, det

	case OpTranspose, OpAdjoint:
		var (
			out matrix.Matrix
			err error
		)
		if op == OpTranspose {
			out, err = matrix.Transpose(m)
		} else {
			out, err = matrix.Adjoint(m, c.matrixOpts...)
		}
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", op, err)
		}
		if res.Matrix, err = toDense(out); err != nil {
			return Result{}, fmt.Errorf("%s: %w", op, err)
		}
		res.Kind = KindMatrix

	case OpInverse:
		inv, err := matrix.Inverse(m, c.matrixOpts...)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", op, err)
		}
		res.Determinant = inv.Determinant()
		if d, ok := inv.Matrix(); ok {
			res.Kind, res.Matrix = KindMatrix, d
		} else {
			res.Kind = KindSingular
		}

	default:
		return Result{}, fmt.Errorf("%s: %w", op, ErrUnknownOperation)
	}

	return res, nil
}

// Vectors runs op on the pair (a, b).
func (c *Calculator) Vectors(op VectorOp, a, b vector.Vec3) (Result, error) {
	res := Result{Title: op.Title(), Kind: KindScalar}

	switch op {
	case OpDot:
		res.Scalar = vector.Dot(a, b)
	case OpCross:
		res.Kind, res.Vector = KindVector, vector.Cross(a, b)
	case OpCos:
		res.Scalar = vector.CosAngle(a, b)
	case OpSin:
		res.Scalar = vector.SinAngle(a, b)
	case OpAngle:
		res.Kind, res.Angle = KindAngle, vector.AngleBetween(a, b)
	default:
		return Result{}, fmt.Errorf("%s: %w", op, ErrUnknownOperation)
	}

	return res, nil
}
