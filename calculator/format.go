package calculator

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/vector"
)

// SingularMessage is what the inverse panel shows when no inverse exists.
const SingularMessage = "Matrix is singular (determinant = 0). Inverse does not exist."

// formatFixed renders v with prec decimals, without a "-" on values that
// round to zero.
func formatFixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}

// formatCells renders "[a, b, c]" with the cell precision.
func (c *Calculator) formatCells(vals []float64) string {
	cells := make([]string, len(vals))
	for i, v := range vals {
		cells[i] = formatFixed(v, c.cellPrec)
	}

	return "[" + strings.Join(cells, ", ") + "]"
}

// FormatScalar renders a scalar with the scalar precision.
func (c *Calculator) FormatScalar(v float64) string { return formatFixed(v, c.scalarPrec) }

// FormatVector renders a vector with the cell precision.
func (c *Calculator) FormatVector(v vector.Vec3) string { return c.formatCells(v.Slice()) }

// FormatRows renders one bracketed line per row with the cell precision.
func (c *Calculator) FormatRows(rows [][]float64) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = c.formatCells(row)
	}

	return strings.Join(lines, "\n")
}

// Format renders the body of a Result panel (no title).
//
//	determinant  → "det(A) = -2.0000"
//	matrix       → "[-2.000, 1.000]\n[1.500, -0.500]"
//	singular     → SingularMessage
//	vector       → "[-3.000, 6.000, -3.000]"
//	angle        → "cos θ = 0.0000\nsin θ = 1.0000"
func (c *Calculator) Format(r Result) string {
	switch r.Kind {
	case KindScalar:
		if r.Title == OpDeterminant.Title() {
			return "det(A) = " + c.FormatScalar(r.Scalar)
		}

		return c.FormatScalar(r.Scalar)
	case KindMatrix:
		if r.Matrix == nil {
			return ""
		}

		return c.FormatRows(r.Matrix.Rows2D())
	case KindSingular:
		return SingularMessage
	case KindVector:
		return c.FormatVector(r.Vector)
	case KindAngle:
		return "cos θ = " + c.FormatScalar(r.Angle.Cos) + "\nsin θ = " + c.FormatScalar(r.Angle.Sin)
	}

	return ""
}
