package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/vector"
)

// ParseEntry turns one grid cell into a number the engine accepts.
//
// It reads the longest leading prefix that is a valid number, so "2.5cm"
// gives 2.5. Text with no numeric prefix, the empty string, NaN and values
// that overflow to ±Inf all become 0.
func ParseEntry(s string) float64 {
	s = strings.TrimSpace(s)
	for end := len(s); end > 0; end-- {
		v, err := strconv.ParseFloat(s[:end], 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0 // overflow; a shorter prefix would silently shrink the exponent
		}
		if err != nil {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}

		return v
	}

	return 0
}

// splitRows breaks grid text into rows on ';' or newlines, dropping blank rows.
func splitRows(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == '\n' || r == '\r' })
	rows := raw[:0]
	for _, r := range raw {
		if strings.TrimSpace(r) != "" {
			rows = append(rows, r)
		}
	}

	return rows
}

// splitCells breaks one row into cells. With commas, every comma-separated
// cell counts (an empty cell is 0); without, cells are whitespace-separated.
func splitCells(row string) []string {
	if strings.Contains(row, ",") {
		return strings.Split(row, ",")
	}

	return strings.Fields(row)
}

// ParseMatrix reads a square grid of order 2..5.
//
//	"1, 2; 3, 4"  or  "1 2\n3 4"
//
// Every cell goes through ParseEntry. Ragged rows yield
// matrix.ErrDimensionMismatch; other shapes yield ErrUnsupportedSize.
func ParseMatrix(text string) (*matrix.Dense, error) {
	lines := splitRows(text)
	grid := make([][]float64, len(lines))
	for i, line := range lines {
		cells := splitCells(line)
		grid[i] = make([]float64, len(cells))
		for j, cell := range cells {
			grid[i][j] = ParseEntry(cell)
		}
	}

	n := len(grid)
	if n < MinOrder || n > MaxOrder {
		return nil, fmt.Errorf("ParseMatrix: %d rows: %w", n, ErrUnsupportedSize)
	}
	m, err := matrix.NewFromRows(grid)
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}
	if m.Cols() != n {
		return nil, fmt.Errorf("ParseMatrix: %dx%d: %w", n, m.Cols(), ErrUnsupportedSize)
	}

	return m, nil
}

// ParseVector reads up to 3 cells ("1, 2, 3" or "1 2 3"); missing cells are 0.
func ParseVector(text string) (vector.Vec3, error) {
	var cells []string
	if strings.TrimSpace(text) != "" {
		cells = splitCells(text)
	}
	if len(cells) > vector.Dim {
		return vector.Vec3{}, fmt.Errorf("ParseVector: %d cells: %w", len(cells), ErrTooManyComponents)
	}

	var v vector.Vec3
	for i, cell := range cells {
		v[i] = ParseEntry(cell)
	}

	return v, nil
}
