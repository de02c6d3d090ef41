// SPDX-License-Identifier: MIT

// Command matcalc runs the matrix and vector panels from the command line.
//
// Usage:
//
//	matcalc -m "1, 2; 3, 4"                  # every matrix panel
//	matcalc -op inverse -m "4 7; 2 6"
//	matcalc -op cross -v1 "1 2 3" -v2 "4 5 6"
//	matcalc -random 4 -seed 42 -op det
//	matcalc -random-vectors -op angle
//
// Each panel prints its title followed by its body. Cells use -precision
// decimals and scalars one more.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/matrix"
)

const opAll = "all"

var (
	allMatrixOps = []calculator.MatrixOp{
		calculator.OpDeterminant, calculator.OpTranspose, calculator.OpAdjoint, calculator.OpInverse,
	}
	allVectorOps = []calculator.VectorOp{
		calculator.OpDot, calculator.OpCross, calculator.OpCos, calculator.OpSin,
	}
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("matcalc: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses args and writes every requested panel to w.
func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		op        = fs.String("op", opAll, "operation: determinant|transpose|adjoint|inverse|dot|cross|cos|sin|angle|all")
		mText     = fs.String("m", "", `matrix rows, e.g. "1, 2; 3, 4"`)
		v1Text    = fs.String("v1", "", `first vector, e.g. "1 2 3"`)
		v2Text    = fs.String("v2", "", "second vector")
		randomN   = fs.Int("random", 0, "generate a random NxN matrix (2..5)")
		randomVec = fs.Bool("random-vectors", false, "generate two random vectors")
		seed      = fs.Int64("seed", 0, "random seed (0: time based)")
		precision = fs.Int("precision", calculator.DefaultCellPrecision, "decimals for matrix and vector cells")
		eps       = fs.Float64("eps", matrix.DefaultEpsilon, "singularity threshold for inverse")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *precision < 0 {
		return fmt.Errorf("precision %d: must be >= 0", *precision)
	}
	if *eps < 0 {
		return fmt.Errorf("eps %g: must be >= 0", *eps)
	}

	opts := []calculator.Option{
		calculator.WithCellPrecision(*precision),
		calculator.WithScalarPrecision(*precision + 1),
		calculator.WithMatrixOptions(matrix.WithEpsilon(*eps)),
	}
	if *seed != 0 {
		opts = append(opts, calculator.WithSeed(*seed))
	}
	calc := calculator.New(opts...)

	matrixMode := *mText != "" || *randomN != 0
	vectorMode := *v1Text != "" || *v2Text != "" || *randomVec
	switch {
	case matrixMode && vectorMode:
		return fmt.Errorf("give either matrix input (-m, -random) or vector input (-v1, -v2, -random-vectors)")
	case matrixMode:
		return runMatrix(calc, w, *op, *mText, *randomN)
	case vectorMode:
		return runVectors(calc, w, *op, *v1Text, *v2Text, *randomVec)
	}

	return fmt.Errorf("no input: use -m, -random, -v1/-v2 or -random-vectors")
}

func runMatrix(calc *calculator.Calculator, w io.Writer, opName, text string, n int) error {
	ops := allMatrixOps
	if opName != opAll {
		op, err := calculator.ParseMatrixOp(opName)
		if err != nil {
			return err
		}
		ops = []calculator.MatrixOp{op}
	}

	var (
		m   *matrix.Dense
		err error
	)
	if n != 0 {
		m, err = calc.RandomMatrix(n)
	} else {
		m, err = calculator.ParseMatrix(text)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "A =\n%s\n", calc.FormatRows(m.Rows2D()))

	for _, op := range ops {
		res, err := calc.Matrix(op, m)
		if err != nil {
			return err
		}
		printPanel(w, res.Title, calc.Format(res))
	}

	return nil
}

func runVectors(calc *calculator.Calculator, w io.Writer, opName, t1, t2 string, random bool) error {
	ops := allVectorOps
	if opName != opAll {
		op, err := calculator.ParseVectorOp(opName)
		if err != nil {
			return err
		}
		ops = []calculator.VectorOp{op}
	}

	a, b := calc.RandomVectors()
	if !random {
		var err error
		if a, err = calculator.ParseVector(t1); err != nil {
			return fmt.Errorf("v1: %w", err)
		}
		if b, err = calculator.ParseVector(t2); err != nil {
			return fmt.Errorf("v2: %w", err)
		}
	}
	fmt.Fprintf(w, "a = %s\nb = %s\n", calc.FormatVector(a), calc.FormatVector(b))

	for _, op := range ops {
		res, err := calc.Vectors(op, a, b)
		if err != nil {
			return err
		}
		printPanel(w, res.Title, calc.Format(res))
	}

	return nil
}

func printPanel(w io.Writer, title, body string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, body)
}
