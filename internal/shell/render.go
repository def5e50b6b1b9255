// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

// FormatValue formats v with prec decimals, or with the shortest
// round-tripping representation when prec < 0. Negative zero prints as 0.
func FormatValue(v float64, prec int) string {
	if v == 0 {
		v = 0
	}
	if prec < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}

// FormatMatrix renders m in the bracketed row-major layout of
// matrix.Dense.String, e.g. "[1 2\n3 4]", honoring prec.
func FormatMatrix(m matrix.Matrix, prec int) string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			v, err := m.At(i, j)
			if err != nil {
				v = 0
			}
			b.WriteString(FormatValue(v, prec))
		}
	}
	b.WriteString("]")

	return b.String()
}

// Describe turns a matrix error into a one-line user-facing diagnostic.
func Describe(err error) string {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return "the matrix is singular (determinant is zero), it has no inverse"
	case errors.Is(err, matrix.ErrNonSquare):
		return "this operation requires a square matrix"
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return "the operand shapes are not compatible"
	case errors.Is(err, matrix.ErrNaNInf):
		return "NaN and Inf values are not accepted"
	case errors.Is(err, matrix.ErrInvalidDimensions), errors.Is(err, ErrInvalidShape):
		return "dimensions must be positive integers"
	case errors.Is(err, ErrTooLarge):
		return fmt.Sprintf("the matrix is too large: %v", err)
	case errors.Is(err, ErrInputSize):
		return fmt.Sprintf("the quantity of values doesn't match: %v", err)
	case errors.Is(err, ErrInvalidNumber):
		return fmt.Sprintf("could not read a number: %v", err)
	default:
		return err.Error()
	}
}
