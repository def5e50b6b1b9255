// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrInputSize is returned when the number of values on a line does not
	// match the number the current prompt expects.
	ErrInputSize = errors.New("input size mismatch")
	// ErrInvalidNumber is returned for a token that is not a decimal number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidShape is returned for a malformed or non-positive RxC shape.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrTooLarge is returned for a shape whose element count does not fit an int.
	ErrTooLarge = errors.New("matrix too large")
)

// ParseNumbers splits line on whitespace and parses exactly want values.
func ParseNumbers(line string, want int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: got %d values, expected %d", ErrInputSize, len(fields), want)
	}

	return parseFields(fields)
}

func parseFields(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, f)
		}
		out[i] = v
	}

	return out, nil
}

// ParsePositive parses a strictly positive integer such as a dimension or a level.
func ParsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", ErrInvalidNumber, s)
	}

	return n, nil
}

// ElementCount returns rows*cols for positive dimensions, or ErrTooLarge when
// the product overflows.
func ElementCount(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, rows, cols)
	}

	return rows * cols, nil
}

// ParseShape parses "RxC" (also "RXC" and "R×C") into rows and cols.
func ParseShape(s string) (rows, cols int, err error) {
	norm := strings.NewReplacer("X", "x", "×", "x").Replace(strings.TrimSpace(s))
	r, c, ok := strings.Cut(norm, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q, want RxC", ErrInvalidShape, s)
	}
	if rows, err = ParsePositive(r); err != nil {
		return 0, 0, fmt.Errorf("%w: %q, want RxC", ErrInvalidShape, s)
	}
	if cols, err = ParsePositive(c); err != nil {
		return 0, 0, fmt.Errorf("%w: %q, want RxC", ErrInvalidShape, s)
	}

	return rows, cols, nil
}

// ParseMatrix builds a rows×cols matrix from element tokens in row-major order.
// Tokens may themselves contain whitespace-separated values, so both
// ["1", "2", "3", "4"] and ["1 2", "3 4"] describe the same 2×2 matrix.
func ParseMatrix(rows, cols int, tokens []string, opts ...matrix.Option) (*matrix.Dense, error) {
	n, err := ElementCount(rows, cols)
	if err != nil {
		return nil, err
	}
	vals, err := ParseNumbers(strings.Join(tokens, " "), n)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(rows, cols, vals, opts...)
}
