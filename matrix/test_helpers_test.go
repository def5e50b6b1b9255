// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and the elimination engine.
//   - Keep all data finite and hand-checkable so exact assertions stay valid.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances for results that carry round-off (inverse products, Laplace identity).
const (
	rtolClose = 1e-9
	atolClose = 1e-9
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (fallback) path of a kernel.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// FromRows builds a *Dense from row slices of equal length.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		require.Lenf(t, row, cols, "row %d has ragged length", i)
		flat = append(flat, row...)
	}
	m, err := matrix.NewDenseFrom(len(rows), cols, flat)
	require.NoError(t, err)

	return m
}

// Column builds an n×1 column vector.
func Column(t testing.TB, values ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(len(values), 1, values)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireEqualMatrix asserts exact equality and prints both operands on failure.
func RequireEqualMatrix(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "want\n%v\ngot\n%v", want, got)
}

// RequireClose asserts element-wise closeness within rtolClose/atolClose.
func RequireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtolClose, atolClose)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}

// RandomDense fills an r×c matrix with values in [-1, 1) from a fixed seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}
