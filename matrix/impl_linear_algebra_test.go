// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels:
// Add, Sub, Mul, Transpose, Scale, Trace, Rank and PivotRank.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSubValues checks known sums/differences on both the Dense and fallback paths.
func TestAddSubValues(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireEqualMatrix(t, FromRows(t, [][]float64{{11, 22}, {33, 44}}), sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	RequireEqualMatrix(t, FromRows(t, [][]float64{{9, 18}, {27, 36}}), diff)

	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	RequireEqualMatrix(t, sum, slow)

	// Operands are untouched.
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

// TestAddAlgebraicLaws verifies commutativity and associativity (exact).
func TestAddAlgebraicLaws(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, -2, 3}, {0, 5, 7}})
	b := FromRows(t, [][]float64{{4, 4, -1}, {2, 2, 2}})
	c := FromRows(t, [][]float64{{-8, 0, 1}, {6, -3, 9}})

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	RequireEqualMatrix(t, ab, ba)

	left, err := matrix.Add(ab, c)
	require.NoError(t, err)
	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	right, err := matrix.Add(a, bc)
	require.NoError(t, err)
	RequireEqualMatrix(t, left, right)
}

// TestAddSubErrors covers shape mismatch and nil operands.
func TestAddSubErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"rows differ", MustDense(t, 2, 2), MustDense(t, 3, 2), matrix.ErrDimensionMismatch},
		{"cols differ", MustDense(t, 2, 2), MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
		{"nil left", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"nil right", MustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := matrix.Add(tc.a, tc.b)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, res)
			_, err = matrix.Sub(tc.a, tc.b)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestMul covers square, rectangular and fallback products.
func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b [][]float64
		want [][]float64
	}{
		{
			name: "2x2",
			a:    [][]float64{{1, 2}, {3, 4}},
			b:    [][]float64{{5, 6}, {7, 8}},
			want: [][]float64{{19, 22}, {43, 50}},
		},
		{
			name: "2x3 by 3x2",
			a:    [][]float64{{1, 2, 3}, {4, 5, 6}},
			b:    [][]float64{{7, 8}, {9, 10}, {11, 12}},
			want: [][]float64{{58, 64}, {139, 154}},
		},
		{
			name: "row by column",
			a:    [][]float64{{1, 2, 3}},
			b:    [][]float64{{4}, {5}, {6}},
			want: [][]float64{{32}},
		},
		{
			name: "zeros skipped",
			a:    [][]float64{{0, 0}, {0, 1}},
			b:    [][]float64{{9, 9}, {2, 3}},
			want: [][]float64{{0, 0}, {2, 3}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, b := FromRows(t, tc.a), FromRows(t, tc.b)
			want := FromRows(t, tc.want)

			fast, err := matrix.Mul(a, b)
			require.NoError(t, err)
			RequireEqualMatrix(t, want, fast)

			slow, err := matrix.Mul(hide{a}, b)
			require.NoError(t, err)
			RequireEqualMatrix(t, want, slow)
		})
	}
}

// TestMulErrors checks inner-dimension mismatch and nil operands.
func TestMulErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Product(MustDense(t, 2, 3), typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose verifies shape, element mapping and the involution property.
func TestTranspose(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireEqualMatrix(t, FromRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), at)

	att, err := matrix.T(at)
	require.NoError(t, err)
	RequireEqualMatrix(t, a, att)

	slow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	RequireEqualMatrix(t, at, slow)

	for seed := int64(1); seed <= 5; seed++ {
		m := RandomDense(t, int(seed), int(seed)+2, seed)
		mt, err := matrix.Transpose(m)
		require.NoError(t, err)
		mtt, err := matrix.Transpose(mt)
		require.NoError(t, err)
		RequireEqualMatrix(t, m, mtt)
	}

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale covers scaling, the zero scalar and non-finite scalars.
func TestScale(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, -2}, {0.5, 4}})
	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	RequireEqualMatrix(t, FromRows(t, [][]float64{{2, -4}, {1, 8}}), s)

	z, err := matrix.Scale(a, 0)
	require.NoError(t, err)
	require.True(t, matrix.IsNull(z))

	_, err = matrix.Scale(a, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTrace covers square input and the non-square error with a zero value.
func TestTrace(t *testing.T) {
	t.Parallel()

	tr, err := matrix.Trace(FromRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	tr, err = matrix.Trace(hide{FromRows(t, [][]float64{{7}})})
	require.NoError(t, err)
	require.Equal(t, 7.0, tr)

	tr, err = matrix.Trace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Zero(t, tr)
}

// TestRankRowSum pins the row-sum rank and contrasts it with PivotRank.
func TestRankRowSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rows      [][]float64
		wantRank  int
		wantPivot int
	}{
		{"null", [][]float64{{0, 0}, {0, 0}}, 0, 0},
		{"identity", [][]float64{{1, 0}, {0, 1}}, 2, 2},
		{"dependent rows", [][]float64{{1, 1}, {2, 2}}, 2, 1},
		{"cancelling signs", [][]float64{{1, -1}, {0, 0}}, 1, 1},
		{"wide", [][]float64{{1, 2, 3}, {2, 6, 8}}, 2, 2},
		{"tall", [][]float64{{1, 0}, {0, 1}, {1, 1}}, 3, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := FromRows(t, tc.rows)
			r, err := matrix.Rank(m)
			require.NoError(t, err)
			require.Equal(t, tc.wantRank, r)

			p, err := matrix.PivotRank(m)
			require.NoError(t, err)
			require.Equal(t, tc.wantPivot, p)
		})
	}

	_, err := matrix.Rank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.PivotRank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPivotRankEpsilon shows the zero threshold absorbing round-off residue.
func TestPivotRankEpsilon(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 1}, {1, 1 + 1e-12}})

	exact, err := matrix.PivotRank(m)
	require.NoError(t, err)
	require.Equal(t, 2, exact)

	loose, err := matrix.PivotRank(m, matrix.WithEpsilon(1e-9))
	require.NoError(t, err)
	require.Equal(t, 1, loose)
}

// Derived matrices inherit the NaN/Inf policy of their left operand.
func TestDerivedMatricesInheritPolicy(t *testing.T) {
	t.Parallel()

	lenient, err := matrix.NewDenseFrom(2, 2, []float64{2, 0, 0, 4}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	strict := FromRows(t, [][]float64{{1, 0}, {0, 1}})

	derive := map[string]func(a, b matrix.Matrix) (*matrix.Dense, error){
		"Add":       matrix.Add,
		"Sub":       matrix.Sub,
		"Mul":       matrix.Mul,
		"Augment":   matrix.Augment,
		"Transpose": func(a, _ matrix.Matrix) (*matrix.Dense, error) { return matrix.Transpose(a) },
		"Scale":     func(a, _ matrix.Matrix) (*matrix.Dense, error) { return matrix.Scale(a, 2) },
		"Minor":     func(a, _ matrix.Matrix) (*matrix.Dense, error) { return matrix.Minor(a, 0, 0) },
		"Inverse":   func(a, _ matrix.Matrix) (*matrix.Dense, error) { return matrix.Inverse(a) },
	}
	for name, f := range derive {
		name, f := name, f
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := f(lenient, strict)
			require.NoError(t, err)
			require.NoError(t, out.Set(0, 0, math.NaN()))

			out, err = f(strict, lenient)
			require.NoError(t, err)
			require.ErrorIs(t, out.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
		})
	}
}
