// SPDX-License-Identifier: MIT
// Package matrix: structural property predicates.
//
// Purpose:
//   - Answer pure boolean questions about a matrix (square, triangular,
//     diagonal, null, identity, symmetric, antisymmetric, idempotent,
//     nilpotent).
//   - Compose only the canonical kernels (Rank, Transpose, Scale, Mul, Equal)
//     so every predicate inherits their exact semantics.
//
// Policy:
//   - Predicates never return errors: a nil matrix, or a shape for which the
//     property is undefined (e.g. a non-square triangular check), answers false.
//   - Comparisons are exact (no epsilon), matching Equal.

package matrix

// IsSquare reports Rows() == Cols().
func IsSquare(m Matrix) bool {
	return !isNil(m) && m.Rows() == m.Cols()
}

// IsUpperTriangular reports a square matrix whose entries strictly below the
// main diagonal are all zero. Non-square matrices are never triangular.
// Complexity: O(n^2).
func IsUpperTriangular(m Matrix) bool {
	if !IsSquare(m) {
		return false
	}
	n := m.Rows()
	var v float64
	var err error
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if v, err = m.At(i, j); err != nil || v != 0 {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports a square matrix whose entries strictly above the
// main diagonal are all zero. Non-square matrices are never triangular.
// Complexity: O(n^2).
func IsLowerTriangular(m Matrix) bool {
	if !IsSquare(m) {
		return false
	}
	n := m.Rows()
	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil || v != 0 {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports a matrix that is both upper and lower triangular.
func IsDiagonal(m Matrix) bool {
	return IsUpperTriangular(m) && IsLowerTriangular(m)
}

// IsNull reports Rank(m) == 0, i.e. every row sums to zero in absolute value.
func IsNull(m Matrix) bool {
	r, err := Rank(m)

	return err == nil && r == 0
}

// IsIdentity reports whether m × J == J, where J is the all-ones matrix of
// the same shape as m.
//
// Behavior highlights:
//   - This is the calculator's historical definition and is kept for
//     compatibility. It holds exactly when m is square and every row of m
//     sums to 1, so row-stochastic matrices such as [[0.5 0.5] [0.5 0.5]]
//     qualify while 2·I does not.
//   - Non-square matrices cannot be multiplied by a same-shaped J and answer false.
//
// AI-Hints:
//   - For the textbook check (ones on the diagonal, zeros elsewhere) call IsStrictIdentity.
func IsIdentity(m Matrix) bool {
	if !IsSquare(m) {
		return false
	}
	ones, err := NewOnes(m.Rows(), m.Cols())
	if err != nil {
		return false
	}
	prod, err := Mul(m, ones)
	if err != nil {
		return false
	}

	return Equal(prod, ones)
}

// IsStrictIdentity reports a square matrix with 1 on the main diagonal and 0
// everywhere else.
// Complexity: O(n^2).
func IsStrictIdentity(m Matrix) bool {
	if !IsSquare(m) {
		return false
	}
	n := m.Rows()
	var v, want float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if v, err = m.At(i, j); err != nil || v != want {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports mᵀ == m (exact). Non-square matrices are never symmetric.
func IsSymmetric(m Matrix) bool {
	if isNil(m) {
		return false
	}
	t, err := Transpose(m)
	if err != nil {
		return false
	}

	return Equal(t, m)
}

// IsAntisymmetric reports mᵀ == -m (exact).
func IsAntisymmetric(m Matrix) bool {
	if isNil(m) {
		return false
	}
	t, err := Transpose(m)
	if err != nil {
		return false
	}
	neg, err := Scale(m, -1)
	if err != nil {
		return false
	}

	return Equal(t, neg)
}

// IsIdempotent reports m·m == m (exact). Only square matrices can be
// multiplied by themselves; anything else answers false.
// Complexity: O(n^3).
func IsIdempotent(m Matrix) bool {
	if !IsSquare(m) {
		return false
	}
	sq, err := Mul(m, m)
	if err != nil {
		return false
	}

	return Equal(sq, m)
}

// IsNilpotent reports whether repeatedly squaring a working copy of m reaches
// the null matrix (per IsNull) within level-1 squarings.
//
// Implementation:
//   - Stage 1: reject non-square input and level < 2 (no squaring budget).
//   - Stage 2: W ← m; repeat level-1 times: W ← W·W, return true once IsNull(W).
//
// Behavior highlights:
//   - After k squarings W == m^(2^k), so level-1 squarings probe powers up to
//     2^(level-1). A strictly upper-triangular 3×3 matrix is detected with level 3.
//   - The identity never vanishes and always answers false.
//
// Complexity:
//   - Time O(level · n^3), Space O(n^2).
func IsNilpotent(m Matrix, level int) bool {
	if !IsSquare(m) || level < 2 {
		return false
	}
	w, err := toDense(m)
	if err != nil {
		return false
	}
	for step := 0; step < level-1; step++ {
		if w, err = Mul(w, w); err != nil {
			return false
		}
		if IsNull(w) {
			return true
		}
	}

	return false
}
