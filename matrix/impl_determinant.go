// SPDX-License-Identifier: MIT
// Package matrix: determinant, minors, cofactors, adjugate and inverse.
//
// Purpose:
//   - Determinant via the echelon pivot product: det(A) = alpha · Π diag(E).
//   - Minor/Cofactor/Adjugate via elimination-based minor determinants
//     (polynomial, no recursive Laplace expansion).
//   - Inverse via Gauss–Jordan on an identity companion.
//
// Error policy:
//   - Non-square input → ErrNonSquare.
//   - A zero determinant on inversion → ErrSingular; no placeholder matrix
//     is ever returned.

package matrix

import "fmt"

// Determinant returns det(a).
//
// Implementation:
//   - Stage 1: ValidateSquare(a).
//   - Stage 2: RowEchelon(a) → (E, alpha); Stage 3: DeterminantFromEchelon.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (value 0 is returned alongside).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(a Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	e, alpha, err := RowEchelon(a, nil, opts...)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if e.hasZeroDiagonal(gatherOptions(opts...).eps) {
		return 0, nil // rank-deficient under the zero threshold
	}

	return DeterminantFromEchelon(e, alpha)
}

// hasZeroDiagonal reports a diagonal entry with |x| <= eps (a missing pivot).
func (m *Dense) hasZeroDiagonal(eps float64) bool {
	var v float64
	for i := 0; i < m.r && i < m.c; i++ {
		v = m.data[i*m.c+i]
		if v <= eps && -v <= eps {
			return true
		}
	}

	return false
}

// DeterminantFromEchelon returns alpha · Π diag(e) for an echelon form e and
// the alpha produced alongside it by RowEchelon or ReducedRowEchelon.
// It lets callers that already reduced a matrix skip a second elimination.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func DeterminantFromEchelon(e Matrix, alpha float64) (float64, error) {
	if err := ValidateSquare(e); err != nil {
		return 0, matrixErrorf(opDetFromEchelon, err)
	}
	det := alpha
	var v float64
	var err error
	for i := 0; i < e.Rows(); i++ {
		if v, err = e.At(i, i); err != nil {
			return 0, matrixErrorf(opDetFromEchelon, err)
		}
		det *= v
	}
	if det == 0 {
		return 0, nil // normalize -0
	}

	return det, nil
}

// IsInvertible reports a square matrix with a nonzero determinant.
func IsInvertible(a Matrix, opts ...Option) bool {
	det, err := Determinant(a, opts...)

	return err == nil && det != 0
}

// Minor returns a copy of a with row `row` and column `col` removed.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange (row/col); ErrInvalidDimensions when a has
//     a single row or column (the minor would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor(a Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	src, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := newDenseWithPolicy(rows-1, cols-1, policyOf(a))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	dst := 0
	var i, j int
	for i = 0; i < rows; i++ {
		if i == row {
			continue
		}
		for j = 0; j < cols; j++ {
			if j == col {
				continue
			}
			res.data[dst] = src.data[i*cols+j]
			dst++
		}
	}

	return res, nil
}

// Cofactor returns (-1)^(row+col) · det(Minor(a, row, col)).
// The cofactor of a 1×1 matrix is 1 (determinant of the empty minor).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O(n^3).
func Cofactor(a Matrix, row, col int, opts ...Option) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	n := a.Rows()
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if n == 1 {
		return 1, nil
	}
	minor, err := Minor(a, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	det, err := Determinant(minor, opts...)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (row+col)%2 == 1 {
		det = -det
	}
	if det == 0 {
		return 0, nil // normalize -0
	}

	return det, nil
}

// Adjugate returns adj(a): the transpose of the cofactor matrix, so that
// a · adj(a) = adj(a) · a = det(a) · I.
//
// Implementation:
//   - Stage 1: ValidateSquare(a).
//   - Stage 2: C[i,j] = Cofactor(a, i, j) for every cell.
//   - Stage 3: return Cᵀ.
//
// Behavior highlights:
//   - Defined for singular matrices too (where Inverse fails).
//
// Errors: ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^5) (n^2 cofactors, each an O(n^3) elimination), Space O(n^2).
func Adjugate(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := a.Rows()
	cof, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	var c float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c, err = Cofactor(a, i, j, opts...); err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			cof.data[i*n+j] = c
		}
	}

	return Transpose(cof)
}

// Inverse computes a⁻¹ by Gauss–Jordan elimination on [a | I].
//
// Implementation:
//   - Stage 1: ValidateSquare(a); build the identity companion.
//   - Stage 2: ReducedRowEchelon(a, I); the companion turns into the inverse candidate.
//   - Stage 3: det from the reduced form; zero → ErrSingular, else return the companion.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - The input is never mutated.
//   - Results carry round-off: compare A·A⁻¹ with I via AllClose, not Equal.
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := NewIdentity(a.Rows())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	rref, alpha, err := ReducedRowEchelon(a, inv, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := DeterminantFromEchelon(rref, alpha)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 || rref.hasZeroDiagonal(gatherOptions(opts...).eps) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	inv.validateNaNInf = policyOf(a)

	return inv, nil
}
