// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels (exact and tolerant).
//
// Purpose:
//   - Equal is the exact structural equality the predicates are built on
//     (IsSymmetric, IsIdempotent, IsIdentity...): same shape, bitwise-equal
//     values under ==, no tolerance.
//   - AllClose is the tolerant comparison used when round-off is expected,
//     e.g. A·A⁻¹ ≈ I.

package matrix

import "math"

// Equal reports whether a and b have the same shape and exactly equal
// elements. Nil operands are never equal. NaN != NaN, as in IEEE-754.
// Complexity: O(r*c), early exit on the first difference.
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Dense fast-path: compare flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	var av, bv float64
	var errA, errB error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Errors:
//   - ErrNaNInf (tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateTolerance(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		// Check |a-b| ≤ atol + rtol*|b|; NaN fails the comparison naturally.
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil
		}
	}

	return true, nil
}
