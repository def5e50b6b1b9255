// SPDX-License-Identifier: MIT
// Package matrix: the elimination engine.
//
// Purpose:
//   - Elementary row operations that mutate a *Dense in place
//     (ScaleRow, SwapRows, AddScaledRow).
//   - Forward Gauss elimination (RowEchelon) and Gauss–Jordan back
//     substitution (ReducedRowEchelon) on a copy of the input, with an
//     optional companion matrix that receives the identical row operations.
//   - Augment builds [A|B].
//
// Determinant bookkeeping:
//   RowEchelon returns alpha such that det(A) = alpha · Π diag(E).
//   Normalizing a pivot p to 1 multiplies alpha by p; a row swap negates it.
//   Row additions leave the determinant unchanged, so the reduced form
//   carries the same alpha.
//
// Pivot policy (naive, deterministic):
//   For the current (row, col): a pivot |p| > eps is normalized to 1 and the
//   column is cleared below it. A zero pivot is replaced by the first lower
//   row with a nonzero entry in the column (swap); if there is none the
//   column is skipped and the row index does not advance.

package matrix

import (
	"fmt"
	"math"
)

// rowOpErrorf tags a row operation failure with the offending row indices.
func rowOpErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, i, j, err)
}

// ScaleRow multiplies row i by a nonzero factor f in place.
// Errors: ErrOutOfRange (row), ErrZeroFactor (f == 0), ErrNaNInf (f non-finite).
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, f float64) error {
	if i < 0 || i >= m.r {
		return rowOpErrorf(opRowOpScale, i, i, ErrOutOfRange)
	}
	if f == 0 {
		return rowOpErrorf(opRowOpScale, i, i, ErrZeroFactor)
	}
	if isNonFinite(f) {
		return rowOpErrorf(opRowOpScale, i, i, ErrNaNInf)
	}
	m.scaleRow(i, f)

	return nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return rowOpErrorf(opRowOpSwap, i, j, ErrOutOfRange)
	}
	m.swapRows(i, j)

	return nil
}

// AddScaledRow performs row dst += f · row src in place.
// Errors: ErrOutOfRange, ErrNaNInf (f non-finite). Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, f float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return rowOpErrorf(opRowOpAddScaled, dst, src, ErrOutOfRange)
	}
	if isNonFinite(f) {
		return rowOpErrorf(opRowOpAddScaled, dst, src, ErrNaNInf)
	}
	m.addScaledRow(dst, src, f)

	return nil
}

// scaleRow is the unchecked kernel behind ScaleRow.
func (m *Dense) scaleRow(i int, f float64) {
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] *= f
	}
}

// swapRows is the unchecked kernel behind SwapRows.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// addScaledRow is the unchecked kernel behind AddScaledRow.
func (m *Dense) addScaledRow(dst, src int, f float64) {
	rd := m.data[dst*m.c : (dst+1)*m.c]
	rs := m.data[src*m.c : (src+1)*m.c]
	for k := range rd {
		rd[k] += f * rs[k]
	}
}

// eliminator applies every row operation to the working matrix and, when
// present, to the companion, keeping both in lock-step.
type eliminator struct {
	a   *Dense  // working copy being reduced
	b   *Dense  // optional companion (nil allowed)
	eps float64 // zero threshold
}

func (e *eliminator) isZero(v float64) bool {
	if v < 0 {
		v = -v
	}

	return v <= e.eps
}

func (e *eliminator) scale(i int, f float64) {
	e.a.scaleRow(i, f)
	if e.b != nil {
		e.b.scaleRow(i, f)
	}
}

func (e *eliminator) swap(i, j int) {
	e.a.swapRows(i, j)
	if e.b != nil {
		e.b.swapRows(i, j)
	}
}

func (e *eliminator) addScaled(dst, src int, f float64) {
	e.a.addScaledRow(dst, src, f)
	if e.b != nil {
		e.b.addScaledRow(dst, src, f)
	}
}

// forward runs Gauss elimination and returns the determinant factor alpha.
func (e *eliminator) forward() float64 {
	a := e.a
	alpha := 1.0
	row := 0
	var p, f float64
	var k int
	for col := 0; col < a.c && row < a.r; col++ {
		p = a.data[row*a.c+col]
		if e.isZero(p) {
			// Look for the first lower row that can supply a pivot.
			swapWith := -1
			for k = row + 1; k < a.r; k++ {
				if !e.isZero(a.data[k*a.c+col]) {
					swapWith = k
					break
				}
			}
			if swapWith < 0 {
				// Whole column is zero from here down: leave the zero pivot.
				continue
			}
			e.swap(row, swapWith)
			alpha = -alpha
			p = a.data[row*a.c+col]
		}

		// Normalize the pivot to exactly 1.
		e.scale(row, 1/p)
		a.data[row*a.c+col] = 1
		alpha *= p

		// Clear the column below the pivot.
		for k = row + 1; k < a.r; k++ {
			f = a.data[k*a.c+col]
			if f == 0 {
				continue
			}
			e.addScaled(k, row, -f)
			a.data[k*a.c+col] = 0
		}
		row++
	}

	return alpha
}

// backward zeroes the entries above every pivot of an echelon form.
func (e *eliminator) backward() {
	a := e.a
	var pc, k int
	var f float64
	for i := a.r - 1; i >= 0; i-- {
		pc = e.pivotCol(i)
		if pc < 0 {
			continue
		}
		for k = 0; k < i; k++ {
			f = a.data[k*a.c+pc]
			if f == 0 {
				continue
			}
			e.addScaled(k, i, -f)
			a.data[k*a.c+pc] = 0
		}
	}
}

// pivotCol returns the column of the first non-zero entry of row i, or -1.
func (e *eliminator) pivotCol(i int) int {
	base := i * e.a.c
	for j := 0; j < e.a.c; j++ {
		if !e.isZero(e.a.data[base+j]) {
			return j
		}
	}

	return -1
}

// newEliminator validates a and the optional companion b and prepares a
// private working copy of a.
func newEliminator(tag string, a Matrix, b *Dense, opts []Option) (*eliminator, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if b != nil && b.r != a.Rows() {
		return nil, matrixErrorf(tag, fmt.Errorf("companion has %d rows, want %d: %w",
			b.r, a.Rows(), ErrDimensionMismatch))
	}
	work, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	return &eliminator{a: work, b: b, eps: o.eps}, nil
}

// RowEchelon reduces a copy of a to row-echelon form by forward Gauss
// elimination, mirroring every row operation onto the companion b.
//
// Implementation:
//   - Stage 1: validate a (non-nil) and b (nil, or a.Rows() rows); copy a.
//   - Stage 2: column by column, normalize the pivot to 1 (alpha *= p) and
//     clear the entries below it; on a zero pivot swap with the first lower
//     row that has a nonzero entry (alpha = -alpha) or skip the column.
//
// Behavior highlights:
//   - a is never mutated; b is mutated in place (it is the caller's accumulator).
//   - Pivots are exactly 1 and cleared entries exactly 0 in the result.
//
// Inputs:
//   - a: any matrix (rectangular allowed).
//   - b: optional companion (e.g. a right-hand side or an identity that
//     accumulates the inverse); nil to skip.
//   - opts: WithEpsilon sets the zero threshold (default exact).
//
// Returns:
//   - *Dense: the echelon form E.
//   - float64: alpha with det(a) = alpha · Π diag(E) for square a.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (companion rows).
//
// Complexity:
//   - Time O(r · c · (c + cb)), Space O(r*c) for the copy.
func RowEchelon(a Matrix, b *Dense, opts ...Option) (*Dense, float64, error) {
	e, err := newEliminator(opRowEchelon, a, b, opts)
	if err != nil {
		return nil, 0, err
	}
	alpha := e.forward()

	return e.a, alpha, nil
}

// ReducedRowEchelon runs RowEchelon and then eliminates upward so that every
// pivot column holds a single 1. Operations are mirrored onto b.
// alpha is the same as RowEchelon's (row additions preserve determinants).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r · c · (c + cb)).
func ReducedRowEchelon(a Matrix, b *Dense, opts ...Option) (*Dense, float64, error) {
	e, err := newEliminator(opReducedEchelon, a, b, opts)
	if err != nil {
		return nil, 0, err
	}
	alpha := e.forward()
	e.backward()

	return e.a, alpha, nil
}

// PivotRank returns the algebraic rank of m: the number of pivots found by
// RowEchelon under the zero threshold from opts.
// Complexity: O(r · c^2).
func PivotRank(m Matrix, opts ...Option) (int, error) {
	e, err := newEliminator(opPivotRank, m, nil, opts)
	if err != nil {
		return 0, err
	}
	e.forward()

	return e.a.nonZeroRows(e.eps), nil
}

// nonZeroRows counts rows holding at least one entry with |x| > eps, the
// same per-element zero test the eliminator uses to pick pivots. On an
// echelon form this is the number of pivots.
func (m *Dense) nonZeroRows(eps float64) int {
	count := 0
	for i := 0; i < m.r; i++ {
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			if math.Abs(v) > eps {
				count++
				break
			}
		}
	}

	return count
}

// Augment concatenates b to the right of a, producing the r×(ca+cb) matrix [a|b].
// With a column vector b this is the augmented matrix of a linear system.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r·(ca+cb)), Space O(r·(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, ca, cb := da.r, da.c, db.c
	res, err := newDenseWithPolicy(rows, ca+cb, da.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	for i := 0; i < rows; i++ {
		copy(res.data[i*(ca+cb):i*(ca+cb)+ca], da.data[i*ca:(i+1)*ca])
		copy(res.data[i*(ca+cb)+ca:(i+1)*(ca+cb)], db.data[i*cb:(i+1)*cb])
	}

	return res, nil
}
