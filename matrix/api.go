// SPDX-License-Identifier: MIT
// Package matrix: public constructors and thin facades.
//
// Purpose:
//   - Provide intention-revealing constructors (identity, null, ones,
//     from-values) on top of NewDense.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewNull returns the dim×dim null (all-zero) matrix.
func NewNull(dim int) (*Dense, error) {
	return NewDense(dim, dim)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewOnes returns a rows×cols matrix with every element equal to 1.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// NewDenseFrom allocates a rows×cols matrix and fills it from values in
// row-major order.
// Implementation:
//   - Stage 1: resolve options (numeric policy).
//   - Stage 2: allocate via NewDense; Stage 3: Fill.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (len(values) != rows*cols),
//     ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewDenseFrom, err)
	}
	if err = m.Fill(values); err != nil {
		return nil, matrixErrorf(opNewDenseFrom, err)
	}

	return m, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity(m.Rows())
}

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }
