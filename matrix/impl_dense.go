// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set and their linear twins
//     return errors instead of panicking or terminating the process.
//   - Exclusive ownership: a Dense never shares its buffer with another Dense;
//     every derived matrix (Clone, Transpose, Minor, Augment, echelon forms)
//     is a fresh allocation.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/AtLinear/SetLinear: O(1); Clone/Fill/String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxAtLinear  = "AtLinear"  // method tag used in error wrappers
	ctxSetLinear = "SetLinear" // method tag used in error wrappers
	ctxFill      = "Fill"      // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
	_fmtRow   = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 and immutable after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Fill.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits an int; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The buffer is always zeroed; callers overwrite it with Fill or Set.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the contiguous buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy constructs Dense with strict shape validation, then sets
// validateNaNInf explicitly. Used by NewDenseFrom and derived-matrix kernels
// that must carry the operand's policy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns 0 and a wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AtLinear reads the element at linear (row-major) index a.
// The linear index addresses the same buffer as At: a == row*Cols()+col.
func (m *Dense) AtLinear(a int) (float64, error) {
	if a < 0 || a >= len(m.data) {
		return 0, fmt.Errorf("Dense.%s(%d): %w", ctxAtLinear, a, ErrOutOfRange)
	}

	return m.data[a], nil
}

// SetLinear writes v at linear (row-major) index a.
// Bounds violations are recoverable errors, exactly like reads.
func (m *Dense) SetLinear(a int, v float64) error {
	if a < 0 || a >= len(m.data) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetLinear, a, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetLinear, a, ErrNaNInf)
	}
	m.data[a] = v

	return nil
}

// Fill overwrites the whole buffer from values in row-major order.
// MAIN DESCRIPTION:
//   - Bulk ingestion of a flat sequence; the common path for parsed input.
//
// Implementation:
//   - Stage 1: require len(values) == Rows()*Cols().
//   - Stage 2: under the numeric policy, scan for NaN/±Inf before writing.
//   - Stage 3: copy into the buffer (all-or-nothing).
//
// Errors:
//   - ErrDimensionMismatch (length), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Fill(values []float64) error {
	if len(values) != len(m.data) {
		return fmt.Errorf("Dense.%s: got %d values for %dx%d: %w",
			ctxFill, len(values), m.r, m.c, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for i, v := range values {
			if isNonFinite(v) {
				return denseErrorf(ctxFill, i/m.c, i%m.c, ErrNaNInf)
			}
		}
	}
	copy(m.data, values)

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders the matrix for display:
// an opening bracket, space-separated elements per row, a newline between
// rows and a closing bracket after the last row, e.g. "[1 2\n3 4]".
// Values use the shortest representation that round-trips ('g', -1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRow)
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// toDense materializes any Matrix as a fresh *Dense (never aliasing m).
// *Dense inputs take the single-copy fast path; other implementations are
// read through At in fixed i→j order.
func toDense(m Matrix) (*Dense, error) {
	if dm, ok := m.(*Dense); ok {
		return dm.clone(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// policyOf returns the NaN/Inf policy a result derived from m inherits:
// m's own for *Dense, the package default otherwise.
func policyOf(m Matrix) bool {
	if dm, ok := m.(*Dense); ok {
		return dm.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
