// SPDX-License-Identifier: MIT
// Package matrix: systems of linear equations.
//
// Purpose:
//   - Classify A·x = b as inconsistent, uniquely solvable or underdetermined
//     by comparing ranks of the reduced coefficient matrix and of [A|b].
//   - Extract the unique solution when there is one.
//
// Notes:
//   - Ranks count rows of the reduced forms that hold an entry above the
//     zero threshold, the same per-element test that selects pivots. On a
//     reduced row-echelon form this is the algebraic rank, and with eps == 0
//     it equals the row-sum rank.

package matrix

import "fmt"

// SleSolution is the outcome class of a linear system.
type SleSolution int

const (
	// SolutionNone marks an inconsistent system.
	SolutionNone SleSolution = iota
	// SolutionOne marks a system with exactly one solution.
	SolutionOne
	// SolutionInfinite marks a consistent system with free variables.
	SolutionInfinite
)

// String returns NONE, ONE or INFINITE.
func (s SleSolution) String() string {
	switch s {
	case SolutionNone:
		return "NONE"
	case SolutionOne:
		return "ONE"
	case SolutionInfinite:
		return "INFINITE"
	default:
		return fmt.Sprintf("SleSolution(%d)", int(s))
	}
}

// SolveSLE classifies the system a·x = b and, when it has exactly one
// solution, writes that solution into x.
//
// Implementation:
//   - Stage 1: a and b must share a row count, b must be a single column and
//     x must be a.Cols()×1.
//   - Stage 2: ReducedRowEchelon(a, b') where b' is a private copy of b.
//   - Stage 3: compare r = rank(rref(a)) with ra = rank([rref(a)|b']):
//     ra > r → SolutionNone; ra < a.Cols() → SolutionInfinite;
//     otherwise SolutionOne and x[i] = b'[i].
//
// Behavior highlights:
//   - a and b are never mutated; x is written only for SolutionOne.
//   - Overdetermined systems (more equations than unknowns) are classified
//     the same way; a consistent one leaves its surplus rows zero.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (returned with SolutionNone).
//
// Complexity:
//   - Time O(r · c^2), Space O(r·c).
func SolveSLE(a, b Matrix, x *Dense, opts ...Option) (SleSolution, error) {
	if err := ValidateNotNil(a); err != nil {
		return SolutionNone, matrixErrorf(opSolveSLE, err)
	}
	if err := ValidateColumnVector(b, a.Rows()); err != nil {
		return SolutionNone, matrixErrorf(opSolveSLE, fmt.Errorf("rhs: %w", err))
	}
	if x == nil {
		return SolutionNone, matrixErrorf(opSolveSLE, ErrNilMatrix)
	}
	if err := ValidateColumnVector(x, a.Cols()); err != nil {
		return SolutionNone, matrixErrorf(opSolveSLE, fmt.Errorf("solution: %w", err))
	}

	rhs, err := toDense(b)
	if err != nil {
		return SolutionNone, matrixErrorf(opSolveSLE, err)
	}
	rref, _, err := ReducedRowEchelon(a, rhs, opts...)
	if err != nil {
		return SolutionNone, matrixErrorf(opSolveSLE, err)
	}
	aug, err := Augment(rref, rhs)
	if err != nil {
		return SolutionNone, matrixErrorf(opSolveSLE, err)
	}

	eps := gatherOptions(opts...).eps
	coefRank := rref.nonZeroRows(eps)
	augRank := aug.nonZeroRows(eps)
	switch {
	case augRank > coefRank:
		return SolutionNone, nil
	case augRank < a.Cols():
		return SolutionInfinite, nil
	}

	// Full column rank: pivot i sits at (i,i), so row i of b' holds x[i].
	n := a.Cols()
	for i := 0; i < n; i++ {
		x.data[i] = rhs.data[i]
	}

	return SolutionOne, nil
}

// Solve is SolveSLE with a freshly allocated solution vector.
// The vector is nil unless the result is SolutionOne.
func Solve(a, b Matrix, opts ...Option) (SleSolution, *Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return SolutionNone, nil, matrixErrorf(opSolveSLE, err)
	}
	x, err := NewDense(a.Cols(), 1)
	if err != nil {
		return SolutionNone, nil, matrixErrorf(opSolveSLE, err)
	}
	kind, err := SolveSLE(a, b, x, opts...)
	if err != nil || kind != SolutionOne {
		return kind, nil, err
	}

	return kind, x, nil
}
