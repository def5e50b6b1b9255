// Package matrix is a small dense linear-algebra core for float64 matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix that exclusively owns its buffer, with safe
//     At/Set accessors (2D and linear) that return ErrOutOfRange instead of
//     panicking.
//   - Basic algebra: Add, Sub, Scale, Mul, Transpose, Trace, Rank, Equal.
//   - Property predicates: IsSquare, IsUpperTriangular, IsSymmetric,
//     IsIdempotent, IsNilpotent, IsInvertible and friends.
//   - An elimination engine: in-place row operations, RowEchelon and
//     ReducedRowEchelon with an optional companion matrix that receives the
//     same row operations, and Augment.
//   - Determinant (via the echelon pivot product), Minor, Cofactor,
//     Adjugate and Inverse (Gauss–Jordan on an identity companion).
//   - SolveSLE, which classifies a linear system as NONE, ONE or INFINITE by
//     rank comparison and writes the unique solution when there is one.
//
// Every operation is synchronous, allocation-explicit and deterministic.
// Errors are package sentinels (errors.go) wrapped with the operation name;
// match them with errors.Is.
//
// Numerics are deliberately naive: pivots are compared against zero (or a
// caller-chosen epsilon, see WithEpsilon) and there is no partial pivoting
// by magnitude. The package is meant for small, hand-entered matrices.
package matrix
