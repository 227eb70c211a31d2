// Package matrix is the numeric linear-algebra layer of eigensteps.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the Matrix interface, with
//     error-returning accessors (no panics on bad indices) and a finite-only
//     value policy.
//   - The three elementary row operations (SwapRows, ScaleRow, AddScaledRow)
//     and Gauss-Jordan RowReduce built on them.
//   - RREF byproducts: PivotColumns, Rank and NullSpaceBasis.
//   - Determinant by cofactor expansion, Trace, IsTriangular.
//   - Small kernels used by the eigen pipeline: Add, Sub, Scale, Mul,
//     Transpose, MatVec, NewIdentity.
//
// Tolerances are configured with functional options (WithEpsilon,
// WithPivotTolerance). Pivot selection takes the first entry above eps, not the
// largest, so reductions follow the textbook sequence; very ill-conditioned
// inputs can under-report rank.
//
// Iterative eigenvalue routines live in the ops subpackage.
package matrix
