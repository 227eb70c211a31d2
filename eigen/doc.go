// SPDX-License-Identifier: MIT

// Package eigen computes the real eigenvalues and eigenspaces of a square
// matrix of order 1..5, together with every step of the textbook
// derivation.
//
// Pipeline:
//
//  1. symbolic.BuildCharacteristicMatrix builds xI - A.
//  2. symbolic.ExpandDeterminant writes det(xI - A) as an expression.
//  3. polynomial.Expand turns it into descending coefficients.
//  4. roots.Solve finds the real roots: closed forms up to degree 3, the
//     hybrid Newton search from degree 4.
//  5. Each root gets its algebraic multiplicity, clamped so the total never
//     exceeds n, and its eigenspace: λI - A is row-reduced and its null
//     space read off (BuildEigenspace).
//  6. roots.ComplexRoots (Durand–Kerner) accounts for the rest. While the
//     real roots and the unexplained complex ones do not add up to n, or an
//     eigenspace is degenerate, the diagonalization tiers run in order:
//     Jacobi rotations (symmetric A only), unshifted QR iteration, and
//     gonum's general eigensolver. Their values are only candidates: each
//     is polished and verified against the characteristic polynomial.
//
// Numerical trouble never fails the call. A spectrum that does not add up
// comes back with Complete=false; a degenerate null space is marked on its
// Eigenspace. Both are also logged on the "eigen" logger (go-log); enable
// with logging.SetLogLevel("eigen", "debug") or GOLOG_LOG_LEVEL.
//
// Calls are pure: no state is shared between them and the input is never
// modified, so independent matrices may be processed concurrently.
package eigen
