// SPDX-License-Identifier: MIT

// Package eigensteps computes eigenvalues and eigenspaces of small real
// matrices (order 1..5) the way a linear-algebra course derives them,
// keeping every intermediate step as plain data.
//
// 🚀 What does it do?
//
//	Given A, it produces:
//		• the characteristic matrix xI − A
//		• det(xI − A) written out by cofactor expansion
//		• the expanded characteristic polynomial and its coefficients
//		• the real roots (closed forms up to degree 3, hybrid Newton search beyond)
//		• an eigenspace basis for every real eigenvalue, with defective spaces flagged
//		• trace, an "all real" flag and an explicit "complete spectrum" flag
//
// ✨ Numerical safety nets
//
//   - Every root is verified against the original polynomial, never only a deflated factor.
//   - Roots that do not add up to the order, or a degenerate eigenspace, trigger
//     diagonalization tiers: Jacobi (symmetric),
//     QR iteration, then gonum's general eigensolver.
//   - Degenerate null spaces are reported on the result and logged, never hidden.
//
// Packages, leaf first:
//
//	matrix/     Dense, row operations, RREF, rank, null space, determinant, trace
//	matrix/ops/ Gram–Schmidt QR, QR iteration, Jacobi rotations, gonum tier
//	polynomial/ Poly arithmetic, tokenizer, shunting-yard parser, expansion
//	symbolic/   xI − A cells and the determinant expansion string
//	roots/      real root solver, multiplicity, Durand–Kerner
//	eigen/      the pipeline: Compute / ComputeMatrix
//
// Quick example:
//
//	res, err := eigen.Compute([][]float64{{2, 1}, {0, 2}}, eigen.DefaultOptions())
//	// res.CharacteristicPolynomial == "x^2 - 4x + 4"
//	// res.Eigenspaces[0]: λ = 2, algebraic 2, geometric 1, defective
//
// Diagnostics go through go-log loggers named after each package
// ("matrix", "ops", "roots", "eigen"):
//
//	GOLOG_LOG_LEVEL="eigen=debug,roots=debug"
package eigensteps
