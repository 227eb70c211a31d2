// Package ops holds the iterative eigenvalue routines used when the
// characteristic-polynomial root solver cannot deliver a full spectrum.
//
// Tiers, cheapest first:
//
//	JacobiEigen       : symmetric input only; always converges to a real spectrum.
//	QRAlgorithm       : unshifted QR iteration over Gram-Schmidt factors.
//	GeneralEigenvalues: gonum's general eigensolver; the last resort.
//
// GramSchmidtQR is exposed on its own since QRAlgorithm is built on it.
// None of these mutate their input. Results are candidates: the eigen
// package validates them against the characteristic polynomial.
package ops
