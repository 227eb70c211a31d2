// SPDX-License-Identifier: MIT

package roots

import "errors"

var (
	// ErrInvalidOptions indicates a negative/non-finite tolerance or a
	// non-positive iteration budget.
	ErrInvalidOptions = errors.New("roots: invalid options")

	// ErrZeroPolynomial is returned by Multiplicity for the identically-zero
	// polynomial, which every (x - r) divides without end. Solve and
	// ComplexRoots report no roots for it instead.
	ErrZeroPolynomial = errors.New("roots: identically zero polynomial")

	// ErrNonFinite signals a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("roots: NaN or Inf coefficient")
)
