// SPDX-License-Identifier: MIT

package eigen

import "errors"

// Input validation errors are fatal for the computation and carry no
// partial Result. Numerical trouble is never an error: it shows up in
// Result.Complete, Eigenspace.Degenerate and the "eigen" logger.
var (
	// ErrEmptyMatrix is returned for a nil matrix or one with no entries.
	ErrEmptyMatrix = errors.New("eigen: empty matrix")

	// ErrNonSquare is returned when the rows do not all have n entries.
	ErrNonSquare = errors.New("eigen: matrix is not square")

	// ErrOrderTooLarge is returned when n exceeds Options.MaxOrder.
	ErrOrderTooLarge = errors.New("eigen: matrix order exceeds the supported maximum")

	// ErrNonFinite is returned when an entry is NaN or ±Inf.
	ErrNonFinite = errors.New("eigen: NaN or Inf entry")

	// ErrInvalidOptions wraps a rejected Options field.
	ErrInvalidOptions = errors.New("eigen: invalid options")
)
