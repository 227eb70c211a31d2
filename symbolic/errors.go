// SPDX-License-Identifier: MIT

package symbolic

import "errors"

var (
	// ErrEmptyMatrix is returned for a matrix with no rows or columns.
	ErrEmptyMatrix = errors.New("symbolic: empty matrix")

	// ErrNonSquare is returned when the input is not n×n.
	ErrNonSquare = errors.New("symbolic: matrix is not square")

	// ErrNotSubstituted is returned when a numeric view is requested while
	// cells still carry the free variable.
	ErrNotSubstituted = errors.New("symbolic: matrix still contains the variable")
)
