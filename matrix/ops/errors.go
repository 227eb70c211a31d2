// SPDX-License-Identifier: MIT

package ops

import "errors"

var (
	// ErrNotConverged is returned when an iterative routine exhausts its
	// iteration budget without meeting its tolerance.
	ErrNotConverged = errors.New("ops: iteration did not converge")

	// ErrInvalidArgument indicates a non-positive iteration cap or a
	// negative/non-finite tolerance.
	ErrInvalidArgument = errors.New("ops: invalid iteration parameters")
)
