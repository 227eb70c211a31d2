// SPDX-License-Identifier: MIT

package polynomial

import "errors"

var (
	// ErrEmptyExpression is returned for an input with no tokens.
	ErrEmptyExpression = errors.New("polynomial: empty expression")

	// ErrUnexpectedToken indicates a character or token the grammar does not accept.
	ErrUnexpectedToken = errors.New("polynomial: unexpected token")

	// ErrMismatchedParen indicates an unbalanced or mismatched bracket pair.
	ErrMismatchedParen = errors.New("polynomial: mismatched bracket")

	// ErrMalformedExponent indicates an exponent that is not a non-negative
	// integer constant (or exceeds MaxExponent).
	ErrMalformedExponent = errors.New("polynomial: malformed exponent")

	// ErrMalformedExpression indicates an operator without enough operands,
	// or operands left over after evaluation.
	ErrMalformedExpression = errors.New("polynomial: malformed expression")
)
