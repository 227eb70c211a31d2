// Package symbolic builds the characteristic matrix xI - A and expands its
// determinant into an explicit, bracketed expression string.
//
// A Cell is either a number or the linear form x - k (only on the diagonal).
// ExpandDeterminant walks the cofactor expansion along the first row and
// writes each level with its own bracket pair, [ ] then { } then ( ), so a
// student can match every minor with its cofactor. The string is meant for
// display and for the polynomial package, which parses it back into
// coefficients.
package symbolic
