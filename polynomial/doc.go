// Package polynomial turns the bracketed determinant expressions produced by
// the symbolic package into coefficient lists.
//
// The pipeline is the classic one: Tokenize (with implicit multiplication and
// unary minus rewritten as (-1)*), shunting-yard to postfix, then evaluation of
// the postfix stream over Poly, a dense ascending-degree polynomial with
// add, subtract, multiply and integer power.
//
//	e, _ := polynomial.Expand("(x - 1)^2")
//	e.Coefficients // [1 -2 1]
//	e.Expression   // "x^2 - 2x + 1"
//
// Coefficient lists at the package boundary are descending ([a_n ... a_0]);
// Poly is ascending internally.
package polynomial
