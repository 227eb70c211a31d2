// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"fmt"

	"github.com/katalvlaran/eigensteps/polynomial"
	"github.com/katalvlaran/eigensteps/symbolic"
)

// ExampleExpandDeterminant builds xI - A and expands its determinant.
func ExampleExpandDeterminant() {
	m, _ := symbolic.FromRows([][]float64{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 4},
	})
	fmt.Print(m)

	expr, _ := symbolic.ExpandDeterminant(m)
	fmt.Println(expr)

	e, _ := polynomial.Expand(expr)
	fmt.Println(e.Expression)
	// Output:
	// [x - 2, -1, 0]
	// [-1, x - 3, -1]
	// [0, -1, x - 4]
	// (x - 2) * [(x - 3)(x - 4) - (-1)(-1)] - (-1) * [(-1) * (x - 4)]
	// x^3 - 9x^2 + 24x - 18
}
