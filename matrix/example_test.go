// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/eigensteps/matrix"
)

// ExampleRowReduce reduces a rank-deficient matrix and reads its null space.
func ExampleRowReduce() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
	})
	rref, _ := matrix.RowReduce(a)
	fmt.Print(rref)

	ns, _ := matrix.NullSpaceBasis(a)
	fmt.Println("free:", ns.Free)
	fmt.Println("basis:", ns.Basis)
	// Output:
	// [1, 2, 3]
	// [0, 0, 0]
	// free: [1 2]
	// basis: [[-2 1 0] [-3 0 1]]
}

// ExampleDeterminant shows cofactor expansion and trace on a 3×3 matrix.
func ExampleDeterminant() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0, 1},
		{1, 3, 2},
		{1, 1, 2},
	})
	det, _ := matrix.Determinant(a)
	tr, _ := matrix.Trace(a)
	tri, _ := matrix.IsTriangular(a)
	fmt.Println(det, tr, tri)
	// Output:
	// 6 7 false
}
