// SPDX-License-Identifier: MIT
package polynomial_test

import (
	"testing"

	"github.com/katalvlaran/eigensteps/polynomial"
)

var sinkExp *polynomial.Expansion

// a 4×4 cofactor expansion as the symbolic stage emits it
const benchExpr = "(x - 1) * [(x - 2) * {(x - 3)(x - 4) - (-1)(-1)} - (-1) * {(-1)(x - 4) - (-1)(0)}]" +
	" - (-2) * [(-1) * {(x - 3)(x - 4) - (-1)(-1)} + (-1) * {(0)(-1) - (x - 3)(0)}]"

func BenchmarkExpand(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e, err := polynomial.Expand(benchExpr)
		if err != nil {
			b.Fatal(err)
		}
		sinkExp = e
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := polynomial.Tokenize(benchExpr); err != nil {
			b.Fatal(err)
		}
	}
}
