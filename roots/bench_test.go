// SPDX-License-Identifier: MIT
package roots_test

import (
	"testing"

	"github.com/katalvlaran/eigensteps/roots"
)

var sinkRoots []float64

func BenchmarkSolveQuintic(b *testing.B) {
	coefs := fromRoots(-1.5, 0.25, 1, 2.5, 4)
	opts := roots.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if sinkRoots, err = roots.SolveRealRoots(coefs, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveNoRealRoots(b *testing.B) {
	coefs := []float64{1, 0, 5, 0, 4}
	opts := roots.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if sinkRoots, err = roots.SolveRealRoots(coefs, opts); err != nil {
			b.Fatal(err)
		}
	}
}
