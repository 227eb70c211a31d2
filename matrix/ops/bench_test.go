// SPDX-License-Identifier: MIT
package ops_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/katalvlaran/eigensteps/matrix/ops"
)

var sinkVals []float64

// symmetricRand builds a deterministic symmetric n×n matrix.
func symmetricRand(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()*2 - 1
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
		}
	}

	return m
}

func BenchmarkQRAlgorithm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := symmetricRand(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := ops.QRAlgorithm(A, ops.DefaultQRMaxIterations, ops.DefaultQRTolerance)
				if err != nil {
					b.Fatal(err)
				}
				sinkVals = res.Values
			}
		})
	}
}

func BenchmarkJacobiEigen(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := symmetricRand(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, _, err := ops.JacobiEigen(A, 1e-12, 500)
				if err != nil {
					b.Fatal(err)
				}
				sinkVals = vals
			}
		})
	}
}

func BenchmarkGeneralEigenvalues(b *testing.B) {
	b.ReportAllocs()
	A := symmetricRand(b, 5, 17)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vals, err := ops.GeneralEigenvalues(A, 1e-9)
		if err != nil {
			b.Fatal(err)
		}
		sinkVals = vals
	}
}
