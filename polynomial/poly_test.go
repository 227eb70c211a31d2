// SPDX-License-Identifier: MIT
package polynomial_test

import (
	"testing"

	"github.com/katalvlaran/eigensteps/polynomial"
	"github.com/stretchr/testify/assert"
)

func TestPoly_Arithmetic(t *testing.T) {
	p := polynomial.Poly{-1, 1} // x - 1
	q := polynomial.Poly{1, 1}  // x + 1

	assert.Equal(t, polynomial.Poly{0, 2}, p.Add(q))
	assert.Equal(t, polynomial.Poly{-2}, p.Sub(q))
	assert.Equal(t, polynomial.Poly{-1, 0, 1}, p.Mul(q))
	assert.Equal(t, polynomial.Poly{}, p.Sub(p), "cancellation trims to the zero polynomial")
	assert.Equal(t, polynomial.Poly{1, -3, 3, -1}.Scale(-1), p.Pow(3))
	assert.Equal(t, polynomial.Poly{1}, p.Pow(0))
	assert.Equal(t, polynomial.Poly{}, p.Mul(polynomial.Poly{}))
}

func TestPoly_DegreeEvalDerivative(t *testing.T) {
	p := polynomial.FromDescending([]float64{1, -6, 11, -6}) // (x-1)(x-2)(x-3)
	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, -1, polynomial.Poly{0, 0}.Degree())
	assert.True(t, polynomial.Poly{5}.IsConstant())
	assert.False(t, p.IsConstant())

	for _, r := range []float64{1, 2, 3} {
		assert.Zero(t, p.Eval(r))
	}
	assert.Equal(t, -6.0, p.Eval(0))
	assert.Equal(t, polynomial.Poly{11, -12, 3}, p.Derivative())
	assert.Equal(t, polynomial.Poly{}, polynomial.Poly{7}.Derivative())
}

func TestPoly_DescendingRoundTrip(t *testing.T) {
	desc := []float64{2, 0, -1}
	assert.Equal(t, desc, polynomial.FromDescending(desc).Descending())
	assert.Equal(t, []float64{0}, polynomial.Poly{}.Descending())
	assert.Equal(t, []float64{3}, polynomial.FromDescending([]float64{0, 0, 3}).Descending())
}

func TestPoly_TrimTol(t *testing.T) {
	p := polynomial.Poly{1, 2, 1e-12}
	assert.Equal(t, polynomial.Poly{1, 2}, p.TrimTol(1e-9))
	assert.Equal(t, p, p.Trim())
}
