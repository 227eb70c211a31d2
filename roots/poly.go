// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/eigensteps/polynomial"
)

// prepare checks desc, converts it to ascending order and strips leading
// coefficients with |a| ≤ ZeroTolerance.
func prepare(desc []float64, o Options) (polynomial.Poly, error) {
	for i, c := range desc {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %d is %v: %w", i, c, ErrNonFinite)
		}
	}
	p := polynomial.FromDescending(desc)
	n := len(p)
	for n > 0 && math.Abs(p[n-1]) <= o.ZeroTolerance {
		n--
	}
	if n == 0 {
		return nil, ErrZeroPolynomial
	}

	return p[:n], nil
}

// magnitude returns Σ|a_i||x|^i, the scale against which p(x) is judged.
func magnitude(p polynomial.Poly, x float64) float64 {
	var (
		v  float64
		ax = math.Abs(x)
		i  int
	)
	for i = len(p) - 1; i >= 0; i-- {
		v = v*ax + math.Abs(p[i])
	}

	return v
}

// relResidual returns |p(x)| / magnitude(p, x).
func relResidual(p polynomial.Poly, x float64) float64 {
	fx := math.Abs(p.Eval(x))
	m := magnitude(p, x)
	if m == 0 || math.IsInf(m, 0) {
		return fx
	}

	return fx / m
}

// deflate divides p by (x - r) with synthetic division, returning the
// quotient and the remainder p(r).
func deflate(p polynomial.Poly, r float64) (polynomial.Poly, float64) {
	n := len(p) - 1
	if n < 1 {
		return polynomial.Poly{}, p.ConstantTerm()
	}
	q := make(polynomial.Poly, n)
	q[n-1] = p[n]
	var k int
	for k = n - 1; k >= 1; k-- {
		q[k-1] = p[k] + r*q[k]
	}

	return q, p[0] + r*q[0]
}

// cauchyBound returns 1 + max|a_i/a_n|; every root has |x| below it.
func cauchyBound(p polynomial.Poly) float64 {
	n := len(p) - 1
	if n < 1 {
		return 1
	}
	var worst float64
	for _, c := range p[:n] {
		if v := math.Abs(c / p[n]); v > worst {
			worst = v
		}
	}

	return 1 + worst
}

// searchBound returns the tighter of Cauchy's and Fujiwara's bounds,
// 2·max_k |a_{n-k}/a_n|^{1/k}. Fujiwara's stays near the root scale when
// coefficients grow like powers of it.
func searchBound(p polynomial.Poly) float64 {
	n := len(p) - 1
	b := cauchyBound(p)
	if n < 1 {
		return b
	}
	var (
		f float64
		k int
	)
	for k = 1; k <= n; k++ {
		if v := math.Pow(math.Abs(p[n-k]/p[n]), 1/float64(k)); v > f {
			f = v
		}
	}
	if f = 2 * f; f > 0 && f < b {
		return f
	}

	return b
}

// Deflate divides the descending polynomial desc by (x - r).
// It returns the descending quotient and the remainder, which equals p(r).
func Deflate(desc []float64, r float64) ([]float64, float64) {
	q, rem := deflate(polynomial.FromDescending(desc), r)

	return q.Descending(), rem
}

// CauchyBound returns Cauchy's bound for the descending polynomial desc.
// Constant input yields 1.
func CauchyBound(desc []float64) float64 {
	return cauchyBound(polynomial.FromDescending(desc))
}

// Polish refines an approximate root x of desc the way Solve finishes its
// own roots: damped Newton-Raphson, refinement of a multiple root on the
// matching derivative, then snapping to a nearby integer. It reports
// whether the result meets ResidualTolerance; callers use it to vet
// candidates from other solvers.
func Polish(desc []float64, x float64, opts Options) (float64, bool, error) {
	if err := opts.Validate(); err != nil {
		return x, false, fmt.Errorf("Polish: %w", err)
	}
	p, err := prepare(desc, opts)
	if errors.Is(err, ErrZeroPolynomial) {
		return x, false, nil
	}
	if err != nil {
		return x, false, fmt.Errorf("Polish: %w", err)
	}
	if p.Degree() < 1 {
		return x, false, nil
	}
	y, ok := newton(p, p.Derivative(), x, opts)
	if !ok {
		return y, false, nil
	}

	z, _ := multipleRoot(p, y, opts)

	return snap(p, z, opts), true, nil
}
