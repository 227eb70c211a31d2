// SPDX-License-Identifier: MIT

package polynomial

import "math"

// Poly is a univariate polynomial with float64 coefficients in ascending
// order: p(x) = p[0] + p[1]·x + p[2]·x² + ...
// The zero polynomial is the empty slice (or all-zero coefficients).
type Poly []float64

// Constant returns the degree-0 polynomial c.
func Constant(c float64) Poly { return Poly{c} }

// Variable returns p(x) = x.
func Variable() Poly { return Poly{0, 1} }

// FromDescending builds a Poly from [a_n, ..., a_0].
func FromDescending(desc []float64) Poly {
	out := make(Poly, len(desc))
	for i, c := range desc {
		out[len(desc)-1-i] = c
	}

	return out.Trim()
}

// Descending returns [a_n, ..., a_0]; the zero polynomial yields [0].
func (p Poly) Descending() []float64 {
	t := p.Trim()
	if len(t) == 0 {
		return []float64{0}
	}
	out := make([]float64, len(t))
	for i, c := range t {
		out[len(t)-1-i] = c
	}

	return out
}

// Degree returns the index of the highest non-zero coefficient, or -1 for zero.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}

	return -1
}

// Trim drops exact-zero high-degree coefficients. The receiver is not modified.
func (p Poly) Trim() Poly {
	i := len(p)
	for i > 0 && p[i-1] == 0 {
		i--
	}
	out := make(Poly, i)
	copy(out, p[:i])

	return out
}

// TrimTol drops high-degree coefficients with |c| < tol.
func (p Poly) TrimTol(tol float64) Poly {
	i := len(p)
	for i > 0 && math.Abs(p[i-1]) < tol {
		i--
	}
	out := make(Poly, i)
	copy(out, p[:i])

	return out
}

// IsConstant reports whether p has degree ≤ 0.
func (p Poly) IsConstant() bool { return p.Degree() <= 0 }

// ConstantTerm returns p[0] (0 for the zero polynomial).
func (p Poly) ConstantTerm() float64 {
	if len(p) == 0 {
		return 0
	}

	return p[0]
}

// Eval evaluates p at x with Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	if len(p) == 0 {
		return 0
	}
	v := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		v = v*x + p[i]
	}

	return v
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly { return combine(p, q, 1) }

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return combine(p, q, -1) }

func combine(p, q Poly, sign float64) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i := range out {
		if i < len(p) {
			out[i] += p[i]
		}
		if i < len(q) {
			out[i] += sign * q[i]
		}
	}

	return out.Trim()
}

// Mul returns the convolution p·q.
func (p Poly) Mul(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] += a * b
		}
	}

	return out.Trim()
}

// Pow returns p^n for n ≥ 0 by repeated squaring. p^0 is 1, including 0^0.
func (p Poly) Pow(n int) Poly {
	result := Poly{1}
	base := p.Trim()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

// Scale returns s·p.
func (p Poly) Scale(s float64) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = s * c
	}

	return out.Trim()
}

// Derivative returns p'.
func (p Poly) Derivative() Poly {
	if len(p) <= 1 {
		return Poly{}
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}

	return out.Trim()
}
