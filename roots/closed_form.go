// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/eigensteps/polynomial"
)

const (
	// quadDiscTol treats a slightly negative discriminant, relative to
	// max(b², |4ac|), as zero: rounding must not erase a double root.
	quadDiscTol = 1e-12

	// cubicDeltaTol is the same guard for the depressed-cubic discriminant.
	cubicDeltaTol = 1e-10
)

// closedForm returns the real roots of p for degree 1..3. Multiple roots
// appear once per distinct value.
func closedForm(p polynomial.Poly, o Options) []float64 {
	switch p.Degree() {
	case 1:
		return []float64{-p[0] / p[1]}
	case 2:
		return quadratic(p[2], p[1], p[0], o)
	case 3:
		return cubic(p[3], p[2], p[1], p[0])
	default:
		return nil
	}
}

// quadratic solves ax² + bx + c = 0 without the b ± √disc cancellation.
func quadratic(a, b, c float64, o Options) []float64 {
	disc := b*b - 4*a*c
	if disc < 0 {
		if disc < -quadDiscTol*math.Max(b*b, math.Abs(4*a*c)) {
			return nil
		}
		disc = 0
	}
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if q == 0 {
		return []float64{0}
	}
	x1, x2 := q/a, c/q
	if math.Abs(x1-x2) <= o.DedupTolerance {
		return []float64{x1}
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	return []float64{x1, x2}
}

// cubic solves ax³ + bx² + cx + d = 0 through the depressed cubic
// t³ + pt + q = 0, x = t - b/(3a).
//
//	Δ = q²/4 + p³/27
//	Δ > 0: one real root (Cardano).
//	Δ = 0: p = 0 gives a triple root, else a simple root 3q/p and a double -3q/(2p).
//	Δ < 0: three real roots (trigonometric form).
func cubic(a, b, c, d float64) []float64 {
	b, c, d = b/a, c/a, d/a
	shift := -b / 3
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	delta := q*q/4 + p*p*p/27
	scale := math.Max(q*q/4, math.Abs(p*p*p/27))

	switch {
	case math.Abs(delta) <= cubicDeltaTol*scale || scale == 0:
		if math.Abs(p) <= cubicDeltaTol*math.Max(1, math.Max(math.Abs(c), b*b/3)) {
			return []float64{shift}
		}
		return []float64{shift + 3*q/p, shift - 3*q/(2*p)}

	case delta > 0:
		sq := math.Sqrt(delta)
		return []float64{shift + math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)}

	default:
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (2 * p) * math.Sqrt(-3/p)
		arg = math.Max(-1, math.Min(1, arg))
		phi := math.Acos(arg) / 3
		out := make([]float64, 3)
		var k int
		for k = 0; k < 3; k++ {
			out[k] = shift + r*math.Cos(phi-2*math.Pi*float64(k)/3)
		}
		return out
	}
}
