// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/eigensteps/polynomial"
)

// maxBisections caps bisection; 200 halvings exhaust float64.
const maxBisections = 200

// bracketRadii are the half-widths, relative to max(1,|x|), tried
// by bisectAround when Newton stalls.
var bracketRadii = [...]float64{1e-6, 1e-4, 1e-2, 1e-1, 1}

// newton runs damped Newton-Raphson on p from x0.
//
// A step is taken only if it strictly reduces |p(x)|; otherwise the step is
// halved until its factor falls under MinStep, at which point the iteration
// is declared stalled. Strict decrease rules out cycling.
func newton(p, dp polynomial.Poly, x0 float64, o Options) (float64, bool) {
	var (
		x, fx  = x0, p.Eval(x0)
		it     int
		d      float64
		step   float64
		lambda float64
		moved  bool
		xn, fn float64
	)
	for it = 0; it < o.MaxIterations; it++ {
		if relResidual(p, x) <= o.ResidualTolerance {
			return x, true
		}
		d = dp.Eval(x)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			break
		}
		step = fx / d
		moved = false
		for lambda = 1; lambda >= o.MinStep; lambda /= 2 {
			xn = x - lambda*step
			fn = p.Eval(xn)
			if math.Abs(fn) < math.Abs(fx) {
				x, fx, moved = xn, fn, true
				break
			}
		}
		if !moved {
			break
		}
	}

	return x, relResidual(p, x) <= o.ResidualTolerance
}

// refine is newton followed by bisection around the stall point.
func refine(p, dp polynomial.Poly, x0 float64, o Options) (float64, bool) {
	x, ok := newton(p, dp, x0, o)
	if ok {
		return x, true
	}

	return bisectAround(p, x, o)
}

// bisectAround looks for a sign change in widening windows around x and
// bisects the first one it finds.
func bisectAround(p polynomial.Poly, x float64, o Options) (float64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x, false
	}
	scale := math.Max(1, math.Abs(x))
	for _, r := range bracketRadii {
		a, b := x-r*scale, x+r*scale
		if signChange(p.Eval(a), p.Eval(b)) {
			m := bisect(p, a, b)
			return m, relResidual(p, m) <= o.ResidualTolerance
		}
	}

	return x, false
}

func signChange(fa, fb float64) bool {
	return (fa < 0 && fb > 0) || (fa > 0 && fb < 0)
}

// bisect narrows a bracketing interval [a, b] until it can no longer shrink.
func bisect(p polynomial.Poly, a, b float64) float64 {
	fa := p.Eval(a)
	var (
		it int
		m  float64
		fm float64
	)
	for it = 0; it < maxBisections; it++ {
		m = a + (b-a)/2
		if m <= a || m >= b {
			break
		}
		fm = p.Eval(m)
		if fm == 0 {
			return m
		}
		if signChange(fa, fm) {
			b = m
		} else {
			a, fa = m, fm
		}
	}

	return a + (b-a)/2
}
