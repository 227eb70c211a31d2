// SPDX-License-Identifier: MIT

package roots

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/eigensteps/polynomial"
)

// nearOffsets are the relative offsets tried around roots already found;
// a deflated factor often repeats a root.
var nearOffsets = [...]float64{0, 1e-3, -1e-3, 1e-1, -1e-1}

// seeds builds the ordered candidate list for one hybrid stage:
// near found roots, bisected sign-change brackets, coefficient ratios,
// the uniform grid, then random samples.
func seeds(p polynomial.Poly, found []float64, rng *rand.Rand, o Options) []float64 {
	n := p.Degree()
	bound := searchBound(p)
	out := make([]float64, 0, len(found)*len(nearOffsets)+2*o.GridPoints+o.RandomSeeds+4)

	for _, r := range found {
		s := math.Max(1, math.Abs(r))
		for _, off := range nearOffsets {
			out = append(out, r+off*s)
		}
	}

	grid := make([]float64, 0, o.GridPoints+1)
	if o.GridPoints > 0 {
		step := 2 * bound / float64(o.GridPoints)
		var i int
		for i = 0; i <= o.GridPoints; i++ {
			grid = append(grid, -bound+float64(i)*step)
		}
	}
	for i := 1; i < len(grid); i++ {
		if signChange(p.Eval(grid[i-1]), p.Eval(grid[i])) {
			out = append(out, bisect(p, grid[i-1], grid[i]))
		}
	}

	an := p[n]
	out = append(out, -p[n-1]/(float64(n)*an))
	if p[1] != 0 {
		out = append(out, -p[0]/p[1])
	}
	g := math.Pow(math.Abs(p[0]/an), 1/float64(n))
	out = append(out, g, -g)

	out = append(out, grid...)

	if !o.DisableRandomSeeds && o.RandomSeeds > 0 {
		out = append(out, uniform(rng, o.RandomSeeds, -bound, bound)...)
	}

	return out
}

// stageResidual is the looser residual a candidate must reach on the
// working factor before it is verified on the original polynomial.
// Deflation perturbs the factor, so a double root may survive only as a
// near-touching minimum.
const stageResidual = 1e-6

// clusterRadius bounds, relative to max(1,|x|), how far an estimate may sit
// from the multiple root it stands for. A k-fold root passes the residual
// test up to about ResidualTolerance^(1/k) away.
const clusterRadius = 5e-2

// hybrid finds the real roots of p one at a time, deflating the working
// factor after each. Every accepted root is verified on p itself, never only
// on the deflated factor. From a cubic down, the closed-form roots of the
// factor are tried before the generic seeds.
//
// A multiple root is refined by multipleRoot and deflated out once per unit
// of multiplicity, so found lists repeated roots with multiplicity and every
// copy carries the same value. The boolean is false when a stage exhausted
// every seed while the factor still had degree ≥ 1.
func hybrid(p polynomial.Poly, o Options) ([]float64, bool) {
	rng := rngFromSeed(o.Seed)
	dp := p.Derivative()
	work := p
	found := make([]float64, 0, p.Degree())

	var (
		y      float64
		ok     bool
		stage  int
		m, mw  int
		have   int
		cands  []float64
		radius float64
	)
	for work.Degree() > 0 {
		stage++
		cands = seeds(work, found, rng, o)
		if work.Degree() <= 3 {
			cands = append(closedForm(work, o), cands...)
		}
		if y, ok = stageRoot(p, dp, work, cands, o); !ok {
			log.Debugw("hybrid search exhausted",
				"degree", p.Degree(), "stage", stage, "found", len(found), "remaining", work.Degree())
			return found, false
		}

		y, m = multipleRoot(p, y, o)
		if m == 1 {
			if mw = multiplicityOf(work, y, o.MultiplicityTolerance); mw < 1 {
				mw = 1
			}
		} else {
			// earlier stages may hold poorer copies of the same root
			radius = clusterRadius * math.Max(1, math.Abs(y))
			have = 0
			for i := range found {
				if math.Abs(found[i]-y) > radius {
					continue
				}
				if z, _ := multipleRoot(p, found[i], o); math.Abs(z-y) <= o.SnapTolerance {
					found[i] = y
					have++
				}
			}
			if mw = m - have; mw < 1 {
				mw = 1
			}
		}
		if d := work.Degree(); mw > d {
			mw = d
		}
		for ; mw > 0; mw-- {
			found = append(found, y)
			work, _ = deflate(work, y)
		}
	}

	return found, true
}

// stageRoot returns the first candidate that converges on the working
// factor and then verifies on p.
func stageRoot(p, dp, work polynomial.Poly, cands []float64, o Options) (float64, bool) {
	dwork := work.Derivative()
	for _, s := range cands {
		x, _ := refine(work, dwork, s, o)
		if relResidual(work, x) > stageResidual {
			continue
		}
		if y, ok := newton(p, dp, x, o); ok {
			return y, true
		}
	}

	return 0, false
}

// multipleRoot looks for a root of p of multiplicity m ≥ 2 near y.
//
// An m-fold root of p is a simple root of its (m-1)th derivative, where
// Newton converges fast and to full precision. For m from deg(p) down to 2,
// Newton runs on that derivative from y; the first z that stays within
// clusterRadius, is a root of p within ResidualTolerance and a root of
// every derivative below m-1 within MultiplicityTolerance is returned with m.
// Trying the largest m first keeps a triple root from being taken for a
// double one. Otherwise y is returned with multiplicity 1.
func multipleRoot(p polynomial.Poly, y float64, o Options) (float64, int) {
	n := p.Degree()
	if n < 2 {
		return y, 1
	}
	derivs := make([]polynomial.Poly, n+1)
	derivs[0] = p
	var i, m int
	for i = 1; i <= n; i++ {
		derivs[i] = derivs[i-1].Derivative()
	}
	radius := clusterRadius * math.Max(1, math.Abs(y))

	var (
		z  float64
		ok bool
	)
	for m = n; m >= 2; m-- {
		if z, ok = newton(derivs[m-1], derivs[m], y, o); !ok {
			continue
		}
		if math.Abs(z-y) > radius || relResidual(p, z) > o.ResidualTolerance {
			continue
		}
		for i = 1; i < m-1; i++ {
			if relResidual(derivs[i], z) > o.MultiplicityTolerance {
				break
			}
		}
		if i >= m-1 {
			return z, m
		}
	}

	return y, 1
}
