// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"math"
	"sort"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/eigensteps/polynomial"
)

var log = logging.Logger("roots")

// Method names the strategy that produced a Solution.
type Method string

const (
	MethodNone      Method = "none" // constant polynomial
	MethodLinear    Method = "linear"
	MethodQuadratic Method = "quadratic"
	MethodCubic     Method = "cubic"
	MethodHybrid    Method = "hybrid"
)

// Solution is the outcome of Solve.
type Solution struct {
	// Roots are the distinct real roots, ascending.
	Roots []float64
	// Degree of the polynomial after stripping leading zeros.
	Degree int
	// Method used for the non-zero roots.
	Method Method
	// Exhausted is set when the hybrid search stopped with a factor of
	// degree ≥ 1 left over. That factor may have only complex roots, or the
	// search may have given up on a real one.
	Exhausted bool
}

// Solve returns the real roots of the descending polynomial desc.
//
// Zero roots are factored out first (trailing zero coefficients), the rest
// is dispatched by degree: closed forms up to 3, the hybrid search from 4.
// Closed-form roots are polished with Newton when that lowers the residual.
// Finally roots are snapped to nearby integers and merged.
//
// An empty, constant or identically zero polynomial has no roots: the
// Solution is empty with MethodNone.
//
// Errors: ErrInvalidOptions, ErrNonFinite.
func Solve(desc []float64, opts Options) (*Solution, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	orig, err := prepare(desc, opts)
	if errors.Is(err, ErrZeroPolynomial) {
		return &Solution{Roots: []float64{}, Method: MethodNone}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	sol := &Solution{Roots: []float64{}, Degree: orig.Degree(), Method: methodFor(orig.Degree())}
	if sol.Degree < 1 {
		return sol, nil
	}

	raw := make([]float64, 0, sol.Degree)
	p := orig
	k := 0
	for k < len(p)-1 && p[k] == 0 {
		k++
	}
	if k > 0 {
		raw = append(raw, 0)
		p = p[k:]
	}

	switch deg := p.Degree(); {
	case deg == 0:
		// only zero roots
	case deg <= 3:
		dp := p.Derivative()
		for _, x := range closedForm(p, opts) {
			raw = append(raw, polishKeep(p, dp, x, opts))
		}
	default:
		found, complete := hybrid(p, opts)
		raw = append(raw, found...)
		sol.Exhausted = !complete
	}

	sol.Roots = postProcess(orig, raw, opts)

	return sol, nil
}

// SolveRealRoots is Solve reduced to its root list.
func SolveRealRoots(desc []float64, opts Options) ([]float64, error) {
	sol, err := Solve(desc, opts)
	if err != nil {
		return nil, err
	}

	return sol.Roots, nil
}

func methodFor(deg int) Method {
	switch {
	case deg < 1:
		return MethodNone
	case deg == 1:
		return MethodLinear
	case deg == 2:
		return MethodQuadratic
	case deg == 3:
		return MethodCubic
	default:
		return MethodHybrid
	}
}

// polishKeep runs Newton from a closed-form root and keeps the result only
// if the residual went down.
func polishKeep(p, dp polynomial.Poly, x float64, o Options) float64 {
	y, _ := newton(p, dp, x, o)
	if relResidual(p, y) < relResidual(p, x) {
		return y
	}

	return x
}

// mergeRadius is the relative gap under which sorted roots are treated as
// one cluster in postProcess.
const mergeRadius = 1e-4

// postProcess merges clusters that stand for one multiple root, snaps,
// sorts and drops duplicates.
func postProcess(p polynomial.Poly, raw []float64, o Options) []float64 {
	out := make([]float64, 0, len(raw))
	for _, x := range raw {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		out = append(out, x)
	}
	sort.Float64s(out)
	out = mergeClusters(p, out, o)
	for i, x := range out {
		out[i] = snap(p, x, o)
	}
	sort.Float64s(out)

	return dedup(out, o.SnapTolerance)
}

// mergeClusters replaces each run of sorted values closer than mergeRadius
// by a single refined root when the run's mean leads multipleRoot to a
// multiple root. Runs of distinct roots are kept as they are.
func mergeClusters(p polynomial.Poly, sorted []float64, o Options) []float64 {
	out := make([]float64, 0, len(sorted))
	var i, j int
	for i = 0; i < len(sorted); i = j {
		j = i + 1
		for j < len(sorted) && sorted[j]-sorted[j-1] <= mergeRadius*math.Max(1, math.Abs(sorted[j-1])) {
			j++
		}
		if j-i > 1 {
			var sum float64
			for _, x := range sorted[i:j] {
				sum += x
			}
			if z, m := multipleRoot(p, sum/float64(j-i), o); m >= 2 {
				out = append(out, z)
				continue
			}
		}
		out = append(out, sorted[i:j]...)
	}

	return out
}

// snap moves x to the nearest integer r when the residual there is no worse
// and either x is within SnapTolerance, or both x and r look like a multiple
// root of p and lie within mergeRadius (a k-fold root is only located to
// about ε^(1/k)). -0 becomes 0.
func snap(p polynomial.Poly, x float64, o Options) float64 {
	r := math.Round(x)
	if r == x {
		return x + 0
	}
	d := math.Abs(x - r)
	switch {
	case d <= o.SnapTolerance:
		if relResidual(p, r) <= math.Max(relResidual(p, x), o.ResidualTolerance) {
			return r + 0
		}
	case d <= mergeRadius*math.Max(1, math.Abs(x)):
		if relResidual(p, r) <= o.ResidualTolerance &&
			multiplicityOf(p, r, o.MultiplicityTolerance) >= 2 &&
			multiplicityOf(p, x, o.MultiplicityTolerance) >= 2 {
			return r + 0
		}
	}

	return x
}

// dedup merges runs of sorted values closer than tol, preferring an
// integer representative.
func dedup(sorted []float64, tol float64) []float64 {
	out := sorted[:0]
	for _, x := range sorted {
		last := len(out) - 1
		if last >= 0 && x-out[last] <= tol {
			if out[last] != math.Trunc(out[last]) && x == math.Trunc(x) {
				out[last] = x
			}
			continue
		}
		out = append(out, x)
	}

	return out
}
