// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/katalvlaran/eigensteps/polynomial"
	"github.com/katalvlaran/eigensteps/roots"
	"github.com/katalvlaran/eigensteps/symbolic"
)

var log = logging.Logger("eigen")

// Compute runs the full pipeline on a row-major n×n literal.
//
// Errors: ErrInvalidOptions, ErrEmptyMatrix, ErrNonSquare, ErrOrderTooLarge,
// ErrNonFinite, and wrapped polynomial parse errors.
func Compute(rows [][]float64, opts Options) (*Result, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Compute: %w", ErrEmptyMatrix)
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("Compute: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("Compute: entry (%d,%d) is %v: %w", i, j, v, ErrNonFinite)
			}
		}
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	return run("Compute", a, opts)
}

// ComputeMatrix runs the full pipeline on any matrix.Matrix. The input is
// copied and never modified.
func ComputeMatrix(m matrix.Matrix, opts Options) (*Result, error) {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("ComputeMatrix: %w", ErrEmptyMatrix)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("ComputeMatrix: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("ComputeMatrix: %w: %w", ErrNonFinite, err)
	}
	a, err := matrix.DenseCopy(m)
	if err != nil {
		return nil, fmt.Errorf("ComputeMatrix: %w", err)
	}

	return run("ComputeMatrix", a, opts)
}

// run is the pipeline proper:
//
//	xI - A → det expression → coefficients → real roots (closed form or
//	hybrid) → eigenspaces → fallback tiers while the spectrum is unsettled.
func run(op string, a *matrix.Dense, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n := a.Rows()
	if n > opts.MaxOrder {
		return nil, fmt.Errorf("%s: order %d > %d: %w", op, n, opts.MaxOrder, ErrOrderTooLarge)
	}

	char, err := symbolic.BuildCharacteristicMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	expr, err := symbolic.ExpandDeterminant(char)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	exp, err := polynomial.Expand(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: characteristic polynomial: %w", op, err)
	}
	trace, err := matrix.Trace(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res := &Result{
		Order:                    n,
		CharacteristicMatrix:     char,
		DeterminantExpression:    expr,
		CharacteristicPolynomial: exp.Expression,
		Coefficients:             exp.Coefficients,
		Trace:                    trace,
	}

	sol, err := roots.Solve(res.Coefficients, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	src := SourceClosedForm
	if sol.Method == roots.MethodHybrid {
		src = SourceHybrid
	}
	log.Debugw("characteristic roots", "method", sol.Method, "roots", sol.Roots, "exhausted", sol.Exhausted)

	zs, err := roots.ComplexRoots(res.Coefficients, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sp, err := measure(char, a, res.Coefficients, sol.Roots, src, zs, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !opts.DisableFallback && sp.unsettled() {
		if sp, err = fallback(char, a, res.Coefficients, sp, zs, opts); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if sp.incomplete() {
		log.Warnw("incomplete real spectrum", "order", n, "found", sp.total, "complex", len(sp.complex))
	}

	res.Source = sp.source
	if len(sp.values) == 0 {
		res.Source = SourceNone
	}
	res.Eigenvalues = sp.values
	res.Eigenspaces = sp.spaces
	res.ComplexEigenvalues = sp.complex
	res.ExpectedReal = n - len(sp.complex)
	res.AllReal = sp.total == n
	res.Complete = !sp.incomplete()

	return res, nil
}

// spectrum is the real eigenvalue set as it moves through the tiers,
// measured against A and the Durand–Kerner roots.
type spectrum struct {
	n      int
	values []float64
	spaces []Eigenspace
	// total is Σ algebraic multiplicity over spaces.
	total int
	// complex holds the Durand–Kerner roots off the real axis that no real
	// eigenvalue accounts for.
	complex []complex128
	source  Source
}

func (sp *spectrum) incomplete() bool {
	return incomplete(sp.total, len(sp.complex), sp.n)
}

func (sp *spectrum) degenerate() bool {
	for i := range sp.spaces {
		if sp.spaces[i].Degenerate {
			return true
		}
	}

	return false
}

// unsettled reports whether the fallback tiers should run.
func (sp *spectrum) unsettled() bool { return sp.incomplete() || sp.degenerate() }

// incomplete reports whether the real roots (with multiplicity) and the
// unaccounted complex roots fail to make up exactly n, or the complex ones
// cannot pair up into conjugates.
func incomplete(total, complexCount, n int) bool {
	return total+complexCount != n || complexCount%2 == 1
}

// measure builds the multiplicities, eigenspaces and unaccounted complex
// roots of a candidate set of real eigenvalues.
func measure(char *symbolic.Matrix, a *matrix.Dense, coeffs, values []float64, src Source, zs []complex128, opts Options) (spectrum, error) {
	n := a.Rows()
	sp := spectrum{n: n, source: src}
	kept, mults, _ := multiplicities(coeffs, values, n, opts)
	sp.values = kept
	sp.spaces = make([]Eigenspace, 0, len(kept))
	algebraic := make([]int, 0, len(kept))
	for i, lambda := range kept {
		es, err := BuildEigenspace(char, a, lambda, mults[i], opts)
		if err != nil {
			return sp, fmt.Errorf("eigenvalue %g: %w", lambda, err)
		}
		sp.spaces = append(sp.spaces, *es)
		algebraic = append(algebraic, es.AlgebraicMultiplicity)
		sp.total += es.AlgebraicMultiplicity
	}
	sp.complex = unaccounted(zs, kept, algebraic, opts.ImagTolerance)

	return sp, nil
}

// fallback runs the diagonalization tiers in order until the spectrum is
// settled. A tier that adds nothing leaves sp untouched.
func fallback(char *symbolic.Matrix, a *matrix.Dense, coeffs []float64, sp spectrum, zs []complex128, opts Options) (spectrum, error) {
	for _, t := range fallbackTiers {
		log.Debugw("trying fallback tier", "tier", t.source, "found", sp.total, "order", sp.n)
		cands, err := t.candidates(a, opts)
		if err != nil {
			log.Debugw("fallback tier failed", "tier", t.source, "err", err)
			continue
		}
		merged, added := mergeCandidates(coeffs, sp.values, cands, opts)
		if added == 0 {
			continue
		}
		next, err := measure(char, a, coeffs, merged, t.source, zs, opts)
		if err != nil {
			return sp, err
		}
		if kept, dropped := withoutShadowed(next); dropped {
			if next, err = measure(char, a, coeffs, kept, t.source, zs, opts); err != nil {
				return sp, err
			}
		}
		sp = next
		if !sp.unsettled() {
			break
		}
	}

	return sp, nil
}

// withoutShadowed drops every eigenvalue with a degenerate eigenspace that
// lies within clusterRadius of one whose eigenspace is sound: the two are
// estimates of one root, and only the sound one is kept.
func withoutShadowed(sp spectrum) ([]float64, bool) {
	kept := make([]float64, 0, len(sp.values))
	var dropped bool
	for i, v := range sp.values {
		if sp.spaces[i].Degenerate && hasSoundNeighbour(sp, i) {
			log.Debugw("dropping degenerate eigenvalue next to a sound one", "eigenvalue", v)
			dropped = true
			continue
		}
		kept = append(kept, v)
	}

	return kept, dropped
}

func hasSoundNeighbour(sp spectrum, i int) bool {
	v := sp.values[i]
	radius := clusterRadius * math.Max(1, math.Abs(v))
	for j, w := range sp.values {
		if j != i && !sp.spaces[j].Degenerate && math.Abs(w-v) <= radius {
			return true
		}
	}

	return false
}

// clusterRadius is how far, relative to max(1,|λ|), a Durand–Kerner root
// or a second estimate may sit from the real eigenvalue it belongs to. A
// k-fold root spreads its estimates over about ε^(1/k).
const clusterRadius = 1e-2

// unaccounted gives each real eigenvalue its algebraic multiplicity's worth
// of nearest Durand–Kerner roots (within clusterRadius) and returns the
// remaining roots that lie off the real axis.
func unaccounted(zs []complex128, values []float64, algebraic []int, imagTol float64) []complex128 {
	used := make([]bool, len(zs))
	var (
		i, j, k, best int
		d, bestD      float64
	)
	for i = range values {
		radius := clusterRadius * math.Max(1, math.Abs(values[i]))
		for k = 0; k < algebraic[i]; k++ {
			best, bestD = -1, radius
			for j = range zs {
				if used[j] {
					continue
				}
				if d = cmplx.Abs(zs[j] - complex(values[i], 0)); d <= bestD {
					best, bestD = j, d
				}
			}
			if best < 0 {
				break
			}
			used[best] = true
		}
	}

	var out []complex128
	for j = range zs {
		if !used[j] && math.Abs(imag(zs[j])) > imagTol*math.Max(1, cmplx.Abs(zs[j])) {
			out = append(out, zs[j])
		}
	}

	return out
}

// multiplicities returns the values that fit, their algebraic
// multiplicities and the sum, which never exceeds n. Each multiplicity is
// clamped to what is left of n; a value that finds nothing left is dropped
// with a warning.
func multiplicities(coeffs, values []float64, n int, opts Options) ([]float64, []int, int) {
	kept := make([]float64, 0, len(values))
	mults := make([]int, 0, len(values))
	var total int
	for _, v := range values {
		m, err := roots.Multiplicity(coeffs, v, opts.Options)
		if err != nil || m < 1 {
			m = 1
		}
		rest := n - total
		if rest == 0 {
			log.Warnw("dropping eigenvalue: multiplicities already sum to the order", "eigenvalue", v, "order", n)
			continue
		}
		if m > rest {
			m = rest
		}
		kept = append(kept, v)
		mults = append(mults, m)
		total += m
	}

	return kept, mults, total
}

// mergeCandidates polishes each candidate against the characteristic
// polynomial and adds the verified ones that are new.
func mergeCandidates(coeffs, values, cands []float64, opts Options) ([]float64, int) {
	out := append([]float64(nil), values...)
	var added int
	for _, c := range cands {
		y, ok, err := roots.Polish(coeffs, c, opts.Options)
		if err != nil || !ok {
			continue
		}
		if containsNear(out, y, opts.SnapTolerance) {
			continue
		}
		out = append(out, y)
		added++
	}
	sort.Float64s(out)

	return out, added
}

func containsNear(xs []float64, y, tol float64) bool {
	for _, x := range xs {
		if math.Abs(x-y) <= tol {
			return true
		}
	}

	return false
}
