// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// row-reduction kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the magnitude below which a candidate pivot is treated
	// as zero during row reduction ("no pivot in this column").
	DefaultEpsilon = 1e-9

	// DefaultPivotTolerance is the tolerance on "leading entry ≈ 1" used when
	// detecting pivot columns of a reduced matrix.
	DefaultPivotTolerance = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid        = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps      float64 // zero-pivot threshold; DefaultEpsilon
	pivotTol float64 // leading-entry ≈ 1 threshold; DefaultPivotTolerance
}

// WithEpsilon sets the zero-pivot threshold used by RowReduce and friends.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Larger eps makes near-singular matrices look singular; this is how
//     eigenvalues carrying rounding error still expose a null space.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the "leading entry ≈ 1" tolerance for pivot detection.
// Panics when tol is negative or non-finite.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		pivotTol: DefaultPivotTolerance,
	}
}

// gatherOptions folds opts over the defaults in call order (last write wins).
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
