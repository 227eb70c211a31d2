// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// Defaults for Options.
const (
	DefaultZeroTolerance         = 1e-14
	DefaultResidualTolerance     = 1e-12
	DefaultSnapTolerance         = 1e-6
	DefaultDedupTolerance        = 1e-14
	DefaultMultiplicityTolerance = 1e-6
	DefaultMaxIterations         = 100
	DefaultMinStep               = 1.0 / 1024
	DefaultGridPoints            = 64
	DefaultRandomSeeds           = 32
)

// Options configures SolveRealRoots and its companions.
//
// ZeroTolerance         – leading coefficients with |a| ≤ this are stripped.
// ResidualTolerance     – a candidate is a root when |p(x)| / Σ|a_i||x|^i ≤ this,
//
//	evaluated on the original (undeflated) polynomial.
//
// SnapTolerance         – distance to an integer under which snapping is tried;
//
//	also the merge distance for duplicates.
//
// DedupTolerance        – two quadratic roots closer than this are one root.
// MultiplicityTolerance – relative remainder under which (x - r) still divides.
// MaxIterations         – Newton iterations per seed (> 0).
// MinStep               – damping floor: the Newton step is halved until its
//
//	factor drops below this, then the seed is abandoned.
//
// GridPoints            – uniform seeds across [-B, B], B = Cauchy bound.
// RandomSeeds           – random seeds across the same range.
// Seed                  – RNG seed; 0 selects the fixed default.
// DisableRandomSeeds    – drop the random strategy entirely.
type Options struct {
	ZeroTolerance         float64
	ResidualTolerance     float64
	SnapTolerance         float64
	DedupTolerance        float64
	MultiplicityTolerance float64
	MaxIterations         int
	MinStep               float64
	GridPoints            int
	RandomSeeds           int
	Seed                  int64
	DisableRandomSeeds    bool
}

// DefaultOptions returns the tolerances used throughout the pipeline.
func DefaultOptions() Options {
	return Options{
		ZeroTolerance:         DefaultZeroTolerance,
		ResidualTolerance:     DefaultResidualTolerance,
		SnapTolerance:         DefaultSnapTolerance,
		DedupTolerance:        DefaultDedupTolerance,
		MultiplicityTolerance: DefaultMultiplicityTolerance,
		MaxIterations:         DefaultMaxIterations,
		MinStep:               DefaultMinStep,
		GridPoints:            DefaultGridPoints,
		RandomSeeds:           DefaultRandomSeeds,
	}
}

// Validate reports the first inconsistent field wrapped in ErrInvalidOptions.
func (o Options) Validate() error {
	tols := []struct {
		name string
		v    float64
	}{
		{"ZeroTolerance", o.ZeroTolerance},
		{"ResidualTolerance", o.ResidualTolerance},
		{"SnapTolerance", o.SnapTolerance},
		{"DedupTolerance", o.DedupTolerance},
		{"MultiplicityTolerance", o.MultiplicityTolerance},
	}
	for _, t := range tols {
		if t.v < 0 || math.IsNaN(t.v) || math.IsInf(t.v, 0) {
			return fmt.Errorf("%s=%g: %w", t.name, t.v, ErrInvalidOptions)
		}
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("MaxIterations=%d: %w", o.MaxIterations, ErrInvalidOptions)
	}
	if !(o.MinStep > 0 && o.MinStep <= 1) {
		return fmt.Errorf("MinStep=%g: %w", o.MinStep, ErrInvalidOptions)
	}
	if o.GridPoints < 0 || o.RandomSeeds < 0 {
		return fmt.Errorf("GridPoints=%d RandomSeeds=%d: %w", o.GridPoints, o.RandomSeeds, ErrInvalidOptions)
	}

	return nil
}
