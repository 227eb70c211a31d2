// SPDX-License-Identifier: MIT

package eigen

// Test bridge: exposes private pipeline stages to eigen_test only.

import (
	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/katalvlaran/eigensteps/roots"
	"github.com/katalvlaran/eigensteps/symbolic"
)

var (
	ExportedIncomplete      = incomplete
	ExportedMergeCandidates = mergeCandidates
	ExportedMultiplicities  = multiplicities
	ExportedUnaccounted     = unaccounted
)

// ExportedFallback runs the diagonalization tiers from an empty spectrum,
// as if the polynomial root solver had found nothing.
func ExportedFallback(a *matrix.Dense, coeffs []float64, opts Options) ([]float64, Source) {
	char, err := symbolic.BuildCharacteristicMatrix(a)
	if err != nil {
		return nil, SourceNone
	}
	zs, err := roots.ComplexRoots(coeffs, opts.Options)
	if err != nil {
		return nil, SourceNone
	}
	sp, err := measure(char, a, coeffs, nil, SourceNone, zs, opts)
	if err != nil {
		return nil, SourceNone
	}
	if sp, err = fallback(char, a, coeffs, sp, zs, opts); err != nil {
		return nil, SourceNone
	}

	return sp.values, sp.source
}

// ExportedTierCandidates returns the raw candidates of one tier.
func ExportedTierCandidates(s Source, a *matrix.Dense, opts Options) ([]float64, error) {
	for _, t := range fallbackTiers {
		if t.source == s {
			return t.candidates(a, opts)
		}
	}

	return nil, nil
}
