// SPDX-License-Identifier: MIT

package eigen

import (
	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/katalvlaran/eigensteps/matrix/ops"
)

// tier is one diagonalization fallback. candidates may return unvalidated
// values; every candidate is vetted against the characteristic polynomial.
type tier struct {
	source     Source
	candidates func(a *matrix.Dense, opts Options) ([]float64, error)
}

// fallbackTiers runs in order after the polynomial root solver.
var fallbackTiers = []tier{
	{SourceJacobi, jacobiCandidates},
	{SourceQR, qrCandidates},
	{SourceGeneral, generalCandidates},
}

// jacobiCandidates applies only to symmetric input; others yield nothing.
func jacobiCandidates(a *matrix.Dense, opts Options) ([]float64, error) {
	if matrix.ValidateSymmetric(a, opts.SymmetryTolerance) != nil {
		return nil, nil
	}
	values, _, err := ops.JacobiEigen(a, opts.QRTolerance, opts.JacobiMaxIterations)

	return values, err
}

// qrCandidates returns the diagonal of the last QR iterate even when the
// iteration did not converge; validation sorts out the noise.
func qrCandidates(a *matrix.Dense, opts Options) ([]float64, error) {
	res, err := ops.QRAlgorithm(a, opts.QRMaxIterations, opts.QRTolerance)
	if err != nil {
		return nil, err
	}

	return res.Values, nil
}

func generalCandidates(a *matrix.Dense, opts Options) ([]float64, error) {
	return ops.GeneralEigenvalues(a, opts.ImagTolerance)
}
