// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigensteps/matrix/ops"
	"github.com/katalvlaran/eigensteps/roots"
)

// Defaults for Options.
const (
	DefaultMaxOrder            = 5
	DefaultJacobiMaxIterations = 500
	DefaultEpsilon             = 1e-7
	DefaultImagTolerance       = 1e-5
	DefaultSymmetryTolerance   = 1e-12
)

// Options configures Compute. The embedded roots.Options drive the
// polynomial root solver and the validation of fallback candidates.
type Options struct {
	roots.Options

	// MaxOrder is the largest accepted n.
	MaxOrder int
	// QRMaxIterations and QRTolerance configure the QR-iteration tier.
	QRMaxIterations int
	QRTolerance     float64
	// JacobiMaxIterations caps the rotations of the symmetric tier.
	JacobiMaxIterations int
	// SymmetryTolerance decides whether the Jacobi tier applies.
	SymmetryTolerance float64
	// Epsilon is the zero-pivot threshold when row-reducing λI - A.
	// Eigenvalues carry rounding error, so it must sit well above 1e-15.
	Epsilon float64
	// ImagTolerance classifies a Durand–Kerner root as real when
	// |Im z| ≤ ImagTolerance·max(1,|z|).
	ImagTolerance float64
	// DisableFallback stops after the polynomial root solver.
	DisableFallback bool
}

// DefaultOptions returns the configuration used by the examples and tests.
func DefaultOptions() Options {
	return Options{
		Options:             roots.DefaultOptions(),
		MaxOrder:            DefaultMaxOrder,
		QRMaxIterations:     ops.DefaultQRMaxIterations,
		QRTolerance:         ops.DefaultQRTolerance,
		JacobiMaxIterations: DefaultJacobiMaxIterations,
		SymmetryTolerance:   DefaultSymmetryTolerance,
		Epsilon:             DefaultEpsilon,
		ImagTolerance:       DefaultImagTolerance,
	}
}

// Validate checks every field, including the embedded root-solver options.
func (o Options) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.MaxOrder < 1 {
		return fmt.Errorf("MaxOrder=%d: %w", o.MaxOrder, ErrInvalidOptions)
	}
	if o.QRMaxIterations < 1 || o.JacobiMaxIterations < 1 {
		return fmt.Errorf("QRMaxIterations=%d JacobiMaxIterations=%d: %w",
			o.QRMaxIterations, o.JacobiMaxIterations, ErrInvalidOptions)
	}
	tols := []struct {
		name string
		v    float64
	}{
		{"QRTolerance", o.QRTolerance},
		{"SymmetryTolerance", o.SymmetryTolerance},
		{"Epsilon", o.Epsilon},
		{"ImagTolerance", o.ImagTolerance},
	}
	for _, t := range tols {
		if t.v < 0 || math.IsNaN(t.v) || math.IsInf(t.v, 0) {
			return fmt.Errorf("%s=%g: %w", t.name, t.v, ErrInvalidOptions)
		}
	}

	return nil
}
