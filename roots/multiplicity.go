// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigensteps/polynomial"
)

// Multiplicity returns how many times (x - r) divides desc.
//
// Successive synthetic divisions by (x - r) yield the Taylor coefficients
// p(r), p'(r), p''(r)/2, … ; the multiplicity is the number of leading ones
// that vanish, each judged relative to Σ|q_i||r|^i of the polynomial being
// divided (MultiplicityTolerance). A non-root yields 0.
//
// Errors: ErrInvalidOptions, ErrNonFinite, ErrZeroPolynomial.
func Multiplicity(desc []float64, r float64, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("Multiplicity: %w", err)
	}
	p, err := prepare(desc, opts)
	if err != nil {
		return 0, fmt.Errorf("Multiplicity: %w", err)
	}

	return multiplicityOf(p, r, opts.MultiplicityTolerance), nil
}

func multiplicityOf(p polynomial.Poly, r, tol float64) int {
	var m int
	for p.Degree() >= 1 {
		q, rem := deflate(p, r)
		scale := magnitude(p, r)
		if scale == 0 {
			scale = 1
		}
		if math.Abs(rem) > tol*scale {
			break
		}
		m++
		p = q
	}

	return m
}
