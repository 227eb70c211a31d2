// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/eigensteps/polynomial"
)

const (
	dkMaxIterations = 500
	dkTolerance     = 1e-12
	// dkPhase rotates the starting circle off the real axis; real starting
	// points of a real polynomial never leave it.
	dkPhase = 0.4
	// dkTieTolerance groups conjugate pairs whose real parts differ by rounding.
	dkTieTolerance = 1e-9
)

// ComplexRoots returns all deg(p) complex roots of desc via Durand–Kerner,
// sorted by real part then imaginary part.
//
// The starting points lie on the circle of Cauchy's radius. Iteration stops
// when no root moves more than 1e-12·max(1,|z|) or after 500 sweeps.
// Multiple roots converge slowly and carry an error near ε^(1/m).
//
// An empty, constant or zero polynomial has no roots.
//
// Errors: ErrNonFinite.
func ComplexRoots(desc []float64, opts Options) ([]complex128, error) {
	p, err := prepare(desc, opts)
	if errors.Is(err, ErrZeroPolynomial) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ComplexRoots: %w", err)
	}
	n := p.Degree()
	if n < 1 {
		return nil, nil
	}
	monic := p.Scale(1 / p[n])
	if n == 1 {
		return []complex128{complex(-monic[0], 0)}, nil
	}

	radius := cauchyBound(monic)
	zs := make([]complex128, n)
	var i, j, it int
	for i = 0; i < n; i++ {
		zs[i] = cmplx.Rect(radius, 2*math.Pi*float64(i)/float64(n)+dkPhase)
	}

	var (
		den, d, dz complex128
		moved      float64
	)
	for it = 0; it < dkMaxIterations; it++ {
		moved = 0
		for i = 0; i < n; i++ {
			den = 1
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				d = zs[i] - zs[j]
				if d == 0 {
					d = complex(1e-9, 1e-9)
				}
				den *= d
			}
			dz = evalComplex(monic, zs[i]) / den
			zs[i] -= dz
			if r := cmplx.Abs(dz) / math.Max(1, cmplx.Abs(zs[i])); r > moved {
				moved = r
			}
		}
		if moved <= dkTolerance {
			break
		}
	}
	if it == dkMaxIterations {
		log.Debugw("durand-kerner hit the iteration cap", "degree", n, "lastMove", moved)
	}

	sort.Slice(zs, func(a, b int) bool {
		ra, rb := real(zs[a]), real(zs[b])
		if math.Abs(ra-rb) > dkTieTolerance*math.Max(1, math.Abs(ra)) {
			return ra < rb
		}
		return imag(zs[a]) < imag(zs[b])
	})

	return zs, nil
}

func evalComplex(p polynomial.Poly, z complex128) complex128 {
	var v complex128
	for i := len(p) - 1; i >= 0; i-- {
		v = v*z + complex(p[i], 0)
	}

	return v
}

// CountReal counts entries with |imag| ≤ imagTol·max(1,|z|).
func CountReal(zs []complex128, imagTol float64) int {
	var n int
	for _, z := range zs {
		if math.Abs(imag(z)) <= imagTol*math.Max(1, cmplx.Abs(z)) {
			n++
		}
	}

	return n
}
