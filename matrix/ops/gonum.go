// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eigensteps/matrix"
)

// GeneralEigenvalues returns the real eigenvalues of any square m, ascending,
// using gonum's general (non-symmetric) eigensolver.
//
// An eigenvalue λ counts as real when |Im λ| ≤ imagTol·max(1, |λ|); its real
// part is returned. Repeated eigenvalues appear once per multiplicity.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidArgument (bad imagTol),
// matrix.ErrMatrixEigenFailed when the factorization fails.
func GeneralEigenvalues(m matrix.Matrix, imagTol float64) ([]float64, error) {
	if imagTol < 0 || math.IsNaN(imagTol) || math.IsInf(imagTol, 0) {
		return nil, fmt.Errorf("GeneralEigenvalues: imagTol=%g: %w", imagTol, ErrInvalidArgument)
	}
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("GeneralEigenvalues: %w", err)
	}
	d, err := matrix.DenseCopy(m)
	if err != nil {
		return nil, fmt.Errorf("GeneralEigenvalues: %w", err)
	}
	n := d.Rows()
	flat := make([]float64, 0, n*n)
	for _, row := range d.ToRows() {
		flat = append(flat, row...)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, flat), mat.EigenNone); !ok {
		return nil, fmt.Errorf("GeneralEigenvalues: %w", matrix.ErrMatrixEigenFailed)
	}

	values := eig.Values(nil)
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.Abs(imag(v)) <= imagTol*math.Max(1, cmplx.Abs(v)) {
			out = append(out, real(v))
		}
	}
	sort.Float64s(out)

	return out, nil
}
