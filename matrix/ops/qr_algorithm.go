// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"sort"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/eigensteps/matrix"
)

var log = logging.Logger("ops")

// Defaults for QRAlgorithm.
const (
	DefaultQRMaxIterations = 100
	DefaultQRTolerance     = 1e-10
)

// QRResult is the outcome of QRAlgorithm.
type QRResult struct {
	// Values is the finite part of the final iterate's diagonal, ascending.
	Values []float64
	// Iterations actually performed.
	Iterations int
	// Converged reports whether the strictly sub-diagonal part fell below
	// the tolerance before the iteration cap.
	Converged bool
	// Final is the last iterate A_k.
	Final *matrix.Dense
}

// QRAlgorithm runs unshifted QR iteration: A_0 = m, A_k = Q_k·R_k,
// A_{k+1} = R_k·Q_k, until max |A[i][j]| (i > j) < tol or maxIter is reached.
//
// The sub-diagonal is what vanishes as A_k approaches Schur form; for a
// symmetric m this is the full off-diagonal. Complex conjugate pairs leave a
// 2×2 block that never vanishes: the call then ends with Converged=false and
// the diagonal still holds meaningless values, so callers must validate.
//
// Non-convergence is not an error; it is reported through QRResult and a
// warning on the "ops" logger.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidArgument.
// Complexity: O(maxIter·n³).
func QRAlgorithm(m matrix.Matrix, maxIter int, tol float64) (*QRResult, error) {
	if maxIter <= 0 || tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("QRAlgorithm: maxIter=%d tol=%g: %w", maxIter, tol, ErrInvalidArgument)
	}
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("QRAlgorithm: %w", err)
	}

	A, err := matrix.DenseCopy(m)
	if err != nil {
		return nil, fmt.Errorf("QRAlgorithm: %w", err)
	}
	res := &QRResult{}
	var (
		Q, R *matrix.Dense
		iter int
	)
	// a diagonal input is already its own Schur form
	diag, err := matrix.IsZeroOffDiagonal(A, tol)
	if err != nil {
		return nil, fmt.Errorf("QRAlgorithm: %w", err)
	}
	res.Converged = diag
	for iter = 0; !diag && iter < maxIter; iter++ {
		if subDiagonalMax(A) < tol {
			res.Converged = true
			break
		}
		if Q, R, err = GramSchmidtQR(A); err != nil {
			return nil, fmt.Errorf("QRAlgorithm: iteration %d: %w", iter, err)
		}
		if A, err = matrix.Mul(R, Q); err != nil {
			return nil, fmt.Errorf("QRAlgorithm: iteration %d: %w", iter, err)
		}
	}
	if !res.Converged && subDiagonalMax(A) < tol {
		res.Converged = true
	}
	res.Iterations = iter
	res.Final = A
	if !res.Converged {
		log.Warnw("QR iteration did not converge", "n", A.Rows(), "iterations", iter, "residual", subDiagonalMax(A))
	}

	res.Values = make([]float64, 0, A.Rows())
	var (
		i int
		v float64
	)
	for i = 0; i < A.Rows(); i++ {
		v, _ = A.At(i, i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		res.Values = append(res.Values, v)
	}
	sort.Float64s(res.Values)

	return res, nil
}

// subDiagonalMax returns max |A[i][j]| over i > j.
func subDiagonalMax(A *matrix.Dense) float64 {
	var (
		i, j     int
		v, worst float64
	)
	for i = 1; i < A.Rows(); i++ {
		for j = 0; j < i; j++ {
			v, _ = A.At(i, j)
			if v = math.Abs(v); v > worst || math.IsNaN(v) {
				worst = v
			}
		}
	}

	return worst
}
