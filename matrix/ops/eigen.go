// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/eigensteps/matrix"
)

// JacobiEigen computes the eigenvalues and eigenvectors of a symmetric matrix
// by classical Jacobi rotations (largest off-diagonal pivot first).
// MAIN DESCRIPTION:
//   - Returns eigenvalues ascending and a matrix whose column k is the unit
//     eigenvector of eigenvalue k.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol).
//   - Stage 2: skip the sweep when IsZeroOffDiagonal(m, tol) already holds;
//     otherwise pick (p,q) maximizing |A[p][q]| and stop when it is below tol.
//   - Stage 3: rotate A in the (p,q) plane to zero A[p][q]; accumulate into V.
//   - Stage 4: read the diagonal, sort eigenpairs ascending.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (matrix sentinels).
//   - ErrInvalidArgument for maxIter ≤ 0 or a bad tol.
//   - ErrNotConverged when off-diagonal mass remains after maxIter rotations.
//
// Complexity:
//   - O(n²) per rotation (pivot search dominates), O(maxIter·n²) total.
func JacobiEigen(m matrix.Matrix, tol float64, maxIter int) ([]float64, *matrix.Dense, error) {
	if maxIter <= 0 || tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, nil, fmt.Errorf("JacobiEigen: maxIter=%d tol=%g: %w", maxIter, tol, ErrInvalidArgument)
	}
	if err := matrix.ValidateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("JacobiEigen: %w", err)
	}
	d, err := matrix.DenseCopy(m)
	if err != nil {
		return nil, nil, fmt.Errorf("JacobiEigen: %w", err)
	}
	// a diagonal input needs no rotation
	diag, err := matrix.IsZeroOffDiagonal(d, tol)
	if err != nil {
		return nil, nil, fmt.Errorf("JacobiEigen: %w", err)
	}
	n := d.Rows()
	A := d.ToRows()
	V := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		V[i] = make([]float64, n)
		V[i][i] = 1
	}

	var (
		iter, p, q         int
		maxOff, off        float64
		app, aqq, apq      float64
		theta, t, c, s     float64
		aip, aiq, vip, viq float64
	)
	for iter = 0; !diag && iter < maxIter; iter++ {
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A[i][j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq = A[p][p], A[q][q], A[p][q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A[i][p], A[i][q]
			A[i][p] = c*aip - s*aiq
			A[p][i] = A[i][p]
			A[i][q] = s*aip + c*aiq
			A[q][i] = A[i][q]
		}
		A[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q][q] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p][q], A[q][p] = 0, 0

		for i = 0; i < n; i++ {
			vip, viq = V[i][p], V[i][q]
			V[i][p] = c*vip - s*viq
			V[i][q] = s*vip + c*viq
		}
	}

	maxOff = NormZero
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			maxOff = math.Max(maxOff, math.Abs(A[i][j]))
		}
	}
	if !diag && maxOff >= tol && maxOff > 0 {
		return nil, nil, fmt.Errorf("JacobiEigen: off-diagonal %g after %d rotations: %w", maxOff, iter, ErrNotConverged)
	}

	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return A[order[a]][order[a]] < A[order[b]][order[b]] })

	values := make([]float64, n)
	vectors, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("JacobiEigen: %w", err)
	}
	for j = 0; j < n; j++ {
		values[j] = A[order[j]][order[j]]
		for i = 0; i < n; i++ {
			if err = vectors.Set(i, j, V[i][order[j]]); err != nil {
				return nil, nil, fmt.Errorf("JacobiEigen: %w", err)
			}
		}
	}

	return values, vectors, nil
}
