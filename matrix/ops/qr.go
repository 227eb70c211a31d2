// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigensteps/matrix"
)

// NormZero is the accumulator seed for norms and dot products.
const NormZero = 0.0

// zeroColumnNorm is the norm at or below which a Gram-Schmidt residual is
// treated as a dependent (zero) column.
const zeroColumnNorm = 1e-14

// GramSchmidtQR factors a square m into Q·R with orthonormal (or zero) columns
// in Q and upper-triangular R.
//
// Implementation:
//   - Stage 1: copy the columns of m.
//   - Stage 2: for each column k, subtract its projection onto every earlier
//     q_j (modified Gram-Schmidt), then normalize. A residual whose norm is
//     ≤ zeroColumnNorm stays a zero column in Q.
//   - Stage 3: R = Qᵀ·m.
//
// Errors: ErrNilMatrix, ErrNonSquare (from matrix validators).
// Complexity: O(n³) time, O(n²) memory.
func GramSchmidtQR(m matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, fmt.Errorf("GramSchmidtQR: %w", err)
	}
	n := m.Rows()

	// cols[k] is column k of m, later overwritten with q_k.
	cols := make([][]float64, n)
	var (
		i, j, k   int
		dot, norm float64
		err       error
	)
	for k = 0; k < n; k++ {
		cols[k] = make([]float64, n)
		for i = 0; i < n; i++ {
			if cols[k][i], err = m.At(i, k); err != nil {
				return nil, nil, fmt.Errorf("GramSchmidtQR: %w", err)
			}
		}
	}

	for k = 0; k < n; k++ {
		v := cols[k]
		for j = 0; j < k; j++ {
			dot = NormZero
			for i = 0; i < n; i++ {
				dot += cols[j][i] * v[i]
			}
			for i = 0; i < n; i++ {
				v[i] -= dot * cols[j][i]
			}
		}
		norm = NormZero
		for i = 0; i < n; i++ {
			norm += v[i] * v[i]
		}
		norm = math.Sqrt(norm)
		if norm <= zeroColumnNorm {
			for i = 0; i < n; i++ {
				v[i] = 0
			}
			continue
		}
		for i = 0; i < n; i++ {
			v[i] /= norm
		}
	}

	Q, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("GramSchmidtQR: %w", err)
	}
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if err = Q.Set(i, k, cols[k][i]); err != nil {
				return nil, nil, fmt.Errorf("GramSchmidtQR: %w", err)
			}
		}
	}

	Qt, err := matrix.Transpose(Q)
	if err != nil {
		return nil, nil, fmt.Errorf("GramSchmidtQR: %w", err)
	}
	R, err := matrix.Mul(Qt, m)
	if err != nil {
		return nil, nil, fmt.Errorf("GramSchmidtQR: %w", err)
	}
	// R is upper triangular by construction; clear rounding residue below it.
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			if err = R.Set(i, j, 0); err != nil {
				return nil, nil, fmt.Errorf("GramSchmidtQR: %w", err)
			}
		}
	}

	return Q, R, nil
}
