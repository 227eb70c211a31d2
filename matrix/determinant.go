// SPDX-License-Identifier: MIT

// Package matrix: determinant by cofactor expansion, trace, triangularity.
//
// Cofactor expansion is O(n!) and is meant for the small orders this module
// targets; it mirrors the symbolic expansion step for step so both can be
// cross-checked on the same input.

package matrix

import "fmt"

const (
	opDeterminant = "Determinant"
	opTrace       = "Trace"
	opTriangular  = "IsTriangular"
)

// Determinant returns det(m).
//
// Implementation:
//   - 1×1: the single entry. 2×2: ad - bc.
//   - Otherwise: expansion along row 0 with sign (-1)^j over Induced minors.
//     Zero entries of row 0 are skipped.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!) time, O(n²) space per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := DenseCopy(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(d)
}

func cofactorDet(d *Dense) (float64, error) {
	n := d.r
	switch n {
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	rowsIdx := make([]int, n-1)
	var i, j, k int
	for i = 1; i < n; i++ {
		rowsIdx[i-1] = i
	}
	colsIdx := make([]int, n-1)

	var (
		sum, sign, a, sub float64
		minor             *Dense
		err               error
	)
	sign = 1
	for j = 0; j < n; j, sign = j+1, -sign {
		a = d.data[j]
		if a == 0 {
			continue
		}
		k = 0
		for i = 0; i < n; i++ {
			if i != j {
				colsIdx[k] = i
				k++
			}
		}
		if minor, err = d.Induced(rowsIdx, colsIdx); err != nil {
			return 0, matrixErrorf(opDeterminant, fmt.Errorf("minor(0,%d): %w", j, err))
		}
		if sub, err = cofactorDet(minor); err != nil {
			return 0, err
		}
		sum += sign * a * sub
	}

	return sum, nil
}

// Trace returns the sum of the diagonal. Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var (
		sum, v float64
		i      int
		err    error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// IsUpperTriangular reports whether every entry strictly below the diagonal is 0.
func IsUpperTriangular(m Matrix) (bool, error) {
	return zeroTriangle(m, true)
}

// IsLowerTriangular reports whether every entry strictly above the diagonal is 0.
func IsLowerTriangular(m Matrix) (bool, error) {
	return zeroTriangle(m, false)
}

// IsTriangular reports whether m is upper or lower triangular.
// Comparison is exact: the symbolic stage relies on structural zeros.
// Errors: ErrNilMatrix, ErrNonSquare.
func IsTriangular(m Matrix) (bool, error) {
	up, err := IsUpperTriangular(m)
	if err != nil || up {
		return up, err
	}

	return IsLowerTriangular(m)
}

// zeroTriangle checks the strict lower (below=true) or upper triangle for zeros.
func zeroTriangle(m Matrix, below bool) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opTriangular, err)
	}
	n := m.Rows()
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if (below && j >= i) || (!below && j <= i) {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opTriangular, err)
			}
			if v != 0 {
				return false, nil
			}
		}
	}

	return true, nil
}
