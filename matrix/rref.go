// SPDX-License-Identifier: MIT

// Package matrix: Gauss-Jordan row reduction and its byproducts
// (rank, pivot columns, null-space basis).
//
// Numeric policy:
//   - A candidate pivot with |v| ≤ eps is "no pivot"; the column is skipped.
//   - Pivot selection is the FIRST qualifying row at or below the current
//     pivot row, not the largest. Results therefore match hand computation
//     step for step, and ill-conditioned inputs may under-report rank.
//   - Pivots are written as exactly 1 and eliminated entries as exactly 0,
//     so pivot detection downstream is not polluted by rounding residue.

package matrix

import (
	"fmt"
	"math"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("matrix")

const (
	opRowReduce    = "RowReduce"
	opPivotColumns = "PivotColumns"
	opNullSpace    = "NullSpaceBasis"
)

// DenseCopy copies any Matrix into a fresh *Dense. *Dense inputs are cloned;
// other implementations are read through At and written through Set.
// Complexity: O(r*c).
func DenseCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// RowReduce returns the reduced row echelon form of m.
// MAIN DESCRIPTION:
//   - Gauss-Jordan elimination built from SwapRows, ScaleRow and AddScaledRow.
//   - The input is never mutated; the result is a fresh *Dense.
//
// Implementation:
//   - Stage 1: copy m into a working *Dense.
//   - Stage 2: for each column left to right, find the first row at or below
//     the pivot row with |v| > eps. None: skip the column.
//   - Stage 3: swap it up, scale the pivot to 1, eliminate the column in
//     every other row, then advance the pivot row.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (from the copy).
//
// Determinism:
//   - Fixed column→row scan; identical input gives bit-identical output.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RowReduce(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	w, err := DenseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}

	var (
		row, col, i int
		pivot, f    float64
		found       bool
	)
	for col = 0; col < w.c && row < w.r; col++ {
		found = false
		for i = row; i < w.r; i++ {
			if math.Abs(w.data[i*w.c+col]) > o.eps {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		if err = w.SwapRows(row, i); err != nil {
			return nil, matrixErrorf(opRowReduce, err)
		}
		pivot = w.data[row*w.c+col]
		if err = w.ScaleRow(row, 1/pivot); err != nil {
			return nil, matrixErrorf(opRowReduce, err)
		}
		w.data[row*w.c+col] = 1
		for i = 0; i < w.r; i++ {
			if i == row {
				continue
			}
			f = w.data[i*w.c+col]
			if f == 0 {
				continue
			}
			if err = w.AddScaledRow(i, row, -f); err != nil {
				return nil, matrixErrorf(opRowReduce, err)
			}
			w.data[i*w.c+col] = 0
		}
		row++
	}

	return w, nil
}

// PivotColumns reports, for a matrix already in RREF, the column index of
// each row's leading entry when that entry is ≈1 (within the pivot tolerance).
// Rows whose leading entry is absent or not ≈1 contribute nothing.
// The returned slice is ascending and has one entry per pivot row.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func PivotColumns(rref Matrix, opts ...Option) ([]int, error) {
	_, cols, err := pivotPositions(rref, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opPivotColumns, err)
	}

	return cols, nil
}

// pivotPositions returns the (row, column) of every ≈1 leading entry.
func pivotPositions(rref Matrix, o Options) (rows, cols []int, err error) {
	if err = ValidateNotNil(rref); err != nil {
		return nil, nil, err
	}
	rows = make([]int, 0, rref.Rows())
	cols = make([]int, 0, rref.Rows())
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rref.Rows(); i++ {
		for j = 0; j < rref.Cols(); j++ {
			if v, err = rref.At(i, j); err != nil {
				return nil, nil, err
			}
			if math.Abs(v) <= o.eps {
				continue
			}
			if math.Abs(v-1) <= o.pivotTol {
				rows = append(rows, i)
				cols = append(cols, j)
			}
			break
		}
	}

	return rows, cols, nil
}

// Rank returns the number of pivot columns in RowReduce(m).
// Near-singular matrices may report a lower rank than exact arithmetic would.
func Rank(m Matrix, opts ...Option) (int, error) {
	r, err := RowReduce(m, opts...)
	if err != nil {
		return 0, err
	}
	p, err := PivotColumns(r, opts...)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

// NullSpace is the result of NullSpaceBasis.
type NullSpace struct {
	// Basis holds one vector per free variable, each of length Cols().
	Basis [][]float64
	// Pivots and Free partition the column indices.
	Pivots []int
	Free   []int
	// RREF is the reduced matrix the basis was read from.
	RREF *Dense
	// Fallback is set when no free variable existed and Basis is {e₁}.
	Fallback bool
}

// NullSpaceBasis extracts a basis of {v : m·v = 0} from RowReduce(m).
// MAIN DESCRIPTION:
//   - Every non-pivot column is a free variable. For each free column f the
//     basis vector has v[f] = 1 and v[p_k] = -rref[k][f] for every pivot row k.
//
// Implementation:
//   - Stage 1: RowReduce, then PivotColumns.
//   - Stage 2: the complement of the pivots gives the free columns.
//   - Stage 3: build one vector per free column.
//   - Stage 4: no free column at all is a degeneracy for the callers in this
//     module (m is meant to be singular). Log it and return {e₁} with Fallback set.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c*min(r,c)) for the reduction + O(c²) for the basis.
func NullSpaceBasis(m Matrix, opts ...Option) (*NullSpace, error) {
	rref, err := RowReduce(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	pivotRows, pivots, err := pivotPositions(rref, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	cols := rref.c
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}
	free := make([]int, 0, cols-len(pivots))
	var j int
	for j = 0; j < cols; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}

	ns := &NullSpace{Pivots: pivots, Free: free, RREF: rref}
	if len(free) == 0 {
		log.Warnw("no free variables; falling back to e1", "rows", rref.r, "cols", cols)
		e1 := make([]float64, cols)
		e1[0] = 1
		ns.Basis = [][]float64{e1}
		ns.Fallback = true

		return ns, nil
	}

	ns.Basis = make([][]float64, 0, len(free))
	var k int
	for _, f := range free {
		v := make([]float64, cols)
		v[f] = 1
		for k = 0; k < len(pivots); k++ {
			if c := rref.data[pivotRows[k]*cols+f]; c != 0 {
				v[pivots[k]] = -c // leaves +0 rather than -0
			}
		}
		ns.Basis = append(ns.Basis, v)
	}

	return ns, nil
}

// String summarizes the partition, mainly for debugging output.
func (ns *NullSpace) String() string {
	return fmt.Sprintf("NullSpace{dim=%d pivots=%v free=%v fallback=%t}",
		len(ns.Basis), ns.Pivots, ns.Free, ns.Fallback)
}
