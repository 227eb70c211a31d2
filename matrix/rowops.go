// SPDX-License-Identifier: MIT

// Package matrix: the three elementary row operations on *Dense.
//
// All three mutate the receiver in place and are the only mutation primitives
// RowReduce uses; callers that need the input preserved work on a Clone.

package matrix

import "fmt"

const (
	ctxSwapRows     = "SwapRows"
	ctxScaleRow     = "ScaleRow"
	ctxAddScaledRow = "AddScaledRow"
)

// checkRow returns ErrOutOfRange wrapped with the method tag when i is not a row index.
func (m *Dense) checkRow(method string, i int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s: row %d: %w", method, i, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows i and j. Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow(ctxSwapRows, i); err != nil {
		return err
	}
	if err := m.checkRow(ctxSwapRows, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	var k int
	bi, bj := i*m.c, j*m.c
	for k = 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// ScaleRow multiplies row i by s.
// Errors: ErrOutOfRange, ErrNaNInf (non-finite factor). Complexity: O(c).
func (m *Dense) ScaleRow(i int, s float64) error {
	if err := m.checkRow(ctxScaleRow, i); err != nil {
		return err
	}
	if isNonFinite(s) {
		return fmt.Errorf("Dense.%s: %w", ctxScaleRow, ErrNaNInf)
	}
	var k int
	base := i * m.c
	for k = 0; k < m.c; k++ {
		m.data[base+k] *= s
	}

	return nil
}

// AddScaledRow performs row[dst] += s*row[src] (the "replace" operation).
// Errors: ErrOutOfRange, ErrNaNInf (non-finite factor). Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, s float64) error {
	if err := m.checkRow(ctxAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddScaledRow, src); err != nil {
		return err
	}
	if isNonFinite(s) {
		return fmt.Errorf("Dense.%s: %w", ctxAddScaledRow, ErrNaNInf)
	}
	if s == 0 {
		return nil
	}
	var k int
	bd, bs := dst*m.c, src*m.c
	for k = 0; k < m.c; k++ {
		m.data[bd+k] += s * m.data[bs+k]
	}

	return nil
}
