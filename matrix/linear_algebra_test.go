// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSub(t *testing.T) {
	a := MustRows(t, [][]float64{{5, 4}, {3, 2}, {1, 0}})
	b := MustRows(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 3}, {2, 1}, {0, -1}}, diff.ToRows())

	diff, err = matrix.Sub(a, hide{b})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 3}, {2, 1}, {0, -1}}, diff.ToRows())

	_, err = matrix.Sub(a, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	got, err = matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	got, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())
}

func TestScale(t *testing.T) {
	a := MustRows(t, [][]float64{{1, -2}, {0, 4}})
	got, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-0.5, 1}, {0, -2}}, got.ToRows())

	got, err = matrix.Scale(hide{a}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, -4}, {0, 8}}, got.ToRows())

	// operand untouched
	assert.Equal(t, [][]float64{{1, -2}, {0, 4}}, a.ToRows())
}

func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	y, err = matrix.MatVec(hide{a}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestResidual_LambdaIMinusA(t *testing.T) {
	// (λI - A)v = 0 for λ=3, v=e1 of diag(3,5).
	a := MustRows(t, [][]float64{{3, 0}, {0, 5}})
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	lI, err := matrix.Scale(I, 3)
	require.NoError(t, err)
	shifted, err := matrix.Sub(lI, a)
	require.NoError(t, err)
	y, err := matrix.MatVec(shifted, []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, y)
}
