// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Run("copies input", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m := MustRows(t, src)
		src[0][0] = 99
		assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
		assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
	})
	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrEmpty)
		_, err = matrix.NewDenseFromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrEmpty)
	})
	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrRagged)
	})
	t.Run("non-finite", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(-1)}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 5))
	assert.Equal(t, 5.0, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIndependent(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, -1.0, MustAt(t, c, 0, 0))
}

func TestDense_RowAndShape(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 0
	assert.Equal(t, 4.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Induced(t *testing.T) {
	m := MustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	sub, err := m.Induced([]int{1, 2}, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 6}, {7, 9}}, sub.ToRows())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_String(t *testing.T) {
	m := MustRows(t, [][]float64{{1, -2.5}, {0, 3}})
	assert.Equal(t, "[1, -2.5]\n[0, 3]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.ToRows())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
