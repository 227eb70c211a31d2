// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-4}}, -4},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"singular 3x3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"zero first row", [][]float64{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}}, 0},
		{"4x4 upper", [][]float64{{2, 1, 1, 1}, {0, 3, 1, 1}, {0, 0, 4, 1}, {0, 0, 0, 5}}, 120},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(MustRows(t, tc.in))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestDeterminant_AgreesWithGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a := RandFilledDense(t, 5, 5, seed)
		got, err := matrix.Determinant(hide{a})
		require.NoError(t, err)

		flat := make([]float64, 0, 25)
		for _, row := range a.ToRows() {
			flat = append(flat, row...)
		}
		want := mat.Det(mat.NewDense(5, 5, flat))
		assert.InDelta(t, want, got, 1e-9, "seed %d", seed)
	}
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestTrace(t *testing.T) {
	tr, err := matrix.Trace(MustRows(t, [][]float64{{1, 9}, {9, 4}}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)

	_, err = matrix.Trace(MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestIsTriangular(t *testing.T) {
	tests := []struct {
		name        string
		in          [][]float64
		up, lo, tri bool
	}{
		{"diagonal", [][]float64{{1, 0}, {0, 2}}, true, true, true},
		{"upper", [][]float64{{1, 5}, {0, 2}}, true, false, true},
		{"lower", [][]float64{{1, 0}, {5, 2}}, false, true, true},
		{"full", [][]float64{{1, 5}, {5, 2}}, false, false, false},
		{"1x1", [][]float64{{7}}, true, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.in)
			up, err := matrix.IsUpperTriangular(m)
			require.NoError(t, err)
			lo, err := matrix.IsLowerTriangular(m)
			require.NoError(t, err)
			anyTri, err := matrix.IsTriangular(hide{m})
			require.NoError(t, err)
			assert.Equal(t, tc.up, up)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.tri, anyTri)
		})
	}

	_, err := matrix.IsTriangular(MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
