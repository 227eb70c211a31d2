// SPDX-License-Identifier: MIT
package eigen_test

import (
	"testing"

	"github.com/katalvlaran/eigensteps/eigen"
	"github.com/katalvlaran/eigensteps/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEigenspace(t *testing.T) {
	rows := [][]float64{{2, 0, 0}, {0, 2, 1}, {0, 0, 2}}
	char, err := symbolic.FromRows(rows)
	require.NoError(t, err)

	es, err := eigen.BuildEigenspace(char, mustDense(t, rows), 2, 3, eigen.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, es.Basis)
	assert.Equal(t, 2, es.GeometricMultiplicity)
	assert.True(t, es.Defective)
	assert.False(t, es.Degenerate)
	assert.Zero(t, es.Residual)
}

func TestBuildEigenspace_NotAnEigenvalue(t *testing.T) {
	rows := [][]float64{{3, 0}, {0, 5}}
	char, err := symbolic.FromRows(rows)
	require.NoError(t, err)

	// 4I - A is regular: the e₁ stand-in comes back flagged.
	es, err := eigen.BuildEigenspace(char, mustDense(t, rows), 4, 1, eigen.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, es.Degenerate)
	assert.Equal(t, [][]float64{{1, 0}}, es.Basis)
	assert.InDelta(t, 1, es.Residual, 1e-12)
}

func TestBuildEigenspace_RaisesAlgebraic(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}}
	char, err := symbolic.FromRows(rows)
	require.NoError(t, err)

	es, err := eigen.BuildEigenspace(char, mustDense(t, rows), 1, 1, eigen.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, es.GeometricMultiplicity)
	assert.Equal(t, 2, es.AlgebraicMultiplicity)
	assert.False(t, es.Defective)
}

func TestBuildEigenspace_Nil(t *testing.T) {
	_, err := eigen.BuildEigenspace(nil, nil, 0, 1, eigen.DefaultOptions())
	require.ErrorIs(t, err, eigen.ErrEmptyMatrix)
}
