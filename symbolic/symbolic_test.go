// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/katalvlaran/eigensteps/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChar(t *testing.T, rows [][]float64) *symbolic.Matrix {
	t.Helper()
	m, err := symbolic.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestCell(t *testing.T) {
	assert.Equal(t, "x", symbolic.Symbolic(0).String())
	assert.Equal(t, "x - 3", symbolic.Symbolic(3).String())
	assert.Equal(t, "x + 2.5", symbolic.Symbolic(-2.5).String())
	assert.Equal(t, "0", symbolic.Numeric(math.Copysign(0, -1)).String())
	assert.Equal(t, "0.0000001", symbolic.Numeric(1e-7).String(), "no exponent notation")
	assert.Equal(t, -4.0, symbolic.Numeric(-4).Eval(100))
	assert.Equal(t, 7.0, symbolic.Symbolic(3).Eval(10))
	assert.True(t, symbolic.Numeric(0).IsZero())
	assert.False(t, symbolic.Symbolic(0).IsZero())
	assert.Equal(t, symbolic.KindSymbolic, symbolic.Symbolic(1).Kind())
}

func TestBuildCharacteristicMatrix(t *testing.T) {
	m := mustChar(t, [][]float64{{0, -2}, {1, -4}})
	assert.Equal(t, 2, m.Order())
	assert.Equal(t, [][]string{{"x", "2"}, {"-1", "x + 4"}}, m.Rows())
	assert.Equal(t, "[x, 2]\n[-1, x + 4]\n", m.String())

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, i == j, m.Cell(i, j).IsSymbolic(), "variable only on the diagonal")
		}
	}
}

func TestBuildCharacteristicMatrix_Errors(t *testing.T) {
	_, err := symbolic.FromRows(nil)
	require.ErrorIs(t, err, symbolic.ErrEmptyMatrix)
	_, err = symbolic.FromRows([][]float64{{1, 2}})
	require.ErrorIs(t, err, symbolic.ErrNonSquare)
	_, err = symbolic.BuildCharacteristicMatrix(nil)
	require.ErrorIs(t, err, symbolic.ErrEmptyMatrix)
	wide, _ := matrix.NewDense(2, 3)
	_, err = symbolic.BuildCharacteristicMatrix(wide)
	require.ErrorIs(t, err, symbolic.ErrNonSquare)
}

func TestSubstitute(t *testing.T) {
	m := mustChar(t, [][]float64{{2, 1}, {0, 2}})
	_, err := m.Dense()
	require.ErrorIs(t, err, symbolic.ErrNotSubstituted)

	sub := m.Substitute(2)
	assert.True(t, sub.IsNumeric())
	assert.False(t, m.IsNumeric(), "original untouched")

	d, err := sub.Dense()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, -1}, {0, 0}}, d.ToRows())

	c := m.Clone()
	assert.Equal(t, m.Rows(), c.Rows())
}

func TestIsTriangular(t *testing.T) {
	tri, err := mustChar(t, [][]float64{{3, 0}, {4, 5}}).IsTriangular()
	require.NoError(t, err)
	assert.True(t, tri)

	tri, err = mustChar(t, [][]float64{{3, 1}, {4, 5}}).IsTriangular()
	require.NoError(t, err)
	assert.False(t, tri)
}

func TestExpandDeterminant(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want string
	}{
		{"1x1", [][]float64{{7}}, "x - 7"},
		{"diagonal", [][]float64{{3, 0}, {0, 5}}, "(x - 3) * (x - 5)"},
		{"2x2 closed form", [][]float64{{2, 1}, {1, 2}}, "(x - 2)(x - 2) - (-1)(-1)"},
		{
			"3x3 tridiagonal",
			[][]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 4}},
			"(x - 2) * [(x - 3)(x - 4) - (-1)(-1)] - (-1) * [(-1) * (x - 4)]",
		},
		{
			"3x3 with triangular minors",
			[][]float64{{1, 2, 0}, {0, 3, 0}, {5, 0, 4}},
			"(x - 1) * [(x - 3) * (x - 4)] - (-2) * [(0) * (x - 4)]",
		},
		{
			"upper triangular 3x3",
			[][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}},
			"(x - 1) * (x - 4) * (x - 6)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := symbolic.ExpandDeterminant(mustChar(t, tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := symbolic.ExpandDeterminant(nil)
	require.ErrorIs(t, err, symbolic.ErrEmptyMatrix)
}

func TestExpandDeterminant_NestedBrackets(t *testing.T) {
	m := mustChar(t, [][]float64{
		{1, 1, 1, 1},
		{1, 2, 1, 1},
		{1, 1, 3, 1},
		{1, 1, 1, 4},
	})
	expr, err := symbolic.ExpandDeterminant(m)
	require.NoError(t, err)
	assert.Contains(t, expr, "[")
	assert.Contains(t, expr, "{")
}

// The expanded expression evaluated at x must equal det(xI - A).
func TestExpandDeterminant_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	for n := 1; n <= 5; n++ {
		for trial := 0; trial < 4; trial++ {
			rows := make([][]float64, n)
			for i := range rows {
				rows[i] = make([]float64, n)
				for j := range rows[i] {
					// small integers with some zeros
					rows[i][j] = float64(rng.Intn(7) - 3)
				}
			}
			m := mustChar(t, rows)
			expr, err := symbolic.ExpandDeterminant(m)
			require.NoError(t, err)

			for _, x := range []float64{-2.5, 0, 1, 3.25} {
				got, err := symbolic.Evaluate(expr, x)
				require.NoError(t, err, expr)
				want, err := symbolic.DeterminantAt(m, x)
				require.NoError(t, err)
				assert.InDelta(t, want, got, 1e-6*math.Max(1, math.Abs(want)), "n=%d x=%g expr=%s", n, x, expr)
			}
		}
	}
}
