// SPDX-License-Identifier: MIT
package polynomial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/eigensteps/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		coefs []float64
		expr  string
	}{
		{"square", "(x-1)^2", []float64{1, -2, 1}, "x^2 - 2x + 1"},
		{"implicit number times group", "2(x-1)", []float64{2, -2}, "2x - 2"},
		{"implicit group times group", "(x - 3)(x - 5)", []float64{1, -8, 15}, "x^2 - 8x + 15"},
		{"unary minus binds below power", "-x^2", []float64{-1, 0, 0}, "-x^2"},
		{"unary minus inside group", "x*(-3)", []float64{-3, 0}, "-3x"},
		{"double negative", "x - -2", []float64{1, 2}, "x + 2"},
		{"unary plus", "+x", []float64{1, 0}, "x"},
		{"power is right associative", "x^2^2", []float64{1, 0, 0, 0, 0}, "x^4"},
		{"constant exponent expression", "x^(3-1)", []float64{1, 0, 0}, "x^2"},
		{"mixed brackets", "[(x - 3)(x - 5)] - {(2)(4)}", []float64{1, -8, 7}, "x^2 - 8x + 7"},
		{"typographic operators", "(x − 2)·(x + 2)", []float64{1, 0, -4}, "x^2 - 4"},
		{"decimals", "(x - 0.5)(x + 0.5)", []float64{1, 0, -0.25}, "x^2 - 0.25"},
		{"identically zero", "x - x", []float64{0}, "0"},
		{"constant", "3 * 4", []float64{12}, "12"},
		{
			"cofactor expansion of a 3x3",
			"(x - 2) * [(x - 3)(x - 4) - (-1)(-1)] - (-1) * [(-1)(x - 4) - (-1)(0)]",
			// (x-2)(x²-7x+11) + (-(x-4)) = x³ - 9x² + 25x - 22 - x + 4
			[]float64{1, -9, 24, -18},
			"x^3 - 9x^2 + 24x - 18",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := polynomial.Expand(tc.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.coefs, e.Coefficients, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Fatalf("coefficients (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.expr, e.Expression)
			assert.Equal(t, tc.in, e.Input)
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", polynomial.ErrEmptyExpression},
		{"   ", polynomial.ErrEmptyExpression},
		{"x + $", polynomial.ErrUnexpectedToken},
		{"1..2", polynomial.ErrUnexpectedToken},
		{"(x - 1]", polynomial.ErrMismatchedParen},
		{"(x - 1", polynomial.ErrMismatchedParen},
		{"x - 1)", polynomial.ErrMismatchedParen},
		{"x^x", polynomial.ErrMalformedExponent},
		{"x^1.5", polynomial.ErrMalformedExponent},
		{"x^(-1)", polynomial.ErrMalformedExponent},
		{"x^65", polynomial.ErrMalformedExponent},
		{"x +", polynomial.ErrMalformedExpression},
		{"*x", polynomial.ErrMalformedExpression},
		{"()", polynomial.ErrMalformedExpression},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := polynomial.Expand(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTokenize_ImplicitMultiplication(t *testing.T) {
	toks, err := polynomial.Tokenize("2x(x)")
	require.NoError(t, err)
	var got string
	for _, tk := range toks {
		got += tk.String()
	}
	assert.Equal(t, "2*x*(x)", got)
}

func TestTokenize_UnaryMinus(t *testing.T) {
	toks, err := polynomial.Tokenize("-(x)")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, polynomial.TokenNumber, toks[0].Kind)
	assert.Equal(t, -1.0, toks[0].Value)
	assert.Equal(t, '*', toks[1].Op)
	assert.Equal(t, -1, toks[1].Pos, "synthesized")
}

func TestEvaluate(t *testing.T) {
	v, err := polynomial.Evaluate("(x-1)^2", 3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = polynomial.Evaluate("x^", 1)
	require.ErrorIs(t, err, polynomial.ErrMalformedExpression)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "x^3 - 6x^2 + 11x - 6", polynomial.Format([]float64{1, -6, 11, -6}))
	assert.Equal(t, "-x + 1", polynomial.Format([]float64{-1, 1}))
	assert.Equal(t, "2.5x^2", polynomial.Format([]float64{2.5, 0, 0}))
	assert.Equal(t, "x - 1", polynomial.Format([]float64{1, -1.0000000000001}), "display rounding")
	assert.Equal(t, "0", polynomial.Format([]float64{1e-12}))
	assert.Equal(t, "0", polynomial.Format(nil))
}

func TestExpansion_DegreeAndPoly(t *testing.T) {
	e, err := polynomial.Expand("(x-2)^3")
	require.NoError(t, err)
	assert.Equal(t, 3, e.Degree())
	assert.Zero(t, e.Poly().Eval(2))

	z, err := polynomial.Expand("0")
	require.NoError(t, err)
	assert.Equal(t, -1, z.Degree())
}
