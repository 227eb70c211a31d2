// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/katalvlaran/eigensteps/polynomial"
)

// brackets per recursion depth; deeper levels reuse the last pair.
var brackets = [...][2]string{{"[", "]"}, {"{", "}"}, {"(", ")"}}

func bracketAt(depth int) (string, string) {
	if depth >= len(brackets) {
		depth = len(brackets) - 1
	}

	return brackets[depth][0], brackets[depth][1]
}

// ExpandDeterminant writes det(m) as an algebraic expression in x.
// MAIN DESCRIPTION:
//   - The result is exact (no arithmetic is performed), so it can be parsed
//     back with polynomial.Expand.
//
// Implementation:
//   - 1×1: the cell itself ("x - 3").
//   - Triangular: the diagonal cells joined by " * ".
//   - 2×2: "(a)(d) - (b)(c)".
//   - Otherwise: cofactor expansion along row 0. Each non-zero element e_j
//     yields "(e_j) * [minor_j]" with sign (-1)^j; zero elements are skipped.
//     The minor is expanded recursively and bracketed by depth.
//   - No surviving term: "0".
//
// Errors: ErrEmptyMatrix for a nil or 0×0 matrix.
// Complexity: O(n!) terms, which is fine for n ≤ 5.
func ExpandDeterminant(m *Matrix) (string, error) {
	if m == nil || m.n == 0 {
		return "", fmt.Errorf("ExpandDeterminant: %w", ErrEmptyMatrix)
	}

	return expand(m, 0)
}

func expand(m *Matrix, depth int) (string, error) {
	if m.n == 1 {
		return m.cells[0][0].String(), nil
	}

	tri, err := m.IsTriangular()
	if err != nil {
		return "", fmt.Errorf("ExpandDeterminant: %w", err)
	}
	if tri {
		factors := make([]string, m.n)
		for i := 0; i < m.n; i++ {
			factors[i] = paren(m.cells[i][i])
		}
		return strings.Join(factors, " * "), nil
	}

	if m.n == 2 {
		return paren(m.cells[0][0]) + paren(m.cells[1][1]) + " - " +
			paren(m.cells[0][1]) + paren(m.cells[1][0]), nil
	}

	var sb strings.Builder
	open, closing := bracketAt(depth)
	for j := 0; j < m.n; j++ {
		e := m.cells[0][j]
		if e.IsZero() {
			continue
		}
		sub, err := expand(m.minor(j), depth+1)
		if err != nil {
			return "", err
		}
		negative := j%2 == 1
		switch {
		case sb.Len() == 0 && negative:
			sb.WriteString("-")
		case sb.Len() > 0 && negative:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(paren(e))
		sb.WriteString(" * ")
		sb.WriteString(open)
		sb.WriteString(sub)
		sb.WriteString(closing)
	}
	if sb.Len() == 0 {
		return "0", nil
	}

	return sb.String(), nil
}

func paren(c Cell) string { return "(" + c.String() + ")" }

// Evaluate evaluates an expression produced by ExpandDeterminant at x.
func Evaluate(expr string, x float64) (float64, error) {
	return polynomial.Evaluate(expr, x)
}

// DeterminantAt returns det(vI - A) numerically, by substitution and cofactor
// expansion; it is the reference value for the expanded expression.
func DeterminantAt(m *Matrix, v float64) (float64, error) {
	if m == nil || m.n == 0 {
		return 0, fmt.Errorf("DeterminantAt: %w", ErrEmptyMatrix)
	}
	d, err := m.SubstituteDense(v)
	if err != nil {
		return 0, fmt.Errorf("DeterminantAt: %w", err)
	}

	return matrix.Determinant(d)
}
