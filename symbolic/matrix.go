// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eigensteps/matrix"
)

// Matrix is an n×n grid of Cells. Values built by BuildCharacteristicMatrix
// carry x on the diagonal only; Substitute returns fully numeric copies.
// A Matrix is never modified after construction.
type Matrix struct {
	n     int
	cells [][]Cell
}

// BuildCharacteristicMatrix returns xI - A.
//
// Diagonal (i,i) is x - A[i][i] rendered as "x", "x - v" or "x + |v|";
// off-diagonal (i,j) is the number -A[i][j].
// Errors: ErrEmptyMatrix, ErrNonSquare, plus matrix.ErrNaNInf for non-finite entries.
func BuildCharacteristicMatrix(a matrix.Matrix) (*Matrix, error) {
	if a == nil || a.Rows() == 0 || a.Cols() == 0 {
		return nil, fmt.Errorf("BuildCharacteristicMatrix: %w", ErrEmptyMatrix)
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("BuildCharacteristicMatrix: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("BuildCharacteristicMatrix: %w", err)
	}

	n := a.Rows()
	cells := make([][]Cell, n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		cells[i] = make([]Cell, n)
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("BuildCharacteristicMatrix: %w", err)
			}
			if i == j {
				cells[i][j] = Symbolic(v)
			} else {
				cells[i][j] = Numeric(-v)
			}
		}
	}

	return &Matrix{n: n, cells: cells}, nil
}

// FromRows is BuildCharacteristicMatrix over a row-major literal.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrEmptyMatrix)
	}
	for i := range rows {
		if len(rows[i]) != len(rows) {
			return nil, fmt.Errorf("FromRows: row %d has %d entries for %d rows: %w", i, len(rows[i]), len(rows), ErrNonSquare)
		}
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	return BuildCharacteristicMatrix(a)
}

// Order returns n.
func (m *Matrix) Order() int { return m.n }

// Cell returns the cell at (i,j). Indices must be in range.
func (m *Matrix) Cell(i, j int) Cell { return m.cells[i][j] }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	cells := make([][]Cell, m.n)
	for i := range m.cells {
		cells[i] = make([]Cell, m.n)
		copy(cells[i], m.cells[i])
	}

	return &Matrix{n: m.n, cells: cells}
}

// Substitute returns a copy with x replaced by v in every symbolic cell.
// The receiver is unchanged.
func (m *Matrix) Substitute(v float64) *Matrix {
	out := m.Clone()
	for i := range out.cells {
		for j, c := range out.cells[i] {
			if c.IsSymbolic() {
				out.cells[i][j] = Numeric(c.Eval(v))
			}
		}
	}

	return out
}

// IsNumeric reports whether no cell carries the variable.
func (m *Matrix) IsNumeric() bool {
	for i := range m.cells {
		for _, c := range m.cells[i] {
			if c.IsSymbolic() {
				return false
			}
		}
	}

	return true
}

// Dense converts a fully numeric Matrix to *matrix.Dense.
// Errors: ErrNotSubstituted when a symbolic cell remains.
func (m *Matrix) Dense() (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.n, m.n)
	if err != nil {
		return nil, fmt.Errorf("Dense: %w", err)
	}
	for i := range m.cells {
		for j, c := range m.cells[i] {
			if c.IsSymbolic() {
				return nil, fmt.Errorf("Dense: cell (%d,%d) is %q: %w", i, j, c.String(), ErrNotSubstituted)
			}
			if err = d.Set(i, j, c.Value()); err != nil {
				return nil, fmt.Errorf("Dense: %w", err)
			}
		}
	}

	return d, nil
}

// SubstituteDense is Substitute followed by Dense: the numeric matrix vI - A.
func (m *Matrix) SubstituteDense(v float64) (*matrix.Dense, error) {
	return m.Substitute(v).Dense()
}

// Rows renders every cell for display.
func (m *Matrix) Rows() [][]string {
	out := make([][]string, m.n)
	for i := range m.cells {
		out[i] = make([]string, m.n)
		for j, c := range m.cells[i] {
			out[i][j] = c.String()
		}
	}

	return out
}

// String renders the grid one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, row := range m.Rows() {
		sb.WriteString("[")
		sb.WriteString(strings.Join(row, ", "))
		sb.WriteString("]\n")
	}

	return sb.String()
}

// IsTriangular reports whether every numeric cell strictly above, or every
// one strictly below, the diagonal is zero. Symbolic cells count as non-zero.
func (m *Matrix) IsTriangular() (bool, error) {
	shape, err := m.pattern()
	if err != nil {
		return false, err
	}

	return matrix.IsTriangular(shape)
}

// pattern maps cells onto a numeric matrix with the same zero pattern.
func (m *Matrix) pattern() (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.n, m.n)
	if err != nil {
		return nil, err
	}
	for i := range m.cells {
		for j, c := range m.cells[i] {
			v := c.Value()
			if c.IsSymbolic() {
				v = 1
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// minor returns the (n-1)×(n-1) matrix without row 0 and column col.
func (m *Matrix) minor(col int) *Matrix {
	n := m.n - 1
	cells := make([][]Cell, n)
	var i, j, k int
	for i = 1; i <= n; i++ {
		row := make([]Cell, 0, n)
		for j = 0; j <= n; j++ {
			if j != col {
				row = append(row, m.cells[i][j])
			}
		}
		cells[k] = row
		k++
	}

	return &Matrix{n: n, cells: cells}
}
