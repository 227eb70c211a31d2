// SPDX-License-Identifier: MIT

package symbolic

import (
	"math"
	"strconv"
)

// CellKind tags a Cell.
type CellKind uint8

const (
	// KindNumeric is a plain real number.
	KindNumeric CellKind = iota
	// KindSymbolic is x - Shift.
	KindSymbolic
)

// Cell is one entry of a characteristic matrix.
type Cell struct {
	kind  CellKind
	value float64 // the number, or the shift k in x - k
}

// Numeric returns a number cell. -0 is stored as 0.
func Numeric(v float64) Cell { return Cell{kind: KindNumeric, value: v + 0} }

// Symbolic returns the cell x - shift.
func Symbolic(shift float64) Cell { return Cell{kind: KindSymbolic, value: shift + 0} }

// Kind reports the tag.
func (c Cell) Kind() CellKind { return c.kind }

// IsSymbolic reports whether the cell carries the variable.
func (c Cell) IsSymbolic() bool { return c.kind == KindSymbolic }

// Value returns the number of a numeric cell or the shift of a symbolic one.
func (c Cell) Value() float64 { return c.value }

// IsZero reports whether c is the numeric zero. A symbolic cell is never zero.
func (c Cell) IsZero() bool { return c.kind == KindNumeric && c.value == 0 }

// Eval substitutes x into the cell.
func (c Cell) Eval(x float64) float64 {
	if c.kind == KindSymbolic {
		return x - c.value
	}

	return c.value
}

// String renders "x", "x - k", "x + k" or the number.
func (c Cell) String() string {
	if c.kind == KindNumeric {
		return formatNumber(c.value)
	}
	switch {
	case c.value == 0:
		return "x"
	case c.value > 0:
		return "x - " + formatNumber(c.value)
	default:
		return "x + " + formatNumber(-c.value)
	}
}

// formatNumber prints v without an exponent so the expression stays within
// the grammar of the polynomial parser.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // folds -0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
