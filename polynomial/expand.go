// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// LeadingTolerance is the magnitude below which a leading (highest-degree)
// coefficient is considered round-off and stripped.
const LeadingTolerance = 1e-9

// displayDigits is the rounding applied before rendering coefficients.
const displayDigits = 1e9

// Expansion is the result of Expand.
type Expansion struct {
	// Input is the expression as given.
	Input string
	// Expression is the expanded polynomial rendered by Format.
	Expression string
	// Coefficients are descending [a_n ... a_0] with a non-zero leading
	// coefficient, or [0] for the zero polynomial.
	Coefficients []float64
}

// Degree returns len(Coefficients)-1, or -1 for the zero polynomial.
func (e *Expansion) Degree() int {
	if len(e.Coefficients) == 1 && e.Coefficients[0] == 0 {
		return -1
	}

	return len(e.Coefficients) - 1
}

// Poly returns the expansion as an ascending Poly.
func (e *Expansion) Poly() Poly { return FromDescending(e.Coefficients) }

// Expand parses expr and returns its canonical coefficient list.
//
// Implementation:
//   - Stage 1: Parse (Tokenize → ToRPN → EvalRPN).
//   - Stage 2: strip leading coefficients with |c| < LeadingTolerance.
//   - Stage 3: reverse to descending order and render with Format.
//
// Errors: any of the package sentinels, wrapped with position details.
func Expand(expr string) (*Expansion, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	desc := p.TrimTol(LeadingTolerance).Descending()

	return &Expansion{
		Input:        expr,
		Expression:   Format(desc),
		Coefficients: desc,
	}, nil
}

// Evaluate parses expr and evaluates it at x.
func Evaluate(expr string, x float64) (float64, error) {
	p, err := Parse(expr)
	if err != nil {
		return 0, err
	}

	return p.Eval(x), nil
}

// Format renders descending coefficients as a human-readable polynomial in x,
// e.g. [1 -6 11 -6] → "x^3 - 6x^2 + 11x - 6".
//
// Coefficients are rounded to 9 decimals for display; terms that round to
// zero are omitted, unit coefficients are implicit. All-zero input gives "0".
func Format(desc []float64) string {
	var sb strings.Builder
	deg := len(desc) - 1
	var (
		i, power int
		c, mag   float64
	)
	for i = 0; i <= deg; i++ {
		power = deg - i
		c = roundDisplay(desc[i])
		if c == 0 {
			continue
		}
		mag = math.Abs(c)
		if sb.Len() == 0 {
			if c < 0 {
				sb.WriteString("-")
			}
		} else if c < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		if mag != 1 || power == 0 {
			sb.WriteString(strconv.FormatFloat(mag, 'f', -1, 64))
		}
		switch {
		case power == 1:
			sb.WriteString("x")
		case power > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(power))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

func roundDisplay(v float64) float64 {
	r := math.Round(v*displayDigits) / displayDigits
	if r == 0 {
		return 0
	}

	return r
}
