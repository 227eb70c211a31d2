// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eigensteps/symbolic"
)

// Source names the tier that produced the final eigenvalue set.
type Source string

const (
	SourceNone       Source = "none" // no real eigenvalue was found
	SourceClosedForm Source = "closed-form"
	SourceHybrid     Source = "hybrid"
	SourceJacobi     Source = "jacobi"
	SourceQR         Source = "qr"
	SourceGeneral    Source = "general"
)

// Result bundles the eigenvalues, eigenspaces and every intermediate of the
// derivation, as plain data for display.
type Result struct {
	// Order is n.
	Order int
	// Eigenvalues are the distinct real eigenvalues, ascending.
	Eigenvalues []float64
	// Eigenspaces are parallel to Eigenvalues.
	Eigenspaces []Eigenspace
	// ComplexEigenvalues are the Durand–Kerner roots off the real axis that
	// no real eigenvalue accounts for. No eigenspace is built for them.
	ComplexEigenvalues []complex128

	// CharacteristicMatrix is xI - A.
	CharacteristicMatrix *symbolic.Matrix
	// DeterminantExpression is det(xI - A) before expansion.
	DeterminantExpression string
	// CharacteristicPolynomial is the expanded polynomial, e.g. "x^2 - 8x + 15".
	CharacteristicPolynomial string
	// Coefficients of the characteristic polynomial, descending.
	Coefficients []float64

	// Trace of A.
	Trace float64
	// AllReal is set when the real eigenvalues account for all n roots,
	// counted with algebraic multiplicity.
	AllReal bool
	// Complete is set when AlgebraicTotal() + len(ComplexEigenvalues) == n
	// and the complex roots pair up into conjugates.
	Complete bool
	// ExpectedReal is n - len(ComplexEigenvalues).
	ExpectedReal int
	// Source is the tier that produced Eigenvalues.
	Source Source
}

// AlgebraicTotal returns the sum of algebraic multiplicities.
func (r *Result) AlgebraicTotal() int {
	var n int
	for _, es := range r.Eigenspaces {
		n += es.AlgebraicMultiplicity
	}

	return n
}

// String renders a short multi-line summary.
func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p(x) = %s\n", r.CharacteristicPolynomial)
	for _, es := range r.Eigenspaces {
		fmt.Fprintf(&sb, "λ = %g (alg %d, geo %d", es.Eigenvalue, es.AlgebraicMultiplicity, es.GeometricMultiplicity)
		if es.Defective {
			sb.WriteString(", defective")
		}
		fmt.Fprintf(&sb, "): %v\n", es.Basis)
	}
	fmt.Fprintf(&sb, "trace = %g, all real = %t, complete = %t, source = %s\n", r.Trace, r.AllReal, r.Complete, r.Source)

	return sb.String()
}
