// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigensteps/matrix"
	"github.com/katalvlaran/eigensteps/symbolic"
)

// Eigenspace is the null space of λI - A for one real eigenvalue λ.
type Eigenspace struct {
	Eigenvalue float64
	// AlgebraicMultiplicity is the multiplicity of λ as a root of the
	// characteristic polynomial. It is never below GeometricMultiplicity.
	AlgebraicMultiplicity int
	// GeometricMultiplicity is len(Basis).
	GeometricMultiplicity int
	// Basis vectors have length n, one per free variable of the RREF.
	Basis [][]float64
	// Defective marks GeometricMultiplicity < AlgebraicMultiplicity.
	Defective bool
	// Degenerate marks a numerical anomaly: λI - A row-reduced to full rank
	// (Basis is the e₁ stand-in), or every basis vector was zero.
	Degenerate bool
	// Residual is max ‖A·v - λv‖∞ over the basis.
	Residual float64
}

// BuildEigenspace substitutes λ into the characteristic matrix xI - A,
// row-reduces it and reads off the null-space basis. The pivot threshold is
// opts.Epsilon scaled by max(1, max|(λI - A)ᵢⱼ|).
//
// All-zero vectors are dropped. If nothing is left, the basis stays empty and
// the space is marked Degenerate; no eigenvector is made up. The e₁ stand-in
// that NullSpaceBasis returns for a full-rank matrix is kept but also marked
// Degenerate.
//
// a is the original matrix and is used only for the residual.
func BuildEigenspace(char *symbolic.Matrix, a matrix.Matrix, lambda float64, algebraic int, opts Options) (*Eigenspace, error) {
	if char == nil || a == nil {
		return nil, fmt.Errorf("BuildEigenspace: %w", ErrEmptyMatrix)
	}
	sub, err := char.SubstituteDense(lambda)
	if err != nil {
		return nil, fmt.Errorf("BuildEigenspace: %w", err)
	}
	// λ carries error relative to |A|, so the pivot threshold scales with λI - A.
	eps := opts.Epsilon * math.Max(1, maxAbs(sub))
	ns, err := matrix.NullSpaceBasis(sub, matrix.WithEpsilon(eps))
	if err != nil {
		return nil, fmt.Errorf("BuildEigenspace: %w", err)
	}

	es := &Eigenspace{
		Eigenvalue:            lambda,
		AlgebraicMultiplicity: algebraic,
		Degenerate:            ns.Fallback,
	}
	es.Basis = make([][]float64, 0, len(ns.Basis))
	for _, v := range ns.Basis {
		if !isZeroVector(v, opts.Epsilon) {
			es.Basis = append(es.Basis, v)
		}
	}
	if len(es.Basis) == 0 {
		log.Warnw("eigenspace basis empty after filtering zero vectors", "eigenvalue", lambda)
		es.Degenerate = true
	}

	es.GeometricMultiplicity = len(es.Basis)
	if es.GeometricMultiplicity > es.AlgebraicMultiplicity {
		log.Warnw("geometric multiplicity exceeds algebraic; raising algebraic",
			"eigenvalue", lambda, "geometric", es.GeometricMultiplicity, "algebraic", es.AlgebraicMultiplicity)
		es.AlgebraicMultiplicity = es.GeometricMultiplicity
	}
	es.Defective = es.GeometricMultiplicity < es.AlgebraicMultiplicity

	if es.Residual, err = residual(a, lambda, es.Basis); err != nil {
		return nil, fmt.Errorf("BuildEigenspace: %w", err)
	}

	return es, nil
}

func isZeroVector(v []float64, tol float64) bool {
	for _, x := range v {
		if math.Abs(x) > tol {
			return false
		}
	}

	return true
}

// maxAbs returns max |m_ij|.
func maxAbs(m *matrix.Dense) float64 {
	var worst float64
	for _, row := range m.ToRows() {
		for _, v := range row {
			if v = math.Abs(v); v > worst {
				worst = v
			}
		}
	}

	return worst
}

// residual returns max_k ‖(A - λI)·v_k‖∞.
func residual(a matrix.Matrix, lambda float64, basis [][]float64) (float64, error) {
	if len(basis) == 0 {
		return 0, nil
	}
	id, err := matrix.NewIdentity(a.Rows())
	if err != nil {
		return 0, err
	}
	lambdaI, err := matrix.Scale(id, lambda)
	if err != nil {
		return 0, err
	}
	shifted, err := matrix.Sub(a, lambdaI)
	if err != nil {
		return 0, err
	}

	var worst float64
	for _, v := range basis {
		w, err := matrix.MatVec(shifted, v)
		if err != nil {
			return 0, err
		}
		for _, x := range w {
			if x = math.Abs(x); x > worst {
				worst = x
			}
		}
	}

	return worst, nil
}
