// SPDX-License-Identifier: MIT

// Package roots finds the real roots of small real polynomials.
//
// Coefficients enter and leave in descending order [a_n, …, a_0].
//
// Strategy by degree:
//
//   - 1: x = -b/a.
//   - 2: discriminant and the cancellation-free quadratic formula.
//   - 3: depressed cubic. Cardano for one real root, the double/triple
//     root forms at zero discriminant, the trigonometric form for three.
//   - ≥4: hybrid search. Seeds are drawn from several strategies inside
//     the tighter of Cauchy's and Fujiwara's bounds, refined by damped
//     Newton-Raphson with bisection around the stall point, verified against
//     the ORIGINAL polynomial and deflated out by synthetic division. From a
//     cubic down, the closed-form roots of the working factor are tried
//     first.
//
// Multiple roots: a k-fold root passes the residual test up to about
// ε^(1/k) away. Every accepted root is therefore also tried as a root of
// the (m-1)th derivative for m from the degree down to 2; where that
// derivative has a simple root and all lower derivatives vanish, the root is
// replaced by it, deflated m times, and earlier copies are unified.
//
// After solving, runs of roots closer than 1e-4 (relative) that refine to a
// multiple root are merged, roots are snapped to integers when that does not
// worsen the residual, then near-duplicates are dropped.
//
// An empty, constant or zero polynomial has no roots.
//
// A degree ≥4 search that cannot find another root stops early and returns
// what it has (Solution.Exhausted); callers compare against ComplexRoots to tell "no more real
// roots" from "the search gave up".
//
// The random seed strategy is deterministic: Options.Seed == 0 selects a
// fixed default seed.
//
// Companion routines:
//
//   - Multiplicity counts how many times (x - r) divides p.
//   - ComplexRoots runs Durand–Kerner for the full complex spectrum.
//   - CountReal counts the near-real entries of such a spectrum.
package roots
