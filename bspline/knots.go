// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// knots.go — knot-vector generation, one sequence per input dimension.
//
// Every generator returns a non-decreasing sequence of length
// numBasisFunctions + degree + 1. The clamped policies repeat the boundary
// value degree+1 times so the basis interpolates at the domain edges; the
// experimental policy does not.

package bspline

import (
	"fmt"
	"sort"
)

// computeKnotVector derives one knot sequence from the sample coordinates
// of a single dimension.
//
// Inputs:
//   - values   — sample coordinates, sorted or not, duplicates allowed.
//   - degree   — basis degree d >= 0.
//   - numBasis — target basis-function count for the equidistant policies;
//     0 means "one per distinct coordinate". Ignored by as-sampled.
//   - spacing  — the policy selector.
//
// Errors:
//   - ErrInsufficientData — fewer distinct coordinates than degree+1, or a
//     degenerate coordinate range where the policy needs a proper span.
//   - ErrInvalidParameter — an explicit numBasis below degree+1, or an
//     unknown policy.
func computeKnotVector(values []float64, degree, numBasis int, spacing KnotSpacing) ([]float64, error) {
	u := distinctSorted(values)
	if len(u) < degree+1 {
		return nil, fmt.Errorf("computeKnotVector: %d distinct coordinates cannot support degree %d (need %d): %w",
			len(u), degree, degree+1, ErrInsufficientData)
	}

	switch spacing {
	case KnotSpacingAsSampled:
		return knotsMovingAverage(u, degree), nil
	case KnotSpacingEquidistant, KnotSpacingExperimental:
		n := numBasis
		if n == 0 {
			n = len(u)
		}
		if n < degree+1 {
			return nil, fmt.Errorf("computeKnotVector: %d basis functions cannot support degree %d (need %d): %w",
				n, degree, degree+1, ErrInvalidParameter)
		}
		lo, hi := u[0], u[len(u)-1]
		if lo == hi {
			return nil, fmt.Errorf("computeKnotVector: all coordinates equal %g, equidistant spacing needs a span: %w",
				lo, ErrInsufficientData)
		}
		if spacing == KnotSpacingEquidistant {
			return knotsEquidistant(lo, hi, degree, n), nil
		}

		return knotsEquidistantUnclamped(lo, hi, degree, n), nil
	default:
		return nil, fmt.Errorf("computeKnotVector: %v: %w", spacing, ErrInvalidParameter)
	}
}

// knotsMovingAverage places interior knots at moving averages of degree
// consecutive distinct coordinates and clamps both ends. With n distinct
// coordinates the basis has n functions (knot length n+degree+1), and the
// resulting design matrix is square on a complete grid — the classical
// averaging construction that keeps the Schoenberg–Whitney interleaving.
func knotsMovingAverage(u []float64, degree int) []float64 {
	n := len(u)
	knots := make([]float64, n+degree+1)

	for i := 0; i <= degree; i++ {
		knots[i] = u[0]
		knots[n+degree-i] = u[n-1]
	}

	if degree == 0 {
		// No window to average; split spans at coordinate midpoints so each
		// sample sits strictly inside its own span.
		for i := 1; i < n; i++ {
			knots[i] = (u[i-1] + u[i]) / 2
		}

		return knots
	}

	for i := 1; i <= n-degree-1; i++ {
		sum := 0.0
		for j := i; j < i+degree; j++ {
			sum += u[j]
		}
		knots[degree+i] = sum / float64(degree)
	}

	return knots
}

// knotsEquidistant places numBasis-degree+1 equally spaced knots spanning
// [lo, hi] and clamps both ends with degree extra repeats.
func knotsEquidistant(lo, hi float64, degree, numBasis int) []float64 {
	inner := numBasis - degree + 1 // boundary-inclusive interior sequence
	knots := make([]float64, 0, numBasis+degree+1)

	for i := 0; i < degree; i++ {
		knots = append(knots, lo)
	}
	step := (hi - lo) / float64(inner-1)
	for i := 0; i < inner; i++ {
		knots = append(knots, lo+float64(i)*step)
	}
	for i := 0; i < degree; i++ {
		knots = append(knots, hi)
	}
	knots[len(knots)-degree-1] = hi // guard accumulated rounding on the last interior knot

	return knots
}

// knotsEquidistantUnclamped places numBasis+degree+1 equally spaced knots
// chosen so the basis domain [t_degree, t_numBasis] equals [lo, hi]: the
// sequence extends degree steps beyond either boundary instead of
// repeating it.
func knotsEquidistantUnclamped(lo, hi float64, degree, numBasis int) []float64 {
	knots := make([]float64, numBasis+degree+1)
	step := (hi - lo) / float64(numBasis-degree)
	for i := range knots {
		knots[i] = lo + float64(i-degree)*step
	}
	knots[numBasis] = hi // exact right domain edge despite rounding

	return knots
}

// distinctSorted returns the sorted distinct values of a coordinate list.
func distinctSorted(values []float64) []float64 {
	u := append([]float64(nil), values...)
	sort.Float64s(u)
	out := u[:0]
	for i, v := range u {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
