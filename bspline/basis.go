// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// basis.go — one-dimensional B-spline basis evaluation: knot-span lookup
// plus the Cox-de Boor triangular scheme. At any point exactly degree+1
// consecutive basis functions may be nonzero; eval returns that window.

package bspline

import "fmt"

// basis1D is the B-spline basis of one input dimension. Immutable.
type basis1D struct {
	degree   int
	knots    []float64
	numBasis int // len(knots) - degree - 1
}

// newBasis1D validates the knot vector and wraps it. The vector must be
// non-decreasing with at least 2·(degree+1) entries so the basis count is
// at least degree+1.
func newBasis1D(knots []float64, degree int) (*basis1D, error) {
	if degree < 0 {
		return nil, fmt.Errorf("newBasis1D: negative degree %d: %w", degree, ErrInvalidParameter)
	}
	if len(knots) < 2*(degree+1) {
		return nil, fmt.Errorf("newBasis1D: %d knots cannot support degree %d (need %d): %w",
			len(knots), degree, 2*(degree+1), ErrInvalidParameter)
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil, fmt.Errorf("newBasis1D: knot vector decreases at index %d (%g > %g): %w",
				i, knots[i-1], knots[i], ErrInvalidParameter)
		}
	}

	return &basis1D{
		degree:   degree,
		knots:    append([]float64(nil), knots...),
		numBasis: len(knots) - degree - 1,
	}, nil
}

// domain returns the interval on which the basis forms a partition of
// unity: [t_degree, t_numBasis].
func (b *basis1D) domain() (lo, hi float64) {
	return b.knots[b.degree], b.knots[b.numBasis]
}

// span returns the knot interval index µ with t_µ <= x < t_µ+1, restricted
// to the basis domain and skipping zero-width spans at clamped boundaries.
// x must already be clamped into the domain.
func (b *basis1D) span(x float64) int {
	d, n, t := b.degree, b.numBasis, b.knots

	if x >= t[n] {
		// Right domain edge: use the last non-degenerate span.
		mu := n - 1
		for mu > d && t[mu] == t[n] {
			mu--
		}

		return mu
	}
	if x <= t[d] {
		mu := d
		for mu < n-1 && t[mu+1] == t[d] {
			mu++
		}

		return mu
	}

	// Binary search for the largest µ in [d, n-1] with t_µ <= x.
	lo, hi := d, n // invariant: t_lo <= x < t_hi
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// eval computes the degree+1 basis values that may be nonzero at x.
// It returns the index of the first of them and their values in order;
// the values sum to one inside the basis domain. Points outside the
// domain are clamped onto its closest edge.
//
// This is the standard triangular recurrence (Cox-de Boor) evaluated
// span-locally; repeated knots yield zero denominators whose terms are
// defined as zero.
func (b *basis1D) eval(x float64) (first int, values []float64) {
	d, t := b.degree, b.knots

	if lo, hi := b.domain(); x < lo {
		x = lo
	} else if x > hi {
		x = hi
	}
	mu := b.span(x)

	values = make([]float64, d+1)
	left := make([]float64, d+1)
	right := make([]float64, d+1)

	values[0] = 1
	for j := 1; j <= d; j++ {
		left[j] = x - t[mu+1-j]
		right[j] = t[mu+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			den := right[r+1] + left[j-r]
			term := 0.0
			if den != 0 {
				term = values[r] / den
			}
			values[r] = saved + right[r+1]*term
			saved = left[j-r] * term
		}
		values[j] = saved
	}

	return mu - d, values
}
