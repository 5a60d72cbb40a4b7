// SPDX-License-Identifier: MIT
// Package: splinefit/sparse
//
// ops.go — composite kernels used to assemble normal/penalized systems:
// weighted Gram products, dense right-hand-side products and scaled sums.

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gram computes AᵀWA for a diagonal weight matrix W given as a per-row
// weight slice. A nil w means the identity weighting. The result is
// square (cols×cols) and symmetric by construction.
//
// Errors:
//   - ErrDimensionMismatch — w is non-nil and len(w) != rows(A).
//
// Complexity: O(Σ_i w_i-row nnz²) — cheap while rows stay sparse, which
// holds for basis-function rows with ≤ ∏(degree+1) nonzeros.
func Gram(a *CSR, w []float64) (*CSR, error) {
	if w != nil && len(w) != a.rows {
		return nil, fmt.Errorf("Gram: %d weights for %d rows: %w", len(w), a.rows, ErrDimensionMismatch)
	}

	tri, err := NewTriplets(a.cols, a.cols)
	if err != nil {
		return nil, fmt.Errorf("Gram: %w", err)
	}
	for i := 0; i < a.rows; i++ {
		wi := 1.0
		if w != nil {
			wi = w[i]
		}
		if wi == 0 {
			continue
		}
		lo, hi := a.rowPtr[i], a.rowPtr[i+1]
		for p := lo; p < hi; p++ {
			vp := wi * a.val[p]
			for q := lo; q < hi; q++ {
				tri.Append(a.colInd[p], a.colInd[q], vp*a.val[q])
			}
		}
	}

	return tri.ToCSR(), nil
}

// MulTransDense computes AᵀWY for a dense Y and a diagonal weight vector
// (nil ⇒ identity). The result has cols(A) rows and cols(Y) columns.
//
// Errors:
//   - ErrDimensionMismatch — rows(Y) != rows(A), or bad weight length.
func MulTransDense(a *CSR, w []float64, y *mat.Dense) (*mat.Dense, error) {
	yr, yc := y.Dims()
	if yr != a.rows {
		return nil, fmt.Errorf("MulTransDense: %d right-hand rows for %d matrix rows: %w",
			yr, a.rows, ErrDimensionMismatch)
	}
	if w != nil && len(w) != a.rows {
		return nil, fmt.Errorf("MulTransDense: %d weights for %d rows: %w", len(w), a.rows, ErrDimensionMismatch)
	}

	out := mat.NewDense(a.cols, yc, nil)
	for i := 0; i < a.rows; i++ {
		wi := 1.0
		if w != nil {
			wi = w[i]
		}
		if wi == 0 {
			continue
		}
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			j, v := a.colInd[k], wi*a.val[k]
			for c := 0; c < yc; c++ {
				out.Set(j, c, out.At(j, c)+v*y.At(i, c))
			}
		}
	}

	return out, nil
}

// AddScaled computes A + alpha·C for matrices of identical shape.
//
// Errors:
//   - ErrDimensionMismatch — shapes differ.
func AddScaled(a *CSR, alpha float64, c *CSR) (*CSR, error) {
	if a.rows != c.rows || a.cols != c.cols {
		return nil, fmt.Errorf("AddScaled: %dx%d vs %dx%d: %w",
			a.rows, a.cols, c.rows, c.cols, ErrDimensionMismatch)
	}

	tri, err := NewTriplets(a.rows, a.cols)
	if err != nil {
		return nil, fmt.Errorf("AddScaled: %w", err)
	}
	appendAll(tri, a, 1)
	appendAll(tri, c, alpha)

	return tri.ToCSR(), nil
}

// AddScaledIdentity computes A + alpha·I for a square A.
//
// Errors:
//   - ErrNotSquare — A is rectangular.
func AddScaledIdentity(a *CSR, alpha float64) (*CSR, error) {
	if a.rows != a.cols {
		return nil, fmt.Errorf("AddScaledIdentity: %dx%d: %w", a.rows, a.cols, ErrNotSquare)
	}

	tri, err := NewTriplets(a.rows, a.cols)
	if err != nil {
		return nil, fmt.Errorf("AddScaledIdentity: %w", err)
	}
	appendAll(tri, a, 1)
	for i := 0; i < a.rows; i++ {
		tri.Append(i, i, alpha)
	}

	return tri.ToCSR(), nil
}

// appendAll copies scale·m into the accumulator.
func appendAll(tri *Triplets, m *CSR, scale float64) {
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			tri.Append(i, m.colInd[k], scale*m.val[k])
		}
	}
}
