// SPDX-License-Identifier: MIT
// Package: splinefit/sparse
//
// cg.go — conjugate-gradient solvers for the sparse solve stage.
//
// SolveCG handles the square symmetric positive (semi-)definite systems
// the regularized assemblies produce. SolveCGNR handles the plain
// least-squares case with a rectangular design matrix by running CG on
// the normal equations without ever materializing AᵀA.

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Default iteration policy. MaxIter 0 resolves to
// DefaultMaxIterFactor·max(rows, cols); Tol 0 resolves to DefaultTol.
const (
	DefaultTol           = 1e-12
	DefaultMaxIterFactor = 10
)

// CGOptions tunes the iterative solvers.
//
// Fields:
//   - Tol     — relative residual tolerance; 0 means DefaultTol.
//   - MaxIter — iteration cap; 0 means DefaultMaxIterFactor·n.
type CGOptions struct {
	Tol     float64
	MaxIter int
}

func (o CGOptions) resolve(n int) (tol float64, maxIter int) {
	tol = o.Tol
	if tol <= 0 {
		tol = DefaultTol
	}
	maxIter = o.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIterFactor * n
	}

	return tol, maxIter
}

// SolveCG solves A·X = B column by column with conjugate gradients.
// A must be square and symmetric positive (semi-)definite; symmetry is
// the caller's contract and is not verified here.
//
// Errors:
//   - ErrNotSquare          — A is rectangular.
//   - ErrDimensionMismatch  — rows(B) != rows(A).
//   - ErrBreakdown          — non-positive or non-finite curvature.
//   - ErrNotConverged       — iteration budget exhausted on some column.
//
// Complexity: O(iter·nnz) per right-hand-side column.
func SolveCG(a *CSR, b *mat.Dense, opts CGOptions) (*mat.Dense, error) {
	if a.rows != a.cols {
		return nil, fmt.Errorf("SolveCG: %dx%d: %w", a.rows, a.cols, ErrNotSquare)
	}
	br, bc := b.Dims()
	if br != a.rows {
		return nil, fmt.Errorf("SolveCG: %d right-hand rows for %d equations: %w", br, a.rows, ErrDimensionMismatch)
	}

	tol, maxIter := opts.resolve(a.rows)
	n := a.rows
	x := mat.NewDense(n, bc, nil)

	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)
	col := make([]float64, n)

	for c := 0; c < bc; c++ {
		mat.Col(col, c, b)
		bnorm := norm2(col)
		if bnorm == 0 {
			continue // zero right-hand side ⇒ zero column
		}

		// x starts at zero, so r = b and p = r.
		copy(r, col)
		copy(p, r)
		xc := make([]float64, n)
		rs := dot(r, r)

		converged := false
		for iter := 0; iter < maxIter; iter++ {
			a.MulVec(ap, p)
			curv := dot(p, ap)
			if curv <= 0 || math.IsNaN(curv) || math.IsInf(curv, 0) {
				return nil, fmt.Errorf("SolveCG: column %d, curvature %g: %w", c, curv, ErrBreakdown)
			}
			alpha := rs / curv
			axpy(xc, alpha, p)
			axpy(r, -alpha, ap)
			rsNew := dot(r, r)
			if math.Sqrt(rsNew) <= tol*bnorm {
				converged = true
				break
			}
			beta := rsNew / rs
			for i := range p {
				p[i] = r[i] + beta*p[i]
			}
			rs = rsNew
		}
		if !converged {
			return nil, fmt.Errorf("SolveCG: column %d after %d iterations: %w", c, maxIter, ErrNotConverged)
		}
		x.SetCol(c, xc)
	}

	return x, nil
}

// SolveCGNR solves min‖A·X − B‖₂ column by column via CG on the normal
// equations AᵀA·x = Aᵀb, applying A and Aᵀ separately each iteration.
// Works for square and rectangular A alike.
//
// Errors:
//   - ErrDimensionMismatch — rows(B) != rows(A).
//   - ErrBreakdown         — zero or non-finite direction norm.
//   - ErrNotConverged      — iteration budget exhausted on some column.
//
// Complexity: O(iter·nnz) per right-hand-side column.
func SolveCGNR(a *CSR, b *mat.Dense, opts CGOptions) (*mat.Dense, error) {
	br, bc := b.Dims()
	if br != a.rows {
		return nil, fmt.Errorf("SolveCGNR: %d right-hand rows for %d matrix rows: %w", br, a.rows, ErrDimensionMismatch)
	}

	n := a.cols
	tol, maxIter := opts.resolve(max(a.rows, a.cols))
	x := mat.NewDense(n, bc, nil)

	r := make([]float64, a.rows)  // residual in sample space: b − A·x
	z := make([]float64, n)       // normal residual: Aᵀ·r
	p := make([]float64, n)       // search direction
	q := make([]float64, a.rows)  // A·p
	col := make([]float64, a.rows)

	for c := 0; c < bc; c++ {
		mat.Col(col, c, b)

		copy(r, col)
		a.MulTransVec(z, r)
		znorm0 := norm2(z)
		if znorm0 == 0 {
			continue // b is orthogonal to range(A); x = 0 is optimal
		}
		copy(p, z)
		xc := make([]float64, n)
		gamma := dot(z, z)

		converged := false
		for iter := 0; iter < maxIter; iter++ {
			a.MulVec(q, p)
			qq := dot(q, q)
			if qq == 0 || math.IsNaN(qq) || math.IsInf(qq, 0) {
				return nil, fmt.Errorf("SolveCGNR: column %d, direction norm %g: %w", c, qq, ErrBreakdown)
			}
			alpha := gamma / qq
			axpy(xc, alpha, p)
			axpy(r, -alpha, q)
			a.MulTransVec(z, r)
			gammaNew := dot(z, z)
			if math.Sqrt(gammaNew) <= tol*znorm0 {
				converged = true
				break
			}
			beta := gammaNew / gamma
			for i := range p {
				p[i] = z[i] + beta*p[i]
			}
			gamma = gammaNew
		}
		if !converged {
			return nil, fmt.Errorf("SolveCGNR: column %d after %d iterations: %w", c, maxIter, ErrNotConverged)
		}
		x.SetCol(c, xc)
	}

	return x, nil
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

func norm2(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

// axpy computes dst += alpha·v in place.
func axpy(dst []float64, alpha float64, v []float64) {
	for i := range dst {
		dst[i] += alpha * v[i]
	}
}
