// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// solver.go — the two-stage solve: an iterative sparse attempt for large
// systems, then a dense QR-backed solve as the fallback (and as the direct
// route for small systems). Each stage reports an explicit outcome; there
// is no shared mutable "solved" flag.

package bspline

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/splinefit/sparse"
)

// denseSolveThreshold is the equation count below which the sparse stage
// is skipped and the dense solve runs directly.
const denseSolveThreshold = 100

// solveOutcome is the explicit result of the sparse stage.
type solveOutcome int

const (
	// solveSucceeded — coefficients computed by the sparse stage.
	solveSucceeded solveOutcome = iota
	// solveRetryDense — the sparse stage declined or failed; run dense.
	solveRetryDense
)

// solveSystem computes the coefficient matrix for the assembled system.
//
// Errors:
//   - ErrNumericalFailure — the dense stage (the last resort) failed too.
func solveSystem(sys linearSystem, logf Logf) (*mat.Dense, error) {
	rows, _ := sys.a.Dims()

	if rows >= denseSolveThreshold {
		if x, outcome := trySparse(sys, logf); outcome == solveSucceeded {
			return x, nil
		}
	} else {
		debugf(logf, "solve: %d equations below threshold %d, using dense solver", rows, denseSolveThreshold)
	}

	return solveDense(sys, logf)
}

// trySparse runs the iterative stage: conjugate gradients for the
// symmetric normal-equation assemblies, CG on the implicit normal
// equations (least squares) for the raw design matrix. Any solver error
// downgrades to a dense retry — the dense stage decides finality.
func trySparse(sys linearSystem, logf Logf) (*mat.Dense, solveOutcome) {
	var (
		x   *mat.Dense
		err error
	)
	if sys.symmetric {
		debugf(logf, "solve: sparse stage, conjugate gradients")
		x, err = sparse.SolveCG(sys.a, sys.b, sparse.CGOptions{})
	} else {
		debugf(logf, "solve: sparse stage, least squares on the normal equations")
		x, err = sparse.SolveCGNR(sys.a, sys.b, sparse.CGOptions{})
	}
	if err != nil {
		debugf(logf, "solve: sparse stage failed (%v), retrying dense", err)

		return nil, solveRetryDense
	}

	return x, solveSucceeded
}

// solveDense exports A and solves with gonum's QR-backed Solve, which
// minimizes ‖Ax − b‖₂ for rectangular systems. A near-singular condition
// warning is accepted when the solution is finite and reported through
// the hook; anything else is the unrecoverable end of the fit.
func solveDense(sys linearSystem, logf Logf) (*mat.Dense, error) {
	debugf(logf, "solve: dense stage")

	var x mat.Dense
	err := x.Solve(sys.a.ToDense(), sys.b)
	switch {
	case err == nil:
	case isConditionWarning(err) && allFinite(&x):
		debugf(logf, "solve: dense stage condition warning: %v", err)
	default:
		return nil, fmt.Errorf("solveDense: %v: %w", err, ErrNumericalFailure)
	}
	if !allFinite(&x) {
		return nil, fmt.Errorf("solveDense: non-finite solution: %w", ErrNumericalFailure)
	}

	return &x, nil
}

// isConditionWarning reports whether err is gonum's recoverable
// ill-conditioning notice (the solution was still computed).
func isConditionWarning(err error) bool {
	var cond mat.Condition

	return errors.As(err, &cond) && !math.IsInf(float64(cond), 1)
}

// allFinite reports whether every entry of m is a finite number.
func allFinite(m *mat.Dense) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}

// debugf forwards to the hook when one is installed.
func debugf(logf Logf, format string, args ...any) {
	if logf != nil {
		logf(format, args...)
	}
}
