// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// errors.go — sentinel errors for the bspline package.
//
// Error policy (strict):
//   • Only sentinel variables are exposed; branch with errors.Is(err, ErrX).
//   • Implementations attach context via fmt.Errorf("...: %w", ErrX) so the
//     expected value is named in the message while the sentinel survives.
//   • Fit never panics on user input; validation panics are confined to
//     option constructors (WithX...).

package bspline

import "errors"

// ErrDimensionMismatch indicates that the sample table's input or output
// dimensionality disagrees with the builder configuration, or that a point
// passed to EvalBasis/Eval has the wrong length.
// Usage: if errors.Is(err, ErrDimensionMismatch) { /* check dimX/dimY */ }.
var ErrDimensionMismatch = errors.New("bspline: dimension mismatch")

// ErrInvalidParameter indicates an invalid configuration value: a negative
// regularization weight, fewer than three basis functions per dimension
// under P-spline smoothing, a malformed knot vector, or an unknown
// smoothing/knot-spacing selector.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* fix configuration */ }.
var ErrInvalidParameter = errors.New("bspline: invalid parameter")

// ErrInsufficientData indicates fewer distinct sample coordinates than the
// requested degree supports in some input dimension (degree d needs at
// least d+1 distinct values).
// Usage: if errors.Is(err, ErrInsufficientData) { /* add samples or lower degree */ }.
var ErrInsufficientData = errors.New("bspline: insufficient sample data")

// ErrNumericalFailure indicates that both the sparse and the dense solve
// stages failed to produce coefficients (singular or severely
// ill-conditioned system). The fit is aborted; nothing is returned.
// Usage: if errors.Is(err, ErrNumericalFailure) { /* regularize or re-grid */ }.
var ErrNumericalFailure = errors.New("bspline: numerical failure")
