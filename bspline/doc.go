// SPDX-License-Identifier: MIT

// Package bspline fits tensor-product B-spline surfaces to sample data.
//
// The central type is Builder: configure it with input/output
// dimensionalities, per-dimension degrees and a knot-spacing policy, then
// call Fit with a datatable.DataTable. Fit derives one knot vector per
// input dimension, constructs the spline shell, assembles the sparse
// design matrix from tensor-product basis evaluations, optionally applies
// regularization, solves the resulting linear system for the control-point
// coefficients, and returns the completed BSpline.
//
// Smoothing modes (the third Fit argument):
//
//   - SmoothingNone     — plain least squares ‖B·c − y‖².
//   - SmoothingIdentity — ridge (Tikhonov): (BᵀB + αI)·c = Bᵀy.
//   - SmoothingPSpline  — P-spline: (BᵀWB + αDᵀD)·c = BᵀWy with D the
//     second-order finite-difference operator on the coefficient grid
//     (W is currently the identity). Assumes a complete regular grid.
//
// Solve policy: systems with at least 100 equations first run an iterative
// sparse stage (conjugate gradients, or CG on the implicit normal
// equations for the unregularized rectangular case); smaller systems, and
// any sparse-stage failure, go to a dense QR-backed solve on gonum. Only
// when both stages fail does Fit return ErrNumericalFailure.
//
// Failure semantics: Fit either fully succeeds or returns one of the
// sentinel errors (ErrDimensionMismatch, ErrInvalidParameter,
// ErrInsufficientData, ErrNumericalFailure) without any partially fitted
// artifact. An incomplete sample grid is an advisory, not an error — it is
// reported through the Logf hook installed with WithLogf.
//
// Everything is synchronous and deterministic: no goroutines, no global
// state. A Builder may be reused; a DataTable may be shared read-only
// across concurrent fits on independent builders.
package bspline
