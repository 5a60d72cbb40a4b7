// SPDX-License-Identifier: MIT
// Package: splinefit/sparse
//
// errors.go — sentinel errors for the sparse package.
//
// Error policy (strict):
//   • Sentinels only; callers branch with errors.Is.
//   • Shape violations between whole operands return errors; per-element
//     index violations panic (programmer error, mirrors slice indexing).
//   • Solver failures are errors, never silent degradation — the caller
//     decides whether a dense fallback applies.

package sparse

import "errors"

// ErrBadShape indicates a non-positive row or column count at
// construction time.
var ErrBadShape = errors.New("sparse: invalid shape")

// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
// AddScaled with differently shaped matrices or a right-hand side whose
// row count disagrees with the matrix.
var ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

// ErrNotSquare signals that a square matrix was required (AddScaledIdentity,
// SolveCG) but the operand is rectangular.
var ErrNotSquare = errors.New("sparse: matrix is not square")

// ErrNotConverged indicates that an iterative solver exhausted its
// iteration budget before reaching the requested tolerance.
var ErrNotConverged = errors.New("sparse: solver did not converge")

// ErrBreakdown indicates a fatal state inside an iterative solver: a
// non-positive or non-finite curvature p·Ap, typically from an indefinite
// or numerically broken system.
var ErrBreakdown = errors.New("sparse: solver breakdown")
