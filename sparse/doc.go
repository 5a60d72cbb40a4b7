// SPDX-License-Identifier: MIT

// Package sparse provides the compressed sparse row (CSR) matrix kernels
// the fitting pipeline assembles its linear systems from, plus the
// conjugate-gradient solvers used for the sparse solve stage.
//
// Ingestion happens through a Triplets accumulator: append (row, col, v)
// entries in any order, then freeze into a canonical CSR with ToCSR —
// columns sorted within each row, duplicates coalesced by summation,
// exact zeros dropped.
//
// Available kernels:
//
//   - CSR.MulVec / CSR.MulTransVec — y = A·x and y = Aᵀ·x
//   - Gram(a, w)                   — AᵀWA for a diagonal weight vector
//     (nil ⇒ identity), the normal-equations building block
//   - MulTransDense(a, w, y)       — AᵀWY against a dense right-hand side
//   - AddScaled(a, α, c)           — A + α·C (same shape)
//   - AddScaledIdentity(a, α)      — A + α·I (square only)
//   - ToDense                      — export to a gonum mat.Dense
//
// Solvers:
//
//   - SolveCG   — conjugate gradients for square symmetric positive
//     (semi-)definite systems, one run per right-hand-side column
//   - SolveCGNR — least squares min‖Ax−b‖₂ for rectangular A via CG on
//     the normal equations, applied implicitly (AᵀA is never formed)
//
// Error policy: shape and convergence failures return sentinel errors
// (errors.Is against ErrBadShape, ErrDimensionMismatch, ErrNotConverged,
// ErrBreakdown). Index-out-of-range on Append/At/MulVec panics — that is
// a programmer error, not a data condition.
package sparse
