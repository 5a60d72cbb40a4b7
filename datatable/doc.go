// SPDX-License-Identifier: MIT

// Package datatable stores the (input, output) samples a spline is fitted
// to. A DataTable is configured with fixed input/output dimensionalities
// and validates every sample against them on ingestion.
//
// What the table guarantees:
//
//   - Every stored sample has exactly DimX inputs and DimY outputs, all
//     finite (no NaN, no ±Inf).
//   - Samples() iterates in insertion order — the fitting pipeline relies
//     on this order being stable between the design-matrix and
//     response-matrix passes.
//   - Grid(d) reports the sorted distinct coordinates observed along input
//     dimension d; the knot generators consume these.
//   - IsGridComplete reports whether the distinct sample points form the
//     full cartesian product of the per-dimension grids (a complete
//     regular grid). P-spline smoothing assumes such a grid.
//
// A DataTable is append-only. Once handed to a fit it must not be mutated;
// read-only sharing across concurrent fits is safe.
//
// Errors follow the sentinel policy: branch with errors.Is against
// ErrBadDimensions, ErrDimensionMismatch or ErrNotFinite.
package datatable
