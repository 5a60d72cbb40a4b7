// SPDX-License-Identifier: MIT
// Package: splinefit/datatable
//
// errors.go — sentinel errors for the datatable package.
//
// Error policy (strict):
//   • Only package-level sentinel variables are exposed.
//   • Callers MUST branch with errors.Is(err, ErrX), never string matching.
//   • Implementations attach context via fmt.Errorf("...: %w", ErrX).

package datatable

import "errors"

// ErrBadDimensions indicates that a requested dimensionality is not
// positive. New(0, 1) and New(1, -2) are programmer configuration errors.
// Usage: if errors.Is(err, ErrBadDimensions) { /* fix dimX/dimY */ }.
var ErrBadDimensions = errors.New("datatable: dimensions must be >= 1")

// ErrDimensionMismatch indicates that a sample's input or output vector
// length disagrees with the table's declared DimX/DimY.
// Usage: if errors.Is(err, ErrDimensionMismatch) { /* check sample shape */ }.
var ErrDimensionMismatch = errors.New("datatable: sample dimension mismatch")

// ErrNotFinite indicates a NaN or ±Inf coordinate or value in a sample.
// The fitting pipeline requires finite data end to end.
// Usage: if errors.Is(err, ErrNotFinite) { /* sanitize input data */ }.
var ErrNotFinite = errors.New("datatable: non-finite sample value")
