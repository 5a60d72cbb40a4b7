// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// builder.go — the fit orchestrator. A Builder is configured once and can
// run any number of fits; each fit owns its spline shell exclusively until
// the coefficients are assigned, so no partially fitted artifact can ever
// escape.

package bspline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/splinefit/datatable"
)

// Builder fits tensor-product B-splines with a fixed input/output
// dimensionality, per-dimension degrees and a knot-spacing policy.
// Construct with NewBuilder; the zero value is not usable.
type Builder struct {
	dimX, dimY int
	degrees    []int
	numBasis   []int
	spacing    KnotSpacing
	logf       Logf
}

// NewBuilder creates a Builder for dimX input and dimY output dimensions.
// Defaults: degree 3 (cubic) in every dimension, as-sampled knot spacing,
// basis-function counts derived from the data, no diagnostics.
//
// Errors:
//   - ErrInvalidParameter — non-positive dimensionality, or an option
//     whose per-dimension slice length disagrees with dimX.
func NewBuilder(dimX, dimY int, opts ...BuilderOption) (*Builder, error) {
	if dimX < 1 || dimY < 1 {
		return nil, fmt.Errorf("NewBuilder: dimensions %dx%d must be >= 1: %w", dimX, dimY, ErrInvalidParameter)
	}

	b := &Builder{
		dimX:     dimX,
		dimY:     dimY,
		degrees:  make([]int, dimX),
		numBasis: make([]int, dimX),
		spacing:  KnotSpacingAsSampled,
	}
	for d := range b.degrees {
		b.degrees[d] = DefaultDegree
	}
	for _, opt := range opts {
		opt(b)
	}

	if len(b.degrees) != dimX {
		return nil, fmt.Errorf("NewBuilder: %d degrees for %d input dimensions: %w",
			len(b.degrees), dimX, ErrInvalidParameter)
	}
	if len(b.numBasis) != dimX {
		return nil, fmt.Errorf("NewBuilder: %d basis-function counts for %d input dimensions: %w",
			len(b.numBasis), dimX, ErrInvalidParameter)
	}

	return b, nil
}

// DimX returns the configured input dimensionality.
func (b *Builder) DimX() int { return b.dimX }

// DimY returns the configured output dimensionality.
func (b *Builder) DimY() int { return b.dimY }

// Fit derives knot vectors from the table, assembles the (optionally
// regularized) least-squares system and solves it for the control-point
// coefficients. On success the returned spline is complete; on any error
// nothing partially fitted is returned.
//
// alpha is the regularization weight for SmoothingIdentity and
// SmoothingPSpline; it must be >= 0 and is ignored by SmoothingNone.
//
// An incomplete sample grid is an advisory reported through the Logf hook
// — the fit still runs, but the P-spline correctness assumptions weaken.
//
// Errors: ErrDimensionMismatch, ErrInvalidParameter, ErrInsufficientData,
// ErrNumericalFailure (see errors.go for the classification).
func (b *Builder) Fit(table *datatable.DataTable, smoothing Smoothing, alpha float64) (*BSpline, error) {
	if table == nil {
		return nil, fmt.Errorf("Fit: nil table: %w", ErrInvalidParameter)
	}
	if table.DimX() != b.dimX {
		return nil, fmt.Errorf("Fit: expected %d input variables, table has %d: %w",
			b.dimX, table.DimX(), ErrDimensionMismatch)
	}
	if table.DimY() != b.dimY {
		return nil, fmt.Errorf("Fit: expected %d output variables, table has %d: %w",
			b.dimY, table.DimY(), ErrDimensionMismatch)
	}
	if alpha < 0 {
		return nil, fmt.Errorf("Fit: alpha must be non-negative, got %g: %w", alpha, ErrInvalidParameter)
	}
	if table.NumSamples() == 0 {
		return nil, fmt.Errorf("Fit: empty sample table: %w", ErrInsufficientData)
	}

	if !table.IsGridComplete() {
		debugf(b.logf, "fit: building spline from an irregular (incomplete) grid")
	}

	knots, err := b.computeKnotVectors(table)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	shell, err := New(b.dimX, b.dimY, knots, b.degrees)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	coeffs, err := b.computeCoefficients(shell, table, smoothing, alpha)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	if err := shell.setCoefficients(coeffs); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	return shell, nil
}

// computeKnotVectors runs the configured generator once per dimension.
func (b *Builder) computeKnotVectors(table *datatable.DataTable) ([][]float64, error) {
	knots := make([][]float64, b.dimX)
	for d := 0; d < b.dimX; d++ {
		kv, err := computeKnotVector(table.Grid(d), b.degrees[d], b.numBasis[d], b.spacing)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		knots[d] = kv
	}

	return knots, nil
}

// computeCoefficients assembles and solves
//
//	min ‖B·x − y‖² + α·(penalty)
//
// where B holds the basis functions evaluated at the sample inputs, y the
// stacked sample outputs and the penalty depends on the smoothing mode.
func (b *Builder) computeCoefficients(shell *BSpline, table *datatable.DataTable, smoothing Smoothing, alpha float64) (*mat.Dense, error) {
	design, err := basisMatrix(shell, table)
	if err != nil {
		return nil, err
	}
	response := stackSampleValues(table)

	asm, err := assemblerFor(smoothing, alpha, shell)
	if err != nil {
		return nil, err
	}
	sys, err := asm.assemble(design, response)
	if err != nil {
		return nil, err
	}

	return solveSystem(sys, b.logf)
}
