// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// smoothing.go — per-mode assembly of the linear system (A, b) solved for
// the coefficients. Each smoothing mode is its own strategy; the solver
// only sees the assembled system plus whether A is symmetric positive
// (semi-)definite, which decides the sparse method.

package bspline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/splinefit/sparse"
)

// linearSystem is the assembled system handed to the solver.
type linearSystem struct {
	a *sparse.CSR
	b *mat.Dense
	// symmetric marks A as symmetric positive (semi-)definite — true for
	// the normal-equation assemblies, false for the raw design matrix.
	symmetric bool
}

// systemAssembler turns the design and response matrices into (A, b)
// according to one smoothing mode.
type systemAssembler interface {
	assemble(design *sparse.CSR, response *mat.Dense) (linearSystem, error)
}

// assemblerFor selects the strategy for a smoothing mode.
//
// Errors:
//   - ErrInvalidParameter — unknown mode.
func assemblerFor(mode Smoothing, alpha float64, shell *BSpline) (systemAssembler, error) {
	switch mode {
	case SmoothingNone:
		return plainAssembler{}, nil
	case SmoothingIdentity:
		return ridgeAssembler{alpha: alpha}, nil
	case SmoothingPSpline:
		// weights is the per-sample weighting hook; nil keeps W = I.
		return psplineAssembler{alpha: alpha, extents: shell.NumBasisFunctionsPerDim()}, nil
	default:
		return nil, fmt.Errorf("assemblerFor: %v: %w", mode, ErrInvalidParameter)
	}
}

// plainAssembler: A = B, b = Y. Plain least squares — rectangular systems
// rely on the solver's least-squares handling.
type plainAssembler struct{}

func (plainAssembler) assemble(design *sparse.CSR, response *mat.Dense) (linearSystem, error) {
	return linearSystem{a: design, b: response, symmetric: false}, nil
}

// ridgeAssembler: A = BᵀB + αI, b = BᵀY. Tikhonov regularization with the
// identity matrix; larger α shrinks coefficients toward zero.
type ridgeAssembler struct {
	alpha float64
}

func (r ridgeAssembler) assemble(design *sparse.CSR, response *mat.Dense) (linearSystem, error) {
	gram, err := sparse.Gram(design, nil)
	if err != nil {
		return linearSystem{}, fmt.Errorf("ridge assembly: %w", err)
	}
	a, err := sparse.AddScaledIdentity(gram, r.alpha)
	if err != nil {
		return linearSystem{}, fmt.Errorf("ridge assembly: %w", err)
	}
	b, err := sparse.MulTransDense(design, nil, response)
	if err != nil {
		return linearSystem{}, fmt.Errorf("ridge assembly: %w", err)
	}

	return linearSystem{a: a, b: b, symmetric: true}, nil
}

// psplineAssembler: A = BᵀWB + αDᵀD, b = BᵀWY, with D the second-order
// finite-difference operator on the coefficient grid and W a diagonal
// per-sample weight (identity until a weighting option exists).
type psplineAssembler struct {
	alpha   float64
	extents []int
	weights []float64 // nil ⇒ identity
}

func (p psplineAssembler) assemble(design *sparse.CSR, response *mat.Dense) (linearSystem, error) {
	gram, err := sparse.Gram(design, p.weights)
	if err != nil {
		return linearSystem{}, fmt.Errorf("pspline assembly: %w", err)
	}

	diff, err := secondOrderDifferenceMatrix(p.extents)
	if err != nil {
		return linearSystem{}, fmt.Errorf("pspline assembly: %w", err)
	}
	// DᵀD is the unweighted Gram product of D.
	penalty, err := sparse.Gram(diff, nil)
	if err != nil {
		return linearSystem{}, fmt.Errorf("pspline assembly: %w", err)
	}

	a, err := sparse.AddScaled(gram, p.alpha, penalty)
	if err != nil {
		return linearSystem{}, fmt.Errorf("pspline assembly: %w", err)
	}
	b, err := sparse.MulTransDense(design, p.weights, response)
	if err != nil {
		return linearSystem{}, fmt.Errorf("pspline assembly: %w", err)
	}

	return linearSystem{a: a, b: b, symmetric: true}, nil
}
