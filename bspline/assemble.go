// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// assemble.go — design-matrix and response-matrix assembly. Both walk the
// sample table in its stable iteration order and never mutate the table
// or the shell.

package bspline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/splinefit/datatable"
	"github.com/katalvlaran/splinefit/sparse"
)

// basisMatrix assembles the sparse design matrix: one row per sample, one
// column per global basis function, entry (i, j) the value of basis
// function j at sample i's input. Each row carries at most
// ∏(degree_d+1) nonzeros.
func basisMatrix(shell *BSpline, table *datatable.DataTable) (*sparse.CSR, error) {
	tri, err := sparse.NewTriplets(table.NumSamples(), shell.NumBasisFunctions())
	if err != nil {
		return nil, fmt.Errorf("basisMatrix: %w", err)
	}

	for i, s := range table.Samples() {
		basis, err := shell.EvalBasis(s.X)
		if err != nil {
			return nil, fmt.Errorf("basisMatrix: sample %d: %w", i, err)
		}
		for _, bv := range basis {
			tri.Append(i, bv.Index, bv.Value)
		}
	}

	return tri.ToCSR(), nil
}

// stackSampleValues copies every sample's output vector into the
// corresponding row of the dense response matrix (numSamples × dimY).
func stackSampleValues(table *datatable.DataTable) *mat.Dense {
	out := mat.NewDense(table.NumSamples(), table.DimY(), nil)
	for i, s := range table.Samples() {
		out.SetRow(i, s.Y)
	}

	return out
}
