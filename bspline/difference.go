// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// difference.go — the second-order finite-difference operator used by
// P-spline smoothing. The coefficient vector is viewed as a tensor with
// per-dimension extents equal to the basis-function counts; for every
// dimension the operator contributes one row per interior triple along
// that dimension, holding all other tensor coordinates fixed.

package bspline

import (
	"fmt"

	"github.com/katalvlaran/splinefit/sparse"
)

// secondDifference* are the stencil weights of one penalty row.
const (
	secondDifferenceOuter  = 1.0
	secondDifferenceCenter = -2.0
)

// secondOrderDifferenceMatrix builds the stacked per-dimension difference
// blocks. For dimension d with extents e the block has
// ∏_{k≠d} e_k · (e_d − 2) rows; each row applies [1, −2, 1] to three
// consecutive coefficients along d. Columns = total basis-function count.
//
// Errors:
//   - ErrInvalidParameter — some extent is below 3 (a second difference
//     needs three points).
func secondOrderDifferenceMatrix(extents []int) (*sparse.CSR, error) {
	for d, e := range extents {
		if e < 3 {
			return nil, fmt.Errorf("secondOrderDifferenceMatrix: dimension %d has %d basis functions, P-spline smoothing needs >= 3: %w",
				d, e, ErrInvalidParameter)
		}
	}

	gi := newGridIndex(extents)
	totalRows := 0
	for d := range extents {
		block := extents[d] - 2
		for k, e := range extents {
			if k != d {
				block *= e
			}
		}
		totalRows += block
	}

	tri, err := sparse.NewTriplets(totalRows, gi.Size())
	if err != nil {
		return nil, fmt.Errorf("secondOrderDifferenceMatrix: %w", err)
	}

	row := 0
	for d := range extents {
		// Walk all grid coordinates whose d-th component leaves room for a
		// [c, c+1, c+2] triple along d.
		sub := append([]int(nil), extents...)
		sub[d] -= 2

		coords := make([]int, len(extents))
		stride := gi.Stride(d)
		for {
			base := gi.Flat(coords)
			tri.Append(row, base, secondDifferenceOuter)
			tri.Append(row, base+stride, secondDifferenceCenter)
			tri.Append(row, base+2*stride, secondDifferenceOuter)
			row++

			k := 0
			for k < len(sub) {
				coords[k]++
				if coords[k] < sub[k] {
					break
				}
				coords[k] = 0
				k++
			}
			if k == len(sub) {
				break
			}
		}
	}

	return tri.ToCSR(), nil
}
