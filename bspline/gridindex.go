// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// gridindex.go — mapping between multi-dimensional coefficient-grid
// coordinates and flat indices. The first declared dimension varies
// fastest in the flattened index; both the tensor-product basis and the
// finite-difference operator must agree on this mapping, so it lives in
// one place instead of inlined stride arithmetic.

package bspline

// gridIndex maps coordinates on a grid with fixed per-dimension extents
// to flat indices. Immutable after construction.
type gridIndex struct {
	extents []int
	strides []int
	size    int
}

// newGridIndex builds the mapping for the given extents. Every extent
// must be >= 1; callers validate before constructing.
func newGridIndex(extents []int) gridIndex {
	strides := make([]int, len(extents))
	size := 1
	for d, e := range extents {
		strides[d] = size
		size *= e
	}

	return gridIndex{
		extents: append([]int(nil), extents...),
		strides: strides,
		size:    size,
	}
}

// Size returns the total number of grid points, ∏ extents.
func (g gridIndex) Size() int { return g.size }

// Stride returns the flat-index step of one increment along dimension d.
func (g gridIndex) Stride(d int) int { return g.strides[d] }

// Extent returns the grid size along dimension d.
func (g gridIndex) Extent(d int) int { return g.extents[d] }

// Dims returns the number of dimensions.
func (g gridIndex) Dims() int { return len(g.extents) }

// Flat converts grid coordinates to the flat index. Coordinates are
// trusted to be in range (internal hot path).
func (g gridIndex) Flat(coords []int) int {
	idx := 0
	for d, c := range coords {
		idx += c * g.strides[d]
	}

	return idx
}
