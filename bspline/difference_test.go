// SPDX-License-Identifier: MIT
// White-box tests for the second-order finite-difference operator.
package bspline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDifferenceMatrixSingleDimension(t *testing.T) {
	// One dimension, 5 coefficients: exactly 3 rows, each the [1,-2,1]
	// stencil shifted by one column.
	d, err := secondOrderDifferenceMatrix([]int{5})
	require.NoError(t, err)

	rows, cols := d.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 5, cols)
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			switch j - i {
			case 0, 2:
				want = 1
			case 1:
				want = -2
			}
			require.Equal(t, want, d.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

func TestDifferenceMatrixRowCounts(t *testing.T) {
	for _, tc := range []struct {
		extents []int
		rows    int
	}{
		{[]int{3}, 1},
		{[]int{5, 4}, 3*4 + 5*2},          // (5-2)·4 + 5·(4-2)
		{[]int{3, 3, 3}, 3 * 9},           // three blocks of (3-2)·3·3
		{[]int{6, 3, 4}, 4*3*4 + 6*1*4 + 6*3*2}, // (6-2)·3·4 + 6·(3-2)·4 + 6·3·(4-2)
	} {
		d, err := secondOrderDifferenceMatrix(tc.extents)
		require.NoError(t, err, "extents %v", tc.extents)
		rows, cols := d.Dims()
		require.Equal(t, tc.rows, rows, "extents %v", tc.extents)

		want := 1
		for _, e := range tc.extents {
			want *= e
		}
		require.Equal(t, want, cols, "extents %v", tc.extents)

		// Every row must carry the full stencil: 3 nonzeros summing to 0.
		require.Equal(t, 3*rows, d.NNZ())
	}
}

func TestDifferenceMatrixStencilAlongSecondDimension(t *testing.T) {
	// 3x3 grid: block 1 rows difference along dimension 1 with stride 3.
	d, err := secondOrderDifferenceMatrix([]int{3, 3})
	require.NoError(t, err)

	rows, _ := d.Dims()
	require.Equal(t, 6, rows) // 1·3 + 3·1 per block

	// First block (dimension 0): row 0 touches columns 0,1,2.
	require.Equal(t, 1.0, d.At(0, 0))
	require.Equal(t, -2.0, d.At(0, 1))
	require.Equal(t, 1.0, d.At(0, 2))

	// Second block (dimension 1): its first row touches columns 0,3,6.
	require.Equal(t, 1.0, d.At(3, 0))
	require.Equal(t, -2.0, d.At(3, 3))
	require.Equal(t, 1.0, d.At(3, 6))
}

func TestDifferenceMatrixNeedsThreeCoefficients(t *testing.T) {
	_, err := secondOrderDifferenceMatrix([]int{5, 2})
	require.ErrorIs(t, err, ErrInvalidParameter)
}
