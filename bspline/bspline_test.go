// SPDX-License-Identifier: MIT
// Black-box tests for the tensor-product spline shell: construction
// validation, accessors, and sparse basis evaluation.
package bspline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splinefit/bspline"
)

// quadraticShell builds a 2-D shell with cubic × quadratic bases on
// clamped uniform knots over [0,3] × [0,2].
func quadraticShell(t *testing.T) *bspline.BSpline {
	t.Helper()

	knots := [][]float64{
		{0, 0, 0, 0, 1, 2, 3, 3, 3, 3},
		{0, 0, 0, 1, 2, 2, 2},
	}
	s, err := bspline.New(2, 1, knots, []int{3, 2})
	require.NoError(t, err)

	return s
}

func TestNewValidation(t *testing.T) {
	knots := [][]float64{{0, 0, 1, 1}}

	_, err := bspline.New(0, 1, nil, nil)
	require.ErrorIs(t, err, bspline.ErrInvalidParameter)

	_, err = bspline.New(1, 0, knots, []int{1})
	require.ErrorIs(t, err, bspline.ErrInvalidParameter)

	// Two knot vectors for one input dimension.
	_, err = bspline.New(1, 1, [][]float64{{0, 0, 1, 1}, {0, 1}}, []int{1})
	require.ErrorIs(t, err, bspline.ErrInvalidParameter)

	// Degree count disagreeing with dimX.
	_, err = bspline.New(1, 1, knots, []int{1, 1})
	require.ErrorIs(t, err, bspline.ErrInvalidParameter)

	// Decreasing knot vector.
	_, err = bspline.New(1, 1, [][]float64{{0, 0, 1, 0.5}}, []int{1})
	require.ErrorIs(t, err, bspline.ErrInvalidParameter)
}

func TestShellAccessors(t *testing.T) {
	s := quadraticShell(t)

	require.Equal(t, 2, s.DimX())
	require.Equal(t, 1, s.DimY())
	require.Equal(t, []int{3, 2}, s.Degrees())
	require.Equal(t, []int{6, 4}, s.NumBasisFunctionsPerDim())
	require.Equal(t, 24, s.NumBasisFunctions())

	// Knots and Degrees hand out copies.
	k := s.Knots(0)
	k[0] = -99
	require.Equal(t, 0.0, s.Knots(0)[0])
	d := s.Degrees()
	d[0] = 7
	require.Equal(t, 3, s.Degrees()[0])

	rows, cols := s.Coefficients().Dims()
	require.Equal(t, 24, rows)
	require.Equal(t, 1, cols)
}

func TestEvalBasisPartitionOfUnity(t *testing.T) {
	s := quadraticShell(t)

	for _, x := range [][]float64{{0, 0}, {0.5, 1.5}, {1.7, 0.3}, {3, 2}} {
		basis, err := s.EvalBasis(x)
		require.NoError(t, err)
		require.LessOrEqual(t, len(basis), (3+1)*(2+1))

		sum := 0.0
		prev := -1
		for _, bv := range basis {
			require.Greater(t, bv.Index, prev, "indices must ascend")
			require.GreaterOrEqual(t, bv.Index, 0)
			require.Less(t, bv.Index, s.NumBasisFunctions())
			prev = bv.Index
			sum += bv.Value
		}
		require.InDelta(t, 1.0, sum, 1e-12, "x=%v", x)
	}
}

func TestEvalBasisClampsOutsideDomain(t *testing.T) {
	s := quadraticShell(t)

	inside, err := s.EvalBasis([]float64{3, 2})
	require.NoError(t, err)
	outside, err := s.EvalBasis([]float64{10, 5})
	require.NoError(t, err)

	require.Equal(t, len(inside), len(outside))
	for i := range inside {
		require.Equal(t, inside[i].Index, outside[i].Index)
		require.InDelta(t, inside[i].Value, outside[i].Value, 1e-15)
	}
}

func TestEvalBasisDimensionMismatch(t *testing.T) {
	s := quadraticShell(t)

	_, err := s.EvalBasis([]float64{1})
	require.ErrorIs(t, err, bspline.ErrDimensionMismatch)
	_, err = s.Eval([]float64{1, 2, 3})
	require.ErrorIs(t, err, bspline.ErrDimensionMismatch)
}

func TestEvalBeforeFitIsZero(t *testing.T) {
	s := quadraticShell(t)

	y, err := s.Eval([]float64{1.5, 1})
	require.NoError(t, err)
	require.Len(t, y, 1)
	require.Equal(t, 0.0, y[0])
}
