// SPDX-License-Identifier: MIT
// Package datatable_test contains unit tests for the DataTable sample store.
package datatable_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splinefit/datatable"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, tc := range []struct{ dimX, dimY int }{
		{0, 1},
		{1, 0},
		{-3, 2},
	} {
		_, err := datatable.New(tc.dimX, tc.dimY)
		require.ErrorIs(t, err, datatable.ErrBadDimensions, "New(%d,%d)", tc.dimX, tc.dimY)
	}
}

func TestAddSampleValidation(t *testing.T) {
	table, err := datatable.New(2, 1)
	require.NoError(t, err)

	// Wrong input length.
	err = table.AddSample([]float64{1}, []float64{1})
	require.ErrorIs(t, err, datatable.ErrDimensionMismatch)

	// Wrong output length.
	err = table.AddSample([]float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, datatable.ErrDimensionMismatch)

	// Non-finite values.
	err = table.AddSample([]float64{math.NaN(), 0}, []float64{1})
	require.ErrorIs(t, err, datatable.ErrNotFinite)
	err = table.AddSample([]float64{0, 0}, []float64{math.Inf(1)})
	require.ErrorIs(t, err, datatable.ErrNotFinite)

	require.Equal(t, 0, table.NumSamples(), "rejected samples must not be stored")
}

func TestSamplesKeepInsertionOrder(t *testing.T) {
	table, err := datatable.New(1, 1)
	require.NoError(t, err)

	xs := []float64{2, 0, 1, 0.5}
	for i, x := range xs {
		require.NoError(t, table.AddSample([]float64{x}, []float64{float64(i)}))
	}

	got := table.Samples()
	require.Len(t, got, len(xs))
	for i, s := range got {
		require.Equal(t, xs[i], s.X[0])
		require.Equal(t, float64(i), s.Y[0])
	}
}

func TestGridSortedDistinct(t *testing.T) {
	table, err := datatable.New(1, 1)
	require.NoError(t, err)

	for _, x := range []float64{3, 1, 2, 1, 3, 3} {
		require.NoError(t, table.AddSample([]float64{x}, []float64{0}))
	}

	require.Equal(t, []float64{1, 2, 3}, table.Grid(0))
	require.Equal(t, 3, table.GridSize(0))
	require.Equal(t, 6, table.NumSamples())
}

func TestIsGridComplete(t *testing.T) {
	table, err := datatable.New(2, 1)
	require.NoError(t, err)

	// 2x2 grid, one corner missing.
	for _, p := range [][2]float64{{0, 0}, {0, 1}, {1, 0}} {
		require.NoError(t, table.AddSample([]float64{p[0], p[1]}, []float64{0}))
	}
	require.False(t, table.IsGridComplete())

	// Complete the grid; a duplicate must not flip the answer back.
	require.NoError(t, table.AddSample([]float64{1, 1}, []float64{0}))
	require.True(t, table.IsGridComplete())
	require.NoError(t, table.AddSample([]float64{1, 1}, []float64{0}))
	require.True(t, table.IsGridComplete())
}

func TestErrorsAreSentinels(t *testing.T) {
	table, _ := datatable.New(1, 1)
	err := table.AddSample([]float64{1, 2}, []float64{0})
	require.Error(t, err)
	require.True(t, errors.Is(err, datatable.ErrDimensionMismatch))
	// Wrapped errors still carry context.
	require.Contains(t, err.Error(), "AddSample")
}
