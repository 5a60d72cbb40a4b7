// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splinefit/bspline"
	"github.com/katalvlaran/splinefit/datatable"
)

func fitQuadratic(t *testing.T) *bspline.BSpline {
	t.Helper()

	table, err := datatable.New(1, 1)
	require.NoError(t, err)
	for _, x := range []float64{0, 0.5, 1, 1.5, 2} {
		require.NoError(t, table.AddSample([]float64{x}, []float64{x * x}))
	}

	b, err := bspline.NewBuilder(1, 1, bspline.WithUniformDegree(2))
	require.NoError(t, err)
	spline, err := b.Fit(table, bspline.SmoothingNone, 0)
	require.NoError(t, err)

	return spline
}

func TestModelRoundTrip(t *testing.T) {
	fitted := fitQuadratic(t)
	path := filepath.Join(t.TempDir(), "model.json")

	require.NoError(t, writeModel(path, newModel(fitted)))
	reloaded, err := readModel(path)
	require.NoError(t, err)

	require.Equal(t, fitted.DimX(), reloaded.DimX())
	require.Equal(t, fitted.Degrees(), reloaded.Degrees())
	require.Equal(t, fitted.Knots(0), reloaded.Knots(0))

	for _, x := range []float64{0, 0.3, 0.75, 1.6, 2} {
		want, err := fitted.Eval([]float64{x})
		require.NoError(t, err)
		got, err := reloaded.Eval([]float64{x})
		require.NoError(t, err)
		require.InDelta(t, want[0], got[0], 1e-12, "x=%g", x)
	}
}

func TestReadModelRejectsBadShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	m := newModel(fitQuadratic(t))
	m.Coefficients = m.Coefficients[:2]
	require.NoError(t, writeModel(path, m))

	_, err := readModel(path)
	require.ErrorIs(t, err, bspline.ErrDimensionMismatch)
}

func TestReadSampleTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	csv := "x,y,z\n0,0,1\n1,1,2\n2,4,3\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	table, err := readSampleTable(path, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 3, table.NumSamples())
	require.Equal(t, []float64{0, 1, 2}, table.Grid(0))

	last := table.Samples()[2]
	require.Equal(t, []float64{2}, last.X)
	require.Equal(t, []float64{4, 3}, last.Y)

	// Wrong column count is a CSV error, not a silent truncation.
	_, err = readSampleTable(path, 2, 2)
	require.Error(t, err)
}
