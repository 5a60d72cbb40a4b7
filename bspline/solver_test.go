// SPDX-License-Identifier: MIT
// White-box tests for the two-stage solve policy: stage selection around
// the equation-count threshold, sparse/dense agreement, hard failure.
package bspline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/splinefit/datatable"
	"github.com/katalvlaran/splinefit/sparse"
)

// ridgeSystem assembles a real fit system with numEquations equations:
// a 1-D cubic design matrix over numEquations distinct samples, ridge
// regularized so A is square SPD with exactly that many equations.
func ridgeSystem(t *testing.T, numEquations int) linearSystem {
	t.Helper()

	table, err := datatable.New(1, 1)
	require.NoError(t, err)
	for i := 0; i < numEquations; i++ {
		x := float64(i) / float64(numEquations-1)
		require.NoError(t, table.AddSample([]float64{x}, []float64{x * x}))
	}

	knots, err := computeKnotVector(table.Grid(0), 3, 0, KnotSpacingAsSampled)
	require.NoError(t, err)
	shell, err := New(1, 1, [][]float64{knots}, []int{3})
	require.NoError(t, err)
	require.Equal(t, numEquations, shell.NumBasisFunctions())

	design, err := basisMatrix(shell, table)
	require.NoError(t, err)
	sys, err := ridgeAssembler{alpha: 0.5}.assemble(design, stackSampleValues(table))
	require.NoError(t, err)

	rows, _ := sys.a.Dims()
	require.Equal(t, numEquations, rows)

	return sys
}

// logRecorder captures diagnostic lines for stage-selection assertions.
type logRecorder struct{ lines []string }

func (r *logRecorder) logf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *logRecorder) contains(substr string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}

	return false
}

func TestSolveStagesAgree(t *testing.T) {
	// Just below and just above the dense threshold: both stages must
	// produce the same coefficients whenever both succeed.
	for _, n := range []int{denseSolveThreshold - 1, denseSolveThreshold + 1} {
		sys := ridgeSystem(t, n)

		sparseX, outcome := trySparse(sys, nil)
		require.Equal(t, solveSucceeded, outcome, "n=%d", n)

		denseX, err := solveDense(sys, nil)
		require.NoError(t, err, "n=%d", n)

		require.True(t, mat.EqualApprox(sparseX, denseX, 1e-6), "n=%d", n)
	}
}

func TestSolveSystemThresholdRouting(t *testing.T) {
	// 99 equations: dense directly, no sparse stage.
	below := ridgeSystem(t, denseSolveThreshold-1)
	rec := &logRecorder{}
	_, err := solveSystem(below, rec.logf)
	require.NoError(t, err)
	require.True(t, rec.contains("below threshold"))
	require.False(t, rec.contains("sparse stage"))

	// 101 equations: the sparse stage runs (and succeeds here).
	above := ridgeSystem(t, denseSolveThreshold+1)
	rec = &logRecorder{}
	_, err = solveSystem(above, rec.logf)
	require.NoError(t, err)
	require.True(t, rec.contains("sparse stage"))
}

func TestSolveSystemSparseFailureFallsBackDense(t *testing.T) {
	sys := ridgeSystem(t, denseSolveThreshold+1)
	// CG breaks down on the first iteration of a negative-definite matrix
	// (pᵀAp < 0), while the dense stage solves −I·x = b without trouble.
	tri, err := sparse.NewTriplets(denseSolveThreshold+1, denseSolveThreshold+1)
	require.NoError(t, err)
	for i := 0; i <= denseSolveThreshold; i++ {
		tri.Append(i, i, -1)
	}
	indefinite := linearSystem{a: tri.ToCSR(), b: sys.b, symmetric: true}

	rec := &logRecorder{}
	x, err := solveSystem(indefinite, rec.logf)
	require.NoError(t, err, "dense stage must rescue the CG breakdown")
	require.NotNil(t, x)
	require.True(t, rec.contains("retrying dense"))
}

func TestSolveSystemHardFailure(t *testing.T) {
	// Singular 2x2 system below the threshold: the dense stage is the
	// only stage, and it must fail loudly.
	tri, err := sparse.NewTriplets(2, 2)
	require.NoError(t, err)
	tri.Append(0, 0, 1)
	tri.Append(0, 1, 1)
	tri.Append(1, 0, 1)
	tri.Append(1, 1, 1)
	sys := linearSystem{
		a:         tri.ToCSR(),
		b:         mat.NewDense(2, 1, []float64{1, 2}),
		symmetric: true,
	}

	_, err = solveSystem(sys, nil)
	require.ErrorIs(t, err, ErrNumericalFailure)
}
