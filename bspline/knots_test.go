// SPDX-License-Identifier: MIT
// White-box tests for the knot-vector generators.
package bspline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireValidKnots checks the length and monotonicity contract shared by
// every policy: len == numBasis + degree + 1, non-decreasing.
func requireValidKnots(t *testing.T, knots []float64, numBasis, degree int) {
	t.Helper()
	require.Len(t, knots, numBasis+degree+1)
	for i := 1; i < len(knots); i++ {
		require.LessOrEqual(t, knots[i-1], knots[i], "knots must be non-decreasing at %d", i)
	}
}

func TestKnotsMovingAverageContract(t *testing.T) {
	values := []float64{4, 0, 1, 2, 3, 5, 1, 0} // unsorted, with duplicates: 6 distinct
	for _, degree := range []int{0, 1, 2, 3} {
		knots, err := computeKnotVector(values, degree, 0, KnotSpacingAsSampled)
		require.NoError(t, err, "degree %d", degree)
		requireValidKnots(t, knots, 6, degree)

		// Clamped: boundary values repeated degree+1 times.
		for i := 0; i <= degree; i++ {
			require.Equal(t, 0.0, knots[i])
			require.Equal(t, 5.0, knots[len(knots)-1-i])
		}
	}
}

func TestKnotsMovingAverageInteriorValues(t *testing.T) {
	// Distinct coordinates 0..5, degree 3: interior knots are means of 3
	// consecutive coordinates starting at u[1] and u[2].
	knots, err := computeKnotVector([]float64{0, 1, 2, 3, 4, 5}, 3, 0, KnotSpacingAsSampled)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0, 2, 3, 5, 5, 5, 5}, knots)
}

func TestKnotsMovingAverageDegreeOne(t *testing.T) {
	// Degree 1 turns the distinct coordinates themselves into knots —
	// the hat-function basis interpolates exactly at the samples.
	knots, err := computeKnotVector([]float64{0, 1, 2}, 1, 0, KnotSpacingAsSampled)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 2, 2}, knots)
}

func TestKnotsEquidistant(t *testing.T) {
	knots, err := computeKnotVector([]float64{0, 1, 2, 3, 10}, 2, 6, KnotSpacingEquidistant)
	require.NoError(t, err)
	requireValidKnots(t, knots, 6, 2)

	// degree repeats at each boundary, then 5 equally spaced values.
	require.Equal(t, []float64{0, 0, 0, 2.5, 5, 7.5, 10, 10, 10}, knots)
}

func TestKnotsEquidistantDefaultCount(t *testing.T) {
	// numBasis 0 ⇒ one basis function per distinct coordinate.
	knots, err := computeKnotVector([]float64{0, 1, 2, 3}, 1, 0, KnotSpacingEquidistant)
	require.NoError(t, err)
	requireValidKnots(t, knots, 4, 1)
}

func TestKnotsExperimentalUnclamped(t *testing.T) {
	const degree, numBasis = 2, 5
	knots, err := computeKnotVector([]float64{0, 1, 2, 3, 6}, degree, numBasis, KnotSpacingExperimental)
	require.NoError(t, err)
	requireValidKnots(t, knots, numBasis, degree)

	// No boundary clamping: all knots strictly increase...
	for i := 1; i < len(knots); i++ {
		require.Less(t, knots[i-1], knots[i])
	}
	// ...and the basis domain [t_degree, t_numBasis] is the sample hull.
	require.Equal(t, 0.0, knots[degree])
	require.Equal(t, 6.0, knots[numBasis])
}

func TestKnotsInsufficientData(t *testing.T) {
	// Degree 3 needs 4 distinct coordinates; duplicates don't count.
	_, err := computeKnotVector([]float64{0, 1, 1, 2, 2, 2}, 3, 0, KnotSpacingAsSampled)
	require.ErrorIs(t, err, ErrInsufficientData)

	// Equidistant flavors additionally need a proper span.
	_, err = computeKnotVector([]float64{7}, 0, 3, KnotSpacingEquidistant)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestKnotsBadExplicitCount(t *testing.T) {
	_, err := computeKnotVector([]float64{0, 1, 2, 3}, 3, 2, KnotSpacingEquidistant)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
