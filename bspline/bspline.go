// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// bspline.go — the tensor-product spline shell: per-dimension bases, the
// coefficient matrix, and basis/point evaluation.

package bspline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BasisValue is one nonzero entry of a sparse basis evaluation: the global
// (flattened) basis-function index and its weight at the queried point.
type BasisValue struct {
	Index int
	Value float64
}

// BSpline is a tensor-product B-spline: one 1-D basis per input dimension
// and a coefficient matrix with one row per global basis function and one
// column per output dimension. New returns it with zero coefficients; a
// Builder fit assigns the solved coefficients before handing it out.
type BSpline struct {
	dimX, dimY int
	bases      []*basis1D
	index      gridIndex
	coeffs     *mat.Dense
}

// New constructs a spline shell from per-dimension knot vectors and
// degrees. Coefficients start at zero.
//
// Errors:
//   - ErrInvalidParameter — non-positive dimensionality, slice lengths
//     disagreeing with dimX, or a malformed knot vector.
func New(dimX, dimY int, knots [][]float64, degrees []int) (*BSpline, error) {
	if dimX < 1 || dimY < 1 {
		return nil, fmt.Errorf("New: dimensions %dx%d must be >= 1: %w", dimX, dimY, ErrInvalidParameter)
	}
	if len(knots) != dimX {
		return nil, fmt.Errorf("New: %d knot vectors for %d input dimensions: %w",
			len(knots), dimX, ErrInvalidParameter)
	}
	if len(degrees) != dimX {
		return nil, fmt.Errorf("New: %d degrees for %d input dimensions: %w",
			len(degrees), dimX, ErrInvalidParameter)
	}

	bases := make([]*basis1D, dimX)
	extents := make([]int, dimX)
	for d := range bases {
		b, err := newBasis1D(knots[d], degrees[d])
		if err != nil {
			return nil, fmt.Errorf("New: dimension %d: %w", d, err)
		}
		bases[d] = b
		extents[d] = b.numBasis
	}
	gi := newGridIndex(extents)

	return &BSpline{
		dimX:   dimX,
		dimY:   dimY,
		bases:  bases,
		index:  gi,
		coeffs: mat.NewDense(gi.Size(), dimY, nil),
	}, nil
}

// NewWithCoefficients constructs a spline with known coefficients — the
// reload path for a previously fitted and serialized spline. coefficients
// holds one row per global basis function, dimY values each.
//
// Errors:
//   - ErrInvalidParameter — anything New rejects.
//   - ErrDimensionMismatch — coefficient shape disagreeing with the bases.
func NewWithCoefficients(dimX, dimY int, knots [][]float64, degrees []int, coefficients [][]float64) (*BSpline, error) {
	s, err := New(dimX, dimY, knots, degrees)
	if err != nil {
		return nil, err
	}

	c := mat.NewDense(s.index.Size(), dimY, nil)
	if len(coefficients) != s.index.Size() {
		return nil, fmt.Errorf("NewWithCoefficients: %d coefficient rows for %d basis functions: %w",
			len(coefficients), s.index.Size(), ErrDimensionMismatch)
	}
	for i, row := range coefficients {
		if len(row) != dimY {
			return nil, fmt.Errorf("NewWithCoefficients: row %d has %d values for %d outputs: %w",
				i, len(row), dimY, ErrDimensionMismatch)
		}
		c.SetRow(i, row)
	}
	if err := s.setCoefficients(c); err != nil {
		return nil, err
	}

	return s, nil
}

// DimX returns the input dimensionality.
func (s *BSpline) DimX() int { return s.dimX }

// DimY returns the output dimensionality.
func (s *BSpline) DimY() int { return s.dimY }

// NumBasisFunctions returns the total basis-function (coefficient) count,
// the product over all dimensions.
func (s *BSpline) NumBasisFunctions() int { return s.index.Size() }

// NumBasisFunctionsPerDim returns the basis-function count of each input
// dimension, in declaration order.
func (s *BSpline) NumBasisFunctionsPerDim() []int {
	out := make([]int, s.dimX)
	for d, b := range s.bases {
		out[d] = b.numBasis
	}

	return out
}

// Degrees returns a copy of the per-dimension degrees.
func (s *BSpline) Degrees() []int {
	out := make([]int, s.dimX)
	for d, b := range s.bases {
		out[d] = b.degree
	}

	return out
}

// Knots returns a copy of the knot vector of input dimension d.
// Panics if d is out of range (programmer error, mirrors slice indexing).
func (s *BSpline) Knots(d int) []float64 {
	return append([]float64(nil), s.bases[d].knots...)
}

// Coefficients returns a copy of the coefficient matrix
// (NumBasisFunctions rows, DimY columns).
func (s *BSpline) Coefficients() *mat.Dense {
	return mat.DenseCopyOf(s.coeffs)
}

// EvalBasis evaluates the tensor-product basis at x and returns the
// nonzero weights as (global index, value) entries in ascending index
// order. At most ∏(degree_d+1) entries are returned. Points outside the
// basis domain are clamped per dimension.
//
// Errors:
//   - ErrDimensionMismatch — len(x) != DimX.
func (s *BSpline) EvalBasis(x []float64) ([]BasisValue, error) {
	if len(x) != s.dimX {
		return nil, fmt.Errorf("EvalBasis: point has %d coordinates, spline expects %d: %w",
			len(x), s.dimX, ErrDimensionMismatch)
	}

	firsts := make([]int, s.dimX)
	weights := make([][]float64, s.dimX)
	total := 1
	for d, b := range s.bases {
		firsts[d], weights[d] = b.eval(x[d])
		total *= len(weights[d])
	}

	// Odometer over the per-dimension windows, first dimension fastest, so
	// global indices come out ascending (stride_0 = 1 is the smallest step).
	out := make([]BasisValue, 0, total)
	coords := make([]int, s.dimX)
	for {
		idx := 0
		w := 1.0
		for d, c := range coords {
			idx += (firsts[d] + c) * s.index.Stride(d)
			w *= weights[d][c]
		}
		if w != 0 {
			out = append(out, BasisValue{Index: idx, Value: w})
		}

		d := 0
		for d < s.dimX {
			coords[d]++
			if coords[d] <= s.bases[d].degree {
				break
			}
			coords[d] = 0
			d++
		}
		if d == s.dimX {
			break
		}
	}

	return out, nil
}

// Eval evaluates the fitted surface at x and returns one value per output
// dimension. Before a fit assigns coefficients the result is all zeros.
//
// Errors:
//   - ErrDimensionMismatch — len(x) != DimX.
func (s *BSpline) Eval(x []float64) ([]float64, error) {
	basis, err := s.EvalBasis(x)
	if err != nil {
		return nil, fmt.Errorf("Eval: %w", err)
	}

	out := make([]float64, s.dimY)
	for _, bv := range basis {
		for c := 0; c < s.dimY; c++ {
			out[c] += bv.Value * s.coeffs.At(bv.Index, c)
		}
	}

	return out, nil
}

// setCoefficients assigns the fit result. Builder-internal: the shell is
// exclusively owned by the running fit until this succeeds.
func (s *BSpline) setCoefficients(c *mat.Dense) error {
	r, cols := c.Dims()
	if r != s.index.Size() || cols != s.dimY {
		return fmt.Errorf("setCoefficients: got %dx%d, want %dx%d: %w",
			r, cols, s.index.Size(), s.dimY, ErrDimensionMismatch)
	}
	s.coeffs = c

	return nil
}
