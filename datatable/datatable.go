// SPDX-License-Identifier: MIT
// Package: splinefit/datatable
//
// datatable.go — the DataTable sample store and its accessors.

package datatable

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sample is one (input, output) observation. The slices are owned by the
// table; callers must treat them as read-only.
type Sample struct {
	// X is the input vector, length DimX.
	X []float64
	// Y is the output vector, length DimY.
	Y []float64
}

// DataTable is an append-only, dimension-checked collection of samples.
// The zero value is not usable; construct with New.
type DataTable struct {
	dimX, dimY int

	samples []Sample

	// grids[d] holds the distinct coordinates seen along input dimension d.
	// Kept sorted; AddSample inserts in place to keep Grid O(1) to read.
	grids [][]float64

	// points tracks distinct input vectors for the grid-completeness check.
	points map[string]struct{}
}

// New creates an empty DataTable for samples with dimX inputs and dimY
// outputs. Returns ErrBadDimensions unless both are >= 1.
// Complexity: O(1).
func New(dimX, dimY int) (*DataTable, error) {
	if dimX < 1 || dimY < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", dimX, dimY, ErrBadDimensions)
	}

	return &DataTable{
		dimX:   dimX,
		dimY:   dimY,
		grids:  make([][]float64, dimX),
		points: make(map[string]struct{}),
	}, nil
}

// DimX returns the declared input dimensionality.
func (t *DataTable) DimX() int { return t.dimX }

// DimY returns the declared output dimensionality.
func (t *DataTable) DimY() int { return t.dimY }

// NumSamples returns the number of stored samples, duplicates included.
func (t *DataTable) NumSamples() int { return len(t.samples) }

// AddSample validates and appends one observation. The input slices are
// copied; the caller keeps ownership of its buffers.
//
// Errors:
//   - ErrDimensionMismatch — len(x) != DimX or len(y) != DimY.
//   - ErrNotFinite         — any coordinate or value is NaN or ±Inf.
//
// Complexity: O(dimX·log n) for the sorted grid insertions.
func (t *DataTable) AddSample(x, y []float64) error {
	if len(x) != t.dimX {
		return fmt.Errorf("AddSample: input has %d coordinates, table expects %d: %w",
			len(x), t.dimX, ErrDimensionMismatch)
	}
	if len(y) != t.dimY {
		return fmt.Errorf("AddSample: output has %d values, table expects %d: %w",
			len(y), t.dimY, ErrDimensionMismatch)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("AddSample: input %v: %w", x, ErrNotFinite)
		}
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("AddSample: output %v: %w", y, ErrNotFinite)
		}
	}

	s := Sample{X: append([]float64(nil), x...), Y: append([]float64(nil), y...)}
	t.samples = append(t.samples, s)

	for d, v := range s.X {
		t.insertGridValue(d, v)
	}
	t.points[pointKey(s.X)] = struct{}{}

	return nil
}

// Samples returns the stored samples in insertion order. The returned
// slice and its contents are owned by the table — read only.
func (t *DataTable) Samples() []Sample { return t.samples }

// Grid returns the sorted distinct coordinates along input dimension d.
// The slice is owned by the table — read only. Panics if d is out of
// range (programmer error, mirrors slice indexing).
func (t *DataTable) Grid(d int) []float64 {
	return t.grids[d]
}

// GridSize returns len(Grid(d)) without exposing the backing slice.
func (t *DataTable) GridSize(d int) int {
	return len(t.grids[d])
}

// IsGridComplete reports whether the distinct sample points cover the full
// cartesian product of the per-dimension grids. An empty table is
// trivially complete. Duplicated samples do not break completeness.
// Complexity: O(dimX).
func (t *DataTable) IsGridComplete() bool {
	want := 1
	for _, g := range t.grids {
		want *= len(g)
	}

	return len(t.points) == want
}

// insertGridValue keeps grids[d] sorted and duplicate-free.
func (t *DataTable) insertGridValue(d int, v float64) {
	g := t.grids[d]
	i := sort.SearchFloat64s(g, v)
	if i < len(g) && g[i] == v {
		return
	}
	g = append(g, 0)
	copy(g[i+1:], g[i:])
	g[i] = v
	t.grids[d] = g
}

// pointKey builds a deterministic map key from the exact bit patterns of
// the coordinates, so 0.1+0.2 and 0.3 stay distinct points.
func pointKey(x []float64) string {
	var sb strings.Builder
	for i, v := range x {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
	}

	return sb.String()
}
