// SPDX-License-Identifier: MIT
// Package: splinefit/sparse
//
// csr.go — triplet ingestion and the canonical CSR representation.

package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// entry is one (row, col, value) coordinate during ingestion.
type entry struct {
	i, j int
	v    float64
}

// Triplets accumulates matrix entries in arbitrary order before freezing
// them into a CSR. Appending the same (i, j) twice is allowed; ToCSR sums
// the contributions.
type Triplets struct {
	rows, cols int
	data       []entry
}

// NewTriplets creates an accumulator for an rows×cols matrix.
// Returns ErrBadShape unless both dimensions are >= 1.
func NewTriplets(rows, cols int) (*Triplets, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewTriplets(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Triplets{rows: rows, cols: cols}, nil
}

// Dims returns the target matrix shape.
func (t *Triplets) Dims() (rows, cols int) { return t.rows, t.cols }

// Append records one entry. Panics when (i, j) is out of range.
func (t *Triplets) Append(i, j int, v float64) {
	if i < 0 || t.rows <= i {
		panic("sparse: row index out of range")
	}
	if j < 0 || t.cols <= j {
		panic("sparse: column index out of range")
	}
	t.data = append(t.data, entry{i: i, j: j, v: v})
}

// ToCSR freezes the accumulated entries into a canonical CSR: row-major,
// columns sorted within each row, duplicates summed, exact zeros dropped.
// The accumulator remains usable afterwards.
// Complexity: O(nnz·log nnz).
func (t *Triplets) ToCSR() *CSR {
	data := append([]entry(nil), t.data...)
	sort.Slice(data, func(a, b int) bool {
		if data[a].i != data[b].i {
			return data[a].i < data[b].i
		}

		return data[a].j < data[b].j
	})

	m := &CSR{
		rows:   t.rows,
		cols:   t.cols,
		rowPtr: make([]int, t.rows+1),
	}

	for k := 0; k < len(data); {
		i, j := data[k].i, data[k].j
		sum := 0.0
		for ; k < len(data) && data[k].i == i && data[k].j == j; k++ {
			sum += data[k].v
		}
		if sum == 0 {
			continue
		}
		m.colInd = append(m.colInd, j)
		m.val = append(m.val, sum)
		m.rowPtr[i+1]++
	}
	for i := 0; i < t.rows; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m
}

// CSR is an immutable compressed-sparse-row matrix. Construct via
// Triplets.ToCSR; the zero value is not usable.
type CSR struct {
	rows, cols int
	rowPtr     []int
	colInd     []int
	val        []float64
}

// Dims returns the matrix shape.
func (m *CSR) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored nonzeros.
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the element at (i, j). Panics when out of range.
// Complexity: O(log nnz(row i)).
func (m *CSR) At(i, j int) float64 {
	if i < 0 || m.rows <= i {
		panic("sparse: row index out of range")
	}
	if j < 0 || m.cols <= j {
		panic("sparse: column index out of range")
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colInd[lo:hi], j)
	if k < hi && m.colInd[k] == j {
		return m.val[k]
	}

	return 0
}

// MulVec computes dst = A·x. Panics on length mismatches.
// Complexity: O(nnz).
func (m *CSR) MulVec(dst, x []float64) {
	if len(x) != m.cols || len(dst) != m.rows {
		panic("sparse: dimension mismatch")
	}
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.val[k] * x[m.colInd[k]]
		}
		dst[i] = sum
	}
}

// MulTransVec computes dst = Aᵀ·x. Panics on length mismatches.
// Complexity: O(nnz).
func (m *CSR) MulTransVec(dst, x []float64) {
	if len(x) != m.rows || len(dst) != m.cols {
		panic("sparse: dimension mismatch")
	}
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < m.rows; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			dst[m.colInd[k]] += m.val[k] * xi
		}
	}
}

// ToDense exports the matrix into a freshly allocated gonum Dense.
// Complexity: O(rows·cols).
func (m *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			d.Set(i, m.colInd[k], m.val[k])
		}
	}

	return d
}
