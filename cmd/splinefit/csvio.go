// SPDX-License-Identifier: MIT
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/splinefit/datatable"
)

// readSampleTable loads a CSV file into a sample table: the first dimX
// columns are inputs, the next dimY columns outputs. A non-numeric first
// row is treated as a header and skipped.
func readSampleTable(path string, dimX, dimY int) (*datatable.DataTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open samples: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = dimX + dimY
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	if len(records) > 0 && !numericRecord(records[0]) {
		records = records[1:]
	}

	table, err := datatable.New(dimX, dimY)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("samples row %d: %w", i+1, err)
		}
		if err := table.AddSample(row[:dimX], row[dimX:]); err != nil {
			return nil, fmt.Errorf("samples row %d: %w", i+1, err)
		}
	}

	return table, nil
}

// readPoints loads evaluation points (dimX columns) from a CSV file,
// header handling as in readSampleTable.
func readPoints(path string, dimX int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open points: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = dimX
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	if len(records) > 0 && !numericRecord(records[0]) {
		records = records[1:]
	}

	points := make([][]float64, 0, len(records))
	for i, rec := range records {
		p, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("points row %d: %w", i+1, err)
		}
		points = append(points, p)
	}

	return points, nil
}

func parseRecord(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, field := range rec {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func numericRecord(rec []string) bool {
	for _, field := range rec {
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}

	return len(rec) > 0
}
