// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/splinefit/bspline"
)

// model is the on-disk JSON form of a fitted spline: everything needed to
// reconstruct it with bspline.NewWithCoefficients.
type model struct {
	DimX         int         `json:"dim_x"`
	DimY         int         `json:"dim_y"`
	Degrees      []int       `json:"degrees"`
	Knots        [][]float64 `json:"knots"`
	Coefficients [][]float64 `json:"coefficients"`
}

// newModel captures a fitted spline.
func newModel(s *bspline.BSpline) model {
	m := model{
		DimX:    s.DimX(),
		DimY:    s.DimY(),
		Degrees: s.Degrees(),
		Knots:   make([][]float64, s.DimX()),
	}
	for d := 0; d < s.DimX(); d++ {
		m.Knots[d] = s.Knots(d)
	}

	coeffs := s.Coefficients()
	rows, _ := coeffs.Dims()
	m.Coefficients = make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, s.DimY())
		for c := 0; c < s.DimY(); c++ {
			row[c] = coeffs.At(i, c)
		}
		m.Coefficients[i] = row
	}

	return m
}

// spline reconstructs the fitted spline from the persisted form.
func (m model) spline() (*bspline.BSpline, error) {
	return bspline.NewWithCoefficients(m.DimX, m.DimY, m.Knots, m.Degrees, m.Coefficients)
}

// writeModel saves the model as indented JSON.
func writeModel(path string, m model) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}

	return nil
}

// readModel loads and reconstructs a persisted spline.
func readModel(path string) (*bspline.BSpline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var m model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	return m.spline()
}
