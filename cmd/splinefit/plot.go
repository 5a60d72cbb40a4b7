// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/splinefit/bspline"
	"github.com/katalvlaran/splinefit/datatable"
)

// curveResolution is the number of points rendered along the fitted curve.
const curveResolution = 200

func plotCmd() *cobra.Command {
	var flags fitFlags
	var input, output string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Fit a curve to 1-D samples and render samples + fit to PNG",
		Example: `  splinefit plot --input samples.csv --output fit.png
  splinefit plot --input samples.csv --smoothing pspline --alpha 2 --output fit.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.dimX != 1 || flags.dimY != 1 {
				return fmt.Errorf("plot supports one input and one output dimension, got %dx%d",
					flags.dimX, flags.dimY)
			}

			table, err := readSampleTable(input, 1, 1)
			if err != nil {
				return err
			}
			spline, err := flags.fitTable(table)
			if err != nil {
				return err
			}

			if err := renderFit(table, spline, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plot written to %s\n", output)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&input, "input", "", "samples CSV file (required)")
	cmd.Flags().StringVar(&output, "output", "fit.png", "output PNG file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// renderFit draws the sample scatter and the fitted curve over the sample
// x-range.
func renderFit(table *datatable.DataTable, spline *bspline.BSpline, path string) error {
	p := plot.New()
	p.Title.Text = "B-spline fit"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	samples := make(plotter.XYs, table.NumSamples())
	for i, s := range table.Samples() {
		samples[i].X = s.X[0]
		samples[i].Y = s.Y[0]
	}

	grid := table.Grid(0)
	lo, hi := grid[0], grid[len(grid)-1]
	curve := make(plotter.XYs, curveResolution+1)
	for i := range curve {
		x := lo + (hi-lo)*float64(i)/float64(curveResolution)
		y, err := spline.Eval([]float64{x})
		if err != nil {
			return err
		}
		curve[i].X = x
		curve[i].Y = y[0]
	}

	if err := plotutil.AddScatters(p, "samples", samples); err != nil {
		return fmt.Errorf("plot samples: %w", err)
	}
	if err := plotutil.AddLines(p, "fit", curve); err != nil {
		return fmt.Errorf("plot curve: %w", err)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}
