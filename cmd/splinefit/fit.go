// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splinefit/bspline"
	"github.com/katalvlaran/splinefit/datatable"
)

// fitFlags collects the fitting configuration shared by fit and plot.
type fitFlags struct {
	dimX, dimY  int
	degrees     []int
	numBasis    []int
	knotSpacing string
	smoothing   string
	alpha       float64
}

func (f *fitFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.dimX, "dimx", 1, "number of input columns")
	cmd.Flags().IntVar(&f.dimY, "dimy", 1, "number of output columns")
	cmd.Flags().IntSliceVar(&f.degrees, "degree", nil,
		"per-dimension degree; one value applies to all dimensions (default 3)")
	cmd.Flags().IntSliceVar(&f.numBasis, "num-basis", nil,
		"per-dimension basis-function count for the equidistant policies (0 = from data)")
	cmd.Flags().StringVar(&f.knotSpacing, "knot-spacing", "as-sampled",
		"knot policy: as-sampled, equidistant or experimental")
	cmd.Flags().StringVar(&f.smoothing, "smoothing", "none",
		"smoothing mode: none, identity (ridge) or pspline")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0.1,
		"regularization weight for identity and pspline smoothing")
}

// builder assembles a Builder from the parsed flags.
func (f *fitFlags) builder() (*bspline.Builder, error) {
	spacing, err := bspline.ParseKnotSpacing(f.knotSpacing)
	if err != nil {
		return nil, err
	}

	opts := []bspline.BuilderOption{
		bspline.WithKnotSpacing(spacing),
		bspline.WithLogf(fitLogf()),
	}
	switch len(f.degrees) {
	case 0:
	case 1:
		opts = append(opts, bspline.WithUniformDegree(f.degrees[0]))
	default:
		opts = append(opts, bspline.WithDegrees(f.degrees...))
	}
	if len(f.numBasis) > 0 {
		opts = append(opts, bspline.WithNumBasisFunctions(f.numBasis...))
	}

	return bspline.NewBuilder(f.dimX, f.dimY, opts...)
}

// run reads the samples, fits, and returns the fitted spline.
func (f *fitFlags) run(input string) (*bspline.BSpline, error) {
	table, err := readSampleTable(input, f.dimX, f.dimY)
	if err != nil {
		return nil, err
	}
	logger.Infow("samples loaded", "file", input, "count", table.NumSamples(),
		"complete_grid", table.IsGridComplete())

	return f.fitTable(table)
}

// fitTable fits an already loaded sample table.
func (f *fitFlags) fitTable(table *datatable.DataTable) (*bspline.BSpline, error) {
	mode, err := bspline.ParseSmoothing(f.smoothing)
	if err != nil {
		return nil, err
	}
	alpha := f.alpha
	if mode == bspline.SmoothingNone {
		alpha = 0
	}

	b, err := f.builder()
	if err != nil {
		return nil, err
	}
	spline, err := b.Fit(table, mode, alpha)
	if err != nil {
		return nil, err
	}
	logger.Infow("fit complete", "basis_functions", spline.NumBasisFunctions(),
		"smoothing", mode.String())

	return spline, nil
}

func fitCmd() *cobra.Command {
	var flags fitFlags
	var input, output string

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a B-spline to CSV samples and save the model as JSON",
		Example: `  splinefit fit --input samples.csv --output model.json
  splinefit fit --input samples.csv --dimx 2 --degree 3,2 --smoothing pspline --alpha 0.5 --output model.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spline, err := flags.run(input)
			if err != nil {
				return err
			}
			if err := writeModel(output, newModel(spline)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "model written to %s (%d coefficients)\n",
				output, spline.NumBasisFunctions()*spline.DimY())

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&input, "input", "", "samples CSV file (required)")
	cmd.Flags().StringVar(&output, "output", "model.json", "model JSON file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
