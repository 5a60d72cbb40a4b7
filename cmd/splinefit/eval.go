// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func evalCmd() *cobra.Command {
	var modelPath, pointsPath string

	cmd := &cobra.Command{
		Use:   "eval [point ...]",
		Short: "Evaluate a saved model at points given as args or CSV",
		Long: `Evaluate a saved model. Points come either as arguments — one point
per argument, coordinates comma-separated — or from a CSV file with one
point per row. Each output line is the input coordinates followed by the
spline values, comma-separated.`,
		Example: `  splinefit eval --model model.json 0.5 1.25
  splinefit eval --model model.json --points grid.csv
  splinefit eval --model model.json "1.5,2.0" "3.0,0.5"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spline, err := readModel(modelPath)
			if err != nil {
				return err
			}
			logger.Infow("model loaded", "file", modelPath,
				"dim_x", spline.DimX(), "dim_y", spline.DimY())

			var points [][]float64
			switch {
			case pointsPath != "" && len(args) > 0:
				return fmt.Errorf("points given both as --points and as arguments")
			case pointsPath != "":
				points, err = readPoints(pointsPath, spline.DimX())
				if err != nil {
					return err
				}
			case len(args) > 0:
				points, err = parsePointArgs(args, spline.DimX())
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("no evaluation points given")
			}

			for _, p := range points {
				y, err := spline.Eval(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatRow(p, y))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&modelPath, "model", "model.json", "model JSON file")
	cmd.Flags().StringVar(&pointsPath, "points", "", "CSV file of evaluation points")

	return cmd
}

// parsePointArgs turns "1.5,2.0"-style arguments into points.
func parsePointArgs(args []string, dimX int) ([][]float64, error) {
	points := make([][]float64, 0, len(args))
	for _, arg := range args {
		fields := strings.Split(arg, ",")
		if len(fields) != dimX {
			return nil, fmt.Errorf("point %q has %d coordinates, model expects %d",
				arg, len(fields), dimX)
		}
		p := make([]float64, dimX)
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", arg, err)
			}
			p[i] = v
		}
		points = append(points, p)
	}

	return points, nil
}

func formatRow(x, y []float64) string {
	fields := make([]string, 0, len(x)+len(y))
	for _, v := range x {
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}
	for _, v := range y {
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}

	return strings.Join(fields, ",")
}
