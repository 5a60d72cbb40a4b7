// SPDX-License-Identifier: MIT
// splinefit — fit, evaluate and plot tensor-product B-splines from CSV
// sample tables.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "splinefit",
		Short:   "Least-squares tensor-product B-spline fitting",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			syncLogger()
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"diagnostic verbosity: debug, info, warn or error")

	rootCmd.AddCommand(fitCmd(), evalCmd(), plotCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
