package datatable_test

import (
	"fmt"

	"github.com/katalvlaran/splinefit/datatable"
)

// ExampleDataTable shows collecting samples on a 2×2 grid and reading the
// per-dimension grids back.
func ExampleDataTable() {
	table, _ := datatable.New(2, 1)
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{10, 20} {
			table.AddSample([]float64{x, y}, []float64{x + y})
		}
	}

	fmt.Println(table.NumSamples(), table.IsGridComplete())
	fmt.Println(table.Grid(1))
	// Output:
	// 4 true
	// [10 20]
}

// ExampleDataTable_incomplete demonstrates grid-completeness detection on
// scattered samples.
func ExampleDataTable_incomplete() {
	table, _ := datatable.New(2, 1)
	table.AddSample([]float64{0, 0}, []float64{1})
	table.AddSample([]float64{1, 1}, []float64{2})

	fmt.Println(table.NumSamples(), table.IsGridComplete())
	// Output:
	// 2 false
}
