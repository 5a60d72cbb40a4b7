// Package splinefit fits multivariate tensor-product B-spline surfaces to
// scattered or gridded sample data by solving a (possibly regularized)
// linear least-squares problem.
//
// 🚀 What is splinefit?
//
//	A small, deterministic fitting library built around one pipeline:
//		• Knot vectors: per-dimension knot sequences from sample coordinates
//		  (as-sampled moving average, equidistant clamped, or unclamped)
//		• Design matrix: sparse tensor-product basis evaluations per sample
//		• Regularization: none, ridge (Tikhonov), or P-spline
//		  (second-order finite differences on the coefficient grid)
//		• Solve: iterative sparse stage with a dense QR fallback
//
// ✨ Why choose splinefit?
//
//   - Explicit failure semantics — sentinel errors, errors.Is everywhere,
//     no partially fitted artifacts
//   - Deterministic — no global state, no hidden randomness
//   - Observable — inject a diagnostic hook instead of compile-time prints
//
// Everything is organized under three subpackages plus a CLI:
//
//	datatable/ — ordered (x, y) sample storage with per-dimension grids
//	sparse/    — CSR matrices, Gram products, conjugate-gradient solvers
//	bspline/   — knot generation, the spline shell, the fitting Builder
//	cmd/splinefit — fit/eval/plot commands over CSV data
//
// Quick example:
//
//	table, _ := datatable.New(1, 1)
//	_ = table.AddSample([]float64{0}, []float64{0})
//	_ = table.AddSample([]float64{1}, []float64{1})
//	_ = table.AddSample([]float64{2}, []float64{4})
//
//	b, _ := bspline.NewBuilder(1, 1, bspline.WithUniformDegree(1))
//	s, err := b.Fit(table, bspline.SmoothingNone, 0)
//
// The returned *bspline.BSpline evaluates the fitted surface at any point
// of its domain. See bspline/doc.go for the fitting contract in detail.
package splinefit
