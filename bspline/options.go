// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// options.go — functional options for Builder construction.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*Builder)).
//   • Option constructors VALIDATE and PANIC on statically nonsensical
//     inputs (nil hook, negative degree). Cross-field validation against
//     dimX happens in NewBuilder and returns sentinel errors.
//   • No hidden globals; everything flows through the Builder instance.

package bspline

// BuilderOption customizes a Builder during NewBuilder.
// Applying N options costs O(N) time.
type BuilderOption func(*Builder)

// WithUniformDegree sets the same degree for every input dimension.
// Panics on a negative degree (programmer error).
func WithUniformDegree(degree int) BuilderOption {
	if degree < 0 {
		panic("bspline: WithUniformDegree(negative)")
	}

	return func(b *Builder) {
		b.degrees = make([]int, b.dimX)
		for d := range b.degrees {
			b.degrees[d] = degree
		}
	}
}

// WithDegrees sets one degree per input dimension, in declaration order.
// Panics on any negative entry; the length is validated against dimX by
// NewBuilder (ErrInvalidParameter).
func WithDegrees(degrees ...int) BuilderOption {
	for _, d := range degrees {
		if d < 0 {
			panic("bspline: WithDegrees(negative)")
		}
	}
	ds := append([]int(nil), degrees...)

	return func(b *Builder) {
		b.degrees = ds
	}
}

// WithKnotSpacing selects the knot-generation policy for all dimensions.
// Panics on an unknown selector.
func WithKnotSpacing(ks KnotSpacing) BuilderOption {
	switch ks {
	case KnotSpacingAsSampled, KnotSpacingEquidistant, KnotSpacingExperimental:
	default:
		panic("bspline: WithKnotSpacing(unknown policy)")
	}

	return func(b *Builder) {
		b.spacing = ks
	}
}

// WithNumBasisFunctions sets a target basis-function count per input
// dimension for the equidistant knot policies. A zero entry means "one
// basis function per distinct sample coordinate" (the default). The
// as-sampled policy always derives its count from the data and ignores
// these targets. Panics on negative entries; length is validated against
// dimX by NewBuilder.
func WithNumBasisFunctions(counts ...int) BuilderOption {
	for _, n := range counts {
		if n < 0 {
			panic("bspline: WithNumBasisFunctions(negative)")
		}
	}
	ns := append([]int(nil), counts...)

	return func(b *Builder) {
		b.numBasis = ns
	}
}

// WithLogf installs the diagnostic hook. Panics on nil — pass no option
// at all to disable diagnostics.
func WithLogf(fn Logf) BuilderOption {
	if fn == nil {
		panic("bspline: WithLogf(nil)")
	}

	return func(b *Builder) {
		b.logf = fn
	}
}
