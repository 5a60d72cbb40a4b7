// SPDX-License-Identifier: MIT
// Package: splinefit/bspline
//
// types.go — enumerated selectors and the diagnostic hook type.

package bspline

import "fmt"

// DefaultDegree is the per-dimension B-spline degree a Builder uses when
// none is configured (cubic).
const DefaultDegree = 3

// KnotSpacing selects the knot-generation algorithm applied per input
// dimension. It is fixed per Builder instance.
//
//   - KnotSpacingAsSampled   — interior knots from a moving average over
//     the distinct sample coordinates, boundary knots repeated degree+1
//     times (clamped). Interpolatory near data density. The default.
//   - KnotSpacingEquidistant — equally spaced knots spanning [min, max]
//     of the coordinates, clamped at both ends.
//   - KnotSpacingExperimental — equally spaced and NOT clamped: an open
//     knot vector with different boundary basis behavior. Not guaranteed
//     interpolatory at the edges; intended for experimentation.
type KnotSpacing int

const (
	KnotSpacingAsSampled KnotSpacing = iota
	KnotSpacingEquidistant
	KnotSpacingExperimental
)

// String returns the canonical lower-case name of the policy.
func (k KnotSpacing) String() string {
	switch k {
	case KnotSpacingAsSampled:
		return "as-sampled"
	case KnotSpacingEquidistant:
		return "equidistant"
	case KnotSpacingExperimental:
		return "experimental"
	default:
		return fmt.Sprintf("KnotSpacing(%d)", int(k))
	}
}

// ParseKnotSpacing maps a canonical name back to its selector.
// Returns ErrInvalidParameter for unknown names.
func ParseKnotSpacing(s string) (KnotSpacing, error) {
	switch s {
	case "as-sampled":
		return KnotSpacingAsSampled, nil
	case "equidistant":
		return KnotSpacingEquidistant, nil
	case "experimental":
		return KnotSpacingExperimental, nil
	default:
		return 0, fmt.Errorf("ParseKnotSpacing(%q): %w", s, ErrInvalidParameter)
	}
}

// Smoothing selects which system-assembly branch a fit runs.
//
//   - SmoothingNone     — plain least squares, no explicit regularization.
//   - SmoothingIdentity — ridge/Tikhonov: penalize coefficient magnitude.
//   - SmoothingPSpline  — penalize second differences of the coefficient
//     grid (requires ≥ 3 basis functions per dimension and assumes a
//     complete regular sample grid).
type Smoothing int

const (
	SmoothingNone Smoothing = iota
	SmoothingIdentity
	SmoothingPSpline
)

// String returns the canonical lower-case name of the mode.
func (s Smoothing) String() string {
	switch s {
	case SmoothingNone:
		return "none"
	case SmoothingIdentity:
		return "identity"
	case SmoothingPSpline:
		return "pspline"
	default:
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
}

// ParseSmoothing maps a canonical name back to its selector.
// Returns ErrInvalidParameter for unknown names.
func ParseSmoothing(s string) (Smoothing, error) {
	switch s {
	case "none":
		return SmoothingNone, nil
	case "identity", "ridge":
		return SmoothingIdentity, nil
	case "pspline":
		return SmoothingPSpline, nil
	default:
		return 0, fmt.Errorf("ParseSmoothing(%q): %w", s, ErrInvalidParameter)
	}
}

// Logf is the injectable diagnostic hook. Fit reports non-fatal advisories
// (incomplete sample grid, solver stage selection, dense-stage condition
// warnings) through it. A nil hook disables all diagnostics.
type Logf func(format string, args ...any)
