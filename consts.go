package draft2d

import "math"

// Numeric tolerances used throughout the kernel. They are collected here so
// behavior is auditable and tunable for a target resolution; individual
// functions document which constants they consume.
const (
	// Epsilon is the general length/scalar tolerance below which a value is
	// treated as zero (chord lengths, bulge magnitudes, determinants).
	Epsilon = 1e-9

	// AngleEpsilon is the tolerance used when comparing normalized angles.
	AngleEpsilon = 1e-9

	// ArcSweepMargin is the angular forgiveness applied at both ends of an
	// arc's sweep during hit-testing. It is intentionally generous relative
	// to pixel-space tolerances: a usability margin for coarse pointer
	// input, not a precision guarantee. Do not tighten it silently.
	ArcSweepMargin = 0.1

	// MaxTangentHalfAngle clamps the half-included-angle when deriving a
	// bulge from a tangent direction, keeping the arc away from the
	// degenerate near-180-degree case.
	MaxTangentHalfAngle = 0.47 * math.Pi

	// CollinearEpsilon is the determinant threshold below which three points
	// are considered collinear and a circle fit has no solution.
	CollinearEpsilon = 1e-9

	// ReferenceScale is the drawing scale at which annotation glyphs render
	// at their nominal size: 0.01 corresponds to paper space 1:100.
	ReferenceScale = 0.01
)

const tau = 2 * math.Pi
