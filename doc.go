// Package draft2d provides the computational-geometry kernel for a 2D CAD
// drafting application.
//
// # Overview
//
// The kernel answers geometric questions about in-memory shape descriptors:
// whether a pointer position hits a shape, what a shape's axis-aligned
// bounding box is, how screen and drawing coordinates convert under the
// active viewport, how chord+curvature ("bulge") encodings map to circular
// arcs, and what geometry a dimension annotation renders and hit-tests with.
//
// Everything here is a pure function of its inputs. The kernel never retains
// or mutates the shapes it is given; the only shared resource is an optional
// text-measurement capability (see the text subpackage) that callers inject
// explicitly.
//
// # Quick Start
//
//	import "github.com/OpenAEC-Foundation/draft2d"
//
//	ctx := draft2d.NewContext(draft2d.WithDrawingScale(0.02))
//
//	wall := draft2d.Wall{
//		Points:        []draft2d.Point{{0, 0}, {5000, 0}},
//		Bulges:        []float64{0},
//		Thickness:     200,
//		Justification: draft2d.JustifyCenter,
//	}
//
//	hit := ctx.Hit(wall, draft2d.Pt(2500, 80), 5)
//	box, ok := ctx.Bounds(wall)
//
// # Coordinate System
//
// Drawing coordinates are double-precision and unit-agnostic (the surrounding
// application uses millimeters). Angles are radians, 0 pointing right,
// increasing counter-clockwise. Screen coordinates relate to drawing
// coordinates through a Viewport (pan, zoom, optional rotation).
//
// # Error Model
//
// Geometric predicates never fail: degenerate input (zero-length chords,
// collinear circle fits, vanishing bulges) yields a defined false/zero/"no
// bounds" result rather than an error, so a batch hit-test sweep or a render
// cull pass never aborts on a single bad shape.
package draft2d
