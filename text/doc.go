// Package text provides the text-measurement capability consumed by the
// draft2d geometry kernel.
//
// The kernel needs pixel-consistent text extents to build oriented bounding
// boxes for text shapes and dimension labels. This package supplies them
// from real font metrics: a FontSource parses TTF/OTF data through a
// pluggable parser backend, and a Measurer lays content out line by line
// (with optional word wrapping) and reports the resulting width and height.
//
// A process-wide Default measurer over the embedded Go Regular font is
// created lazily on first use. It is intended for hosts that never load
// their own fonts; anything measuring concurrently should create one
// Measurer per goroutine with NewMeasurer, since measurement mutates
// per-instance shaping state.
package text
