package draft2d

import "math"

// Viewport describes the active pan/zoom/rotation of a drawing view.
// Zoom must be positive; Rotation is in radians and may be zero.
type Viewport struct {
	OffsetX  float64
	OffsetY  float64
	Zoom     float64
	Rotation float64
}

// WorldToScreen converts a drawing-space point to screen space: scale by
// Zoom, rotate by Rotation, then translate by the offset.
func (v Viewport) WorldToScreen(p Point) Point {
	p = p.Mul(v.Zoom)
	if v.Rotation != 0 {
		p = p.Rotate(v.Rotation)
	}
	return Point{X: p.X + v.OffsetX, Y: p.Y + v.OffsetY}
}

// ScreenToWorld converts a screen-space point to drawing space. It is the
// exact inverse of WorldToScreen for any Zoom > 0.
func (v Viewport) ScreenToWorld(p Point) Point {
	p = Point{X: p.X - v.OffsetX, Y: p.Y - v.OffsetY}
	if v.Rotation != 0 {
		p = p.Rotate(-v.Rotation)
	}
	return p.Mul(1 / v.Zoom)
}

// ScreenToWorldDistance converts a screen-space distance (such as a pixel
// hit tolerance) into drawing units.
func (v Viewport) ScreenToWorldDistance(d float64) float64 {
	return d / v.Zoom
}

// WorldToScreenDistance converts a drawing-space distance to screen units.
func (v Viewport) WorldToScreenDistance(d float64) float64 {
	return d * v.Zoom
}

// VisibleWorldBounds returns the drawing-space box covered by a screen of
// the given size. With a rotated viewport the box is the axis-aligned hull
// of the four rotated screen corners.
func (v Viewport) VisibleWorldBounds(screenWidth, screenHeight float64) BoundingBox {
	corners := [4]Point{
		v.ScreenToWorld(Point{0, 0}),
		v.ScreenToWorld(Point{screenWidth, 0}),
		v.ScreenToWorld(Point{screenWidth, screenHeight}),
		v.ScreenToWorld(Point{0, screenHeight}),
	}
	box, _ := BoxFromPoints(corners[:]...)
	return box
}

// Valid reports whether the viewport can be used for conversions.
func (v Viewport) Valid() bool {
	return v.Zoom > 0 && !math.IsNaN(v.Zoom) && !math.IsInf(v.Zoom, 0)
}
