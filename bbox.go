package draft2d

import "math"

// BoundingBox is an axis-aligned box in drawing units. A valid box always
// satisfies MinX <= MaxX and MinY <= MaxY; "no bounds" is expressed by the
// ok=false return of the functions that produce boxes, never by an inverted
// box.
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxFromPoints returns the smallest box containing all points.
// ok is false when points is empty.
func BoxFromPoints(points ...Point) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{
		MinX: points[0].X, MinY: points[0].Y,
		MaxX: points[0].X, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		b = b.ExpandPoint(p)
	}
	return b, true
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the center point of the box.
func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// ExpandPoint returns the box grown to contain p.
func (b BoundingBox) ExpandPoint(p Point) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Inflate returns the box grown by d on every side.
func (b BoundingBox) Inflate(d float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX - d,
		MinY: b.MinY - d,
		MaxX: b.MaxX + d,
		MaxY: b.MaxY + d,
	}
}

// Contains reports whether p lies inside or on the edge of the box.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ContainsBox reports whether other lies entirely within b.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return other.MinX >= b.MinX && other.MaxX <= b.MaxX &&
		other.MinY >= b.MinY && other.MaxY <= b.MaxY
}

// Intersects reports whether the two boxes overlap (edge contact counts).
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}
