package draft2d

// Nominal annotation glyph sizes in drawing units at ReferenceScale. At any
// other drawing scale they are multiplied by the context's annotation scale
// factor so the glyphs keep a constant paper size.
const (
	gridBubbleRadius    = 500.0
	calloutMarkerRadius = 400.0
	levelMarkerSize     = 300.0
	spotMarkerSize      = 250.0
	cptMarkerRadius     = 300.0
	pointMarkerRadius   = 100.0
)

// lineEndMarkerCenter places a circular marker glyph beyond the given line
// endpoint, along the line direction away from the other endpoint, so the
// marker sits tangent to the line end.
func lineEndMarkerCenter(end, other Point, radius float64) Point {
	dir := end.Sub(other).Normalize()
	return end.Add(dir.Mul(radius))
}

// triangleMarker returns a triangular glyph with its apex at the given
// point. The triangle opens along the direction vector; size is both its
// height and base width.
func triangleMarker(apex Point, direction Point, size float64) [3]Point {
	dir := direction.Normalize()
	if dir == (Point{}) {
		dir = Point{X: 0, Y: 1}
	}
	n := dir.Perp()
	base := apex.Add(dir.Mul(size))
	return [3]Point{
		apex,
		base.Add(n.Mul(size / 2)),
		base.Sub(n.Mul(size / 2)),
	}
}

// pointInDisc reports whether p is inside or within tol of a filled disc.
// Marker glyphs hit as discs rather than rings so a click anywhere on the
// symbol selects it.
func pointInDisc(p, center Point, radius, tol float64) bool {
	return p.Distance(center) <= radius+tol
}

// pointInTriangle reports whether p is inside the triangle or within tol of
// one of its edges.
func pointInTriangle(p Point, tri [3]Point, tol float64) bool {
	outline := tri[:]
	return PointInPolygon(p, outline) || PointNearPolygonEdge(p, outline, tol)
}
