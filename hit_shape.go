package draft2d

// Hit reports whether the query point lies on (or within tol of) the shape.
// Dispatch is exhaustive over the Shape variants; adding a variant without
// a case here is a bug, and the default branch returns false so an
// unhandled shape degrades to "not selected" rather than a panic.
//
// tol is in drawing units; callers converting a pixel tolerance use
// Viewport.ScreenToWorldDistance first.
func (c *Context) Hit(s Shape, p Point, tol float64) bool {
	switch s := s.(type) {
	case Line:
		return PointNearSegment(p, s.Start, s.End, tol)

	case Rect:
		return PointNearRect(p, s, tol)

	case Circle:
		return PointNearCircle(p, s.Center, s.Radius, tol)

	case ArcSegment:
		return PointNearArc(p, s.Arc, tol)

	case Ellipse:
		return PointNearEllipse(p, s, tol)

	case Polyline:
		return c.polylineHit(p, s.Points, s.Bulges, s.Closed, tol)

	case Spline:
		// Control polygon as the selection proxy.
		return c.polylineHit(p, s.ControlPoints, nil, s.Closed, tol)

	case Text:
		if box, ok := textRect(c, s); ok && PointNearRect(p, box, tol) {
			return true
		}
		return leadersHit(p, s.Leaders, tol)

	case PointMarker:
		return pointInDisc(p, s.Position, pointMarkerRadius*c.annotationScale, tol)

	case Dimension:
		return c.dimensionHit(p, s, tol)

	case Hatch:
		return PointInPolygon(p, s.Boundary) || PointNearPolygonEdge(p, s.Boundary, tol)

	case Wall:
		left, right := justifiedThickness(s.Thickness, s.Justification)
		for i := 0; i+1 < len(s.Points); i++ {
			if bandSegmentHit(p, s.Points[i], s.Points[i+1], s.SegmentBulge(i), left, right, tol) {
				return true
			}
		}
		return false

	case Beam:
		left, right := justifiedThickness(s.Thickness, s.Justification)
		return bandSegmentHit(p, s.Start, s.End, s.Bulge, left, right, tol)

	case Slab:
		return PointInPolygon(p, s.Boundary) || PointNearPolygonEdge(p, s.Boundary, tol)

	case Pile:
		return pointInDisc(p, s.Center, s.Radius, tol)

	case GridLine:
		if PointNearSegment(p, s.Start, s.End, tol) {
			return true
		}
		r := gridBubbleRadius * c.annotationScale
		return pointInDisc(p, lineEndMarkerCenter(s.Start, s.End, r), r, tol) ||
			pointInDisc(p, lineEndMarkerCenter(s.End, s.Start, r), r, tol)

	case Level:
		if PointNearSegment(p, s.Start, s.End, tol) {
			return true
		}
		size := levelMarkerSize * c.annotationScale
		tri := triangleMarker(s.Start, s.End.Sub(s.Start), size)
		return pointInTriangle(p, tri, tol)

	case SectionCallout:
		if PointNearSegment(p, s.Start, s.End, tol) {
			return true
		}
		r := calloutMarkerRadius * c.annotationScale
		return pointInDisc(p, lineEndMarkerCenter(s.Start, s.End, r), r, tol) ||
			pointInDisc(p, lineEndMarkerCenter(s.End, s.Start, r), r, tol)

	case Space:
		return PointInPolygon(p, s.Boundary) || PointNearPolygonEdge(p, s.Boundary, tol)

	case PlateSystem:
		// Boundary only: plate interiors overlap other shapes too often for
		// interior selection to be useful.
		n := len(s.Outline)
		if n < 2 {
			return false
		}
		for i := 0; i < n; i++ {
			a, b := s.Outline[i], s.Outline[(i+1)%n]
			if PointNearBulgeSegment(p, a, b, s.EdgeBulge(i), tol) {
				return true
			}
		}
		return false

	case SpotElevation:
		size := spotMarkerSize * c.annotationScale
		dir := Point{X: 0, Y: 1}
		if len(s.Leader) > 0 {
			dir = s.Leader[0].Sub(s.Position)
		}
		if pointInTriangle(p, triangleMarker(s.Position, dir, size), tol) {
			return true
		}
		if len(s.Leader) > 0 {
			leader := append([]Point{s.Position}, s.Leader...)
			return leadersHit(p, [][]Point{leader}, tol)
		}
		return false

	case CPTMarker:
		return pointInDisc(p, s.Position, cptMarkerRadius*c.annotationScale, tol)

	case Image:
		return PointNearRect(p, Rect{
			Center:   s.Center,
			Width:    s.Width,
			Height:   s.Height,
			Rotation: s.Rotation,
		}, tol)

	default:
		return false
	}
}

// polylineHit tests every segment of an open or closed polyline, honoring
// per-segment bulges.
func (c *Context) polylineHit(p Point, points []Point, bulges []float64, closed bool, tol float64) bool {
	n := len(points)
	if n == 0 {
		return false
	}
	if n == 1 {
		return p.Distance(points[0]) <= tol
	}
	bulge := func(i int) float64 {
		if i < 0 || i >= len(bulges) {
			return 0
		}
		return bulges[i]
	}
	for i := 0; i+1 < n; i++ {
		if PointNearBulgeSegment(p, points[i], points[i+1], bulge(i), tol) {
			return true
		}
	}
	if closed && n > 2 {
		if PointNearBulgeSegment(p, points[n-1], points[0], bulge(n-1), tol) {
			return true
		}
	}
	return false
}

// dimensionHit tests the derived dimension geometry: the dimension line or
// arc, every extension line, and the oriented label rectangle.
func (c *Context) dimensionHit(p Point, d Dimension, tol float64) bool {
	g, ok := ComputeDimension(d)
	if !ok {
		return false
	}
	if g.HasLine && PointNearSegment(p, g.DimensionLine.Start, g.DimensionLine.End, tol) {
		return true
	}
	if g.HasArc && PointNearArc(p, g.DimensionArc, tol) {
		return true
	}
	for _, ext := range g.Extensions {
		if PointNearSegment(p, ext.Start, ext.End, tol) {
			return true
		}
	}
	if box, ok := dimensionTextRect(c, g); ok {
		return PointNearRect(p, box, tol)
	}
	return false
}
