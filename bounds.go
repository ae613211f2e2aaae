package draft2d

import "math"

// Bounds returns the axis-aligned extents of the shape, or ok=false for
// degenerate/empty geometry (no points, zero radius). The box is guaranteed
// to contain everything Hit considers part of the shape: rotated shapes are
// bounded through their rotated corners, curved polyline segments through
// BulgeArcBounds, and annotation shapes include their scaled marker glyphs.
func (c *Context) Bounds(s Shape) (BoundingBox, bool) {
	switch s := s.(type) {
	case Line:
		return BoxFromPoints(s.Start, s.End)

	case Rect:
		corners := s.Corners()
		return BoxFromPoints(corners[:]...)

	case Circle:
		if s.Radius <= 0 {
			return BoundingBox{}, false
		}
		return circleBox(s.Center, s.Radius), true

	case ArcSegment:
		if s.Radius <= 0 {
			return BoundingBox{}, false
		}
		return s.Arc.Bounds(), true

	case Ellipse:
		return ellipseBounds(s)

	case Polyline:
		return polylineBounds(s.Points, s.Bulges, s.Closed)

	case Spline:
		// The curve lies inside the control polygon's convex hull.
		return BoxFromPoints(s.ControlPoints...)

	case Text:
		box, ok := textRect(c, s)
		if !ok {
			return BoundingBox{}, false
		}
		corners := box.Corners()
		b, _ := BoxFromPoints(corners[:]...)
		for _, leader := range s.Leaders {
			for _, p := range leader {
				b = b.ExpandPoint(p)
			}
		}
		return b, true

	case PointMarker:
		return circleBox(s.Position, pointMarkerRadius*c.annotationScale), true

	case Dimension:
		return c.dimensionBounds(s)

	case Hatch:
		return BoxFromPoints(s.Boundary...)

	case Wall:
		left, right := justifiedThickness(s.Thickness, s.Justification)
		var out BoundingBox
		have := false
		for i := 0; i+1 < len(s.Points); i++ {
			if b, ok := bandSegmentBounds(s.Points[i], s.Points[i+1], s.SegmentBulge(i), left, right); ok {
				if have {
					out = out.Union(b)
				} else {
					out, have = b, true
				}
			}
		}
		return out, have

	case Beam:
		left, right := justifiedThickness(s.Thickness, s.Justification)
		return bandSegmentBounds(s.Start, s.End, s.Bulge, left, right)

	case Slab:
		return BoxFromPoints(s.Boundary...)

	case Pile:
		if s.Radius <= 0 {
			return BoundingBox{}, false
		}
		return circleBox(s.Center, s.Radius), true

	case GridLine:
		box, ok := BoxFromPoints(s.Start, s.End)
		if !ok {
			return BoundingBox{}, false
		}
		r := gridBubbleRadius * c.annotationScale
		box = box.Union(circleBox(lineEndMarkerCenter(s.Start, s.End, r), r))
		box = box.Union(circleBox(lineEndMarkerCenter(s.End, s.Start, r), r))
		return box, true

	case Level:
		box, ok := BoxFromPoints(s.Start, s.End)
		if !ok {
			return BoundingBox{}, false
		}
		tri := triangleMarker(s.Start, s.End.Sub(s.Start), levelMarkerSize*c.annotationScale)
		for _, p := range tri {
			box = box.ExpandPoint(p)
		}
		return box, true

	case SectionCallout:
		box, ok := BoxFromPoints(s.Start, s.End)
		if !ok {
			return BoundingBox{}, false
		}
		r := calloutMarkerRadius * c.annotationScale
		box = box.Union(circleBox(lineEndMarkerCenter(s.Start, s.End, r), r))
		box = box.Union(circleBox(lineEndMarkerCenter(s.End, s.Start, r), r))
		return box, true

	case Space:
		return BoxFromPoints(s.Boundary...)

	case PlateSystem:
		return plateBounds(s)

	case SpotElevation:
		size := spotMarkerSize * c.annotationScale
		dir := Point{X: 0, Y: 1}
		if len(s.Leader) > 0 {
			dir = s.Leader[0].Sub(s.Position)
		}
		tri := triangleMarker(s.Position, dir, size)
		box, _ := BoxFromPoints(tri[:]...)
		for _, p := range s.Leader {
			box = box.ExpandPoint(p)
		}
		return box, true

	case CPTMarker:
		return circleBox(s.Position, cptMarkerRadius*c.annotationScale), true

	case Image:
		corners := s.Corners()
		return BoxFromPoints(corners[:]...)

	default:
		return BoundingBox{}, false
	}
}

func circleBox(center Point, radius float64) BoundingBox {
	return BoundingBox{
		MinX: center.X - radius,
		MinY: center.Y - radius,
		MaxX: center.X + radius,
		MaxY: center.Y + radius,
	}
}

// ellipseBounds computes the exact axis-aligned extents of a rotated
// ellipse from the closed-form extrema of its parametric form.
func ellipseBounds(e Ellipse) (BoundingBox, bool) {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return BoundingBox{}, false
	}
	cos := math.Cos(e.Rotation)
	sin := math.Sin(e.Rotation)
	ex := math.Sqrt(e.RadiusX*e.RadiusX*cos*cos + e.RadiusY*e.RadiusY*sin*sin)
	ey := math.Sqrt(e.RadiusX*e.RadiusX*sin*sin + e.RadiusY*e.RadiusY*cos*cos)
	return BoundingBox{
		MinX: e.Center.X - ex,
		MinY: e.Center.Y - ey,
		MaxX: e.Center.X + ex,
		MaxY: e.Center.Y + ey,
	}, true
}

// polylineBounds expands the vertex box with the exact arc bounds of every
// curved segment, so bulging segments are never clipped to their chords.
func polylineBounds(points []Point, bulges []float64, closed bool) (BoundingBox, bool) {
	box, ok := BoxFromPoints(points...)
	if !ok {
		return BoundingBox{}, false
	}
	bulge := func(i int) float64 {
		if i < 0 || i >= len(bulges) {
			return 0
		}
		return bulges[i]
	}
	n := len(points)
	for i := 0; i+1 < n; i++ {
		if b := bulge(i); b != 0 {
			box = box.Union(BulgeArcBounds(points[i], points[i+1], b))
		}
	}
	if closed && n > 2 {
		if b := bulge(n - 1); b != 0 {
			box = box.Union(BulgeArcBounds(points[n-1], points[0], b))
		}
	}
	return box, true
}

func plateBounds(s PlateSystem) (BoundingBox, bool) {
	box, ok := BoxFromPoints(s.Outline...)
	if !ok {
		return BoundingBox{}, false
	}
	n := len(s.Outline)
	for i := 0; i < n; i++ {
		if b := s.EdgeBulge(i); b != 0 {
			box = box.Union(BulgeArcBounds(s.Outline[i], s.Outline[(i+1)%n], b))
		}
	}
	return box, true
}

// dimensionBounds derives bounds from the same geometry the renderer and
// hit-tester consume, including extension lines and the label rectangle.
func (c *Context) dimensionBounds(d Dimension) (BoundingBox, bool) {
	g, ok := ComputeDimension(d)
	if !ok {
		return BoundingBox{}, false
	}

	var box BoundingBox
	have := false
	add := func(b BoundingBox) {
		if have {
			box = box.Union(b)
		} else {
			box, have = b, true
		}
	}

	if g.HasLine {
		b, _ := BoxFromPoints(g.DimensionLine.Start, g.DimensionLine.End)
		add(b)
	}
	if g.HasArc {
		add(g.DimensionArc.Bounds())
	}
	for _, ext := range g.Extensions {
		b, _ := BoxFromPoints(ext.Start, ext.End)
		add(b)
	}
	if tr, ok := dimensionTextRect(c, g); ok {
		corners := tr.Corners()
		b, _ := BoxFromPoints(corners[:]...)
		add(b)
	} else {
		add(BoundingBox{MinX: g.TextAnchor.X, MinY: g.TextAnchor.Y, MaxX: g.TextAnchor.X, MaxY: g.TextAnchor.Y})
	}
	return box, have
}
