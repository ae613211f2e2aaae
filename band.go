package draft2d

// Offset-band geometry for centerline-defined elements (walls, beams). The
// total thickness is distributed into a left and a right share relative to
// the direction of travel along the centerline, per the element's
// justification. Straight segments become offset quadrilaterals; segments
// with a single bulge become radial bands between an inner and an outer
// arc. The radius-only adjustment is only valid for circular-arc segments
// and must not be extended to spline centerlines.

// justifiedThickness splits a total band thickness into its left and right
// shares relative to the segment direction.
func justifiedThickness(total float64, j Justification) (left, right float64) {
	switch j {
	case JustifyLeft:
		return total, 0
	case JustifyRight:
		return 0, total
	default:
		return total / 2, total / 2
	}
}

// bandQuad returns the four corners of the offset quadrilateral of a
// straight band segment, in outline order.
func bandQuad(a, b Point, left, right float64) [4]Point {
	dir := b.Sub(a).Normalize()
	n := dir.Perp()
	return [4]Point{
		a.Add(n.Mul(left)),
		b.Add(n.Mul(left)),
		b.Sub(n.Mul(right)),
		a.Sub(n.Mul(right)),
	}
}

// bandArcRadii converts the band offsets into inner and outer radii around
// the segment's arc. For a counter-clockwise arc the center lies to the
// left of travel, so the left share shrinks the radius; for a clockwise arc
// the sides swap.
func bandArcRadii(arc Arc, left, right float64) (inner, outer float64) {
	if arc.Clockwise {
		left, right = right, left
	}
	inner = arc.Radius - left
	outer = arc.Radius + right
	if inner < 0 {
		inner = 0
	}
	return inner, outer
}

// bandSegmentHit reports whether p is inside or within tol of the band
// around one centerline segment.
func bandSegmentHit(p, a, b Point, bulge, left, right, tol float64) bool {
	if a.Distance(b) <= Epsilon {
		return false
	}

	arc, curved := BulgeToArc(a, b, bulge)
	if !curved {
		quad := bandQuad(a, b, left, right)
		outline := quad[:]
		return PointInPolygon(p, outline) || PointNearPolygonEdge(p, outline, tol)
	}

	inner, outer := bandArcRadii(arc, left, right)
	dist := p.Distance(arc.Center)
	angle := p.Sub(arc.Center).Angle()
	if dist >= inner-tol && dist <= outer+tol &&
		angleInSweep(angle, arc.StartAngle, arc.EndAngle, arc.Clockwise, ArcSweepMargin) {
		return true
	}

	// Radial end caps.
	for _, capAngle := range [2]float64{arc.StartAngle, arc.EndAngle} {
		capStart := PolarPoint(arc.Center, capAngle, inner)
		capEnd := PolarPoint(arc.Center, capAngle, outer)
		if PointNearSegment(p, capStart, capEnd, tol) {
			return true
		}
	}
	return false
}

// bandSegmentBounds returns the axis-aligned bounds of the band around one
// centerline segment. ok is false for a degenerate segment.
func bandSegmentBounds(a, b Point, bulge, left, right float64) (BoundingBox, bool) {
	if a.Distance(b) <= Epsilon {
		return BoundingBox{}, false
	}

	arc, curved := BulgeToArc(a, b, bulge)
	if !curved {
		quad := bandQuad(a, b, left, right)
		return BoxFromPoints(quad[:]...)
	}

	inner, outer := bandArcRadii(arc, left, right)
	outerArc := arc
	outerArc.Radius = outer
	box := outerArc.Bounds()
	for _, capAngle := range [2]float64{arc.StartAngle, arc.EndAngle} {
		box = box.ExpandPoint(PolarPoint(arc.Center, capAngle, inner))
	}
	return box, true
}
