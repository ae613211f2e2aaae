package draft2d

import "math"

// Bulge encoding: each polyline segment carries a signed scalar whose
// magnitude is tan(includedAngle/4). A positive bulge sweeps
// counter-clockwise from the segment start to its end, a negative bulge
// clockwise, and zero means the segment is straight. A segment with bulge b
// and chord length d subtends an arc of radius (d/2)*(1/|b|+|b|)/2, which is
// always at least d/2.

// BulgeToArc converts a chord plus bulge into circular-arc parameters.
// ok is false for near-zero bulges or near-zero chords (callers must treat
// such segments as straight); the conversion is only defined for |bulge|
// above Epsilon.
func BulgeToArc(p1, p2 Point, bulge float64) (Arc, bool) {
	chord := p2.Sub(p1)
	d := chord.Length()
	if math.Abs(bulge) <= Epsilon || d <= Epsilon {
		return Arc{}, false
	}

	half := d / 2
	b := math.Abs(bulge)
	sagitta := b * half
	radius := (half*half + sagitta*sagitta) / (2 * sagitta)

	// The center sits on the chord's perpendicular bisector at distance
	// radius-sagitta from the midpoint. For |bulge| < 1 it lies on the far
	// side of the chord from the arc; for |bulge| > 1 the signed offset
	// flips it onto the same side.
	mid := p1.Lerp(p2, 0.5)
	offset := radius - sagitta
	if bulge < 0 {
		offset = -offset
	}
	center := mid.Add(chord.Normalize().Perp().Mul(offset))

	return Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: p1.Sub(center).Angle(),
		EndAngle:   p2.Sub(center).Angle(),
		Clockwise:  bulge < 0,
	}, true
}

// BulgeArcMidpoint returns the point at the bisected sweep of the bulge
// segment from p1 to p2. Straight or degenerate segments return the chord
// midpoint.
func BulgeArcMidpoint(p1, p2 Point, bulge float64) Point {
	arc, ok := BulgeToArc(p1, p2, bulge)
	if !ok {
		return p1.Lerp(p2, 0.5)
	}
	return arc.Midpoint()
}

// BulgeArcBounds returns the exact axis-aligned bounds of the bulge segment
// from p1 to p2. Straight segments yield the chord's box; curved segments
// include any cardinal extreme of the arc that falls inside the sweep.
func BulgeArcBounds(p1, p2 Point, bulge float64) BoundingBox {
	arc, ok := BulgeToArc(p1, p2, bulge)
	if !ok {
		box, _ := BoxFromPoints(p1, p2)
		return box
	}
	// Anchor on the true endpoints rather than the reconstructed ones so
	// the box always contains the segment's own vertices.
	box, _ := BoxFromPoints(p1, p2)
	return box.Union(arc.Bounds())
}

// BulgeFromTangent derives the bulge of an arc that leaves start tangent to
// tangentAngle and ends at end. The half-included-angle is clamped to
// MaxTangentHalfAngle to avoid near-180-degree degenerate arcs. A zero-length
// chord yields bulge 0.
func BulgeFromTangent(start, end Point, tangentAngle float64) float64 {
	chord := end.Sub(start)
	if chord.Length() <= Epsilon {
		return 0
	}

	// The angle between the start tangent and the chord is half the
	// included angle of the arc.
	half := normalizeSignedAngle(chord.Angle() - tangentAngle)
	if half > MaxTangentHalfAngle {
		half = MaxTangentHalfAngle
	} else if half < -MaxTangentHalfAngle {
		half = -MaxTangentHalfAngle
	}

	return math.Tan(half / 2)
}

// BulgeFromThreePoints fits a circle through start, onArc and end and
// returns the signed bulge of the arc from start to end passing through
// onArc. Collinear input (no circle) returns 0.
func BulgeFromThreePoints(start, onArc, end Point) float64 {
	center, _, ok := CircleFromThreePoints(start, onArc, end)
	if !ok {
		return 0
	}

	startAngle := start.Sub(center).Angle()
	midAngle := onArc.Sub(center).Angle()
	endAngle := end.Sub(center).Angle()

	// Counter-clockwise when, traveling CCW from start, onArc comes before
	// end.
	relMid := NormalizeAngle(midAngle - startAngle)
	relEnd := NormalizeAngle(endAngle - startAngle)
	ccw := relMid <= relEnd

	var included float64
	if ccw {
		included = relEnd
	} else {
		included = tau - relEnd
	}

	bulge := math.Tan(included / 4)
	if !ccw {
		bulge = -bulge
	}
	return bulge
}

// CircleFromThreePoints returns the center and radius of the circle through
// the three points. ok is false when the points are collinear within
// CollinearEpsilon.
func CircleFromThreePoints(a, b, c Point) (center Point, radius float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) <= CollinearEpsilon {
		return Point{}, 0, false
	}

	aa := a.LengthSquared()
	bb := b.LengthSquared()
	cc := c.LengthSquared()
	center = Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	return center, center.Distance(a), true
}
