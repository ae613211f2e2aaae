package draft2d

import "math"

// Primitive proximity predicates. Every predicate takes a query point and a
// tolerance radius in drawing units and returns a plain boolean; degenerate
// geometry yields false (or collapses to the sensible simpler test), never
// an error.

// segmentDistance returns the distance from p to the closest point of the
// segment ab, with the parametric position clamped to [0, 1].
func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	len2 := ab.LengthSquared()
	if len2 <= Epsilon*Epsilon {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// PointNearSegment reports whether p is within tol of the segment ab.
// The predicate is symmetric in a and b.
func PointNearSegment(p, a, b Point, tol float64) bool {
	return segmentDistance(p, a, b) <= tol
}

// PointNearCircle reports whether p is within tol of the circle's
// circumference. Interior points are not hits.
func PointNearCircle(p, center Point, radius, tol float64) bool {
	return math.Abs(p.Distance(center)-radius) <= tol
}

// PointNearArc reports whether p is within tol of the arc: the radial
// distance check of PointNearCircle plus a sweep containment check with
// ArcSweepMargin of angular forgiveness at both ends.
func PointNearArc(p Point, arc Arc, tol float64) bool {
	if !PointNearCircle(p, arc.Center, arc.Radius, tol) {
		return false
	}
	angle := p.Sub(arc.Center).Angle()
	return angleInSweep(angle, arc.StartAngle, arc.EndAngle, arc.Clockwise, ArcSweepMargin)
}

// PointNearBulgeSegment reports whether p is within tol of the polyline
// segment ab with the given bulge, dispatching to the arc predicate for
// curved segments and the segment predicate for straight ones.
func PointNearBulgeSegment(p, a, b Point, bulge, tol float64) bool {
	if arc, ok := BulgeToArc(a, b, bulge); ok {
		return PointNearArc(p, arc, tol)
	}
	return PointNearSegment(p, a, b, tol)
}

// PointNearEllipse reports whether p is within tol of the ellipse outline.
// The point is inverse-rotated into the ellipse's local axes and the
// normalized quadratic form is evaluated; the test accepts when its square
// root is within tol/averageRadius of 1.
func PointNearEllipse(p Point, e Ellipse, tol float64) bool {
	if e.RadiusX <= Epsilon || e.RadiusY <= Epsilon {
		return false
	}
	local := p.Sub(e.Center)
	if e.Rotation != 0 {
		local = local.Rotate(-e.Rotation)
	}
	nx := local.X / e.RadiusX
	ny := local.Y / e.RadiusY
	form := math.Sqrt(nx*nx + ny*ny)
	avg := (e.RadiusX + e.RadiusY) / 2
	return math.Abs(form-1) <= tol/avg
}

// PointInPolygon reports whether p lies inside the polygon by ray-casting
// parity. Polygons with fewer than three vertices contain nothing.
func PointInPolygon(p Point, polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// PointNearPolygonEdge reports whether p is within tol of any edge of the
// closed polygon outline.
func PointNearPolygonEdge(p Point, polygon []Point, tol float64) bool {
	n := len(polygon)
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		if PointNearSegment(p, polygon[i], polygon[(i+1)%n], tol) {
			return true
		}
	}
	return false
}

// PointInRect reports whether p lies inside the rotated rectangle. The
// point is inverse-rotated into the rectangle's local frame before the
// axis-aligned containment test.
func PointInRect(p Point, r Rect) bool {
	local := p.Sub(r.Center)
	if r.Rotation != 0 {
		local = local.Rotate(-r.Rotation)
	}
	return math.Abs(local.X) <= r.Width/2 && math.Abs(local.Y) <= r.Height/2
}

// PointNearRect reports whether p is inside the rotated rectangle or within
// tol of it, by inflating the local-frame containment test.
func PointNearRect(p Point, r Rect, tol float64) bool {
	return PointInRect(p, Rect{
		Center:   r.Center,
		Width:    r.Width + 2*tol,
		Height:   r.Height + 2*tol,
		Rotation: r.Rotation,
	})
}
