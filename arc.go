package draft2d

import "math"

// Arc describes a circular arc. Angles are in radians and are not required
// to be pre-normalized; every comparison in the kernel first maps angles
// into [0, 2pi) via NormalizeAngle. Clockwise selects the sweep direction
// from StartAngle to EndAngle.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// NormalizeAngle maps an angle into [0, 2pi).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	return a
}

// normalizeSignedAngle maps an angle into (-pi, pi].
func normalizeSignedAngle(a float64) float64 {
	a = NormalizeAngle(a)
	if a > math.Pi {
		a -= tau
	}
	return a
}

// IsAngleInArc reports whether angle lies within the sweep from start to end
// in the given direction. All three angles are normalized into [0, 2pi)
// before comparison, so wraparound across 0 is handled uniformly.
func IsAngleInArc(angle, start, end float64, clockwise bool) bool {
	return angleInSweep(angle, start, end, clockwise, 0)
}

// angleInSweep is IsAngleInArc with an extra angular margin applied at both
// sweep ends. Hit-testing passes ArcSweepMargin; exact queries pass 0.
func angleInSweep(angle, start, end float64, clockwise bool, margin float64) bool {
	angle = NormalizeAngle(angle)
	start = NormalizeAngle(start)
	end = NormalizeAngle(end)

	if clockwise {
		start, end = end, start
	}

	sweep := NormalizeAngle(end - start)
	rel := NormalizeAngle(angle - start + margin)
	return rel <= sweep+2*margin+AngleEpsilon
}

// ContainsAngle reports whether the arc's sweep contains the given angle.
func (a Arc) ContainsAngle(angle float64) bool {
	return IsAngleInArc(angle, a.StartAngle, a.EndAngle, a.Clockwise)
}

// SweepAngle returns the magnitude of the arc's sweep in [0, 2pi).
func (a Arc) SweepAngle() float64 {
	if a.Clockwise {
		return NormalizeAngle(a.StartAngle - a.EndAngle)
	}
	return NormalizeAngle(a.EndAngle - a.StartAngle)
}

// StartPoint returns the point at the arc's start angle.
func (a Arc) StartPoint() Point {
	return PolarPoint(a.Center, a.StartAngle, a.Radius)
}

// EndPoint returns the point at the arc's end angle.
func (a Arc) EndPoint() Point {
	return PolarPoint(a.Center, a.EndAngle, a.Radius)
}

// Midpoint returns the point at the bisected sweep angle.
func (a Arc) Midpoint() Point {
	half := a.SweepAngle() / 2
	if a.Clockwise {
		half = -half
	}
	return PolarPoint(a.Center, a.StartAngle+half, a.Radius)
}

// Bounds returns the axis-aligned bounds of the arc. Beyond the two
// endpoints, the four cardinal angles (0, pi/2, pi, 3pi/2) are probed and
// included when they fall inside the sweep, so the result is exact rather
// than an endpoint-only approximation.
func (a Arc) Bounds() BoundingBox {
	box, _ := BoxFromPoints(a.StartPoint(), a.EndPoint())
	for _, cardinal := range [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if a.ContainsAngle(cardinal) {
			box = box.ExpandPoint(PolarPoint(a.Center, cardinal, a.Radius))
		}
	}
	return box
}
