package draft2d

import (
	"math"
	"strconv"
)

// DimensionKind selects the measurement semantics of a Dimension shape.
type DimensionKind uint8

const (
	// DimensionAligned measures the distance between two points; a direction
	// override turns it into a linear (axis-locked) dimension.
	DimensionAligned DimensionKind = iota
	// DimensionAngular measures the angle between two rays from a vertex.
	DimensionAngular
	// DimensionRadius measures from a circle center to a point on its edge.
	DimensionRadius
	// DimensionDiameter measures through a circle center to the opposite
	// edge point.
	DimensionDiameter
)

// String returns the string representation of the dimension kind.
func (k DimensionKind) String() string {
	switch k {
	case DimensionAligned:
		return "Aligned"
	case DimensionAngular:
		return "Angular"
	case DimensionRadius:
		return "Radius"
	case DimensionDiameter:
		return "Diameter"
	default:
		return "Unknown"
	}
}

// DimensionStyle bundles the sizing parameters of a dimension annotation.
type DimensionStyle struct {
	// TextHeight is the label text height in drawing units.
	TextHeight float64
	// Offset is the distance from the measured segment to the dimension
	// line (aligned/linear kinds).
	Offset float64
	// ExtensionGap is the gap left between a measured point and the start
	// of its extension line.
	ExtensionGap float64
	// ExtensionOvershoot is how far extension lines run past the dimension
	// line.
	ExtensionOvershoot float64
	// ArrowSize is the arrowhead length at the dimension line ends.
	ArrowSize float64
	// ArcRadius is the dimension-arc radius for angular dimensions. When
	// zero the shorter ray length is used.
	ArcRadius float64
}

// Dimension is a dimension annotation shape. Points carries the ordered
// measurement points: two for aligned/linear, vertex plus one point per ray
// for angular, center plus edge point for radius and diameter. Direction
// (with HasDirection) overrides the offset normal of aligned dimensions,
// making them linear. TextOffset nudges the label from its computed anchor.
type Dimension struct {
	Kind         DimensionKind
	Points       []Point
	Style        DimensionStyle
	Direction    float64
	HasDirection bool
	TextOffset   Point
}

// DimensionGeometry is the derived render/hit geometry of a dimension. The
// renderer draws exactly what it describes and the hit-tester reuses it
// verbatim, so the two can never disagree.
type DimensionGeometry struct {
	// DimensionLine is the measured line offset to its display position.
	// Valid when HasLine is true (all kinds except angular).
	DimensionLine Line
	HasLine       bool

	// DimensionArc is the display arc of an angular dimension. Valid when
	// HasArc is true.
	DimensionArc Arc
	HasArc       bool

	// Extensions are the extension-line segments from the measured points
	// to the dimension line or arc.
	Extensions []Line

	// TextAnchor is the label anchor point, TextAngle its baseline
	// direction (kept within the readable half-turn), and TextHeight the
	// label height from the style.
	TextAnchor Point
	TextAngle  float64
	TextHeight float64

	// Label is the formatted measured value.
	Label string
}

// ComputeDimension derives the geometry for a dimension shape. ok is false
// for degenerate input: missing points, coincident measurement points, or
// zero-length rays.
func ComputeDimension(d Dimension) (DimensionGeometry, bool) {
	switch d.Kind {
	case DimensionAligned:
		return alignedDimension(d)
	case DimensionAngular:
		return angularDimension(d)
	case DimensionRadius:
		return radialDimension(d, false)
	case DimensionDiameter:
		return radialDimension(d, true)
	default:
		return DimensionGeometry{}, false
	}
}

func alignedDimension(d Dimension) (DimensionGeometry, bool) {
	if len(d.Points) < 2 {
		return DimensionGeometry{}, false
	}
	p1, p2 := d.Points[0], d.Points[1]
	if p1.Distance(p2) <= Epsilon {
		return DimensionGeometry{}, false
	}

	dir := p2.Sub(p1).Normalize()
	normal := dir.Perp()
	if d.HasDirection {
		normal = Point{X: math.Cos(d.Direction), Y: math.Sin(d.Direction)}
		// A linear dimension measures the projection onto the axis
		// perpendicular to the override normal.
		dir = normal.Perp()
	}

	a := p1.Add(normal.Mul(d.Style.Offset))
	b := p2.Add(normal.Mul(d.Style.Offset))
	if d.HasDirection {
		// Project both offset points onto the dimension-line axis so the
		// line stays perpendicular to the override direction.
		mid := a.Lerp(b, 0.5)
		a = mid.Add(dir.Mul(p1.Sub(mid).Dot(dir)))
		b = mid.Add(dir.Mul(p2.Sub(mid).Dot(dir)))
	}

	g := DimensionGeometry{
		DimensionLine: Line{Start: a, End: b},
		HasLine:       true,
		Extensions: []Line{
			extensionLine(p1, a, normal, d.Style),
			extensionLine(p2, b, normal, d.Style),
		},
		TextAnchor: a.Lerp(b, 0.5).Add(d.TextOffset),
		TextAngle:  readableAngle(b.Sub(a).Angle()),
		TextHeight: d.Style.TextHeight,
		Label:      formatMeasure(a.Distance(b)),
	}
	return g, true
}

// extensionLine builds one extension segment from a measured point toward
// its dimension-line endpoint, honoring the style gap and overshoot.
func extensionLine(measured, dimEnd, normal Point, style DimensionStyle) Line {
	return Line{
		Start: measured.Add(normal.Mul(style.ExtensionGap)),
		End:   dimEnd.Add(normal.Mul(style.ExtensionOvershoot)),
	}
}

func angularDimension(d Dimension) (DimensionGeometry, bool) {
	if len(d.Points) < 3 {
		return DimensionGeometry{}, false
	}
	vertex, pa, pb := d.Points[0], d.Points[1], d.Points[2]
	ra := pa.Sub(vertex)
	rb := pb.Sub(vertex)
	if ra.Length() <= Epsilon || rb.Length() <= Epsilon {
		return DimensionGeometry{}, false
	}

	radius := d.Style.ArcRadius
	if radius <= 0 {
		radius = math.Min(ra.Length(), rb.Length())
	}

	angleA := ra.Angle()
	angleB := rb.Angle()
	// Sweep direction follows the signed angle between the rays.
	signed := normalizeSignedAngle(angleB - angleA)
	clockwise := signed < 0

	arc := Arc{
		Center:     vertex,
		Radius:     radius,
		StartAngle: angleA,
		EndAngle:   angleB,
		Clockwise:  clockwise,
	}

	half := arc.SweepAngle() / 2
	if clockwise {
		half = -half
	}
	midAngle := angleA + half

	g := DimensionGeometry{
		DimensionArc: arc,
		HasArc:       true,
		Extensions: []Line{
			{Start: pa, End: PolarPoint(vertex, angleA, radius)},
			{Start: pb, End: PolarPoint(vertex, angleB, radius)},
		},
		TextAnchor: PolarPoint(vertex, midAngle, radius+d.Style.TextHeight).Add(d.TextOffset),
		TextAngle:  readableAngle(midAngle + math.Pi/2),
		TextHeight: d.Style.TextHeight,
		Label:      formatMeasure(math.Abs(signed)*180/math.Pi) + "°",
	}
	return g, true
}

func radialDimension(d Dimension, diameter bool) (DimensionGeometry, bool) {
	if len(d.Points) < 2 {
		return DimensionGeometry{}, false
	}
	center, edge := d.Points[0], d.Points[1]
	r := center.Distance(edge)
	if r <= Epsilon {
		return DimensionGeometry{}, false
	}

	start := center
	label := "R" + formatMeasure(r)
	if diameter {
		// Through the center to the opposite edge point.
		start = center.Mul(2).Sub(edge)
		label = "⌀" + formatMeasure(2*r)
	}

	line := Line{Start: start, End: edge}
	g := DimensionGeometry{
		DimensionLine: line,
		HasLine:       true,
		TextAnchor:    start.Lerp(edge, 0.5).Add(d.TextOffset),
		TextAngle:     readableAngle(edge.Sub(start).Angle()),
		TextHeight:    d.Style.TextHeight,
		Label:         label,
	}
	return g, true
}

// readableAngle keeps a text baseline angle within the half-turn that reads
// left to right, flipping upside-down labels by pi.
func readableAngle(a float64) float64 {
	a = NormalizeAngle(a)
	if a > math.Pi/2 && a <= 3*math.Pi/2 {
		a = NormalizeAngle(a + math.Pi)
	}
	return a
}

// formatMeasure renders a measured value with up to two decimals, trimming
// trailing zeros.
func formatMeasure(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
