package draft2d

// Shape is the closed set of drawable geometry variants. It is sealed: only
// types in this package implement it, so the dispatch switches in Hit and
// Bounds enumerate every variant that can exist. Shapes are value objects
// owned by the surrounding document model; the kernel never retains or
// mutates them.
type Shape interface {
	isShape()
}

// Justification selects how a centerline-defined band (wall, beam)
// distributes its thickness relative to the centerline direction.
type Justification uint8

const (
	// JustifyCenter splits the thickness evenly across the centerline.
	JustifyCenter Justification = iota
	// JustifyLeft places the full thickness on the left of the direction
	// of travel.
	JustifyLeft
	// JustifyRight places the full thickness on the right of the direction
	// of travel.
	JustifyRight
)

// String returns the string representation of the justification.
func (j Justification) String() string {
	switch j {
	case JustifyCenter:
		return "Center"
	case JustifyLeft:
		return "Left"
	case JustifyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// HAlign is the horizontal anchor of a text block relative to its position.
type HAlign uint8

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// VAlign is the vertical anchor of a text block relative to its position.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// Line is a straight segment.
type Line struct {
	Start, End Point
}

// Rect is a rectangle centered on Center, rotated by Rotation radians about
// its center.
type Rect struct {
	Center        Point
	Width, Height float64
	Rotation      float64
}

// Corners returns the four corners of the rectangle in counter-clockwise
// order starting from the (-w/2, -h/2) corner.
func (r Rect) Corners() [4]Point {
	hw, hh := r.Width/2, r.Height/2
	local := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Point
	for i, p := range local {
		if r.Rotation != 0 {
			p = p.Rotate(r.Rotation)
		}
		out[i] = p.Add(r.Center)
	}
	return out
}

// Circle is a full circle; hit-testing targets the circumference only.
type Circle struct {
	Center Point
	Radius float64
}

// ArcSegment is a standalone circular-arc shape.
type ArcSegment struct {
	Arc
}

// Ellipse is an axis-pair ellipse rotated by Rotation radians.
type Ellipse struct {
	Center           Point
	RadiusX, RadiusY float64
	Rotation         float64
}

// Polyline is a sequence of vertices with an optional bulge per segment.
// Bulges may be nil (all straight) or must have one entry per segment:
// len(Points)-1 entries open, len(Points) entries closed (the last bulge
// curves the closing segment).
type Polyline struct {
	Points []Point
	Bulges []float64
	Closed bool
}

// SegmentBulge returns the bulge of segment i, tolerating a nil or short
// bulge slice.
func (p Polyline) SegmentBulge(i int) float64 {
	if i < 0 || i >= len(p.Bulges) {
		return 0
	}
	return p.Bulges[i]
}

// Spline is a control-point curve. The kernel treats the control polygon as
// the hit/bounds proxy: B-spline curves lie inside the convex hull of their
// control points, so the proxy box is always a superset.
type Spline struct {
	ControlPoints []Point
	Closed        bool
}

// Text is a styled text block with optional leader polylines. MaxWidth > 0
// enables word wrapping at that width in drawing units. Each leader runs
// from the text's underline corner to an arrow tip through zero or more
// intermediate vertices.
type Text struct {
	Position Point
	Content  string
	Height   float64
	Rotation float64
	HAlign   HAlign
	VAlign   VAlign
	MaxWidth float64
	Leaders  [][]Point
}

// PointMarker is a point entity, hit-tested as a small annotation-scaled
// cross glyph.
type PointMarker struct {
	Position Point
}

// Hatch is a polygonal fill region; both its boundary and its interior are
// hit targets.
type Hatch struct {
	Boundary []Point
}

// Wall is an offset-band element over a polyline centerline. Thickness is
// the total band width, distributed per Justification. Bulges follow the
// Polyline convention.
type Wall struct {
	Points        []Point
	Bulges        []float64
	Thickness     float64
	Justification Justification
}

// SegmentBulge returns the bulge of centerline segment i.
func (w Wall) SegmentBulge(i int) float64 {
	if i < 0 || i >= len(w.Bulges) {
		return 0
	}
	return w.Bulges[i]
}

// Beam is an offset-band element over a single centerline segment with an
// optional bulge.
type Beam struct {
	Start, End    Point
	Bulge         float64
	Thickness     float64
	Justification Justification
}

// Slab is a polygonal structural region; boundary and interior both hit.
type Slab struct {
	Boundary []Point
}

// Pile is a circular foundation element; its full disc is a hit target.
type Pile struct {
	Center Point
	Radius float64
}

// GridLine is a reference line with circular label bubbles at both ends,
// sized by the annotation scale.
type GridLine struct {
	Start, End Point
	Label      string
}

// Level is a reference line with a triangular elevation marker at its start,
// sized by the annotation scale.
type Level struct {
	Start, End Point
	Elevation  float64
}

// SectionCallout is a section reference line with circular callout heads at
// both ends, sized by the annotation scale.
type SectionCallout struct {
	Start, End Point
	Label      string
}

// Space is a room/zone region; boundary and interior both hit.
type Space struct {
	Boundary []Point
}

// PlateSystem is a plate contour with optional bulges per edge; only the
// boundary is a hit target. Bulges follow the closed Polyline convention
// (one entry per edge including the closing edge).
type PlateSystem struct {
	Outline []Point
	Bulges  []float64
}

// EdgeBulge returns the bulge of outline edge i.
func (p PlateSystem) EdgeBulge(i int) float64 {
	if i < 0 || i >= len(p.Bulges) {
		return 0
	}
	return p.Bulges[i]
}

// SpotElevation is a point annotation with a triangular marker and an
// optional leader polyline.
type SpotElevation struct {
	Position  Point
	Elevation float64
	Leader    []Point
}

// CPTMarker locates a cone-penetration-test sounding with a circular marker
// glyph sized by the annotation scale.
type CPTMarker struct {
	Position Point
	Label    string
}

// Image is a raster placement, hit-tested and bounded as a rotated
// rectangle about its center.
type Image struct {
	Center        Point
	Width, Height float64
	Rotation      float64
}

// Corners returns the four rotated corners of the image placement.
func (im Image) Corners() [4]Point {
	return Rect{Center: im.Center, Width: im.Width, Height: im.Height, Rotation: im.Rotation}.Corners()
}

func (Line) isShape()           {}
func (Rect) isShape()           {}
func (Circle) isShape()         {}
func (ArcSegment) isShape()     {}
func (Ellipse) isShape()        {}
func (Polyline) isShape()       {}
func (Spline) isShape()         {}
func (Text) isShape()           {}
func (PointMarker) isShape()    {}
func (Dimension) isShape()      {}
func (Hatch) isShape()          {}
func (Wall) isShape()           {}
func (Beam) isShape()           {}
func (Slab) isShape()           {}
func (Pile) isShape()           {}
func (GridLine) isShape()       {}
func (Level) isShape()          {}
func (SectionCallout) isShape() {}
func (Space) isShape()          {}
func (PlateSystem) isShape()    {}
func (SpotElevation) isShape()  {}
func (CPTMarker) isShape()      {}
func (Image) isShape()          {}
