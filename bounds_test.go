package draft2d

import (
	"math"
	"testing"
)

func TestContext_BoundsBasicShapes(t *testing.T) {
	ctx := NewContext()
	tests := []struct {
		name   string
		shape  Shape
		expect BoundingBox
	}{
		{"line", Line{Start: Pt(10, 20), End: Pt(-5, 40)}, BoundingBox{-5, 20, 10, 40}},
		{"circle", Circle{Center: Pt(10, -10), Radius: 5}, BoundingBox{5, -15, 15, -5}},
		{"axis rect", Rect{Center: Pt(50, 50), Width: 100, Height: 20}, BoundingBox{0, 40, 100, 60}},
		{"pile", Pile{Center: Pt(0, 0), Radius: 300}, BoundingBox{-300, -300, 300, 300}},
		{"slab", Slab{Boundary: []Point{{0, 0}, {100, 0}, {100, 100}}}, BoundingBox{0, 0, 100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ctx.Bounds(tt.shape)
			if !ok {
				t.Fatal("expected bounds")
			}
			if !boxApprox(got, tt.expect, 1e-9) {
				t.Errorf("Bounds = %+v, want %+v", got, tt.expect)
			}
		})
	}
}

func TestContext_BoundsRotatedRect(t *testing.T) {
	ctx := NewContext()
	// A 100x20 rectangle rotated 90 degrees occupies 20x100; computing
	// from unrotated width/height would be wrong both ways.
	r := Rect{Center: Pt(0, 0), Width: 100, Height: 20, Rotation: math.Pi / 2}
	got, ok := ctx.Bounds(r)
	if !ok {
		t.Fatal("expected bounds")
	}
	want := BoundingBox{-10, -50, 10, 50}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	// 45 degrees: the half-diagonal reaches every side.
	diag := Rect{Center: Pt(0, 0), Width: 100, Height: 100, Rotation: math.Pi / 4}
	got, _ = ctx.Bounds(diag)
	half := 50 * math.Sqrt2
	if !boxApprox(got, BoundingBox{-half, -half, half, half}, 1e-9) {
		t.Errorf("diagonal Bounds = %+v, want +/-%v", got, half)
	}
}

func TestContext_BoundsEllipse(t *testing.T) {
	ctx := NewContext()
	e := Ellipse{Center: Pt(0, 0), RadiusX: 100, RadiusY: 50, Rotation: math.Pi / 2}
	got, ok := ctx.Bounds(e)
	if !ok {
		t.Fatal("expected bounds")
	}
	want := BoundingBox{-50, -100, 50, 100}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("rotated ellipse Bounds = %+v, want %+v", got, want)
	}

	if _, ok := ctx.Bounds(Ellipse{Center: Pt(0, 0), RadiusX: 0, RadiusY: 50}); ok {
		t.Error("degenerate ellipse should have no bounds")
	}
}

func TestContext_BoundsPolylineBulge(t *testing.T) {
	ctx := NewContext()
	pl := Polyline{
		Points: []Point{{0, 0}, {100, 0}},
		Bulges: []float64{1},
	}
	got, ok := ctx.Bounds(pl)
	if !ok {
		t.Fatal("expected bounds")
	}
	// The semicircle below the chord reaches y = -50.
	want := BoundingBox{0, -50, 100, 0}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	chordOnly, _ := BoxFromPoints(pl.Points...)
	if !got.ContainsBox(chordOnly) {
		t.Error("bulge-aware bounds must contain the chord box")
	}
}

func TestContext_BoundsClosedPolylineBulge(t *testing.T) {
	ctx := NewContext()
	pl := Polyline{
		Points: []Point{{0, 0}, {100, 0}, {100, 100}},
		Bulges: []float64{0, 0, -1},
		Closed: true,
	}
	got, ok := ctx.Bounds(pl)
	if !ok {
		t.Fatal("expected bounds")
	}
	// The closing segment (100,100)->(0,0) bulges with its own arc; the
	// box must extend beyond the vertex hull.
	hull, _ := BoxFromPoints(pl.Points...)
	if !got.ContainsBox(hull) || got == hull {
		t.Errorf("closing bulge ignored: %+v vs hull %+v", got, hull)
	}
}

func TestContext_BoundsWall(t *testing.T) {
	ctx := NewContext()
	wall := Wall{
		Points:        []Point{{0, 0}, {1000, 0}},
		Thickness:     200,
		Justification: JustifyCenter,
	}
	got, ok := ctx.Bounds(wall)
	if !ok {
		t.Fatal("expected bounds")
	}
	want := BoundingBox{0, -100, 1000, 100}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	left := Wall{Points: wall.Points, Thickness: 200, Justification: JustifyLeft}
	got, _ = ctx.Bounds(left)
	want = BoundingBox{0, 0, 1000, 200}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("left-justified Bounds = %+v, want %+v", got, want)
	}

	if _, ok := ctx.Bounds(Wall{Points: []Point{{0, 0}}}); ok {
		t.Error("single-point wall should have no bounds")
	}
}

func TestContext_BoundsCurvedBeam(t *testing.T) {
	ctx := NewContext()
	beam := Beam{Start: Pt(0, 0), End: Pt(100, 0), Bulge: 1, Thickness: 20, Justification: JustifyCenter}
	got, ok := ctx.Bounds(beam)
	if !ok {
		t.Fatal("expected bounds")
	}
	// Outer radius 60 around (50, 0); the band dips to y = -60.
	if math.Abs(got.MinY-(-60)) > 1e-9 {
		t.Errorf("MinY = %v, want -60", got.MinY)
	}
	if got.MaxX < 110-1e-9 {
		t.Errorf("MaxX = %v, want >= 110 (outer arc reach)", got.MaxX)
	}
}

func TestContext_BoundsAnnotations(t *testing.T) {
	ctx := NewContext()

	gl := GridLine{Start: Pt(0, 0), End: Pt(1000, 0)}
	got, ok := ctx.Bounds(gl)
	if !ok {
		t.Fatal("expected bounds")
	}
	// Bubbles of radius 500 tangent to both ends.
	want := BoundingBox{-1000, -500, 2000, 500}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("gridline Bounds = %+v, want %+v", got, want)
	}

	lv := Level{Start: Pt(0, 0), End: Pt(1000, 0)}
	got, _ = ctx.Bounds(lv)
	if got.MinY > -150+1e-9 {
		t.Errorf("level Bounds MinY = %v, marker not included", got.MinY)
	}

	cpt := CPTMarker{Position: Pt(10, 10)}
	got, _ = ctx.Bounds(cpt)
	if !boxApprox(got, BoundingBox{-290, -290, 310, 310}, 1e-9) {
		t.Errorf("cpt Bounds = %+v", got)
	}
}

func TestContext_BoundsAnnotationScaled(t *testing.T) {
	// Factor 0.5 halves the marker glyphs and with them the bounds.
	ctx := NewContext(WithDrawingScale(0.02))
	gl := GridLine{Start: Pt(0, 0), End: Pt(1000, 0)}
	got, ok := ctx.Bounds(gl)
	if !ok {
		t.Fatal("expected bounds")
	}
	want := BoundingBox{-500, -250, 1500, 250}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("scaled gridline Bounds = %+v, want %+v", got, want)
	}
}

func TestContext_BoundsText(t *testing.T) {
	ctx := NewContext()
	txt := Text{Position: Pt(0, 0), Content: "AB", Height: 10}
	got, ok := ctx.Bounds(txt)
	if !ok {
		t.Fatal("expected bounds")
	}
	// Fallback measurement: 12 x 10, anchored left/top.
	want := BoundingBox{0, -10, 12, 0}
	if !boxApprox(got, want, 1e-9) {
		t.Errorf("text Bounds = %+v, want %+v", got, want)
	}

	withLeader := Text{
		Position: Pt(0, 0), Content: "AB", Height: 10,
		Leaders: [][]Point{{{0, 0}, {200, -150}}},
	}
	got, _ = ctx.Bounds(withLeader)
	if got.MaxX < 200 || got.MinY > -150 {
		t.Errorf("leader not included in text Bounds: %+v", got)
	}

	if _, ok := ctx.Bounds(Text{Position: Pt(0, 0), Content: "", Height: 10}); ok {
		t.Error("empty text should have no bounds")
	}
}

func TestContext_BoundsPlateSystem(t *testing.T) {
	ctx := NewContext()
	plate := PlateSystem{
		Outline: []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}},
		Bulges:  []float64{1, 0, 0, 0},
	}
	got, ok := ctx.Bounds(plate)
	if !ok {
		t.Fatal("expected bounds")
	}
	if math.Abs(got.MinY-(-50)) > 1e-9 {
		t.Errorf("MinY = %v, want -50 (bulged edge)", got.MinY)
	}
}

func TestContext_BoundsEmpty(t *testing.T) {
	ctx := NewContext()
	for _, s := range []Shape{
		Polyline{},
		Spline{},
		Hatch{},
		Slab{},
		Space{},
		PlateSystem{},
		Circle{Center: Pt(0, 0)},
		Wall{},
	} {
		if _, ok := ctx.Bounds(s); ok {
			t.Errorf("%T: expected no bounds for empty shape", s)
		}
	}
}

func TestContext_BoundsContainHits(t *testing.T) {
	// Whatever Hit accepts with zero tolerance must be inside Bounds.
	ctx := NewContext()
	shapes := []Shape{
		Wall{Points: []Point{{0, 0}, {500, 0}, {500, 500}}, Bulges: []float64{0.5, 0}, Thickness: 100},
		GridLine{Start: Pt(0, 0), End: Pt(800, 200)},
		Polyline{Points: []Point{{0, 0}, {300, 0}, {300, 300}}, Bulges: []float64{-0.8, 0.3}},
	}
	probes := []Point{
		{0, 0}, {250, 60}, {250, -60}, {500, 250}, {-300, -100},
		{150, -90}, {420, 120}, {820, 210}, {300, 150},
	}

	for _, s := range shapes {
		box, ok := ctx.Bounds(s)
		if !ok {
			t.Fatalf("%T: expected bounds", s)
		}
		for _, p := range probes {
			if ctx.Hit(s, p, 0) && !box.Contains(p) {
				t.Errorf("%T: hit point %v outside bounds %+v", s, p, box)
			}
		}
	}
}
