package draft2d

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var geomApprox = cmpopts.EquateApprox(0, 1e-9)

func TestComputeDimension_Aligned(t *testing.T) {
	d := Dimension{
		Kind:   DimensionAligned,
		Points: []Point{{0, 0}, {100, 0}},
		Style: DimensionStyle{
			TextHeight:         5,
			Offset:             20,
			ExtensionGap:       2,
			ExtensionOvershoot: 3,
		},
	}

	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	want := DimensionGeometry{
		DimensionLine: Line{Start: Pt(0, 20), End: Pt(100, 20)},
		HasLine:       true,
		Extensions: []Line{
			{Start: Pt(0, 2), End: Pt(0, 23)},
			{Start: Pt(100, 2), End: Pt(100, 23)},
		},
		TextAnchor: Pt(50, 20),
		TextAngle:  0,
		TextHeight: 5,
		Label:      "100",
	}
	if diff := cmp.Diff(want, got, geomApprox); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDimension_AlignedSlanted(t *testing.T) {
	// Measuring a diagonal segment keeps the dimension line parallel to it.
	d := Dimension{
		Kind:   DimensionAligned,
		Points: []Point{{0, 0}, {30, 40}},
		Style:  DimensionStyle{Offset: 10},
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	if got.Label != "50" {
		t.Errorf("Label = %q, want 50", got.Label)
	}
	lineDir := got.DimensionLine.End.Sub(got.DimensionLine.Start).Normalize()
	segDir := Pt(30, 40).Normalize()
	if !lineDir.Approx(segDir, 1e-9) {
		t.Errorf("dimension line direction %v not parallel to segment %v", lineDir, segDir)
	}
}

func TestComputeDimension_Linear(t *testing.T) {
	// A direction override locks the measurement to the axis perpendicular
	// to it; here the vertical normal yields the horizontal distance.
	d := Dimension{
		Kind:         DimensionAligned,
		Points:       []Point{{0, 0}, {100, 50}},
		Style:        DimensionStyle{Offset: 20},
		Direction:    math.Pi / 2,
		HasDirection: true,
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	wantLine := Line{Start: Pt(0, 45), End: Pt(100, 45)}
	if diff := cmp.Diff(wantLine, got.DimensionLine, geomApprox); diff != "" {
		t.Errorf("dimension line mismatch (-want +got):\n%s", diff)
	}
	if got.Label != "100" {
		t.Errorf("Label = %q, want 100 (projected distance)", got.Label)
	}
}

func TestComputeDimension_TextOffset(t *testing.T) {
	d := Dimension{
		Kind:       DimensionAligned,
		Points:     []Point{{0, 0}, {100, 0}},
		Style:      DimensionStyle{Offset: 20},
		TextOffset: Pt(5, -3),
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	if !got.TextAnchor.Approx(Pt(55, 17), 1e-9) {
		t.Errorf("TextAnchor = %v, want (55, 17)", got.TextAnchor)
	}
}

func TestComputeDimension_Angular(t *testing.T) {
	d := Dimension{
		Kind:   DimensionAngular,
		Points: []Point{{0, 0}, {100, 0}, {0, 80}},
		Style:  DimensionStyle{TextHeight: 5},
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	if got.HasLine || !got.HasArc {
		t.Fatal("angular dimension should carry an arc, not a line")
	}
	wantArc := Arc{Center: Pt(0, 0), Radius: 80, StartAngle: 0, EndAngle: math.Pi / 2}
	if diff := cmp.Diff(wantArc, got.DimensionArc, geomApprox); diff != "" {
		t.Errorf("arc mismatch (-want +got):\n%s", diff)
	}
	if got.Label != "90°" {
		t.Errorf("Label = %q, want 90°", got.Label)
	}
	wantAnchor := PolarPoint(Pt(0, 0), math.Pi/4, 85)
	if !got.TextAnchor.Approx(wantAnchor, 1e-9) {
		t.Errorf("TextAnchor = %v, want %v", got.TextAnchor, wantAnchor)
	}
	// The longer ray gets an extension from its point back to the arc.
	wantExt := Line{Start: Pt(100, 0), End: Pt(80, 0)}
	if diff := cmp.Diff(wantExt, got.Extensions[0], geomApprox); diff != "" {
		t.Errorf("extension mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDimension_AngularClockwise(t *testing.T) {
	// Swapping the rays reverses the sweep but measures the same angle.
	d := Dimension{
		Kind:   DimensionAngular,
		Points: []Point{{0, 0}, {0, 80}, {100, 0}},
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	if !got.DimensionArc.Clockwise {
		t.Error("expected clockwise sweep")
	}
	if got.Label != "90°" {
		t.Errorf("Label = %q, want 90°", got.Label)
	}
}

func TestComputeDimension_AngularArcRadius(t *testing.T) {
	d := Dimension{
		Kind:   DimensionAngular,
		Points: []Point{{0, 0}, {100, 0}, {0, 80}},
		Style:  DimensionStyle{ArcRadius: 40},
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	if got.DimensionArc.Radius != 40 {
		t.Errorf("Radius = %v, want style override 40", got.DimensionArc.Radius)
	}
}

func TestComputeDimension_Radius(t *testing.T) {
	d := Dimension{
		Kind:   DimensionRadius,
		Points: []Point{{0, 0}, {50, 0}},
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	wantLine := Line{Start: Pt(0, 0), End: Pt(50, 0)}
	if diff := cmp.Diff(wantLine, got.DimensionLine, geomApprox); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
	if got.Label != "R50" {
		t.Errorf("Label = %q, want R50", got.Label)
	}
}

func TestComputeDimension_Diameter(t *testing.T) {
	d := Dimension{
		Kind:   DimensionDiameter,
		Points: []Point{{0, 0}, {50, 0}},
	}
	got, ok := ComputeDimension(d)
	if !ok {
		t.Fatal("expected geometry")
	}
	wantLine := Line{Start: Pt(-50, 0), End: Pt(50, 0)}
	if diff := cmp.Diff(wantLine, got.DimensionLine, geomApprox); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
	if got.Label != "⌀100" {
		t.Errorf("Label = %q, want ⌀100", got.Label)
	}
	if !got.TextAnchor.Approx(Pt(0, 0), 1e-9) {
		t.Errorf("TextAnchor = %v, want center", got.TextAnchor)
	}
}

func TestComputeDimension_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		d    Dimension
	}{
		{"no points", Dimension{Kind: DimensionAligned}},
		{"one point", Dimension{Kind: DimensionAligned, Points: []Point{{1, 1}}}},
		{"coincident", Dimension{Kind: DimensionAligned, Points: []Point{{1, 1}, {1, 1}}}},
		{"angular two points", Dimension{Kind: DimensionAngular, Points: []Point{{0, 0}, {1, 0}}}},
		{"angular zero ray", Dimension{Kind: DimensionAngular, Points: []Point{{0, 0}, {0, 0}, {1, 0}}}},
		{"radius zero", Dimension{Kind: DimensionRadius, Points: []Point{{3, 3}, {3, 3}}}},
		{"unknown kind", Dimension{Kind: DimensionKind(99), Points: []Point{{0, 0}, {1, 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ComputeDimension(tt.d); ok {
				t.Error("expected no geometry for degenerate input")
			}
		})
	}
}

func TestReadableAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi / 4, math.Pi / 4},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, 0},
		{3 * math.Pi / 4, 7 * math.Pi / 4},
		{-math.Pi / 4, 7 * math.Pi / 4},
	}
	for _, tt := range tests {
		if got := readableAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("readableAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatMeasure(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{0.5, "0.5"},
		{2.5, "2.5"},
		{123.456, "123.46"},
		{0, "0"},
		{1.999, "2"},
	}
	for _, tt := range tests {
		if got := formatMeasure(tt.in); got != tt.want {
			t.Errorf("formatMeasure(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
