package draft2d

// textRect computes the oriented bounding rectangle of a text block from
// measured extents, honoring rotation and alignment. ok is false for empty
// or unmeasurable text.
func textRect(c *Context, t Text) (Rect, bool) {
	w, h := c.measureText(t.Content, t.Height, t.MaxWidth)
	if w <= 0 || h <= 0 {
		return Rect{}, false
	}

	var local Point
	switch t.HAlign {
	case HAlignLeft:
		local.X = w / 2
	case HAlignRight:
		local.X = -w / 2
	}
	switch t.VAlign {
	case VAlignTop:
		local.Y = -h / 2
	case VAlignBottom:
		local.Y = h / 2
	}
	if t.Rotation != 0 {
		local = local.Rotate(t.Rotation)
	}

	return Rect{
		Center:   t.Position.Add(local),
		Width:    w,
		Height:   h,
		Rotation: t.Rotation,
	}, true
}

// dimensionTextRect computes the oriented rectangle of a dimension label,
// centered on the text anchor.
func dimensionTextRect(c *Context, g DimensionGeometry) (Rect, bool) {
	if g.Label == "" || g.TextHeight <= 0 {
		return Rect{}, false
	}
	w, h := c.measureText(g.Label, g.TextHeight, 0)
	if w <= 0 || h <= 0 {
		return Rect{}, false
	}
	return Rect{
		Center:   g.TextAnchor,
		Width:    w,
		Height:   h,
		Rotation: g.TextAngle,
	}, true
}

// leadersHit reports whether p is within tol of any segment of the leader
// polylines.
func leadersHit(p Point, leaders [][]Point, tol float64) bool {
	for _, leader := range leaders {
		for i := 0; i+1 < len(leader); i++ {
			if PointNearSegment(p, leader[i], leader[i+1], tol) {
				return true
			}
		}
	}
	return false
}
