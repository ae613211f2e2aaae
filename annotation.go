package draft2d

// AnnotationScale returns the multiplier that keeps symbol-like annotations
// (grid bubbles, level markers, callout arrows) a constant size on paper
// regardless of the drawing's model scale. The reference is ReferenceScale
// (1:100); a non-positive drawing scale yields the neutral factor 1.
func AnnotationScale(drawingScale float64) float64 {
	if drawingScale <= 0 {
		return 1
	}
	return ReferenceScale / drawingScale
}
