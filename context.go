package draft2d

// TextMeasurer is the injected text-measurement capability. The text
// subpackage provides a font-backed implementation; hosts may substitute
// their own. Implementations are not required to be safe for concurrent
// use; give each concurrent caller its own instance.
type TextMeasurer interface {
	// MeasureText returns the width and height of content laid out at the
	// given text height, word-wrapped at maxWidth when maxWidth > 0 (with
	// character-level breaking for overlong words).
	MeasureText(content string, height, maxWidth float64) (w, h float64)
}

// Context carries the per-drawing environment that composite hit-testing
// and bounds computation depend on: the annotation scale factor and the
// text-measurement capability. A Context holds no shape state and is cheap
// to construct per drawing.
type Context struct {
	annotationScale float64
	measurer        TextMeasurer
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithDrawingScale derives the annotation scale factor from the drawing's
// model scale via AnnotationScale.
func WithDrawingScale(scale float64) ContextOption {
	return func(c *Context) {
		c.annotationScale = AnnotationScale(scale)
	}
}

// WithAnnotationScale sets the annotation scale factor directly.
func WithAnnotationScale(factor float64) ContextOption {
	return func(c *Context) {
		c.annotationScale = factor
	}
}

// WithMeasurer injects the text-measurement capability used for text and
// dimension-label geometry.
func WithMeasurer(m TextMeasurer) ContextOption {
	return func(c *Context) {
		c.measurer = m
	}
}

// NewContext creates a Context. Without options the annotation scale is the
// neutral factor 1 and text is measured with a built-in fixed-aspect
// approximation.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{annotationScale: 1}
	for _, opt := range opts {
		opt(c)
	}
	if c.annotationScale <= 0 {
		c.annotationScale = 1
	}
	return c
}

// AnnotationScale returns the context's annotation scale factor.
func (c *Context) AnnotationScale() float64 {
	return c.annotationScale
}

// measureText measures through the injected capability, falling back to a
// width-per-glyph approximation when none was provided so text shapes stay
// selectable in hosts that never load a font.
func (c *Context) measureText(content string, height, maxWidth float64) (w, h float64) {
	if c.measurer != nil {
		return c.measurer.MeasureText(content, height, maxWidth)
	}
	return approximateMeasure(content, height, maxWidth)
}

// fallbackGlyphAspect is the assumed advance-to-height ratio of the
// measurement fallback.
const fallbackGlyphAspect = 0.6

// approximateMeasure estimates text extents assuming a fixed glyph aspect,
// wrapping at maxWidth by character count.
func approximateMeasure(content string, height, maxWidth float64) (w, h float64) {
	if content == "" || height <= 0 {
		return 0, 0
	}
	glyph := height * fallbackGlyphAspect
	perLine := 0
	if maxWidth > 0 && glyph > 0 {
		perLine = int(maxWidth / glyph)
		if perLine < 1 {
			perLine = 1
		}
	}

	lines := 0
	maxLen := 0
	lineLen := 0
	flush := func() {
		if lineLen > maxLen {
			maxLen = lineLen
		}
		lines++
		lineLen = 0
	}
	for _, r := range content {
		if r == '\n' {
			flush()
			continue
		}
		lineLen++
		if perLine > 0 && lineLen == perLine {
			flush()
		}
	}
	if lineLen > 0 || lines == 0 {
		flush()
	}
	return float64(maxLen) * glyph, float64(lines) * height
}
