package text

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpenAEC-Foundation/draft2d"
)

// Measurer lays out annotation text at a given text height and reports its
// extents. It satisfies the kernel's TextMeasurer interface.
//
// The default (unshaped) Measurer sums per-glyph advances and is safe for
// concurrent use. A Measurer built with WithShaping mutates shaper state on
// every call and must be confined to one goroutine at a time.
type Measurer struct {
	source *FontSource
	config measureConfig
	shaper *shapedAdvancer
}

// NewMeasurer creates a Measurer over a font source.
func NewMeasurer(source *FontSource, opts ...MeasureOption) (*Measurer, error) {
	config := defaultMeasureConfig()
	for _, opt := range opts {
		opt(&config)
	}

	m := &Measurer{source: source, config: config}
	if config.shaped {
		shaper, err := newShapedAdvancer(source.Data())
		if err != nil {
			return nil, err
		}
		m.shaper = shaper
	}
	return m, nil
}

// Source returns the font source backing this measurer.
func (m *Measurer) Source() *FontSource {
	return m.source
}

// Advance returns the width of a single line at the given text height.
func (m *Measurer) Advance(line string, height float64) float64 {
	if m.shaper != nil {
		return m.shaper.lineAdvance(line, height)
	}
	parsed := m.source.Parsed()
	total := 0.0
	for _, r := range line {
		total += parsed.GlyphAdvance(parsed.GlyphIndex(r), height)
	}
	return total
}

// Metrics returns the font metrics at the given text height.
func (m *Measurer) Metrics(height float64) Metrics {
	return m.source.Parsed().Metrics(height)
}

// Lines returns the laid-out lines of content at the given height, wrapped
// at maxWidth when maxWidth > 0.
func (m *Measurer) Lines(content string, height, maxWidth float64) []string {
	if content == "" || height <= 0 {
		return nil
	}
	widthOf := func(s string) float64 { return m.Advance(s, height) }
	return wrapLines(content, widthOf, maxWidth, m.config.wrapMode)
}

// MeasureText returns the width and height of content laid out at the
// given text height, word-wrapped at maxWidth when maxWidth > 0. The
// height is the line count times the text height times the configured line
// spacing; the width is the widest line's advance.
func (m *Measurer) MeasureText(content string, height, maxWidth float64) (w, h float64) {
	lines := m.Lines(content, height, maxWidth)
	if len(lines) == 0 {
		return 0, 0
	}
	for _, line := range lines {
		if lw := m.Advance(line, height); lw > w {
			w = lw
		}
	}
	return w, float64(len(lines)) * height * m.config.lineSpacing
}

var (
	defaultOnce     sync.Once
	defaultMeasurer *Measurer
)

// Default returns the process-wide Measurer over the embedded Go Regular
// font, created lazily on first use. It is unshaped and therefore safe for
// concurrent use; hosts wanting shaped measurement or their own font
// construct a Measurer with NewMeasurer.
func Default() *Measurer {
	defaultOnce.Do(func() {
		source, err := NewFontSource(goregular.TTF)
		if err != nil {
			// The embedded font always parses; reaching this means the
			// build itself is broken.
			draft2d.Logger().Error("parsing embedded fallback font failed", "err", err)
			return
		}
		defaultMeasurer, _ = NewMeasurer(source)
	})
	return defaultMeasurer
}
