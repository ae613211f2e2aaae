package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend. The default is "ximage",
// which uses golang.org/x/image/font/opentype. Custom parsers can be
// registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// MeasureOption configures a Measurer.
type MeasureOption func(*measureConfig)

// measureConfig holds configuration for Measurer.
type measureConfig struct {
	lineSpacing float64
	wrapMode    WrapMode
	shaped      bool
}

// defaultMeasureConfig returns the default measurer configuration.
func defaultMeasureConfig() measureConfig {
	return measureConfig{
		lineSpacing: 1.0,
		wrapMode:    WrapWordChar,
	}
}

// WithLineSpacing sets the multiplier applied to the text height per laid
// out line. 1.0 stacks lines exactly one text height apart.
func WithLineSpacing(f float64) MeasureOption {
	return func(c *measureConfig) {
		if f > 0 {
			c.lineSpacing = f
		}
	}
}

// WithWrapMode sets the wrapping behavior when a maximum width is given.
func WithWrapMode(m WrapMode) MeasureOption {
	return func(c *measureConfig) {
		c.wrapMode = m
	}
}

// WithShaping enables HarfBuzz shaping via go-text/typesetting for line
// advances, picking up kerning and complex-script forms that per-glyph
// advance sums miss. A shaped Measurer is NOT safe for concurrent use.
func WithShaping() MeasureOption {
	return func(c *measureConfig) {
		c.shaped = true
	}
}
