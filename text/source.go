package text

import "fmt"

// FontSource represents a loaded font file. One FontSource serves any
// number of measurers; it is heavyweight and should be shared across the
// application.
//
// FontSource is safe for concurrent use and must not be copied after
// creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource
	// itself.
	addr *FontSource

	data   []byte
	parsed ParsedFont
	name   string
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF). The data
// slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	s := &FontSource{
		data:   owned,
		parsed: parsed,
		name:   parsed.Name(),
	}
	s.addr = s
	s.config = config
	return s, nil
}

// copyCheck panics when the FontSource was copied by value, which would
// silently duplicate internal state.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic(fmt.Sprintf("text: FontSource %q must not be copied", s.name))
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font backing this source.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Data returns the raw font bytes. Callers must not modify the slice; it is
// shared with shaping backends that parse it independently.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}
