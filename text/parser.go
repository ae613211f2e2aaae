package text

import "sync"

// FontParser is an interface for font parsing backends. The abstraction
// allows swapping the font parsing library; the default implementation uses
// golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file, reduced to what measurement
// needs. Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, 0 if absent.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width of a glyph at the given size
	// (pixels per em).
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) Metrics
}

const defaultParserName = "ximage"

var (
	parsersMu sync.RWMutex
	parsers   = map[string]FontParser{
		defaultParserName: &ximageParser{},
	}
)

// RegisterParser registers a font parser backend under a name, replacing
// any existing registration with the same name.
func RegisterParser(name string, p FontParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = p
}

// getParser returns the named parser, or the default when name is unknown
// or empty.
func getParser(name string) FontParser {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	if p, ok := parsers[name]; ok {
		return p
	}
	return parsers[defaultParserName]
}
