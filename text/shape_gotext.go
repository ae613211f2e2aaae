package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shapedAdvancer measures line advances through HarfBuzz shaping via
// go-text/typesetting, picking up kerning and complex-script forms.
//
// NOT safe for concurrent use: HarfbuzzShaper keeps an internal buffer, and
// font.Face caches glyph state. Every concurrent caller needs its own
// instance (and therefore its own Measurer).
type shapedAdvancer struct {
	font   *font.Font
	face   *font.Face
	shaper shaping.HarfbuzzShaper
}

// newShapedAdvancer parses the font data for shaping. The *font.Font is
// read-only; the face wrapping it carries the mutable per-instance state.
func newShapedAdvancer(data []byte) (*shapedAdvancer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	return &shapedAdvancer{font: face.Font, face: face}, nil
}

// lineAdvance returns the total horizontal advance of one line at the
// given size, shaping each bidi run in its own direction.
func (s *shapedAdvancer) lineAdvance(line string, size float64) float64 {
	if line == "" {
		return 0
	}
	total := 0.0
	for _, run := range splitDirectionalRuns(line) {
		runes := []rune(run.text)
		if len(runes) == 0 {
			continue
		}
		dir := di.DirectionLTR
		if run.rtl {
			dir = di.DirectionRTL
		}
		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      s.face,
			Size:      floatToFixed(size),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		}
		output := s.shaper.Shape(input)
		for _, g := range output.Glyphs {
			total += fixedToFloat(g.Advance)
		}
	}
	return total
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script runs within one direction are measured
// with the first script, which is adequate for annotation labels.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
