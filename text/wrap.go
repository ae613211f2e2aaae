package text

import "strings"

// WrapMode specifies how text is wrapped when it exceeds the maximum width.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries first, then falls back to
	// character boundaries for overlong words. This is the default.
	WrapWordChar WrapMode = iota

	// WrapNone disables wrapping; lines may exceed the maximum width.
	WrapNone

	// WrapWord breaks at word boundaries only. Overlong words overflow.
	WrapWord

	// WrapChar breaks at character boundaries.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return "Unknown"
	}
}

// wrapLines splits content into laid-out lines. Explicit newlines always
// break; within a paragraph, widthOf measures candidate lines against
// maxWidth. maxWidth <= 0 disables wrapping.
func wrapLines(content string, widthOf func(string) float64, maxWidth float64, mode WrapMode) []string {
	var out []string
	for _, para := range strings.Split(content, "\n") {
		out = append(out, wrapParagraph(para, widthOf, maxWidth, mode)...)
	}
	return out
}

func wrapParagraph(para string, widthOf func(string) float64, maxWidth float64, mode WrapMode) []string {
	if para == "" {
		return []string{""}
	}
	if maxWidth <= 0 || mode == WrapNone {
		return []string{para}
	}

	runes := []rune(para)
	var lines []string
	lineStart := 0
	lastBreak := -1

	for i := 1; i <= len(runes); i++ {
		if widthOf(string(runes[lineStart:i])) <= maxWidth {
			if i < len(runes) && canBreakBefore(runes, i, mode) {
				lastBreak = i
			}
			continue
		}

		// The line up to i no longer fits; pick the break position.
		breakAt := -1
		switch mode {
		case WrapWord:
			breakAt = lastBreak
		case WrapChar:
			breakAt = i - 1
		default: // WrapWordChar
			if lastBreak > lineStart {
				breakAt = lastBreak
			} else {
				breakAt = i - 1
			}
		}

		if breakAt <= lineStart {
			if mode == WrapWord {
				// No boundary yet: let the word overflow until one appears.
				if i < len(runes) && canBreakBefore(runes, i, mode) {
					lastBreak = i
				}
				continue
			}
			// Always place at least one rune per line.
			breakAt = lineStart + 1
		}

		lines = append(lines, strings.TrimRight(string(runes[lineStart:breakAt]), " \t"))
		lineStart = breakAt
		for lineStart < len(runes) && (runes[lineStart] == ' ' || runes[lineStart] == '\t') {
			lineStart++
		}
		lastBreak = -1
		i = lineStart
	}

	if lineStart < len(runes) {
		lines = append(lines, string(runes[lineStart:]))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// canBreakBefore reports whether a line break is allowed before runes[i].
// Simplified UAX #14: break after spaces and hyphens, around CJK, never
// before closing or after opening punctuation.
func canBreakBefore(runes []rune, i int, mode WrapMode) bool {
	prev, curr := runes[i-1], runes[i]
	switch curr {
	case ')', ']', '}', '”', '’':
		return false
	}
	switch prev {
	case '(', '[', '{', '“', '‘':
		return false
	}
	if mode == WrapChar {
		return true
	}
	switch prev {
	case ' ', '\t', '​':
		return true
	case '-', '‐', '‑', '–', '—':
		return true
	}
	return isCJKRune(prev) || isCJKRune(curr)
}

// isCJKRune reports whether the rune is a CJK character that allows
// breaking on either side.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}
