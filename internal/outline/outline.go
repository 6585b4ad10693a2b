package outline

import "strings"

// FlagBold is the layout-engine style bit for bold text. Engines that do
// not report style flags leave StyleFlags at 0 and boldness is inferred
// from the font name instead.
const FlagBold = 1 << 1

// TextSpan is one run of text sharing a single font and style, as reported
// by the layout engine. Spans are created once during collection and are
// immutable afterwards.
type TextSpan struct {
	Text       string  // trimmed text content, non-empty
	Page       int     // 1-indexed page number
	FontSize   float64 // typographic points
	FontName   string  // may encode weight, e.g. "Helvetica-Bold"
	StyleFlags int     // layout-engine style bits (0 when not reported)
	Y          float64 // vertical offset of the containing line from page top
	PageHeight float64 // for normalized position; 0 when unknown
}

// Bold reports whether the span is bold, from either the style flags or
// the font name.
func (s TextSpan) Bold() bool {
	if s.StyleFlags&FlagBold != 0 {
		return true
	}
	return strings.Contains(strings.ToLower(s.FontName), "bold")
}

// TopFraction returns the span's vertical position normalized to [0,1]
// from the top of the page. Returns 1 when the page height is unknown so
// that position never counts in favor of a heading.
func (s TextSpan) TopFraction() float64 {
	if s.PageHeight <= 0 {
		return 1
	}
	f := s.Y / s.PageHeight
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Level is the coarse three-tier heading hierarchy.
type Level string

const (
	LevelH1 Level = "H1"
	LevelH2 Level = "H2"
	LevelH3 Level = "H3"
)

// HeadingCandidate is a TextSpan with its classification outcome attached.
type HeadingCandidate struct {
	Span  TextSpan
	Level Level
}

// OutlineEntry is the final output unit. Entries are ordered by page then
// vertical position, and no two entries share the same normalized
// (text, page) pair.
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Metadata carries optional per-document statistics.
type Metadata struct {
	TotalPages        int      `json:"total_pages"`
	LanguagesDetected []string `json:"languages_detected"`
}

// DocumentResult is the assembled output for one input document.
// Title is never empty; a fallback value is always supplied.
type DocumentResult struct {
	Title    string         `json:"title"`
	Outline  []OutlineEntry `json:"outline"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}
