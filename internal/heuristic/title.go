package heuristic

import (
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Fallback titles. FallbackTitle is the terminal value of the resolver
// chain; ErrorTitle marks a document that could not be processed at all.
const (
	FallbackTitle = "Untitled Document"
	ErrorTitle    = "Error Processing Document"
)

// minTitleLen guards the largest-font fallback against picking up page
// numbers and other tiny decorations.
const minTitleLen = 5

// ResolveTitle picks the document title. Priority: embedded metadata
// title, first H1 in the final outline, then the text of the span with
// the largest font size in the whole document.
func ResolveTitle(metaTitle string, entries []outline.OutlineEntry, spans []outline.TextSpan) string {
	if t := strings.TrimSpace(metaTitle); t != "" {
		return t
	}

	for _, e := range entries {
		if e.Level == outline.LevelH1 {
			return e.Text
		}
	}

	var largest outline.TextSpan
	for _, s := range spans {
		if len(strings.TrimSpace(s.Text)) <= minTitleLen {
			continue
		}
		if s.FontSize > largest.FontSize {
			largest = s
		}
	}
	if t := strings.TrimSpace(largest.Text); t != "" {
		return t
	}

	return FallbackTitle
}
