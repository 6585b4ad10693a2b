package heuristic

import (
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Sequence orders accepted candidates into reading order, removes
// duplicates, and drops fragment-like false positives. Reading order is
// page ascending then vertical position ascending; duplicates share a
// normalized (text, page) key and the first occurrence wins. The fragment
// filters re-run two of the rejection checks because scoring favors
// recall and a few wrapped-line fragments still get through.
func Sequence(candidates []outline.HeadingCandidate, r Rules) []outline.OutlineEntry {
	sorted := make([]outline.HeadingCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Page != sorted[j].Span.Page {
			return sorted[i].Span.Page < sorted[j].Span.Page
		}
		return sorted[i].Span.Y < sorted[j].Span.Y
	})

	type key struct {
		text string
		page int
	}
	seen := make(map[key]bool)
	entries := make([]outline.OutlineEntry, 0, len(sorted))

	for _, c := range sorted {
		text := strings.TrimSpace(c.Span.Text)
		if isFragment(text, r) {
			continue
		}
		k := key{text: NormalizeText(text), page: c.Span.Page}
		if seen[k] {
			continue
		}
		seen[k] = true
		entries = append(entries, outline.OutlineEntry{
			Level: c.Level,
			Text:  text,
			Page:  c.Span.Page,
		})
	}
	return entries
}

// NormalizeText lowercases and collapses whitespace for dedup keys.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// isFragment flags headings that survived scoring but read as broken-off
// line fragments.
func isFragment(text string, r Rules) bool {
	if endsWithContinuation(text, r) {
		return true
	}
	words := strings.Fields(text)
	if len(words) == 1 {
		bare := strings.TrimRight(words[0], ":")
		if len(words[0]) < r.SingleWordLen && !isAllCaps(bare) && !isTitleCase(bare) {
			return true
		}
	}
	return false
}
