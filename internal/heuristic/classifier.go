package heuristic

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/outliner/internal/outline"
)

// Classifier decides, per span, heading vs. not and the heading level.
// Safe for concurrent use: it holds only immutable configuration.
type Classifier struct {
	rules Rules
}

// NewClassifier returns a classifier using the given ruleset.
func NewClassifier(r Rules) *Classifier {
	return &Classifier{rules: r}
}

// Classify returns the heading level for a span, or ok=false when the
// span is body text. bodySize is the document baseline from BodySize.
func (c *Classifier) Classify(span outline.TextSpan, bodySize float64) (outline.Level, bool) {
	text := strings.TrimSpace(span.Text)
	if c.rejected(text) {
		return "", false
	}

	// Known section titles beat all scoring.
	if level, ok := c.lookupKnown(text); ok {
		return level, true
	}

	if c.score(span, text, bodySize) < c.rules.MinScore {
		return "", false
	}
	return c.level(span, text, bodySize), true
}

// rejected applies the hard filters: spans matching any of these are
// never headings regardless of formatting.
func (c *Classifier) rejected(text string) bool {
	if len(text) < c.rules.MinTextLen {
		return true
	}
	if endsWithContinuation(text, c.rules) {
		return true
	}
	if bulletStart.MatchString(text) {
		return true
	}
	first, _ := firstRune(text)
	if unicode.IsLower(first) && !numberedStart.MatchString(text) {
		return true
	}

	words := strings.Fields(text)
	if len(words) == 1 {
		word := words[0]
		if c.rules.StopWords[strings.ToLower(word)] && !strings.HasSuffix(word, ":") {
			return true
		}
		bare := strings.TrimRight(word, ":")
		if len(word) < c.rules.SingleWordLen && !isAllCaps(bare) && !isTitleCase(bare) {
			return true
		}
	}
	return false
}

// score sums the promotion signals for a span.
func (c *Classifier) score(span outline.TextSpan, text string, bodySize float64) int {
	total := 0
	for _, sig := range promotionSignals {
		total += sig.score(span, text, bodySize, c.rules)
	}
	return total
}

// level assigns H1/H2/H3 to an accepted heading: a size/weight table
// first, then pattern overrides. Numbered prefixes encode their own depth
// (1. -> H1, 1.1 -> H2, 1.1.1 -> H3), so they win over font metrics.
func (c *Classifier) level(span outline.TextSpan, text string, bodySize float64) outline.Level {
	r := c.rules

	level := outline.LevelH3
	switch {
	case span.FontSize >= r.H1Ratio*bodySize,
		span.Bold() && span.FontSize >= r.H1BoldRatio*bodySize:
		level = outline.LevelH1
	case span.FontSize >= r.H2Ratio*bodySize, span.Bold():
		level = outline.LevelH2
	}

	switch {
	case chapterPrefix.MatchString(text):
		level = outline.LevelH1
	case threePartPrefix.MatchString(text):
		level = outline.LevelH3
	case twoPartPrefix.MatchString(text):
		level = outline.LevelH2
	case decimalPrefix.MatchString(text):
		level = outline.LevelH1
	case isAllCaps(text) && len(text) <= r.ShortCapsLen:
		level = outline.LevelH1
	}
	return level
}

// lookupKnown matches text against the known-headings table,
// case-insensitively, exact first and then substring. When several table
// keys occur as substrings the longest one wins, then lexicographic order,
// so results do not depend on map iteration order.
func (c *Classifier) lookupKnown(text string) (outline.Level, bool) {
	if len(c.rules.KnownHeadings) == 0 {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(strings.TrimRight(text, ":")))

	if level, ok := c.rules.KnownHeadings[key]; ok {
		return level, true
	}

	var matches []string
	for known := range c.rules.KnownHeadings {
		if strings.Contains(key, known) {
			matches = append(matches, known)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) > len(matches[j])
		}
		return matches[i] < matches[j]
	})
	return c.rules.KnownHeadings[matches[0]], true
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
