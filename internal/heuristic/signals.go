package heuristic

import (
	"strings"
	"unicode"

	"github.com/dgallion1/outliner/internal/outline"
)

// signal is one independent heading indicator. No single signal is
// reliable across PDF producers, so promotion sums several weak ones and
// the sequencing stage restores precision afterwards. Keeping each
// evaluator named makes the scoring table auditable and testable on its
// own.
type signal struct {
	name  string
	score func(s outline.TextSpan, text string, body float64, r Rules) int
}

// promotionSignals is the ordered scoring table. Each entry contributes a
// fixed weight when its condition holds.
var promotionSignals = []signal{
	{
		name: "size-ratio",
		score: func(s outline.TextSpan, _ string, body float64, r Rules) int {
			switch {
			case s.FontSize >= r.LargeRatio*body:
				return 2
			case s.FontSize >= r.MediumRatio*body:
				return 1
			}
			return 0
		},
	},
	{
		name: "bold",
		score: func(s outline.TextSpan, _ string, _ float64, _ Rules) int {
			if s.Bold() {
				return 1
			}
			return 0
		},
	},
	{
		name: "structural-prefix",
		score: func(_ outline.TextSpan, text string, _ float64, _ Rules) int {
			if chapterPrefix.MatchString(text) || decimalPrefix.MatchString(text) ||
				twoPartPrefix.MatchString(text) || romanPrefix.MatchString(text) {
				return 2
			}
			return 0
		},
	},
	{
		name: "all-caps",
		score: func(_ outline.TextSpan, text string, _ float64, r Rules) int {
			if len(text) >= 3 && len(text) <= r.MaxCapsLen && isAllCaps(text) {
				return 1
			}
			return 0
		},
	},
	{
		name: "top-of-page",
		score: func(s outline.TextSpan, _ string, _ float64, r Rules) int {
			if s.TopFraction() < r.TopFraction {
				return 1
			}
			return 0
		},
	},
	{
		name: "title-case",
		score: func(_ outline.TextSpan, text string, _ float64, _ Rules) int {
			if titleCaseWords.MatchString(text) {
				return 1
			}
			return 0
		},
	},
}

// isAllCaps reports whether text contains at least one letter and no
// lowercase letters.
func isAllCaps(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether text is a run of capitalized words, e.g.
// "Pathway Options".
func isTitleCase(text string) bool {
	return titleCaseWords.MatchString(text)
}

// endsWithContinuation reports whether text trails off mid-sentence: a
// comma, a semicolon, or a dangling coordinating/prepositional word.
func endsWithContinuation(text string, r Rules) bool {
	if strings.HasSuffix(text, ",") || strings.HasSuffix(text, ";") {
		return true
	}
	words := strings.Fields(strings.ToLower(strings.TrimRight(text, ".:")))
	if len(words) == 0 {
		return false
	}
	return r.ContinuationWords[words[len(words)-1]]
}
