package heuristic

import (
	"regexp"

	"github.com/dgallion1/outliner/internal/outline"
)

// Rules holds every tunable constant and fixed vocabulary the classifier
// consumes. A Rules value is immutable configuration: build one with
// DefaultRules, adjust fields, and pass it to New. Classification logic
// never needs to change for per-domain tuning.
type Rules struct {
	// Rejection filters.
	MinTextLen    int // trimmed text shorter than this is never a heading
	SingleWordLen int // lone words shorter than this need caps or title case

	// Score threshold and size ratios.
	MinScore    int     // accumulated score required to accept a heading
	LargeRatio  float64 // size >= LargeRatio*body scores +2
	MediumRatio float64 // size >= MediumRatio*body scores +1
	TopFraction float64 // normalized y below this counts as top of page

	// Level assignment ratios.
	H1Ratio     float64 // size >= H1Ratio*body maps to H1
	H1BoldRatio float64 // bold and size >= H1BoldRatio*body maps to H1
	H2Ratio     float64 // size >= H2Ratio*body maps to H2

	// All-caps handling.
	MaxCapsLen   int // all-caps runs longer than this score nothing
	ShortCapsLen int // all-caps headings up to this length are forced to H1

	// StopWords are single words that never stand alone as a heading.
	StopWords map[string]bool

	// ContinuationWords are trailing words that mark a wrapped line
	// fragment rather than a complete heading.
	ContinuationWords map[string]bool

	// KnownHeadings maps known section titles (lowercase, no trailing
	// colon) to fixed levels. Matched case-insensitively, exact or
	// substring, and takes precedence over all scoring.
	KnownHeadings map[string]outline.Level
}

// DefaultRules returns the stock ruleset.
func DefaultRules() Rules {
	return Rules{
		MinTextLen:    3,
		SingleWordLen: 15,
		MinScore:      2,
		LargeRatio:    1.30,
		MediumRatio:   1.15,
		TopFraction:   0.2,
		H1Ratio:       1.5,
		H1BoldRatio:   1.3,
		H2Ratio:       1.25,
		MaxCapsLen:    50,
		ShortCapsLen:  30,
		StopWords: map[string]bool{
			"and": true, "or": true, "the": true, "a": true, "an": true,
			"to": true, "of": true, "in": true, "on": true, "at": true,
			"for": true, "with": true, "here": true,
		},
		ContinuationWords: map[string]bool{
			"and": true, "or": true, "the": true, "a": true, "an": true,
			"to": true, "of": true, "in": true, "for": true, "with": true,
		},
		KnownHeadings: map[string]outline.Level{},
	}
}

// Structural patterns shared by the classifier. Compiled once; Rules
// carries vocabularies, not regexes, so these stay package-level.
var (
	numberedStart   = regexp.MustCompile(`^\d+\.`)
	decimalPrefix   = regexp.MustCompile(`^\d+\.\s`)
	twoPartPrefix   = regexp.MustCompile(`^\d+\.\d+(\.|\s)`)
	threePartPrefix = regexp.MustCompile(`^\d+\.\d+\.\d+(\.|\s)`)
	chapterPrefix   = regexp.MustCompile(`(?i)^(chapter|section|part|article)\s+\d+`)
	romanPrefix     = regexp.MustCompile(`^[IVXLC]+\.\s`)
	bulletStart     = regexp.MustCompile(`^[\s]*[-•–‣◦*][\s]`)
	titleCaseWords  = regexp.MustCompile(`^([A-Z][a-z]+\s*)+$`)
)
