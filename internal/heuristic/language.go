package heuristic

import (
	"unicode"

	"github.com/dgallion1/outliner/internal/outline"
)

// script pairs a reported language tag with its unicode range table.
// Probed in fixed order so results are deterministic.
type script struct {
	tag   string
	table *unicode.RangeTable
}

var scripts = []script{
	{"latin", unicode.Latin},
	{"cyrillic", unicode.Cyrillic},
	{"greek", unicode.Greek},
	{"arabic", unicode.Arabic},
	{"hebrew", unicode.Hebrew},
	{"devanagari", unicode.Devanagari},
	{"cjk", unicode.Han},
	{"japanese", unicode.Hiragana},
	{"korean", unicode.Hangul},
}

// DetectLanguages reports a coarse script presence flag per document,
// derived from the letters occurring in span text. It is not real
// language identification, just enough for downstream routing.
func DetectLanguages(spans []outline.TextSpan) []string {
	present := make(map[string]bool)
	for _, s := range spans {
		for _, r := range s.Text {
			if !unicode.IsLetter(r) {
				continue
			}
			for _, sc := range scripts {
				if unicode.Is(sc.table, r) {
					present[sc.tag] = true
					break
				}
			}
		}
	}

	detected := make([]string, 0, len(present))
	for _, sc := range scripts {
		if present[sc.tag] {
			detected = append(detected, sc.tag)
		}
	}
	return detected
}
