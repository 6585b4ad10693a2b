package heuristic

import (
	"math"

	"github.com/dgallion1/outliner/internal/outline"
)

// DefaultBodySize is used when no span carries a positive font size.
const DefaultBodySize = 12.0

// BodySize returns the dominant font size of the document: the
// one-decimal-rounded size with the highest occurrence count among all
// spans with positive size. Ties break toward the smallest size so the
// baseline is reproducible run to run.
func BodySize(spans []outline.TextSpan) float64 {
	counts := make(map[float64]int)
	for _, s := range spans {
		if s.FontSize <= 0 {
			continue
		}
		counts[math.Round(s.FontSize*10)/10]++
	}
	if len(counts) == 0 {
		return DefaultBodySize
	}

	var best float64
	bestCount := 0
	for size, n := range counts {
		if n > bestCount || (n == bestCount && size < best) {
			best = size
			bestCount = n
		}
	}
	return best
}
