package heuristic

import (
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Document is the validated input to extraction: the full span population
// of one file plus whatever the layout layer knew about it. Span
// collection must be complete before extraction starts because the body
// size baseline needs the whole population.
type Document struct {
	Spans      []outline.TextSpan
	MetaTitle  string // embedded metadata title, "" when absent
	TotalPages int    // 0 when unknown; recovered from span pages
}

// Extractor runs the classification pipeline for one document at a time.
// It is stateless between documents and safe for concurrent use.
type Extractor struct {
	rules      Rules
	classifier *Classifier
}

// New returns an extractor using the given ruleset.
func New(r Rules) *Extractor {
	return &Extractor{rules: r, classifier: NewClassifier(r)}
}

// Extract assembles the outline for a document: body-size estimation,
// per-span classification, sequencing and dedup, then title resolution.
// An empty document is not an error; it yields the fallback title and an
// empty outline.
func (e *Extractor) Extract(doc Document) outline.DocumentResult {
	bodySize := BodySize(doc.Spans)

	var candidates []outline.HeadingCandidate
	for _, span := range doc.Spans {
		if strings.TrimSpace(span.Text) == "" {
			continue
		}
		if level, ok := e.classifier.Classify(span, bodySize); ok {
			candidates = append(candidates, outline.HeadingCandidate{Span: span, Level: level})
		}
	}

	entries := Sequence(candidates, e.rules)
	title := ResolveTitle(doc.MetaTitle, entries, doc.Spans)

	totalPages := doc.TotalPages
	for _, s := range doc.Spans {
		if s.Page > totalPages {
			totalPages = s.Page
		}
	}

	return outline.DocumentResult{
		Title:   title,
		Outline: entries,
		Metadata: &outline.Metadata{
			TotalPages:        totalPages,
			LanguagesDetected: DetectLanguages(doc.Spans),
		},
	}
}
