package heuristic

import (
	"reflect"
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

// bodyText pads a document with enough body-size spans to anchor the
// baseline at 12pt.
func bodyText(page int) []outline.TextSpan {
	spans := make([]outline.TextSpan, 6)
	for i := range spans {
		spans[i] = outline.TextSpan{
			Text:       "plain body copy that fills the page with prose",
			Page:       page,
			FontSize:   12,
			FontName:   "Helvetica",
			Y:          300 + float64(i)*14,
			PageHeight: 800,
		}
	}
	return spans
}

func TestExtract_EmptyDocument(t *testing.T) {
	e := New(DefaultRules())
	result := e.Extract(Document{})

	if result.Title != FallbackTitle {
		t.Errorf("expected title %q, got %q", FallbackTitle, result.Title)
	}
	if result.Outline == nil {
		t.Fatal("outline must be an empty slice, not nil")
	}
	if len(result.Outline) != 0 {
		t.Errorf("expected empty outline, got %d entries", len(result.Outline))
	}
}

func TestExtract_NumberedSectionsScenario(t *testing.T) {
	spans := append(bodyText(1),
		outline.TextSpan{Text: "1. Introduction", Page: 1, FontSize: 18, FontName: "Helvetica-Bold", Y: 50, PageHeight: 800},
		outline.TextSpan{Text: "1.1 Background", Page: 1, FontSize: 14, FontName: "Helvetica-Bold", Y: 120, PageHeight: 800},
	)

	result := New(DefaultRules()).Extract(Document{Spans: spans, TotalPages: 1})

	want := []outline.OutlineEntry{
		{Level: outline.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: outline.LevelH2, Text: "1.1 Background", Page: 1},
	}
	if !reflect.DeepEqual(result.Outline, want) {
		t.Errorf("expected outline %v, got %v", want, result.Outline)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	spans := append(bodyText(1), bodyText(2)...)
	spans = append(spans,
		outline.TextSpan{Text: "OVERVIEW", Page: 1, FontSize: 16, FontName: "Times-Bold", Y: 40, PageHeight: 800},
		outline.TextSpan{Text: "2. Detailed Findings", Page: 2, FontSize: 15, FontName: "Times-Bold", Y: 40, PageHeight: 800},
		outline.TextSpan{Text: "Приложение А", Page: 2, FontSize: 16, FontName: "Times-Bold", Y: 60, PageHeight: 800},
	)
	doc := Document{Spans: spans, MetaTitle: "", TotalPages: 2}

	e := New(DefaultRules())
	first := e.Extract(doc)
	for range 10 {
		if next := e.Extract(doc); !reflect.DeepEqual(first, next) {
			t.Fatalf("extraction is not deterministic: %v vs %v", first, next)
		}
	}
}

func TestExtract_FragmentsNeverAppear(t *testing.T) {
	spans := append(bodyText(1),
		outline.TextSpan{Text: "and", Page: 1, FontSize: 30, FontName: "Helvetica-Bold", Y: 40, PageHeight: 800},
		outline.TextSpan{Text: "the", Page: 1, FontSize: 30, FontName: "Helvetica-Bold", Y: 60, PageHeight: 800},
	)
	result := New(DefaultRules()).Extract(Document{Spans: spans, TotalPages: 1})

	for _, e := range result.Outline {
		if e.Text == "and" || e.Text == "the" {
			t.Errorf("fragment %q leaked into the outline", e.Text)
		}
	}
}

func TestExtract_OrderingInvariant(t *testing.T) {
	spans := append(bodyText(1), bodyText(2)...)
	spans = append(spans,
		outline.TextSpan{Text: "3. Appendix Material", Page: 2, FontSize: 18, FontName: "Helvetica-Bold", Y: 500, PageHeight: 800},
		outline.TextSpan{Text: "2. Results Summary", Page: 2, FontSize: 18, FontName: "Helvetica-Bold", Y: 60, PageHeight: 800},
		outline.TextSpan{Text: "1. Introduction", Page: 1, FontSize: 18, FontName: "Helvetica-Bold", Y: 60, PageHeight: 800},
	)
	result := New(DefaultRules()).Extract(Document{Spans: spans, TotalPages: 2})

	if len(result.Outline) < 2 {
		t.Fatalf("expected several entries, got %d", len(result.Outline))
	}
	for i := 1; i < len(result.Outline); i++ {
		if result.Outline[i].Page < result.Outline[i-1].Page {
			t.Errorf("entries out of page order at %d: %v", i, result.Outline)
		}
	}
	if result.Outline[0].Text != "1. Introduction" {
		t.Errorf("expected page 1 heading first, got %q", result.Outline[0].Text)
	}
}

func TestExtract_TotalPagesRecoveredFromSpans(t *testing.T) {
	spans := bodyText(5)
	result := New(DefaultRules()).Extract(Document{Spans: spans})

	if result.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if result.Metadata.TotalPages != 5 {
		t.Errorf("expected total_pages 5, got %d", result.Metadata.TotalPages)
	}
}

func TestExtract_LanguageDetection(t *testing.T) {
	spans := []outline.TextSpan{
		{Text: "Latin text here", Page: 1, FontSize: 12},
		{Text: "Русский текст", Page: 1, FontSize: 12},
	}
	result := New(DefaultRules()).Extract(Document{Spans: spans, TotalPages: 1})

	want := []string{"latin", "cyrillic"}
	if !reflect.DeepEqual(result.Metadata.LanguagesDetected, want) {
		t.Errorf("expected languages %v, got %v", want, result.Metadata.LanguagesDetected)
	}
}
