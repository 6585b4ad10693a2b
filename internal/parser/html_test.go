package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestHTMLParser_HeadingsAndTitle(t *testing.T) {
	input := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body>
  <h1>Main Heading</h1>
  <p>Some intro.</p>
  <h2>Subsection</h2>
  <p>Body text.</p>
  <h5>Fine Print</h5>
</body>
</html>`

	p := &HTMLParser{}
	result, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The <title> element is the embedded metadata title and wins.
	if result.Title != "Page Title" {
		t.Errorf("expected title %q, got %q", "Page Title", result.Title)
	}

	want := []outline.OutlineEntry{
		{Level: outline.LevelH1, Text: "Main Heading", Page: 1},
		{Level: outline.LevelH2, Text: "Subsection", Page: 1},
		{Level: outline.LevelH3, Text: "Fine Print", Page: 1}, // h5 clamps to H3
	}
	if len(result.Outline) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(result.Outline), result.Outline)
	}
	for i, w := range want {
		if result.Outline[i] != w {
			t.Errorf("entry[%d]: expected %v, got %v", i, w, result.Outline[i])
		}
	}
}

func TestHTMLParser_SkipsNavAndScript(t *testing.T) {
	input := `<html><body>
  <nav><h1>Navigation Heading</h1></nav>
  <script>var x = "<h1>fake</h1>";</script>
  <h2>Real Heading</h2>
</body></html>`

	p := &HTMLParser{}
	result, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Outline) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(result.Outline), result.Outline)
	}
	if result.Outline[0].Text != "Real Heading" {
		t.Errorf("expected %q, got %q", "Real Heading", result.Outline[0].Text)
	}
}

func TestHTMLParser_NoTitleFallsBackToH1(t *testing.T) {
	input := `<html><body><h1>Only Heading</h1></body></html>`
	p := &HTMLParser{}
	result, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Title != "Only Heading" {
		t.Errorf("expected title %q, got %q", "Only Heading", result.Title)
	}
}

func TestHTMLParser_HeadingWhitespaceCollapsed(t *testing.T) {
	input := "<html><body><h1>Spaced\n   Out   Heading</h1></body></html>"
	p := &HTMLParser{}
	result, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outline[0].Text != "Spaced Out Heading" {
		t.Errorf("expected collapsed whitespace, got %q", result.Outline[0].Text)
	}
}
