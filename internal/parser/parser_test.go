package parser

import (
	"fmt"
	"testing"
)

func TestForFile_KnownExtensions(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "*parser.PDFParser"},
		{"notes.md", "*parser.MarkdownParser"},
		{"guide.markdown", "*parser.MarkdownParser"},
		{"page.html", "*parser.HTMLParser"},
		{"page.htm", "*parser.HTMLParser"},
		{"letter.docx", "*parser.DOCXParser"},
		{"REPORT.PDF", "*parser.PDFParser"},
	}
	for _, tc := range cases {
		p, err := ForFile(tc.filename)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.filename, err)
			continue
		}
		got := fmt.Sprintf("%T", p)
		if got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.filename, tc.want, got)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("archive.zip"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("doc.pdf") {
		t.Error("pdf should be supported")
	}
	if IsSupportedExtension("doc.txt") {
		t.Error("txt should not be supported")
	}
}

func TestPDFParserGetsDefaultRules(t *testing.T) {
	p, err := ForFile("x.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pdf, ok := p.(*PDFParser)
	if !ok {
		t.Fatalf("expected *PDFParser, got %T", p)
	}
	if pdf.Rules.MinScore == 0 {
		t.Error("expected default rules to be populated")
	}
}
