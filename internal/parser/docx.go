package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Paragraphs with Heading styles carry
// explicit levels.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*outline.DocumentResult, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	entries := []outline.OutlineEntry{}
	var textParts []string

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if level := paragraphHeadingLevel(para); level > 0 {
			entries = append(entries, outline.OutlineEntry{
				Level: clampLevel(level),
				Text:  text,
				Page:  1,
			})
		}
		textParts = append(textParts, text)
	}

	return &outline.DocumentResult{
		Title:   resolveStructuredTitle("", entries, filename),
		Outline: entries,
		Metadata: &outline.Metadata{
			TotalPages:        1,
			LanguagesDetected: languagesOf(strings.Join(textParts, "\n")),
		},
	}, nil
}

func paragraphHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	switch style {
	case "heading1":
		return 1
	case "heading2":
		return 2
	case "heading3":
		return 3
	case "heading4", "heading5", "heading6":
		return 3
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
