package parser

import (
	"bytes"
	"io"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Markdown carries
// explicit heading levels, so no heuristics are involved.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*outline.DocumentResult, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	entries := []outline.OutlineEntry{}
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := headingText(heading, src)
		if title != "" {
			entries = append(entries, outline.OutlineEntry{
				Level: clampLevel(heading.Level),
				Text:  title,
				Page:  1,
			})
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return &outline.DocumentResult{
		Title:   resolveStructuredTitle("", entries, filename),
		Outline: entries,
		Metadata: &outline.Metadata{
			TotalPages:        1,
			LanguagesDetected: languagesOf(string(src)),
		},
	}, nil
}

// headingText collects the inline text of a heading node.
func headingText(heading *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Segment.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte(' ')
				}
				continue
			}
			walk(c)
		}
	}
	walk(heading)
	return string(bytes.TrimSpace(buf.Bytes()))
}
