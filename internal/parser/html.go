package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Heading tags carry explicit levels and
// the <title> element serves as the embedded metadata title.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*outline.DocumentResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	entries := []outline.OutlineEntry{}
	var textParts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				if t := textContent(n); t != "" {
					entries = append(entries, outline.OutlineEntry{
						Level: clampLevel(level),
						Text:  t,
						Page:  1,
					})
				}
				return // heading text already extracted
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				if t := textContent(n); t != "" {
					textParts = append(textParts, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	for _, e := range entries {
		textParts = append(textParts, e.Text)
	}

	return &outline.DocumentResult{
		Title:   resolveStructuredTitle(findTitle(doc), entries, filename),
		Outline: entries,
		Metadata: &outline.Metadata{
			TotalPages:        1,
			LanguagesDetected: languagesOf(strings.Join(textParts, "\n")),
		},
	}, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
