package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/heuristic"
	"github.com/dgallion1/outliner/internal/outline"
)

// Parser extracts a document outline from raw document bytes.
type Parser interface {
	Parse(r io.Reader, filename string) (*outline.DocumentResult, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename. PDF is the only
// format that needs the layout heuristics; the other formats carry
// explicit heading structure.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{Rules: heuristic.DefaultRules()}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// baseTitle strips the directory and extension from a filename for use as
// a title fallback.
func baseTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveStructuredTitle picks the title for formats with explicit
// structure: embedded title first, then the first H1, then the file's
// base name.
func resolveStructuredTitle(metaTitle string, entries []outline.OutlineEntry, filename string) string {
	title := heuristic.ResolveTitle(metaTitle, entries, nil)
	if title == heuristic.FallbackTitle {
		if base := strings.TrimSpace(baseTitle(filename)); base != "" {
			return base
		}
	}
	return title
}

// clampLevel maps a 1..6 heading depth onto the three-tier output levels.
func clampLevel(level int) outline.Level {
	switch level {
	case 1:
		return outline.LevelH1
	case 2:
		return outline.LevelH2
	default:
		return outline.LevelH3
	}
}

// languagesOf runs the coarse script detection over arbitrary text.
func languagesOf(text string) []string {
	return heuristic.DetectLanguages([]outline.TextSpan{{Text: text}})
}
