package parser

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/dgallion1/outliner/internal/heuristic"
	"github.com/dgallion1/outliner/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It collects positioned text spans from the
// layout engine and runs the heading heuristics over them.
type PDFParser struct {
	Rules    heuristic.Rules
	MaxPages int // 0 means no limit
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*outline.DocumentResult, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	totalPages := reader.NumPage()
	lastPage := totalPages
	if p.MaxPages > 0 && lastPage > p.MaxPages {
		lastPage = p.MaxPages
	}

	var spans []outline.TextSpan
	for i := 1; i <= lastPage; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageSpans, err := collectPageSpans(page, i)
		if err != nil {
			slog.Warn("skipping malformed page", "file", filename, "page", i, "error", err)
			continue
		}
		spans = append(spans, pageSpans...)
	}

	rules := p.Rules
	if rules.MinScore == 0 {
		rules = heuristic.DefaultRules()
	}

	result := heuristic.New(rules).Extract(heuristic.Document{
		Spans:      spans,
		MetaTitle:  metadataTitle(reader),
		TotalPages: totalPages,
	})
	return &result, nil
}

// collectPageSpans turns one page's text runs into TextSpans. Runs sharing
// a baseline are joined into one span because fragmented producers emit a
// separate run per glyph cluster; the first run of a line carries the
// line's font and size. The layout engine panics on malformed content
// streams, which is recovered here so a bad page only loses that page.
func collectPageSpans(page pdflib.Page, pageNum int) (spans []outline.TextSpan, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			spans = nil
			err = fmt.Errorf("malformed page content: %v", rec)
		}
	}()

	height := pageHeight(page)
	content := page.Content()

	const baselineTolerance = 0.5
	var line []pdflib.Text

	flush := func() {
		if len(line) == 0 {
			return
		}
		var b strings.Builder
		for i, t := range line {
			if i > 0 {
				// Word breaks encoded as positioning rather than
				// space glyphs.
				prev := line[i-1]
				if gap := t.X - (prev.X + prev.W); prev.FontSize > 0 && gap > 0.25*prev.FontSize {
					b.WriteByte(' ')
				}
			}
			b.WriteString(t.S)
		}
		text := strings.TrimSpace(b.String())
		if text != "" {
			first := line[0]
			spans = append(spans, outline.TextSpan{
				Text:       text,
				Page:       pageNum,
				FontSize:   first.FontSize,
				FontName:   first.Font,
				Y:          height - first.Y, // PDF origin is bottom-left
				PageHeight: height,
			})
		}
		line = line[:0]
	}

	for _, t := range content.Text {
		if len(line) > 0 && math.Abs(t.Y-line[len(line)-1].Y) > baselineTolerance {
			flush()
		}
		line = append(line, t)
	}
	flush()

	return spans, nil
}

// pageHeight reads the MediaBox height, walking up the page tree for
// inherited values. Defaults to US Letter when absent.
func pageHeight(page pdflib.Page) float64 {
	mediaBox := page.V.Key("MediaBox")
	parent := page.V.Key("Parent")
	for depth := 0; mediaBox.IsNull() && !parent.IsNull() && depth < 16; depth++ {
		mediaBox = parent.Key("MediaBox")
		parent = parent.Key("Parent")
	}
	if mediaBox.IsNull() || mediaBox.Len() < 4 {
		return 792
	}
	return mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
}

// metadataTitle returns the trimmed document Info title, or "".
func metadataTitle(reader *pdflib.Reader) string {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	title := info.Key("Title")
	if title.Kind() != pdflib.String {
		return ""
	}
	return strings.TrimSpace(title.Text())
}
