package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dgallion1/outliner/internal/heuristic"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// Runner walks an input directory and writes one JSON outline per
// supported document. Files are processed by a pool of workers; documents
// are independent, so the pool imposes no ordering. A file that fails
// still produces a degraded artifact and never stops the batch.
type Runner struct {
	Workers     int
	PDFMaxPages int // 0 means no limit
	Log         *slog.Logger
}

// Summary reports what a batch run did.
type Summary struct {
	Processed int
	Failed    int
	Skipped   int
}

// Run processes every supported file in inputDir and writes artifacts to
// outputDir. It returns an error only when the directories themselves are
// unusable.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	var files []string
	skipped := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if parser.IsSupportedExtension(e.Name()) {
			files = append(files, e.Name())
		} else {
			skipped++
		}
	}
	sort.Strings(files)

	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	queue := make(chan string)
	var mu sync.Mutex
	summary := Summary{Skipped: skipped}

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range queue {
				ok := r.processFile(log, inputDir, outputDir, name)
				mu.Lock()
				if ok {
					summary.Processed++
				} else {
					summary.Failed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, name := range files {
		select {
		case <-ctx.Done():
			close(queue)
			wg.Wait()
			return summary, ctx.Err()
		case queue <- name:
		}
	}
	close(queue)
	wg.Wait()

	return summary, nil
}

// processFile extracts one document and writes its artifact. On failure a
// degraded result is written so every input has a corresponding output.
func (r *Runner) processFile(log *slog.Logger, inputDir, outputDir, name string) bool {
	log = log.With("file", name)
	outPath := OutputPath(outputDir, name)

	result, err := r.extractFile(filepath.Join(inputDir, name))
	if err != nil {
		log.Error("extraction failed", "error", err)
		degraded := &outline.DocumentResult{
			Title:   heuristic.ErrorTitle,
			Outline: []outline.OutlineEntry{},
		}
		if werr := WriteResult(outPath, degraded); werr != nil {
			log.Error("degraded artifact write failed", "error", werr)
		}
		return false
	}

	if err := WriteResult(outPath, result); err != nil {
		log.Error("artifact write failed", "error", err)
		return false
	}

	log.Info("generated outline", "output", outPath,
		"headings", len(result.Outline), "title", result.Title)
	return true
}

func (r *Runner) extractFile(path string) (*outline.DocumentResult, error) {
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.MaxPages = r.PDFMaxPages
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return p.Parse(f, filepath.Base(path))
}
