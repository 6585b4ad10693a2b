package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// maxConcurrentExtract bounds per-request extraction fan-out on the batch
// endpoint.
const maxConcurrentExtract = 4

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	// Limit total request size; extra 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	result, err := s.extract(data, filename)
	if err != nil {
		s.log.Error("extraction failed", "file", filename, "error", err)
		jsonError(w, "extraction failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBatchOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	results := make([]batchItem, len(files))

	// Documents are independent; extract them with bounded concurrency.
	sem := make(chan struct{}, maxConcurrentExtract)
	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.batchOne(fh)
		}(i, fh)
	}
	wg.Wait()

	writeJSON(w, http.StatusOK, map[string]any{"documents": results})
}

// batchItem is one per-file entry in the batch response.
type batchItem struct {
	Filename string                  `json:"filename"`
	Result   *outline.DocumentResult `json:"result,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

func (s *Server) batchOne(fh *multipart.FileHeader) (item batchItem) {
	item.Filename = sanitizeFilename(fh.Filename)

	if !parser.IsSupportedExtension(item.Filename) {
		item.Error = fmt.Sprintf("unsupported file type: %s", filepath.Ext(item.Filename))
		return item
	}

	f, err := fh.Open()
	if err != nil {
		item.Error = "failed to open file"
		return item
	}
	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	f.Close()
	if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
		item.Error = "file too large or read error"
		return item
	}

	result, err := s.extract(data, item.Filename)
	if err != nil {
		s.log.Error("extraction failed", "file", item.Filename, "error", err)
		item.Error = err.Error()
		return item
	}
	item.Result = result
	return item
}

func (s *Server) extract(data []byte, filename string) (*outline.DocumentResult, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.MaxPages = s.cfg.PDFMaxPages
	}
	return p.Parse(bytes.NewReader(data), filename)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
