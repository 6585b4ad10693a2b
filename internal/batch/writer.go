package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// OutputPath maps an input filename to its JSON artifact in outDir: same
// base name, .json extension.
func OutputPath(outDir, inputName string) string {
	base := filepath.Base(inputName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+".json")
}

// WriteResult serializes one DocumentResult to path: UTF-8, indented,
// with non-ASCII characters kept literal rather than escaped.
func WriteResult(path string, result *outline.DocumentResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		f.Close()
		return fmt.Errorf("encode result: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
