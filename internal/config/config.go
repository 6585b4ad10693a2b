package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP API
	Port           string
	OutlinerAPIKey string
	MaxUploadBytes int64

	// Batch driver
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount int

	// PDF
	PDFMaxPages int
}

func Load() Config {
	cfg := Config{
		Port:           envOr("PORT", "8091"),
		OutlinerAPIKey: os.Getenv("OUTLINER_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		InputDir:  envOr("INPUT_DIR", "input"),
		OutputDir: envOr("OUTPUT_DIR", "output"),

		WorkerCount: envInt("WORKER_COUNT", 4),

		PDFMaxPages: envInt("PDF_MAX_PAGES", 0),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.PDFMaxPages < 0 {
		cfg.PDFMaxPages = 0
	}

	return cfg
}

// ValidateServer checks the settings the HTTP server cannot run without.
// The batch driver has no required secrets and validates its directories
// itself.
func (c Config) ValidateServer() error {
	if c.OutlinerAPIKey == "" {
		return fmt.Errorf("OUTLINER_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
