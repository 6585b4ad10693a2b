package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/outliner/internal/batch"
	"github.com/dgallion1/outliner/internal/config"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()

	inputDir := flag.String("input", cfg.InputDir, "directory of documents to process")
	outputDir := flag.String("output", cfg.OutputDir, "directory for JSON outline artifacts")
	workers := flag.Int("workers", cfg.WorkerCount, "number of concurrent document workers")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("interrupted, finishing in-flight documents...")
		cancel()
	}()

	runner := &batch.Runner{
		Workers:     *workers,
		PDFMaxPages: cfg.PDFMaxPages,
		Log:         log,
	}

	summary, err := runner.Run(ctx, *inputDir, *outputDir)
	if err != nil {
		log.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	if summary.Processed+summary.Failed == 0 {
		log.Warn("no supported documents found", "input", *inputDir)
	}
	log.Info("batch complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)
}
