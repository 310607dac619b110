package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nicoyogi/netlify-invoice-parser/constants"
	"github.com/nicoyogi/netlify-invoice-parser/internal/export"
	"github.com/nicoyogi/netlify-invoice-parser/internal/extract"
	"github.com/nicoyogi/netlify-invoice-parser/internal/pdftext"
	"github.com/nicoyogi/netlify-invoice-parser/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory of invoice PDFs to process (required)")
		out         = flag.String("out", "", "output XLSX path (defaults to <dir>/../invoices.xlsx)")
		catalogPath = flag.String("catalog", "", "JSON extraction catalog (defaults to built-in)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	catalog := extract.DefaultCatalog()
	if *catalogPath != "" {
		var err error
		catalog, err = extract.LoadCatalog(*catalogPath)
		if err != nil {
			printError("Error: loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	p := pipeline.New(pdftext.NewExtractor(), catalog, logger)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		printError("Error: reading --dir: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var rows []extract.Row
	processed, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("batch.read.failed", "path", path, "error", err)
			failed++
			continue
		}
		fileRows, err := p.Process(ctx, entry.Name(), content)
		if err != nil {
			// One bad invoice must not sink the batch.
			logger.Warn("batch.file.failed", "path", path, "error", err)
			failed++
			continue
		}
		rows = append(rows, fileRows...)
		processed++
	}

	if len(rows) == 0 {
		printError("Error: no cost data extracted from %d file(s)\n", processed+failed)
		os.Exit(1)
	}

	exporter := export.NewService(logger)
	artifact, err := exporter.WriteXLSX(rows, constants.ColumnOrder)
	if err != nil {
		printError("Error: building workbook: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, artifact, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	logger.Info("batch.ok", "out", *out, "rows", len(rows), "processed", processed, "failed", failed)
}
