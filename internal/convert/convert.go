// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements PDF-to-text extraction with pluggable backends,
// staging one text file per source document for the corpus pipeline.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andeslang/corpus-engine/pkg/types"
)

// Converter transforms a PDF file into text. Different backends (docling,
// pdftotext) implement this interface.
type Converter interface {
	// Convert reads a PDF at pdfPath and returns the extracted text.
	Convert(pdfPath string) (string, error)
}

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertDocument converts a single PDF and stages the result as
// <stem>.<format> in outputDir. An existing staged file is left alone and
// the document is skipped. A failed conversion stages nothing, so the
// document contributes zero sentences downstream.
func ConvertDocument(c Converter, doc types.Document, cfg types.ConversionConfig, w io.Writer) types.ConversionStatus {
	ext := ".md"
	if cfg.Format == types.FormatPlain {
		ext = ".txt"
	}
	outPath := filepath.Join(cfg.OutputDir, doc.Stem+ext)

	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(w, "skipped:   %s (already staged)\n", doc.Stem)
		return types.ConversionNone
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", doc.Stem, err)
		return types.ConversionFailed
	}

	text, err := c.Convert(doc.PDFPath)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", doc.Stem, err)
		return types.ConversionFailed
	}

	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", doc.Stem, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", doc.Stem, filepath.Base(outPath))
	return types.ConversionDone
}

// ConvertBatch stages a list of documents through the converter, printing
// per-file status to w and returning a summary.
func ConvertBatch(c Converter, docs []types.Document, cfg types.ConversionConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, doc := range docs {
		switch ConvertDocument(c, doc, cfg, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// ConvertPaths builds Document records from raw PDF paths and delegates to
// ConvertBatch. The stem is derived from each filename.
func ConvertPaths(c Converter, pdfPaths []string, cfg types.ConversionConfig, w io.Writer) BatchResult {
	docs := make([]types.Document, len(pdfPaths))
	for i, p := range pdfPaths {
		docs[i] = types.Document{
			Stem:    strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)),
			PDFPath: p,
		}
	}
	return ConvertBatch(c, docs, cfg, w)
}

// FindPDFs lists the PDF files directly inside dir, sorted by name so the
// batch order is deterministic.
func FindPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
