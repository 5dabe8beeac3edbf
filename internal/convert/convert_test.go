// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andeslang/corpus-engine/pkg/types"
)

// fakeConverter implements Converter for testing. It returns canned text or
// an error, depending on configuration.
type fakeConverter struct {
	output string
	err    error
}

func (f *fakeConverter) Convert(pdfPath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// setupPDF creates a temporary PDF file and returns its path and a conversion
// config pointing at fresh directories.
func setupPDF(t *testing.T) (string, types.ConversionConfig) {
	t.Helper()
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	pdfPath := filepath.Join(dataDir, "AGR001.pdf")
	if err := os.WriteFile(pdfPath, []byte("fake pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := types.ConversionConfig{
		DataDir:   dataDir,
		OutputDir: filepath.Join(tmpDir, "output"),
		Format:    types.FormatMarkdown,
	}
	return pdfPath, cfg
}

func TestConvertDocument(t *testing.T) {
	tests := []struct {
		name       string
		converter  *fakeConverter
		preStage   bool // create staged output before running
		wantStatus types.ConversionStatus
		wantLog    string
	}{
		{
			name:       "successful conversion",
			converter:  &fakeConverter{output: "## Yaunchuk\n\nAtsa wi tikitcha."},
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "skip already staged",
			converter:  &fakeConverter{output: "should not be called"},
			preStage:   true,
			wantStatus: types.ConversionNone,
			wantLog:    "skipped:",
		},
		{
			name:       "conversion failure",
			converter:  &fakeConverter{err: errors.New("container crashed")},
			wantStatus: types.ConversionFailed,
			wantLog:    "failed:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, cfg := setupPDF(t)

			if tt.preStage {
				if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(cfg.OutputDir, "AGR001.md"), []byte("existing"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			doc := types.Document{Stem: "AGR001", PDFPath: pdfPath}
			var log bytes.Buffer

			status := ConvertDocument(tt.converter, doc, cfg, &log)

			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
		})
	}
}

func TestConvertDocument_PlainFormat(t *testing.T) {
	pdfPath, cfg := setupPDF(t)
	cfg.Format = types.FormatPlain

	doc := types.Document{Stem: "AGR001", PDFPath: pdfPath}
	var log bytes.Buffer
	status := ConvertDocument(&fakeConverter{output: "texto plano"}, doc, cfg, &log)
	if status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q", status)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "AGR001.txt")); err != nil {
		t.Errorf("expected staged .txt file: %v", err)
	}
}

// selectiveConverter returns different results per file path.
type selectiveConverter struct {
	outputs map[string]string
	errors  map[string]error
}

func (s *selectiveConverter) Convert(pdfPath string) (string, error) {
	if err, ok := s.errors[pdfPath]; ok {
		return "", err
	}
	if out, ok := s.outputs[pdfPath]; ok {
		return out, nil
	}
	return "", errors.New("unexpected path: " + pdfPath)
}

func TestConvertPaths(t *testing.T) {
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	// Three PDFs: one succeeds, one is already staged, one fails.
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte("pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := types.ConversionConfig{
		DataDir:   dataDir,
		OutputDir: filepath.Join(tmpDir, "output"),
		Format:    types.FormatMarkdown,
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "b.md"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	conv := &selectiveConverter{
		outputs: map[string]string{
			filepath.Join(dataDir, "a.pdf"): "# Documento A",
			filepath.Join(dataDir, "b.pdf"): "# Documento B",
		},
		errors: map[string]error{
			filepath.Join(dataDir, "c.pdf"): errors.New("bad pdf"),
		},
	}

	paths := []string{
		filepath.Join(dataDir, "a.pdf"),
		filepath.Join(dataDir, "b.pdf"),
		filepath.Join(dataDir, "c.pdf"),
	}

	var log bytes.Buffer
	result := ConvertPaths(conv, paths, cfg, &log)

	if result.Converted != 1 || result.Skipped != 1 || result.Failed != 1 {
		t.Errorf("result = %+v, want 1/1/1", result)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 3 {
		t.Errorf("total = %d, want 3", result.Total())
	}
	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
}

func TestFindPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.PDF", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := FindPDFs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths %v, want 2", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "a.PDF" || filepath.Base(paths[1]) != "b.pdf" {
		t.Errorf("paths not sorted as expected: %v", paths)
	}
}
