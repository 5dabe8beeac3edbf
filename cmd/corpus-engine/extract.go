// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andeslang/corpus-engine/internal/container"
	"github.com/andeslang/corpus-engine/internal/convert"
	"github.com/andeslang/corpus-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdfs...]",
	Short: "Convert PDF files to staged text for the corpus pipeline",
	Long: `Extract converts source PDFs to structured text and stages one file per
document in the output directory. The docling backend preserves tables and
headings as Markdown; pdftotext is a plain-text fallback. Already-staged
documents are skipped; a failed conversion stages nothing for that document
and the batch continues.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("backend", "docling", "conversion backend: docling or pdftotext")
	extractCmd.Flags().String("data-dir", "data", "directory holding source PDFs")
	extractCmd.Flags().String("output-dir", "output", "staging directory for converted text")
	extractCmd.Flags().String("format", "md", "staged file format: md or txt")
	extractCmd.Flags().Bool("batch", false, "process every PDF in data-dir")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	format, _ := cmd.Flags().GetString("format")
	batch, _ := cmd.Flags().GetBool("batch")

	cfg := types.ConversionConfig{
		Backend:   types.ConversionBackend(backend),
		DataDir:   dataDir,
		OutputDir: outputDir,
		Format:    types.OutputFormat(format),
	}
	if cfg.Format != types.FormatMarkdown && cfg.Format != types.FormatPlain {
		return fmt.Errorf("unsupported format %q: use md or txt", format)
	}

	converter, err := newConverter(cfg.Backend)
	if err != nil {
		return err
	}

	paths := args
	if batch || len(paths) == 0 {
		paths, err = convert.FindPDFs(cfg.DataDir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintf(os.Stderr, "warning: no PDF files found in %s\n", cfg.DataDir)
			return nil
		}
	}

	result := convert.ConvertPaths(converter, paths, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

func newConverter(backend types.ConversionBackend) (convert.Converter, error) {
	switch backend {
	case types.BackendDocling:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return convert.NewDoclingConverter(rt)
	case types.BackendPdftotext:
		return convert.NewPdftotextConverter()
	default:
		return nil, fmt.Errorf("unsupported backend %q: use docling or pdftotext", backend)
	}
}
