// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/andeslang/corpus-engine/internal/langid"
	"github.com/andeslang/corpus-engine/pkg/types"
)

const (
	// sentenceSuffix names per-document corpus files: <stem>_awajun.txt.
	sentenceSuffix = "_awajun.txt"

	// consolidatedFile is the deduplicated union of every document's sentences.
	consolidatedFile = "awajun_corpus_completo.txt"

	// reportFile is the run-statistics artifact written next to the corpus.
	reportFile = "corpus_report.yaml"
)

// Generator runs the corpus pipeline over staged text files: normalize,
// segment, clean, classify per document, then merge, deduplicate, and report
// across documents.
type Generator struct {
	segmenter  *Segmenter
	classifier *Classifier
}

// NewGenerator loads the filter configuration and builds a pipeline with the
// given language identifier.
func NewGenerator(cfg types.CorpusConfig, identifier langid.Identifier) (*Generator, error) {
	filters, err := LoadFilters(cfg.FiltersPath)
	if err != nil {
		return nil, err
	}

	classifier, err := NewClassifier(filters, identifier)
	if err != nil {
		return nil, err
	}

	return &Generator{
		segmenter:  NewSegmenter(cfg.MinLength),
		classifier: classifier,
	}, nil
}

// ExtractSentences runs one document's content through the pipeline and
// returns its accepted sentences in document order. Pure: no filesystem
// access, no state carried between calls.
func (g *Generator) ExtractSentences(content string) []string {
	normalized := Normalize(content)

	var sentences []string
	for _, unit := range g.segmenter.Segment(normalized) {
		if !g.classifier.IsContaminant(unit) {
			sentences = append(sentences, unit)
		}
	}
	return sentences
}

// Run processes every staged text file in outputDir in lexicographic order,
// writes per-document corpus files and the consolidated deduplicated corpus
// to corpusDir, and returns the run statistics. Per-document failures are
// logged to w and skipped; the run continues. When outputDir holds no staged
// files the run ends with a warning and writes nothing.
func (g *Generator) Run(outputDir, corpusDir string, w io.Writer) (types.RunStats, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return types.RunStats{}, fmt.Errorf("reading staging directory %s: %w", outputDir, err)
	}

	var staged []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") || strings.HasSuffix(entry.Name(), ".txt") {
			staged = append(staged, entry.Name())
		}
	}

	if len(staged) == 0 {
		fmt.Fprintf(w, "warning: no staged text files found in %s\n", outputDir)
		return types.RunStats{}, nil
	}

	if err := os.MkdirAll(corpusDir, 0o755); err != nil {
		return types.RunStats{}, fmt.Errorf("creating corpus directory: %w", err)
	}

	stats := types.RunStats{}
	var all []string

	// os.ReadDir returns entries sorted by name, which fixes the document
	// order and makes first-occurrence deduplication reproducible.
	for _, name := range staged {
		fmt.Fprintf(w, "processing %s\n", name)

		data, err := os.ReadFile(filepath.Join(outputDir, name))
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			stats.PerDocument = append(stats.PerDocument, types.DocumentCount{Name: name})
			continue
		}

		sentences := g.ExtractSentences(string(data))
		stats.Documents++
		stats.PerDocument = append(stats.PerDocument, types.DocumentCount{
			Name:      name,
			Sentences: len(sentences),
		})

		if len(sentences) == 0 {
			fmt.Fprintf(w, "  no target-language sentences found\n")
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		outPath := filepath.Join(corpusDir, stem+sentenceSuffix)
		if err := writeSentences(outPath, sentences); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "  %d sentences -> %s\n", len(sentences), stem+sentenceSuffix)
		all = append(all, sentences...)
	}

	unique := dedupe(all)

	consolidatedPath := filepath.Join(corpusDir, consolidatedFile)
	if err := writeSentences(consolidatedPath, unique); err != nil {
		return stats, fmt.Errorf("writing consolidated corpus: %w", err)
	}

	stats.Raw = len(all)
	stats.Unique = len(unique)
	stats.Duplicates = stats.Raw - stats.Unique

	if err := writeReport(filepath.Join(corpusDir, reportFile), stats); err != nil {
		fmt.Fprintf(w, "warning: report write failed: %v\n", err)
	}

	printStats(w, stats, consolidatedPath)
	return stats, nil
}

// dedupe removes exact duplicates while preserving first-occurrence order.
func dedupe(sentences []string) []string {
	seen := make(map[string]bool, len(sentences))
	unique := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if seen[s] {
			continue
		}
		seen[s] = true
		unique = append(unique, s)
	}
	return unique
}

// writeSentences writes one sentence per line, UTF-8, newline-terminated.
func writeSentences(path string, sentences []string) error {
	var b strings.Builder
	for _, s := range sentences {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeReport(path string, stats types.RunStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshaling run statistics: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func printStats(w io.Writer, stats types.RunStats, consolidatedPath string) {
	fmt.Fprintf(w, "\nRun statistics\n")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(w, "Documents processed: %d\n", stats.Documents)
	fmt.Fprintf(w, "Sentences per document:\n")
	for _, dc := range stats.PerDocument {
		fmt.Fprintf(w, "  %s: %d\n", dc.Name, dc.Sentences)
	}
	fmt.Fprintf(w, "Sentences extracted: %d\n", stats.Raw)
	fmt.Fprintf(w, "Unique sentences:    %d\n", stats.Unique)
	fmt.Fprintf(w, "Duplicates removed:  %d\n", stats.Duplicates)
	fmt.Fprintf(w, "Consolidated corpus: %s\n", consolidatedPath)
}
