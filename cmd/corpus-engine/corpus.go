// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/andeslang/corpus-engine/internal/corpus"
	"github.com/andeslang/corpus-engine/internal/langid"
	"github.com/andeslang/corpus-engine/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Generate the monolingual sentence corpus from staged text",
	Long: `Corpus runs the core pipeline over every staged text file: markup
normalization, sentence segmentation (with table and list handling),
fragment cleaning, and per-sentence language classification. It writes one
<stem>_awajun.txt file per document, the deduplicated consolidated corpus,
and a YAML run report.

Classification keeps a sentence whenever the language is uncertain: the
target language is resource-scarce and over-filtering destroys data that
cannot be recovered.`,
	RunE: runCorpus,
}

func init() {
	corpusCmd.Flags().String("output-dir", "output", "staging directory with converted text files")
	corpusCmd.Flags().String("corpus-dir", "corpus", "directory for corpus output files")
	corpusCmd.Flags().String("filters", "", "YAML filter file overriding the built-in noise patterns and vocabulary")
	corpusCmd.Flags().Int("min-length", 0, "minimum cleaned-fragment length in characters (default 3)")

	rootCmd.AddCommand(corpusCmd)
}

func runCorpus(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	corpusDir, _ := cmd.Flags().GetString("corpus-dir")
	filtersPath, _ := cmd.Flags().GetString("filters")
	minLength, _ := cmd.Flags().GetInt("min-length")

	cfg := types.CorpusConfig{
		OutputDir:   outputDir,
		CorpusDir:   corpusDir,
		FiltersPath: filtersPath,
		MinLength:   minLength,
	}

	generator, err := corpus.NewGenerator(cfg, langid.NewWhatlang())
	if err != nil {
		return err
	}

	_, err = generator.Run(cfg.OutputDir, cfg.CorpusDir, os.Stdout)
	return err
}
