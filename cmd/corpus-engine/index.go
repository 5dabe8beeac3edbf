// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andeslang/corpus-engine/internal/corpusdb"
	"github.com/andeslang/corpus-engine/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index [query terms...]",
	Short: "Build and query the SQLite corpus index",
	Long: `Index ingests per-document corpus files into a SQLite database with FTS5
full-text search. Without arguments it (re)builds the index, skipping files
unchanged since the last run. With query terms or --query it searches the
indexed sentences and prints ranked matches with their source document.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("corpus-dir", "corpus", "directory containing corpus files (index/ is created inside)")
	indexCmd.Flags().String("query", "", "full-text search query")
	indexCmd.Flags().Int("limit", 0, "maximum results (0 = default)")
	indexCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	corpusDir, _ := cmd.Flags().GetString("corpus-dir")
	queryText, _ := cmd.Flags().GetString("query")
	limit, _ := cmd.Flags().GetInt("limit")

	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	store, err := corpusdb.NewStore(types.IndexConfig{CorpusDir: corpusDir})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if queryText == "" {
		summary, err := store.Ingest(ctx, os.Stdout)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d corpus file(s) failed indexing", summary.Failed)
		}

		docs, sentences, err := store.Totals(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("index holds %d sentences from %d document(s)\n", sentences, docs)
		return nil
	}

	results, err := store.Search(ctx, queryText, limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []corpusdb.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-60s  %s\n", i+1, clip(r.Text, 60), r.Document)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
