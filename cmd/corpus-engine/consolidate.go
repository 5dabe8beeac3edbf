// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andeslang/corpus-engine/internal/convert"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate <data-dir>",
	Short: "Flatten per-collection PDF subdirectories into one directory",
	Long: `Consolidate copies PDFs scattered across per-collection subdirectories
(e.g. AGR001/, AGR002/, ...) into <data-dir>/consolidado/, renaming each to
its collection name with a letter suffix when a collection holds more than
one PDF. The flattened directory is the input for extract.`,
	Args: cobra.ExactArgs(1),
	RunE: runConsolidate,
}

func init() {
	consolidateCmd.Flags().String("prefix", "AGR", "subdirectory name prefix to consolidate")

	rootCmd.AddCommand(consolidateCmd)
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("prefix")

	copied, err := convert.Consolidate(args[0], prefix, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("%d PDF(s) consolidated\n", copied)
	return nil
}
