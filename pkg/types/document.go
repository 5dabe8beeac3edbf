// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the state of PDF-to-Markdown conversion for a document.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Document identifies one source document flowing through the pipeline.
// The stem (source filename without extension) is the stable identity used
// to name every derived artifact.
type Document struct {
	// Stem is the source filename without its extension (e.g. "AGR001-A").
	Stem string `json:"stem" yaml:"stem"`

	// PDFPath is the local filesystem path to the source PDF, when the
	// document entered through the extraction stage.
	PDFPath string `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`

	// StagedPath is the path of the staged text file produced by extraction.
	StagedPath string `json:"staged_path,omitempty" yaml:"staged_path,omitempty"`
}

// DocumentCount records how many accepted sentences one document contributed.
// Kept as a slice element rather than a map entry so report artifacts
// preserve processing order.
type DocumentCount struct {
	// Name is the staged filename the sentences came from.
	Name string `json:"name" yaml:"name"`

	// Sentences is the number of accepted sentences written for the document.
	Sentences int `json:"sentences" yaml:"sentences"`
}

// RunStats summarizes one corpus generation run. Derived, read-only once
// computed; reporting never feeds back into corpus contents.
type RunStats struct {
	// Documents is the number of staged files processed.
	Documents int `json:"documents" yaml:"documents"`

	// PerDocument lists accepted-sentence counts in processing order.
	PerDocument []DocumentCount `json:"per_document" yaml:"per_document"`

	// Raw is the total number of accepted sentences before deduplication.
	Raw int `json:"raw_sentences" yaml:"raw_sentences"`

	// Unique is the number of sentences in the consolidated corpus.
	Unique int `json:"unique_sentences" yaml:"unique_sentences"`

	// Duplicates is Raw - Unique: cross-document repeats dropped by the merge.
	Duplicates int `json:"duplicates_removed" yaml:"duplicates_removed"`
}
