package types

// ConversionBackend identifies the PDF conversion tool.
type ConversionBackend string

const (
	BackendDocling   ConversionBackend = "docling"
	BackendPdftotext ConversionBackend = "pdftotext"
)

// OutputFormat selects the staged text format written by the extraction stage.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "md"
	FormatPlain    OutputFormat = "txt"
)

// ConversionConfig holds settings for the extraction stage.
type ConversionConfig struct {
	// Backend selects the conversion tool: docling or pdftotext.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// DataDir is the directory holding source PDFs.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// OutputDir is the staging directory for converted text files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format is the staged file format: md or txt.
	Format OutputFormat `json:"format" yaml:"format"`
}

// CorpusConfig holds settings for the corpus generation stage.
type CorpusConfig struct {
	// OutputDir is the staging directory containing converted text files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// CorpusDir is the directory for per-document and consolidated corpus files.
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// FiltersPath optionally points at a YAML filter file overriding the
	// built-in noise patterns, administrative vocabulary, and language
	// exclusion set.
	FiltersPath string `json:"filters_path,omitempty" yaml:"filters_path,omitempty"`

	// MinLength is the minimum cleaned-fragment length kept by segmentation
	// (default 3).
	MinLength int `json:"min_length" yaml:"min_length"`
}

// IndexConfig holds settings for the corpus index stage.
type IndexConfig struct {
	// CorpusDir is the directory containing corpus files (index/ is created inside).
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ConsolidateConfig holds settings for the PDF consolidation step.
type ConsolidateConfig struct {
	// Prefix selects which subdirectories are consolidated (default "AGR").
	Prefix string `json:"prefix" yaml:"prefix"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Consolidate ConsolidateConfig `json:"consolidate" yaml:"consolidate"`
	Conversion  ConversionConfig  `json:"conversion" yaml:"conversion"`
	Corpus      CorpusConfig      `json:"corpus" yaml:"corpus"`
	Index       IndexConfig       `json:"index" yaml:"index"`
}
