// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Filters is the configuration data driving the language classifier: residual
// noise patterns, the contaminant-language administrative vocabulary, and the
// set of language codes to reject. The lists are data, not code, so they can
// be swapped for another contaminant language without touching the pipeline.
type Filters struct {
	// NoisePatterns are RE2 expressions matched (case-insensitively) against
	// a whole cleaned unit. A match marks the unit as residual artifact.
	NoisePatterns []string `yaml:"noise_patterns"`

	// AdministrativeTerms are contaminant-language domain words. A sentence
	// containing any of them (case-insensitive substring) is discarded.
	AdministrativeTerms []string `yaml:"administrative_terms"`

	// ExcludedLanguages are detector codes that mark a sentence as
	// contaminant. Codes outside this set, including "unknown", keep the
	// sentence.
	ExcludedLanguages []string `yaml:"excluded_languages"`
}

// DefaultFilters returns the built-in filter lists, tuned for Spanish
// administrative and academic documents.
func DefaultFilters() Filters {
	return Filters{
		NoisePatterns: []string{
			`^\d+$`,        // bare page or item numbers
			`^[IVX]+\.?$`,  // roman numeral headings
			`^#{1,6}\s*$`,  // empty markdown headers
			`^\s*-+\s*$`,   // dash rules
			`^\s*=+\s*$`,   // equals rules
			`^\s*\*+\s*$`,  // asterisk rules
		},
		AdministrativeTerms: []string{
			"evaluación", "resultados", "estimado", "padre", "madre", "familia",
			"ministerio", "universidad", "departamento", "región", "provincia",
			"nivel", "grado", "año", "fecha", "página", "índice", "capítulo",
			"anexo", "bibliografía", "referencias", "tabla", "gráfico",
			"pregunta", "respuesta", "instrucción", "procedimiento",
		},
		ExcludedLanguages: []string{"es", "en", "fr", "it", "pt", "de"},
	}
}

// LoadFilters reads a YAML filter file. An empty path returns the built-in
// defaults. Lists absent from the file fall back to their defaults, so a
// file may override just the vocabulary.
func LoadFilters(path string) (Filters, error) {
	filters := DefaultFilters()
	if path == "" {
		return filters, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Filters{}, fmt.Errorf("reading filter file %s: %w", path, err)
	}

	var loaded Filters
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Filters{}, fmt.Errorf("parsing filter file %s: %w", path, err)
	}

	if len(loaded.NoisePatterns) > 0 {
		filters.NoisePatterns = loaded.NoisePatterns
	}
	if len(loaded.AdministrativeTerms) > 0 {
		filters.AdministrativeTerms = loaded.AdministrativeTerms
	}
	if len(loaded.ExcludedLanguages) > 0 {
		filters.ExcludedLanguages = loaded.ExcludedLanguages
	}

	return filters, nil
}
