// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/andeslang/corpus-engine/internal/langid"
)

// minDetectionLength is the shortest sentence the statistical identifier is
// trusted with. Below it the identification step is inconclusive and the
// sentence falls through to the keep default.
const minDetectionLength = 10

// Classifier decides, per cleaned sentence, whether it is contaminant text
// to discard. The decision chain biases toward keeping: the target language
// is resource-scarce, and a sentence dropped by mistake is gone for good,
// while kept noise can still be cleaned downstream.
type Classifier struct {
	noise      []*regexp.Regexp
	terms      []string
	excluded   map[string]bool
	identifier langid.Identifier
}

// NewClassifier compiles the filter lists and wires in the language
// identifier. An invalid noise pattern fails construction so a bad filter
// file aborts the run before any document is touched.
func NewClassifier(filters Filters, identifier langid.Identifier) (*Classifier, error) {
	c := &Classifier{
		excluded:   make(map[string]bool, len(filters.ExcludedLanguages)),
		identifier: identifier,
	}

	for _, pattern := range filters.NoisePatterns {
		re, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling noise pattern %q: %w", pattern, err)
		}
		c.noise = append(c.noise, re)
	}

	for _, term := range filters.AdministrativeTerms {
		c.terms = append(c.terms, strings.ToLower(term))
	}

	for _, code := range filters.ExcludedLanguages {
		c.excluded[strings.ToLower(code)] = true
	}

	return c, nil
}

// IsContaminant reports whether sentence should be discarded. The chain
// short-circuits at the first positive signal: residual noise, then
// administrative vocabulary, then statistical identification. Anything the
// identifier cannot place is kept as presumed target language.
func (c *Classifier) IsContaminant(sentence string) bool {
	if c.isNoise(sentence) {
		return true
	}
	if c.isAdministrative(sentence) {
		return true
	}
	return c.excluded[c.detect(sentence)]
}

func (c *Classifier) isNoise(sentence string) bool {
	trimmed := strings.TrimSpace(sentence)
	for _, re := range c.noise {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

func (c *Classifier) isAdministrative(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, term := range c.terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// detect returns the identifier's language code, or langid.Unknown when the
// sentence is too short for a reliable guess or the detector fails.
func (c *Classifier) detect(sentence string) string {
	if utf8.RuneCountInString(strings.TrimSpace(sentence)) < minDetectionLength {
		return langid.Unknown
	}

	code, err := c.identifier.Identify(sentence)
	if err != nil {
		return langid.Unknown
	}
	return code
}
