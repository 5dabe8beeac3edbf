// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	cellSeparator   = "|"
	bulletSeparator = "•"

	// defaultMinLength is the minimum cleaned-fragment length (in runes)
	// kept by segmentation.
	defaultMinLength = 3
)

var (
	reTableDivider = regexp.MustCompile(`^[\s|\-]+$`)
	reDashCell     = regexp.MustCompile(`^[\-\s]+$`)
	reDigitCell    = regexp.MustCompile(`^\d+$`)
	reTerminalEnd  = regexp.MustCompile(`[.!?;:]$`)
	reClauseSplit  = regexp.MustCompile(`[.!?]+`)
)

// lineKind tags the three layout variants a normalized line can take. Each
// variant has its own handler so the precedence rules stay auditable.
type lineKind int

const (
	kindTableRow lineKind = iota
	kindListLine
	kindClause
)

// classifyLine assigns a layout variant to one normalized line. Table syntax
// wins over everything; a bullet separator makes a list line; anything else
// is a free-text clause.
func classifyLine(line string) lineKind {
	switch {
	case strings.Contains(line, cellSeparator):
		return kindTableRow
	case strings.Contains(line, bulletSeparator):
		return kindListLine
	default:
		return kindClause
	}
}

// Segmenter splits normalized text into candidate sentence units. It is
// deliberately conservative: under-segmenting is preferred over splitting a
// legitimate sentence of a low-resource language apart.
type Segmenter struct {
	// MinLength is the minimum cleaned-unit length in runes. Table cells
	// must exceed it; free-text units must reach it.
	MinLength int
}

// NewSegmenter returns a segmenter with the given minimum unit length, or
// the default when n is not positive.
func NewSegmenter(n int) *Segmenter {
	if n <= 0 {
		n = defaultMinLength
	}
	return &Segmenter{MinLength: n}
}

// Segment returns the candidate units of normalized text, table-derived
// units first, each group in document order. Lines holding table syntax are
// consumed by the table pass only.
func (s *Segmenter) Segment(text string) []string {
	lines := strings.Split(text, "\n")

	var units []string
	for _, line := range lines {
		if classifyLine(line) == kindTableRow {
			units = append(units, s.segmentTableRow(line)...)
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < s.MinLength {
			continue
		}
		switch classifyLine(line) {
		case kindTableRow:
			// already consumed above
		case kindListLine:
			units = append(units, s.segmentListLine(line)...)
		case kindClause:
			units = append(units, s.segmentClause(line)...)
		}
	}

	return units
}

// segmentTableRow splits a table row into cell units. Divider rows yield
// nothing. Cells that are empty, pure dashes, or pure digits (page and row
// numbers) are dropped; a surviving cell may carry several bulleted
// sub-units.
func (s *Segmenter) segmentTableRow(line string) []string {
	if reTableDivider.MatchString(line) {
		return nil
	}

	var units []string
	for _, cell := range strings.Split(line, cellSeparator) {
		cell = strings.TrimSpace(cell)
		if cell == "" || reDashCell.MatchString(cell) || reDigitCell.MatchString(cell) {
			continue
		}

		for _, fragment := range strings.Split(cell, bulletSeparator) {
			cleaned := Clean(fragment)
			if utf8.RuneCountInString(cleaned) > s.MinLength {
				units = append(units, cleaned)
			}
		}
	}
	return units
}

// segmentListLine splits a bulleted line into one unit per item.
func (s *Segmenter) segmentListLine(line string) []string {
	var units []string
	for _, item := range strings.Split(line, bulletSeparator) {
		cleaned := Clean(item)
		if utf8.RuneCountInString(cleaned) >= s.MinLength {
			units = append(units, cleaned)
		}
	}
	return units
}

// segmentClause turns a free-text line into sentence units. A line without
// terminal punctuation is taken as one whole sentence; otherwise it is split
// on terminal punctuation runs.
func (s *Segmenter) segmentClause(line string) []string {
	if !reTerminalEnd.MatchString(line) {
		cleaned := Clean(line)
		if utf8.RuneCountInString(cleaned) >= s.MinLength {
			return []string{cleaned}
		}
		return nil
	}

	var units []string
	for _, clause := range reClauseSplit.Split(line, -1) {
		cleaned := Clean(clause)
		if cleaned != "" && utf8.RuneCountInString(cleaned) >= s.MinLength {
			units = append(units, cleaned)
		}
	}
	return units
}
