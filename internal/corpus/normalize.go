// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus implements the monolingual corpus pipeline: markup
// normalization, sentence segmentation, fragment cleaning, language
// classification, and cross-document aggregation.
package corpus

import (
	"regexp"
	"strings"
)

// Markup constructs stripped by Normalize. Table pipes are deliberately left
// alone: table structure is consumed by the segmenter, not here.
var (
	reHeader     = regexp.MustCompile(`#{1,6}\s+`)
	reBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reCode       = regexp.MustCompile("`([^`]+)`")
	reImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reImageStub  = regexp.MustCompile(`<!--\s*image\s*-->`)
	reBlankRuns  = regexp.MustCompile(`\n+`)
	reHorizSpace = regexp.MustCompile(`[ \t]+`)
)

// Normalize strips structural markup from converted text while preserving
// line boundaries. Emphasis and links are replaced by their inner label,
// images are removed outright, blank-line runs collapse to a single newline,
// and horizontal whitespace runs collapse to a single space. Idempotent.
func Normalize(text string) string {
	text = reHeader.ReplaceAllString(text, "")
	text = reBold.ReplaceAllString(text, "$1")
	text = reItalic.ReplaceAllString(text, "$1")
	text = reCode.ReplaceAllString(text, "$1")
	text = reImage.ReplaceAllString(text, "")
	text = reLink.ReplaceAllString(text, "$1")
	text = reImageStub.ReplaceAllString(text, "")

	text = reBlankRuns.ReplaceAllString(text, "\n")
	text = reHorizSpace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
