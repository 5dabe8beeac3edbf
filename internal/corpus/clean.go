// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"regexp"
	"strings"
)

// Cleaning rules for a single candidate fragment. Order matters: the page
// reference must go before the dot-leader strip so "word . 12" and
// "word .... 12" both reduce to "word".
var (
	reListDash     = regexp.MustCompile(`^-\s+`)
	reTrailingRef  = regexp.MustCompile(`[.:]?\s*\d+\s*$`)
	reDotLeaderNum = regexp.MustCompile(`\.{3,}.*?\d+\s*$`)
	reDotLeader    = regexp.MustCompile(`\.{3,}`)
	reLeadingComma = regexp.MustCompile(`^,\s+`)
	reSpaceRuns    = regexp.MustCompile(`\s+`)
)

// Clean applies the fragment cleaning rules and returns the cleaned string,
// or "" when nothing survives. Rules, in order: leading list dash, trailing
// page/line reference, table-of-contents dot leaders, leading bullet,
// leading comma, whitespace collapse.
func Clean(fragment string) string {
	s := strings.TrimSpace(fragment)

	s = reListDash.ReplaceAllString(s, "")
	s = reTrailingRef.ReplaceAllString(s, "")
	s = reDotLeaderNum.ReplaceAllString(s, "")
	s = reDotLeader.ReplaceAllString(s, "")

	s = strings.TrimPrefix(s, "•")
	s = reLeadingComma.ReplaceAllString(strings.TrimSpace(s), "")

	return strings.TrimSpace(reSpaceRuns.ReplaceAllString(s, " "))
}
