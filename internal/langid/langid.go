// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package langid defines the language-identification collaborator boundary
// for the corpus pipeline, plus a production implementation backed by a
// statistical trigram detector.
package langid

import "errors"

// Unknown is the code returned when the detector cannot reach a decision.
const Unknown = "unknown"

// ErrDetectionFailed signals that the detector could not process the input
// at all (degenerate text such as empty strings or pure punctuation).
// Callers are expected to map it to Unknown rather than abort.
var ErrDetectionFailed = errors.New("language detection failed")

// Identifier guesses the language of a text fragment. Implementations return
// a lowercase language code (ISO 639-1 where one exists) or Unknown, and may
// return ErrDetectionFailed for degenerate input.
type Identifier interface {
	Identify(text string) (string, error)
}
