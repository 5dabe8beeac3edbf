// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package langid

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// iso1 maps the detector's language constants to ISO 639-1 codes for the
// languages the pipeline filters on. Languages outside this map fall back to
// the detector's ISO 639-3 code, which the classifier's exclusion set simply
// never matches.
var iso1 = map[whatlanggo.Lang]string{
	whatlanggo.Spa: "es",
	whatlanggo.Eng: "en",
	whatlanggo.Fra: "fr",
	whatlanggo.Ita: "it",
	whatlanggo.Por: "pt",
	whatlanggo.Deu: "de",
}

// Whatlang is the production Identifier backed by the whatlanggo trigram
// detector. It is stateless and safe for sequential reuse across sentences.
type Whatlang struct{}

// NewWhatlang returns a ready-to-use detector.
func NewWhatlang() *Whatlang {
	return &Whatlang{}
}

// Identify returns the detected language code for text, or Unknown when the
// detector is unsure. Degenerate input returns ErrDetectionFailed.
func (w *Whatlang) Identify(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrDetectionFailed
	}

	info := whatlanggo.Detect(trimmed)
	if info.Lang == -1 {
		return "", ErrDetectionFailed
	}

	if code, ok := iso1[info.Lang]; ok {
		return code, nil
	}

	code := whatlanggo.LangToString(info.Lang)
	if code == "" {
		return Unknown, nil
	}
	return code, nil
}
