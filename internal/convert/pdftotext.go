// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os/exec"
)

const binPdftotext = "pdftotext"

// runPdftotext abstracts command execution so tests can stub the binary.
var runPdftotext = func(pdfPath string) ([]byte, error) {
	// "-" sends the extracted text to stdout; -layout keeps the column
	// structure that the segmenter's table handling relies on.
	cmd := exec.Command(binPdftotext, "-layout", pdfPath, "-")
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v (%s)", binPdftotext, err, bytes.TrimSpace(errBuf.Bytes()))
	}
	return out.Bytes(), nil
}

// PdftotextConverter converts PDFs with the poppler pdftotext binary. It is
// the fallback backend when no container runtime is available; output is
// plain text with layout preserved, without Markdown table syntax.
type PdftotextConverter struct{}

// NewPdftotextConverter verifies the pdftotext binary is on PATH.
func NewPdftotextConverter() (*PdftotextConverter, error) {
	if _, err := exec.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("pdftotext not found on PATH: %w", err)
	}
	return &PdftotextConverter{}, nil
}

// Convert extracts the text of the PDF at pdfPath.
func (p *PdftotextConverter) Convert(pdfPath string) (string, error) {
	out, err := runPdftotext(pdfPath)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", pdfPath, err)
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return "", fmt.Errorf("pdftotext produced empty output for %s", pdfPath)
	}
	return string(out), nil
}
