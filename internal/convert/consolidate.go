// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// consolidatedDir is the subdirectory receiving the flattened PDFs.
const consolidatedDir = "consolidado"

// Consolidate flattens per-collection PDF subdirectories into a single
// directory. Each subdirectory of dataDir whose name starts with prefix has
// its PDFs copied to dataDir/consolidado/ as <subdir>.pdf, or
// <subdir>-A.pdf, <subdir>-B.pdf, ... when a subdirectory holds more than
// one. PDFs are taken in lexicographic order so suffixes are stable across
// runs. Returns the number of files copied.
func Consolidate(dataDir, prefix string, w io.Writer) (int, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return 0, fmt.Errorf("reading data directory %s: %w", dataDir, err)
	}

	outDir := filepath.Join(dataDir, consolidatedDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", outDir, err)
	}

	copied := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}

		subDir := filepath.Join(dataDir, entry.Name())
		pdfs, err := FindPDFs(subDir)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", entry.Name(), err)
			continue
		}
		sort.Strings(pdfs)

		for i, src := range pdfs {
			suffix := ""
			if len(pdfs) > 1 {
				suffix = fmt.Sprintf("-%c", 'A'+i)
			}
			dst := filepath.Join(outDir, entry.Name()+suffix+".pdf")

			if err := copyFile(src, dst); err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(src), err)
				continue
			}
			fmt.Fprintf(w, "copied:  %s -> %s\n", src, dst)
			copied++
		}
	}

	if copied == 0 {
		fmt.Fprintf(w, "warning: no PDFs found under %s with prefix %q\n", dataDir, prefix)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
