// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpusdb

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslang/corpus-engine/pkg/types"
)

func newTestStore(t *testing.T, corpusDir string) *Store {
	t.Helper()
	store, err := NewStore(types.IndexConfig{CorpusDir: corpusDir})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func writeCorpusFile(t *testing.T, dir, name string, sentences ...string) {
	t.Helper()
	var b bytes.Buffer
	for _, s := range sentences {
		b.WriteString(s + "\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), b.Bytes(), 0o644))
}

func TestIngestAndSearch(t *testing.T) {
	corpusDir := t.TempDir()
	writeCorpusFile(t, corpusDir, "AGR001_awajun.txt",
		"Atsa wi tikitcha nuna",
		"Yaunchuk augmatbau aents",
	)
	writeCorpusFile(t, corpusDir, "AGR002_awajun.txt",
		"Nuna tusa chichak aidau",
	)

	store := newTestStore(t, corpusDir)
	ctx := context.Background()

	var log bytes.Buffer
	summary, err := store.Ingest(ctx, &log)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Indexed)
	assert.Zero(t, summary.Failed)

	docs, sentences, err := store.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, docs)
	assert.Equal(t, 3, sentences)

	results, err := store.Search(ctx, "augmatbau", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Yaunchuk augmatbau aents", results[0].Text)
	assert.Equal(t, "AGR001_awajun.txt", results[0].Document)
}

func TestIngest_SkipsUnchanged(t *testing.T) {
	corpusDir := t.TempDir()
	writeCorpusFile(t, corpusDir, "AGR001_awajun.txt", "Atsa wi tikitcha")

	store := newTestStore(t, corpusDir)
	ctx := context.Background()

	var log bytes.Buffer
	_, err := store.Ingest(ctx, &log)
	require.NoError(t, err)

	log.Reset()
	summary, err := store.Ingest(ctx, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Indexed)
}

func TestIngest_ReindexesChangedFile(t *testing.T) {
	corpusDir := t.TempDir()
	path := filepath.Join(corpusDir, "AGR001_awajun.txt")
	writeCorpusFile(t, corpusDir, "AGR001_awajun.txt", "Atsa wi tikitcha")

	store := newTestStore(t, corpusDir)
	ctx := context.Background()

	var log bytes.Buffer
	_, err := store.Ingest(ctx, &log)
	require.NoError(t, err)

	// Touch with new content and a different mod time.
	require.NoError(t, os.WriteFile(path, []byte("Nuna tusa chichak\nYamaram chicham\n"), 0o644))
	newTime := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, newTime, newTime))

	summary, err := store.Ingest(ctx, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)

	_, sentences, err := store.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sentences, "old sentences should be replaced")
}

// A sentence shared by two documents is indexed once, under the document
// seen first in lexicographic order.
func TestIngest_DuplicateSentenceKeepsFirstDocument(t *testing.T) {
	corpusDir := t.TempDir()
	writeCorpusFile(t, corpusDir, "AGR001_awajun.txt", "Atsa wi tikitcha")
	writeCorpusFile(t, corpusDir, "AGR002_awajun.txt", "Atsa wi tikitcha")

	store := newTestStore(t, corpusDir)
	ctx := context.Background()

	var log bytes.Buffer
	_, err := store.Ingest(ctx, &log)
	require.NoError(t, err)

	results, err := store.Search(ctx, "tikitcha", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "AGR001_awajun.txt", results[0].Document)
}

func TestSearch_EmptyQuery(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	_, err := store.Search(context.Background(), "", 0)
	assert.Error(t, err)
}
