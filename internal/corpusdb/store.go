// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpusdb indexes generated corpus files into a SQLite database
// with full-text search. The index is observational: querying it never
// feeds back into corpus contents.
package corpusdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/andeslang/corpus-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "corpus.db"

	// sentenceSuffix selects per-document corpus files for ingestion.
	sentenceSuffix = "_awajun.txt"
)

// Store manages the corpus index SQLite database.
type Store struct {
	db         *sql.DB
	corpusDir  string
	maxResults int
}

// NewStore opens or creates the corpus index at corpusDir/index/corpus.db,
// creating the schema when missing.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CorpusDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		corpusDir:  cfg.CorpusDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			name TEXT PRIMARY KEY,
			sentences INTEGER NOT NULL DEFAULT 0,
			file_mod_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sentences (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL UNIQUE,
			doc TEXT NOT NULL REFERENCES documents(name),
			position INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentences_doc ON sentences(doc)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='sentences_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE sentences_fts USING fts5(text, content=sentences, content_rowid=rowid)`,
			`CREATE TRIGGER sentences_ai AFTER INSERT ON sentences BEGIN
				INSERT INTO sentences_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
			`CREATE TRIGGER sentences_ad AFTER DELETE ON sentences BEGIN
				INSERT INTO sentences_fts(sentences_fts, rowid, text) VALUES('delete', old.rowid, old.text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an index run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of corpus files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads per-document corpus files from the corpus directory and
// populates the index. Files unchanged since the last run are skipped;
// changed files are re-indexed. Cross-document duplicate sentences keep
// their first-seen document, matching the consolidated corpus semantics.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	entries, err := os.ReadDir(s.corpusDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading corpus directory %s: %w", s.corpusDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sentenceSuffix) {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := entry.Name()
		path := filepath.Join(s.corpusDir, name)

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM documents WHERE name = ?`, name,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		count, err := s.ingestDocument(ctx, name, string(data), modTime, isUpdate)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d sentences)\n", name, count)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d sentences)\n", name, count)
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Store) ingestDocument(ctx context.Context, name, content, modTime string, isUpdate bool) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sentences WHERE doc = ?`, name); err != nil {
			return 0, fmt.Errorf("clearing old sentences: %w", err)
		}
	}

	// The documents row must exist before sentences reference it.
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (name, sentences, file_mod_time) VALUES (?, 0, ?)
		 ON CONFLICT(name) DO UPDATE SET file_mod_time = excluded.file_mod_time`,
		name, modTime,
	); err != nil {
		return 0, fmt.Errorf("recording document: %w", err)
	}

	count := 0
	for i, line := range strings.Split(content, "\n") {
		sentence := strings.TrimSpace(line)
		if sentence == "" {
			continue
		}
		// OR IGNORE keeps the first-seen document for a duplicate sentence.
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO sentences (text, doc, position) VALUES (?, ?, ?)`,
			sentence, name, i,
		); err != nil {
			return 0, fmt.Errorf("inserting sentence: %w", err)
		}
		count++
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET sentences = ? WHERE name = ?`, count, name,
	); err != nil {
		return 0, fmt.Errorf("recording document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return count, nil
}
