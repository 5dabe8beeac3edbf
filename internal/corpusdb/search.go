// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpusdb

import (
	"context"
	"fmt"
)

// SearchResult is one ranked sentence from a full-text query.
type SearchResult struct {
	// Text is the matching sentence.
	Text string `json:"text" yaml:"text"`

	// Document is the per-document corpus file the sentence first appeared in.
	Document string `json:"document" yaml:"document"`

	// Position is the sentence's line index within that file.
	Position int `json:"position" yaml:"position"`
}

// Search runs an FTS5 full-text query over the indexed sentences and
// returns results in relevance order. A non-positive limit uses the store
// default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT sn.text, sn.doc, sn.position
		 FROM sentences_fts
		 JOIN sentences sn ON sn.rowid = sentences_fts.rowid
		 WHERE sentences_fts MATCH ?
		 ORDER BY sentences_fts.rank
		 LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying corpus index: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Text, &r.Document, &r.Position); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Totals reports how many documents and sentences the index currently holds.
func (s *Store) Totals(ctx context.Context) (documents, sentences int, err error) {
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&documents); err != nil {
		return 0, 0, fmt.Errorf("counting documents: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM sentences`).Scan(&sentences); err != nil {
		return 0, 0, fmt.Errorf("counting sentences: %w", err)
	}
	return documents, sentences, nil
}
