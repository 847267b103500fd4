// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/crewhire/resumegw/pkg/artifact"
	"github.com/crewhire/resumegw/pkg/core/schema"
)

func init() {
	artifact.Providers.Register("sqlite", func(_ context.Context, params map[string]string) (artifact.Store, error) {
		return New(params["dsn"])
	})
}

// compile-time check
var _ artifact.Store = (*Store)(nil)

// Store is a SQLite-backed artifact store for single-node deployments.
type Store struct {
	db  *sql.DB
	dsn string
}

// New creates a SQLite store. The dsn is a file path or ":memory:".
func New(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite artifact store: dsn is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	s := &Store{db: db, dsn: dsn}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS artifacts (
		id TEXT PRIMARY KEY,
		document BLOB,
		resume TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("sqlite create tables: %w", err)
	}
	return nil
}

// SaveDocument stores the original document bytes.
func (s *Store) SaveDocument(ctx context.Context, id string, doc []byte) (string, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (id, document) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET document = excluded.document`,
		id, doc)
	if err != nil {
		return "", fmt.Errorf("sqlite save document: %w", err)
	}
	return fmt.Sprintf("sqlite://%s/artifacts/%s/document", s.dsn, id), nil
}

// SaveResume stores the validated record as JSON.
func (s *Store) SaveResume(ctx context.Context, id string, resume *schema.Resume) (string, error) {
	data, err := json.Marshal(resume)
	if err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO artifacts (id, resume) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET resume = excluded.resume`,
		id, string(data))
	if err != nil {
		return "", fmt.Errorf("sqlite save resume: %w", err)
	}
	return fmt.Sprintf("sqlite://%s/artifacts/%s/resume", s.dsn, id), nil
}

// GetResume loads and decodes a previously stored record.
func (s *Store) GetResume(ctx context.Context, id string) (*schema.Resume, error) {
	var data sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT resume FROM artifacts WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !data.Valid) {
		return nil, fmt.Errorf("resume %s: %w", id, artifact.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get resume: %w", err)
	}

	var resume schema.Resume
	if err := json.Unmarshal([]byte(data.String), &resume); err != nil {
		return nil, fmt.Errorf("unmarshal resume: %w", err)
	}
	return &resume, nil
}

// Close closes the underlying database handle.
func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}
