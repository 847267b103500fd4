// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crewhire/resumegw/pkg/artifact"
	"github.com/crewhire/resumegw/pkg/core/schema"
)

func init() {
	artifact.Providers.Register("filesystem", func(_ context.Context, params map[string]string) (artifact.Store, error) {
		return New(params["base_dir"])
	})
}

// compile-time check
var _ artifact.Store = (*Store)(nil)

// Store persists artifacts on the local filesystem.
//
// Layout:
//
//	<base_dir>/<id>/document.pdf
//	<base_dir>/<id>/resume.json
type Store struct {
	baseDir string
}

// New creates a filesystem-backed Store rooted at baseDir.
func New(baseDir string) (*Store, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("filesystem artifact store: base_dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) dir(id string) string {
	return filepath.Join(s.baseDir, id)
}

// SaveDocument writes the original document bytes to disk.
func (s *Store) SaveDocument(_ context.Context, id string, doc []byte) (string, error) {
	if err := os.MkdirAll(s.dir(id), 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}
	path := filepath.Join(s.dir(id), "document.pdf")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return path, nil
}

// SaveResume writes the validated record as JSON.
func (s *Store) SaveResume(_ context.Context, id string, resume *schema.Resume) (string, error) {
	if err := os.MkdirAll(s.dir(id), 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}
	path := filepath.Join(s.dir(id), "resume.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write resume: %w", err)
	}
	return path, nil
}

// GetResume reads a previously stored record.
func (s *Store) GetResume(_ context.Context, id string) (*schema.Resume, error) {
	data, err := os.ReadFile(filepath.Join(s.dir(id), "resume.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("resume %s: %w", id, artifact.ErrNotFound)
		}
		return nil, fmt.Errorf("read resume: %w", err)
	}
	var resume schema.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("unmarshal resume: %w", err)
	}
	return &resume, nil
}

// Close is a no-op for the filesystem store.
func (s *Store) Close(_ context.Context) error {
	return nil
}
