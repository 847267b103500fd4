// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/crewhire/resumegw/pkg/artifact"
	"github.com/crewhire/resumegw/pkg/core/schema"
)

func init() {
	artifact.Providers.Register("memory", func(_ context.Context, _ map[string]string) (artifact.Store, error) {
		return New(), nil
	})
}

// compile-time check
var _ artifact.Store = (*Store)(nil)

// Store is an in-memory artifact store, used for tests and local runs.
type Store struct {
	mu        sync.RWMutex
	documents map[string][]byte
	resumes   map[string]*schema.Resume
}

// New creates a new in-memory artifact store.
func New() *Store {
	return &Store{
		documents: make(map[string][]byte),
		resumes:   make(map[string]*schema.Resume),
	}
}

// SaveDocument stores the original document bytes.
func (s *Store) SaveDocument(_ context.Context, id string, doc []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(doc))
	copy(cp, doc)
	s.documents[id] = cp
	return fmt.Sprintf("memory://%s/document.pdf", id), nil
}

// SaveResume stores the validated record.
func (s *Store) SaveResume(_ context.Context, id string, resume *schema.Resume) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *resume
	s.resumes[id] = &cp
	return fmt.Sprintf("memory://%s/resume.json", id), nil
}

// GetResume returns a previously stored record.
func (s *Store) GetResume(_ context.Context, id string) (*schema.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resume, exists := s.resumes[id]
	if !exists {
		return nil, fmt.Errorf("resume %s: %w", id, artifact.ErrNotFound)
	}
	cp := *resume
	return &cp, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close(_ context.Context) error {
	return nil
}
