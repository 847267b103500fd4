// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/crewhire/resumegw/pkg/artifact"
	"github.com/crewhire/resumegw/pkg/core/schema"
)

func TestNew_RequiresBaseDir(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected an error for an empty base_dir")
	}
}

func TestStore_SaveAndGetResume(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	resume := &schema.Resume{
		FullName:  "Jane Roe",
		Languages: []schema.Language{{Language: "English", Level: schema.LevelFluent}},
	}
	locator, err := s.SaveResume(ctx, "doc-1", resume)
	if err != nil {
		t.Fatalf("SaveResume failed: %v", err)
	}
	if filepath.Base(locator) != "resume.json" {
		t.Errorf("locator = %q, want a path ending in resume.json", locator)
	}

	got, err := s.GetResume(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetResume failed: %v", err)
	}
	if got.FullName != "Jane Roe" || len(got.Languages) != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestStore_SaveDocument(t *testing.T) {
	base := t.TempDir()
	s, err := New(base)
	if err != nil {
		t.Fatal(err)
	}

	doc := []byte("%PDF-1.4 fake")
	locator, err := s.SaveDocument(context.Background(), "doc-1", doc)
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	want := filepath.Join(base, "doc-1", "document.pdf")
	if locator != want {
		t.Errorf("locator = %q, want %q", locator, want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("stored document unreadable: %v", err)
	}
	if string(data) != string(doc) {
		t.Error("stored bytes differ from the input")
	}
}

func TestStore_GetResumeNotFound(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.GetResume(context.Background(), "missing")
	if !errors.Is(err, artifact.ErrNotFound) {
		t.Errorf("err = %v, want artifact.ErrNotFound", err)
	}
}
