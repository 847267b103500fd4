// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/crewhire/resumegw/pkg/core/api"
	"github.com/crewhire/resumegw/pkg/observability/logging"
)

type fakeExtractor struct {
	text  string
	err   error
	calls int
	path  string
}

func (f *fakeExtractor) ExtractText(_ context.Context, path string) (string, error) {
	f.calls++
	f.path = path
	return f.text, f.err
}

func testLogger() *logging.Logger {
	return logging.New(logging.Config{Output: io.Discard})
}

func newTestPipeline(t *testing.T, extractor TextExtractor, backend api.ExtractionClient) *Pipeline {
	t.Helper()
	p, err := New(extractor, backend, api.DefaultSampling("test-model"), testLogger())
	if err != nil {
		t.Fatalf("pipeline.New failed: %v", err)
	}
	return p
}

func TestParse_HappyPath(t *testing.T) {
	backend := api.NewMockExtractionClient(
		`{"full_name":"John Doe","email":"john@x.com","languages":[{"language":"English","level":"native"}]}`)
	extractor := &fakeExtractor{text: "John Doe, john@x.com, EN native"}
	p := newTestPipeline(t, extractor, backend)

	resume, err := p.Parse(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resume.FullName != "John Doe" || resume.Email != "john@x.com" {
		t.Errorf("resume = %+v", resume)
	}
	if len(resume.Languages) != 1 {
		t.Fatalf("languages = %v, want one entry", resume.Languages)
	}
	if backend.LastDocumentText != extractor.text {
		t.Errorf("backend received %q, want the extracted text", backend.LastDocumentText)
	}
	if backend.LastSampling.Temperature != 0 {
		t.Errorf("sampling temperature = %v, want 0", backend.LastSampling.Temperature)
	}
	if !strings.Contains(backend.LastInstructions, "full_name") {
		t.Error("instruction block does not describe the target shape")
	}
}

func TestParse_FencedBackendOutput(t *testing.T) {
	backend := api.NewMockExtractionClient("```json\n{\"full_name\":\"John Doe\"}\n```")
	p := newTestPipeline(t, &fakeExtractor{text: "some resume text"}, backend)

	resume, err := p.Parse(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resume.FullName != "John Doe" {
		t.Errorf("FullName = %q", resume.FullName)
	}
}

func TestParse_NoExtractableText(t *testing.T) {
	backend := api.NewMockExtractionClient(`{}`)
	p := newTestPipeline(t, &fakeExtractor{text: "   \n "}, backend)

	_, err := p.Parse(context.Background(), "scan.pdf")

	var noText *NoExtractableTextError
	if !errors.As(err, &noText) {
		t.Fatalf("expected *NoExtractableTextError, got %v", err)
	}
	if backend.Calls != 0 {
		t.Errorf("backend called %d times before the precondition check", backend.Calls)
	}
	if noText.Stage() != StageTextExtraction {
		t.Errorf("stage = %q", noText.Stage())
	}
}

func TestParse_DocumentReadError(t *testing.T) {
	backend := api.NewMockExtractionClient(`{}`)
	cause := fmt.Errorf("open PDF: not a PDF file")
	p := newTestPipeline(t, &fakeExtractor{err: cause}, backend)

	_, err := p.Parse(context.Background(), "corrupt.pdf")

	var readErr *DocumentReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *DocumentReadError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
	if backend.Calls != 0 {
		t.Errorf("backend called %d times after a read failure", backend.Calls)
	}
}

func TestParse_BackendUnavailable(t *testing.T) {
	backend := api.NewMockExtractionClient("")
	backend.Err = fmt.Errorf("401 unauthorized")
	p := newTestPipeline(t, &fakeExtractor{text: "resume text"}, backend)

	_, err := p.Parse(context.Background(), "resume.pdf")

	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected *BackendUnavailableError, got %v", err)
	}
	if unavailable.Stage() != StageBackend {
		t.Errorf("stage = %q", unavailable.Stage())
	}
}

func TestParse_MalformedBackendOutput(t *testing.T) {
	backend := api.NewMockExtractionClient("Sorry, I cannot parse this resume.")
	p := newTestPipeline(t, &fakeExtractor{text: "resume text"}, backend)

	_, err := p.Parse(context.Background(), "resume.pdf")

	var malformed *MalformedBackendOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedBackendOutputError, got %v", err)
	}
	if !strings.Contains(malformed.Excerpt, "Sorry") {
		t.Errorf("excerpt = %q, want prefix of the raw output", malformed.Excerpt)
	}
}

func TestParse_RecordValidationError(t *testing.T) {
	backend := api.NewMockExtractionClient(`{"languages":[{"language":"Klingon","level":"expert"}]}`)
	p := newTestPipeline(t, &fakeExtractor{text: "resume text"}, backend)

	_, err := p.Parse(context.Background(), "resume.pdf")

	var invalid *RecordValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *RecordValidationError, got %v", err)
	}
	if invalid.Stage() != StageValidation {
		t.Errorf("stage = %q", invalid.Stage())
	}
	if !strings.Contains(invalid.Error(), "expert") {
		t.Errorf("error %q does not name the disallowed level", invalid.Error())
	}
}

func TestParseReader_RemovesTempFile(t *testing.T) {
	backend := api.NewMockExtractionClient(`{"full_name":"John Doe"}`)
	extractor := &fakeExtractor{text: "resume text"}
	p := newTestPipeline(t, extractor, backend)

	_, err := p.ParseReader(context.Background(), strings.NewReader("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extractor.path == "" {
		t.Fatal("extractor never received a path")
	}
	if _, statErr := os.Stat(extractor.path); !os.IsNotExist(statErr) {
		t.Errorf("temp file %s still exists after ParseReader", extractor.path)
	}
}

func TestParseReader_RemovesTempFileOnFailure(t *testing.T) {
	backend := api.NewMockExtractionClient("")
	backend.Err = fmt.Errorf("backend down")
	extractor := &fakeExtractor{text: "resume text"}
	p := newTestPipeline(t, extractor, backend)

	_, err := p.ParseReader(context.Background(), strings.NewReader("%PDF-1.4 fake"))
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(extractor.path); !os.IsNotExist(statErr) {
		t.Errorf("temp file %s still exists after failed ParseReader", extractor.path)
	}
}
