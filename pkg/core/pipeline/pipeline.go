// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Package pipeline orchestrates the document-to-structured-data extraction
// sequence: text extraction, schema-constrained backend call, response
// sanitization, and record validation. Each stage either produces an output
// consumable by the next or fails with a stage-tagged error; there is no
// cross-stage retry or backtracking.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crewhire/resumegw/pkg/core/api"
	"github.com/crewhire/resumegw/pkg/core/schema"
	"github.com/crewhire/resumegw/pkg/observability/logging"
)

// TextExtractor produces plain text from a PDF document, or an empty string
// if no text is recoverable. Implemented by extract.Extractor.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// Pipeline runs the extraction sequence for one document at a time. A
// Pipeline holds no per-document state and is safe for concurrent use
// provided its extractor and backend client are.
type Pipeline struct {
	extractor    TextExtractor
	backend      api.ExtractionClient
	sampling     api.SamplingConfig
	instructions string
	logger       *logging.Logger
}

// New creates a Pipeline. The instruction block is built once and reused
// for every document.
func New(extractor TextExtractor, backend api.ExtractionClient, sampling api.SamplingConfig, logger *logging.Logger) (*Pipeline, error) {
	if extractor == nil {
		return nil, fmt.Errorf("text extractor is required")
	}
	if backend == nil {
		return nil, fmt.Errorf("extraction backend client is required")
	}
	if logger == nil {
		logger = logging.New(logging.Config{})
	}

	return &Pipeline{
		extractor:    extractor,
		backend:      backend,
		sampling:     sampling,
		instructions: api.BuildInstructions(),
		logger:       logger,
	}, nil
}

// Parse converts the PDF at path into a validated Resume. On failure it
// returns one of the stage-tagged errors declared in this package.
func (p *Pipeline) Parse(ctx context.Context, path string) (*schema.Resume, error) {
	text, err := p.extractor.ExtractText(ctx, path)
	if err != nil {
		return nil, &DocumentReadError{Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &NoExtractableTextError{}
	}
	p.logger.Debug("text extracted", "chars", len(text))

	raw, err := p.backend.Generate(ctx, p.instructions, text, p.sampling)
	if err != nil {
		return nil, &BackendUnavailableError{Cause: err}
	}

	payload, err := Sanitize(raw)
	if err != nil {
		var malformed *MalformedBackendOutputError
		if errors.As(err, &malformed) {
			p.logger.Error("backend output not parseable", "excerpt", malformed.Excerpt)
		}
		return nil, err
	}

	resume, err := schema.Validate(payload)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			return nil, &RecordValidationError{Err: verr}
		}
		return nil, err
	}

	p.logger.Info("resume parsed", "full_name", resume.FullName)
	return resume, nil
}

// ParseReader writes the document bytes to a temporary file, runs Parse,
// and removes the file on every exit path.
func (p *Pipeline) ParseReader(ctx context.Context, r io.Reader) (*schema.Resume, error) {
	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	return p.Parse(ctx, tmp.Name())
}
