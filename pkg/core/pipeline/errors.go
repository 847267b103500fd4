// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"github.com/crewhire/resumegw/pkg/core/schema"
)

// Pipeline stage names carried by staged errors.
const (
	StageTextExtraction = "text_extraction"
	StageBackend        = "backend"
	StageSanitize       = "sanitize"
	StageValidation     = "validation"
)

// StagedError identifies which pipeline stage raised an error. The transport
// layer uses it (together with errors.As on the concrete types) to pick a
// response code without re-deriving the failure from a stack trace.
type StagedError interface {
	error
	Stage() string
}

// DocumentReadError means the document could not be opened or parsed as a
// PDF at all. Fatal and not retryable.
type DocumentReadError struct {
	Cause error
}

func (e *DocumentReadError) Error() string { return "document read failed: " + e.Cause.Error() }
func (e *DocumentReadError) Unwrap() error { return e.Cause }
func (e *DocumentReadError) Stage() string { return StageTextExtraction }

// NoExtractableTextError means both the native text layer and OCR produced
// nothing. Fatal for this document; the document may be a low-quality scan.
type NoExtractableTextError struct{}

func (e *NoExtractableTextError) Error() string {
	return "no extractable text: native extraction and OCR both produced nothing"
}
func (e *NoExtractableTextError) Stage() string { return StageTextExtraction }

// BackendUnavailableError means the extraction backend was unreachable or
// rejected the request. Fatal per call; the caller may retry the whole
// pipeline invocation.
type BackendUnavailableError struct {
	Cause error
}

func (e *BackendUnavailableError) Error() string {
	return "extraction backend unavailable: " + e.Cause.Error()
}
func (e *BackendUnavailableError) Unwrap() error { return e.Cause }
func (e *BackendUnavailableError) Stage() string { return StageBackend }

// MalformedBackendOutputError means the backend output was not parseable as
// JSON after sanitization. Excerpt holds a bounded-length prefix of the raw
// output for postmortem.
type MalformedBackendOutputError struct {
	Excerpt string
	Cause   error
}

func (e *MalformedBackendOutputError) Error() string {
	return "backend output is not valid JSON: " + e.Cause.Error()
}
func (e *MalformedBackendOutputError) Unwrap() error { return e.Cause }
func (e *MalformedBackendOutputError) Stage() string { return StageSanitize }

// RecordValidationError means the parsed JSON failed schema invariants. It
// names every violating field and value.
type RecordValidationError struct {
	Err *schema.ValidationError
}

func (e *RecordValidationError) Error() string { return e.Err.Error() }
func (e *RecordValidationError) Unwrap() error { return e.Err }
func (e *RecordValidationError) Stage() string { return StageValidation }

// Violations returns the individual field violations.
func (e *RecordValidationError) Violations() []schema.Violation { return e.Err.Violations }
