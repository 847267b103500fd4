// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Package http is the request-routing layer: it accepts resume uploads,
// drives the extraction pipeline, and maps stage-tagged errors to response
// codes.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/crewhire/resumegw/pkg/artifact"
	"github.com/crewhire/resumegw/pkg/core/pipeline"
	"github.com/crewhire/resumegw/pkg/core/schema"
	"github.com/crewhire/resumegw/pkg/observability/logging"
)

const maxUploadSize = 32 * 1024 * 1024 // 32 MB

// Parser runs the extraction pipeline for one document.
// Implemented by pipeline.Pipeline.
type Parser interface {
	ParseReader(ctx context.Context, r io.Reader) (*schema.Resume, error)
}

// Handler implements the HTTP adapter.
type Handler struct {
	parser Parser
	store  artifact.Store // nil disables persistence
	logger *logging.Logger
	mux    *http.ServeMux
}

// New creates a new HTTP handler. The artifact store is optional; nil means
// parsed documents are returned to the caller without being persisted.
func New(parser Parser, store artifact.Store, logger *logging.Logger) *Handler {
	h := &Handler{
		parser: parser,
		store:  store,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("POST /v1/resumes/parse", h.handleParseResume)

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	h.mux.ServeHTTP(w, r)
}

// handleHealth handles health check requests.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}

// handleParseResume handles POST /v1/resumes/parse: a multipart upload with
// a single "file" field holding a PDF resume.
func (h *Handler) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Failed to parse multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "File is required", nil)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid file type. Please upload a PDF.", nil)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "read_error", "Failed to read file content", nil)
		return
	}

	resume, err := h.parser.ParseReader(r.Context(), bytes.NewReader(content))
	if err != nil {
		h.logger.Error("Failed to parse resume", "filename", header.Filename, "error", err)
		h.writePipelineError(w, err)
		return
	}

	docID := uuid.NewString()
	if h.store != nil {
		h.persist(r.Context(), docID, content, resume)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Document-ID", docID)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resume)

	h.logger.Info("Resume parsed",
		"document_id", docID,
		"filename", header.Filename,
		"full_name", resume.FullName)
}

// persist stores the original document and the validated record. Persistence
// failures are logged but never fail the request; the caller already has the
// parsed result.
func (h *Handler) persist(ctx context.Context, docID string, content []byte, resume *schema.Resume) {
	if _, err := h.store.SaveDocument(ctx, docID, content); err != nil {
		h.logger.Warn("Failed to persist document", "document_id", docID, "error", err)
		return
	}
	if _, err := h.store.SaveResume(ctx, docID, resume); err != nil {
		h.logger.Warn("Failed to persist resume", "document_id", docID, "error", err)
	}
}

// writePipelineError maps a stage-tagged pipeline error to a response code
// and a structured error body.
func (h *Handler) writePipelineError(w http.ResponseWriter, err error) {
	var (
		readErr      *pipeline.DocumentReadError
		noTextErr    *pipeline.NoExtractableTextError
		backendErr   *pipeline.BackendUnavailableError
		malformedErr *pipeline.MalformedBackendOutputError
		validateErr  *pipeline.RecordValidationError
	)

	switch {
	case errors.As(err, &readErr):
		h.writeError(w, http.StatusBadRequest, "document_read_error", readErr.Error(), nil)
	case errors.As(err, &noTextErr):
		h.writeError(w, http.StatusUnprocessableEntity, "no_extractable_text",
			"No text could be extracted; the document may be a low-quality scan.", nil)
	case errors.As(err, &backendErr):
		h.writeError(w, http.StatusBadGateway, "backend_unavailable", backendErr.Error(), nil)
	case errors.As(err, &malformedErr):
		h.writeError(w, http.StatusBadGateway, "malformed_backend_output", malformedErr.Error(), nil)
	case errors.As(err, &validateErr):
		h.writeError(w, http.StatusUnprocessableEntity, "record_validation_error",
			validateErr.Error(), validateErr.Violations())
	default:
		h.writeError(w, http.StatusInternalServerError, "processing_error", err.Error(), nil)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, errType, message string, violations []schema.Violation) {
	body := map[string]any{
		"type":    errType,
		"message": message,
	}
	if len(violations) > 0 {
		body["violations"] = violations
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"error": body})
}
