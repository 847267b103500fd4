// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Package extract produces plain text from a PDF document, reading the
// embedded text layer first and falling back to OCR when the document is a
// scan with no text layer.
package extract

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/crewhire/resumegw/pkg/observability/logging"
)

// DefaultDPI is the rasterization resolution for OCR. Materially higher
// than a renderer's default so small fonts stay legible to the engine.
const DefaultDPI = 300

// Options configures an Extractor. Rasterizer and OCR are optional; without
// both, extraction is limited to the native text layer.
type Options struct {
	Rasterizer Rasterizer
	OCR        OCREngine
	DPI        int
	Logger     *logging.Logger
}

// Extractor extracts plain text from PDFs. It holds no per-document state
// and may be shared across concurrent pipelines provided the injected OCR
// engine is safe for concurrent use.
type Extractor struct {
	rasterizer Rasterizer
	ocr        OCREngine
	dpi        int
	logger     *logging.Logger

	// native is swappable in tests.
	native func(path string) (string, error)
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(logging.Config{})
	}

	return &Extractor{
		rasterizer: opts.Rasterizer,
		ocr:        opts.OCR,
		dpi:        dpi,
		logger:     logger,
		native:     readNativeText,
	}
}

// ExtractText returns the concatenation of all page texts, or an empty
// string if no text is recoverable by either strategy. A file that cannot
// be opened as a PDF is a hard error; an OCR failure is not — the fallback
// degrades to an empty string so "no text at all" surfaces uniformly at the
// caller's precondition check.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	text, err := e.native(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	e.logger.Debug("no native text layer, trying OCR", "path", path)
	return e.recognizePages(ctx, path), nil
}

// recognizePages rasterizes every page and runs OCR on each. Recognition
// runs in parallel across pages; results are concatenated in page order,
// separated by newlines. Any internal failure degrades to an empty string.
func (e *Extractor) recognizePages(ctx context.Context, path string) string {
	if e.rasterizer == nil || e.ocr == nil {
		return ""
	}

	images, err := e.rasterizer.RenderPages(ctx, path, e.dpi)
	if err != nil {
		e.logger.Warn("rasterization failed", "path", path, "error", err)
		return ""
	}

	texts := make([]string, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, img := range images {
		g.Go(func() error {
			pageText, err := e.ocr.Recognize(gctx, img)
			if err != nil {
				return err
			}
			texts[i] = pageText
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("OCR failed", "path", path, "error", err)
		return ""
	}

	var nonEmpty []string
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
