// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Command batch fans out every PDF in an input directory to the gateway's
// parse endpoint and writes one JSON output per document. Each document is
// an independent pipeline invocation; failures are reported per file in the
// final summary.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/crewhire/resumegw/pkg/observability/logging"
)

func main() {
	apiURL := flag.String("url", "http://127.0.0.1:8000/v1/resumes/parse", "Parse endpoint URL")
	inputDir := flag.String("input", "input", "Directory containing PDF resumes")
	outputDir := flag.String("output", "output", "Directory for parsed JSON output")
	concurrency := flag.Int("concurrency", 4, "Number of documents processed in parallel")
	flag.Parse()

	logger := logging.New(logging.Config{Level: "info", Format: "text"})

	if err := run(context.Background(), logger, *apiURL, *inputDir, *outputDir, *concurrency); err != nil {
		logger.Error("Batch run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *logging.Logger, apiURL, inputDir, outputDir string, concurrency int) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var pdfs []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			pdfs = append(pdfs, entry.Name())
		}
	}
	if len(pdfs) == 0 {
		logger.Info("No PDF files found", "dir", inputDir)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	logger.Info("Processing resumes", "count", len(pdfs), "concurrency", concurrency)

	client := &http.Client{Timeout: 5 * time.Minute}

	var mu sync.Mutex
	failures := make(map[string]string)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, name := range pdfs {
		g.Go(func() error {
			if err := processFile(gctx, client, apiURL, filepath.Join(inputDir, name), outputDir); err != nil {
				mu.Lock()
				failures[name] = err.Error()
				mu.Unlock()
				logger.Error("Failed", "file", name, "error", err)
				return nil // one bad document must not cancel the batch
			}
			logger.Info("Parsed", "file", name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Batch summary",
		"total", len(pdfs),
		"succeeded", len(pdfs)-len(failures),
		"failed", len(failures))

	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		logger.Warn("Failed file", "file", name, "reason", failures[name])
	}

	return nil
}

// processFile uploads one PDF and writes the parsed JSON next to the others
// in the output directory.
func processFile(ctx context.Context, client *http.Client, apiURL, path, outputDir string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	outName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
	outPath := filepath.Join(outputDir, outName)
	if err := os.WriteFile(outPath, respBody, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
