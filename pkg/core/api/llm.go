// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Package api contains the client for the natural-language extraction
// backend and the instruction block sent with every document.
package api

import "context"

// SamplingConfig controls generation variance. Field mapping wants literal,
// deterministic output, so the defaults keep temperature at zero.
type SamplingConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultSampling returns the low-variance configuration used for
// schema-constrained extraction.
func DefaultSampling(model string) SamplingConfig {
	return SamplingConfig{
		Model:       model,
		Temperature: 0,
		MaxTokens:   4096,
	}
}

// ExtractionClient calls the extraction backend with an instruction block
// and the document text and returns the raw textual response. The response
// is expected, but not guaranteed, to be JSON and nothing else.
type ExtractionClient interface {
	Generate(ctx context.Context, instructions, documentText string, cfg SamplingConfig) (string, error)
}
