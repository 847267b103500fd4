// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// MockExtractionClient is a canned-response implementation for testing.
// It records the arguments of the last call so tests can assert on them.
type MockExtractionClient struct {
	Response string
	Err      error

	Calls            int
	LastInstructions string
	LastDocumentText string
	LastSampling     SamplingConfig
}

// NewMockExtractionClient creates a mock that always returns response.
func NewMockExtractionClient(response string) *MockExtractionClient {
	return &MockExtractionClient{Response: response}
}

// Generate implements ExtractionClient.
func (m *MockExtractionClient) Generate(_ context.Context, instructions, documentText string, cfg SamplingConfig) (string, error) {
	m.Calls++
	m.LastInstructions = instructions
	m.LastDocumentText = documentText
	m.LastSampling = cfg
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
