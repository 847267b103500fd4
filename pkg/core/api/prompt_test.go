// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"strings"
	"testing"

	"github.com/crewhire/resumegw/pkg/core/schema"
)

func TestBuildInstructions(t *testing.T) {
	instructions := BuildInstructions()

	// Every closed-set value must be spelled out so the backend cannot
	// invent its own industry tags or language levels.
	for _, industry := range schema.AllowedIndustries {
		if !strings.Contains(instructions, industry) {
			t.Errorf("instructions do not name industry %q", industry)
		}
	}
	for _, level := range schema.AllowedLevels {
		if !strings.Contains(instructions, level) {
			t.Errorf("instructions do not name language level %q", level)
		}
	}

	for _, field := range []string{
		"full_name", "extra_skills", "certificates", "references", "ongoing",
	} {
		if !strings.Contains(instructions, field) {
			t.Errorf("target shape does not mention field %q", field)
		}
	}

	if !strings.Contains(instructions, "only the JSON object") {
		t.Error("instructions do not demand a JSON-only response")
	}
	if !strings.Contains(instructions, "YYYY-MM-DD") {
		t.Error("instructions do not state the date format")
	}
}

func TestDefaultSampling(t *testing.T) {
	cfg := DefaultSampling("gpt-4o-mini")
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0 for deterministic extraction", cfg.Temperature)
	}
	if cfg.MaxTokens <= 0 {
		t.Errorf("MaxTokens = %d, want a positive bound", cfg.MaxTokens)
	}
}
