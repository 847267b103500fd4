// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"encoding/json"
	"strings"
)

// maxExcerptLen bounds the raw-output excerpt attached to
// MalformedBackendOutputError.
const maxExcerptLen = 200

// Sanitize trims surrounding whitespace, strips exactly one fenced code
// block wrapper if present, and parses the remainder strictly as JSON.
// No repair heuristics are attempted: a single well-defined stripping rule
// followed by a strict parse keeps failure modes deterministic.
func Sanitize(raw string) (map[string]any, error) {
	text := stripFence(strings.TrimSpace(raw))

	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &MalformedBackendOutputError{Excerpt: excerpt(text), Cause: err}
	}
	return payload, nil
}

// stripFence removes one leading marker line and one trailing marker line
// when the text is wrapped in a fenced code block (``` or ```json). Markers
// embedded elsewhere in the payload are left untouched. Text that is not
// wrapped on both ends is returned unchanged.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	nl := strings.IndexByte(text, '\n')
	if nl < 0 {
		return text
	}

	body := strings.TrimRight(text[nl+1:], " \t\n")
	if !strings.HasSuffix(body, "```") {
		return text
	}
	return strings.TrimSpace(strings.TrimSuffix(body, "```"))
}

func excerpt(s string) string {
	if len(s) > maxExcerptLen {
		return s[:maxExcerptLen]
	}
	return s
}
