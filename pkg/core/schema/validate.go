// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// endKeywords are textual end-date values that denote an ongoing time span.
var endKeywords = map[string]bool{
	"present": true,
	"current": true,
	"ongoing": true,
	"now":     true,
}

// Violation describes a single failed field-level invariant.
type Violation struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", v.Field, v.Message, v.Value)
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError aggregates every violation found in one validation pass,
// so a single response reports all of them rather than only the first.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "record validation failed: " + strings.Join(parts, "; ")
}

// Validate maps the raw structured payload from the backend into a Resume,
// enforcing every field-level invariant. Unknown keys are ignored. On
// failure it returns a *ValidationError listing all violations discovered.
func Validate(raw map[string]any) (*Resume, error) {
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	var r Resume
	if err := json.Unmarshal(payload, &r); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{Violations: []Violation{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}}}
		}
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	var violations []Violation
	add := func(field, value, message string) {
		violations = append(violations, Violation{Field: field, Value: value, Message: message})
	}

	if strings.TrimSpace(r.FullName) == "" {
		add("full_name", "", "is required and must be non-empty")
	}

	if r.Email != "" {
		if !validEmail(r.Email) {
			add("email", r.Email, "is not a valid email address")
		}
	}

	for i, tag := range r.Industry {
		if !slices.Contains(AllowedIndustries, tag) {
			add(fmt.Sprintf("industry[%d]", i), tag,
				fmt.Sprintf("is not an allowed industry (allowed: %s)", strings.Join(AllowedIndustries, ", ")))
		}
	}

	for i, lang := range r.Languages {
		if strings.TrimSpace(lang.Language) == "" {
			add(fmt.Sprintf("languages[%d].language", i), "", "is required")
		}
		if !slices.Contains(AllowedLevels, lang.Level) {
			add(fmt.Sprintf("languages[%d].level", i), lang.Level,
				fmt.Sprintf("is not an allowed level (allowed: %s)", strings.Join(AllowedLevels, ", ")))
		}
	}

	for i, ref := range r.References {
		if strings.TrimSpace(ref.Name) == "" {
			add(fmt.Sprintf("references[%d].name", i), "", "is required")
		}
	}

	for i := range r.Education {
		e := &r.Education[i]
		if strings.TrimSpace(e.Institution) == "" {
			add(fmt.Sprintf("education[%d].institution", i), "", "is required")
		}
		normalizeSpan(fmt.Sprintf("education[%d]", i), &e.From, &e.To, &e.Ongoing, add)
	}
	for i := range r.Certificates {
		c := &r.Certificates[i]
		if strings.TrimSpace(c.Title) == "" {
			add(fmt.Sprintf("certificates[%d].title", i), "", "is required")
		}
		normalizeSpan(fmt.Sprintf("certificates[%d]", i), &c.From, &c.To, &c.Ongoing, add)
	}
	for i := range r.Experience {
		x := &r.Experience[i]
		if strings.TrimSpace(x.Position) == "" {
			add(fmt.Sprintf("experience[%d].position", i), "", "is required")
		}
		normalizeSpan(fmt.Sprintf("experience[%d]", i), &x.From, &x.To, &x.Ongoing, add)
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	// List fields default to empty, never null.
	if r.Industry == nil {
		r.Industry = []string{}
	}
	if r.Positions == nil {
		r.Positions = []string{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Certificates == nil {
		r.Certificates = []Certificate{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	if r.ExtraSkills == nil {
		r.ExtraSkills = []string{}
	}
	if r.References == nil {
		r.References = []Reference{}
	}

	return &r, nil
}

// normalizeSpan normalizes the from/to dates of a time-span-bearing entry and
// recomputes the ongoing flag: ongoing iff the end date is absent, in the
// future, or textually denotes the present.
func normalizeSpan(prefix string, from, to *string, ongoing *bool, add func(field, value, message string)) {
	if *from != "" {
		norm, err := normalizeDate(*from)
		if err != nil {
			add(prefix+".from", *from, "is not a recognizable date")
		} else {
			*from = norm
		}
	}

	if endKeywords[strings.ToLower(strings.TrimSpace(*to))] {
		*to = ""
	}

	if *to == "" {
		*ongoing = true
		return
	}

	norm, err := normalizeDate(*to)
	if err != nil {
		add(prefix+".to", *to, "is not a recognizable date")
		return
	}
	*to = norm

	end, _ := time.Parse(dateLayout, norm)
	*ongoing = end.After(time.Now())
}

// normalizeDate normalizes a date string to YYYY-MM-DD. When only a year or
// year-month is known, the missing units default to the first day/month.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{dateLayout, "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms like "John <john@x.com>"; the field must be
	// the bare address.
	return addr.Address == s
}
