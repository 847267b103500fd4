// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"strings"

	"github.com/crewhire/resumegw/pkg/core/schema"
)

// responseShape is the JSON shape the backend is asked to produce. Field
// names match the wire names declared on schema.Resume, with "from"/"to"
// as the date aliases.
const responseShape = `{
  "full_name": "string (required)",
  "phone": "string",
  "email": "string",
  "country": "string",
  "industry": ["string"],
  "positions": ["string"],
  "contract": "string",
  "education": [{"institution": "string", "degree": "string", "from": "YYYY-MM-DD", "to": "YYYY-MM-DD", "ongoing": false}],
  "certificates": [{"title": "string", "from": "YYYY-MM-DD", "to": "YYYY-MM-DD", "ongoing": false}],
  "experience": [{"industry": "string", "position": "string", "from": "YYYY-MM-DD", "to": "YYYY-MM-DD", "ongoing": false, "description": "string"}],
  "languages": [{"language": "string", "level": "string"}],
  "extra_skills": ["string"],
  "references": [{"name": "string", "position": "string", "company": "string", "mobile": "string"}]
}`

// BuildInstructions assembles the instruction block sent with every
// document: the target JSON shape, field semantics, and normalization
// rules. The backend must return the JSON object and nothing else.
func BuildInstructions() string {
	var sb strings.Builder

	sb.WriteString("You are an expert resume parser. Analyze the provided resume text and extract ")
	sb.WriteString("the information into a structured JSON object matching this shape exactly. ")
	sb.WriteString("Your output must be only the JSON object, with no other text or explanations.\n\n")

	sb.WriteString("Shape:\n")
	sb.WriteString(responseShape)
	sb.WriteString("\n\nRules:\n")

	fmt.Fprintf(&sb, "- industry: each tag must be one of %s. Include all that apply; if none fits exactly, pick the closest based on context.\n",
		strings.Join(schema.AllowedIndustries, ", "))
	fmt.Fprintf(&sb, "- languages: level must be one of %s. Map the candidate's own description to one of these. Resolve language name abbreviations (e.g. EN -> English, DE -> German).\n",
		strings.Join(schema.AllowedLevels, ", "))
	sb.WriteString("- ongoing: true when the end date is in the future, not specified, or given as 'present' or 'current'.\n")
	sb.WriteString("- Dates: format as YYYY-MM-DD. If only a year and month are known use the first day of the month; if only a year is known use January 1st.\n")
	sb.WriteString("- Extract real data from the resume, never placeholders or example values.\n")
	sb.WriteString("- If a field is not found in the resume, omit it from the JSON object entirely; never emit null.\n")

	return sb.String()
}
