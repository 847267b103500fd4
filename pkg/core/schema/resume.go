// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the canonical Resume record and the validator that
// maps raw backend output into it.
package schema

// Industry category tags recognized by the validator.
const (
	IndustryWind      = "wind"
	IndustryOilAndGas = "oil_n_gas"
	IndustryMaritime  = "maritime"
)

// Language proficiency levels recognized by the validator.
const (
	LevelNative       = "native"
	LevelFluent       = "fluent"
	LevelIntermediate = "intermediate"
	LevelBeginner     = "beginner"
)

// AllowedIndustries is the closed set of industry tags.
var AllowedIndustries = []string{IndustryWind, IndustryOilAndGas, IndustryMaritime}

// AllowedLevels is the closed set of language proficiency levels.
var AllowedLevels = []string{LevelNative, LevelFluent, LevelIntermediate, LevelBeginner}

// Resume is the canonical structured record produced by the pipeline.
// It is constructed once by Validate and never mutated afterwards.
// List fields are always non-nil so they serialize as [] rather than null.
type Resume struct {
	FullName     string        `json:"full_name"`
	Phone        string        `json:"phone,omitempty"`
	Email        string        `json:"email,omitempty"`
	Country      string        `json:"country,omitempty"`
	Industry     []string      `json:"industry"`
	Positions    []string      `json:"positions"`
	Contract     string        `json:"contract,omitempty"`
	Education    []Education   `json:"education"`
	Certificates []Certificate `json:"certificates"`
	Experience   []Experience  `json:"experience"`
	Languages    []Language    `json:"languages"`
	ExtraSkills  []string      `json:"extra_skills"`
	References   []Reference   `json:"references"`
}

// Education is a time-span-bearing schooling entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Ongoing     bool   `json:"ongoing"`
}

// Certificate is a time-span-bearing certification entry.
type Certificate struct {
	Title   string `json:"title"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Ongoing bool   `json:"ongoing"`
	Path    string `json:"path,omitempty"`
}

// Experience is a time-span-bearing employment entry.
type Experience struct {
	Industry    string `json:"industry,omitempty"`
	Position    string `json:"position"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Ongoing     bool   `json:"ongoing"`
	Description string `json:"description,omitempty"`
}

// Language pairs a language name with a proficiency level from AllowedLevels.
type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// Reference is contact metadata for a referee. Only the name is required.
type Reference struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Company  string `json:"company,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Path     string `json:"path,omitempty"`
}
