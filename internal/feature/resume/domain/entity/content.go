// Package entity defines the domain entities for the resume feature.
package entity

import (
	"encoding/json"
	"strings"
)

// PersonalInfo holds the contact block of a resume. Every field is optional
// free text; rendering substitutes placeholders for blanks.
type PersonalInfo struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience is a single work-history entry. Order within the slice is
// display order.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Renderable reports whether the entry carries enough content to be shown.
// An entry with neither title nor company is suppressed everywhere.
func (e Experience) Renderable() bool {
	return strings.TrimSpace(e.Title) != "" || strings.TrimSpace(e.Company) != ""
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Renderable reports whether the entry carries enough content to be shown.
func (e Education) Renderable() bool {
	return strings.TrimSpace(e.Degree) != "" || strings.TrimSpace(e.Institution) != ""
}

// Project is a portfolio entry. Persisted with the resume but not part of
// the rendered output.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Skills carries the two accepted representations of the skills field:
// the client form submits a single comma-separated string, the persisted
// schema uses grouped lists. Exactly one representation is populated.
type Skills struct {
	Raw       string
	Technical []string
	Soft      []string
	Languages []string
}

// skillGroups is the grouped JSON shape.
type skillGroups struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// UnmarshalJSON accepts either a JSON string (comma-separated form field)
// or an object with technical/soft/languages lists.
func (s *Skills) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		*s = Skills{}
		return nil
	}
	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		*s = Skills{Raw: raw}
		return nil
	}
	var g skillGroups
	if err := json.Unmarshal(b, &g); err != nil {
		return err
	}
	*s = Skills{Technical: g.Technical, Soft: g.Soft, Languages: g.Languages}
	return nil
}

// MarshalJSON round-trips whichever representation was populated.
func (s Skills) MarshalJSON() ([]byte, error) {
	if len(s.Technical)+len(s.Soft)+len(s.Languages) > 0 {
		return json.Marshal(skillGroups{Technical: s.Technical, Soft: s.Soft, Languages: s.Languages})
	}
	return json.Marshal(s.Raw)
}

// Tokens flattens both representations into the ordered token sequence the
// render pipeline consumes: the raw string is split on commas; grouped lists
// merge as technical, soft, languages. Tokens are trimmed and empties dropped.
func (s Skills) Tokens() []string {
	var parts []string
	if s.Raw != "" {
		parts = strings.Split(s.Raw, ",")
	} else {
		parts = make([]string, 0, len(s.Technical)+len(s.Soft)+len(s.Languages))
		parts = append(parts, s.Technical...)
		parts = append(parts, s.Soft...)
		parts = append(parts, s.Languages...)
	}

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Content is the canonical resume payload, independent of the visual
// template. It is what the form edits, the store persists, and the render
// pipeline projects into preview markup and export documents.
type Content struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary,omitempty"`
	Experience   []Experience `json:"experience,omitempty"`
	Education    []Education  `json:"education,omitempty"`
	Skills       Skills       `json:"skills,omitempty"`
	Projects     []Project    `json:"projects,omitempty"`
}

// IsEmpty reports whether the payload carries no content at all.
func (c Content) IsEmpty() bool {
	if c.PersonalInfo != (PersonalInfo{}) {
		return false
	}
	if strings.TrimSpace(c.Summary) != "" {
		return false
	}
	return len(c.Experience) == 0 && len(c.Education) == 0 &&
		len(c.Skills.Tokens()) == 0 && len(c.Projects) == 0
}
