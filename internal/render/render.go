// Package render projects resume content into its output representations:
// preview markup for the builder UI, and PDF or DOC payloads for export.
// Everything here is a pure function of the content; the selected template
// contributes only a style class and never changes section inclusion or
// order. Sections always appear as header, summary, experience, education,
// skills, and a section is omitted entirely when its inclusion predicate
// fails.
package render

import (
	"errors"
	"strings"

	"resume_backend/internal/feature/resume/domain/entity"
)

// ErrNameRequired is returned by the export renderers when the full name is
// blank. The name is the single field gating export; everything else
// degrades to placeholders.
var ErrNameRequired = errors.New("full name is required for export")

// Placeholders substituted for blank fields. Entries missing every field are
// suppressed instead.
const (
	placeholderName        = "Your Name"
	placeholderEmail       = "email@example.com"
	placeholderPhone       = "(555) 123-4567"
	placeholderAddress     = "City, State"
	placeholderJobTitle    = "Job Title"
	placeholderCompany     = "Company Name"
	placeholderDuration    = "Duration"
	placeholderDegree      = "Degree"
	placeholderInstitution = "Institution"
	placeholderYear        = "Year"
)

// entryView is a display-ready experience or education entry with
// placeholders already applied.
type entryView struct {
	Title       string
	Subtitle    string
	Duration    string
	Description string
}

// view is the display-ready projection shared by the preview and DOC
// renderers; the PDF renderer walks the same struct with a layout cursor.
type view struct {
	StyleClass string
	Name       string
	Email      string
	Phone      string
	Address    string
	Summary    string
	Experience []entryView
	Education  []entryView
	Skills     []string
}

// Contact joins the contact fields with the display separator.
func (v view) Contact() string {
	return v.Email + " • " + v.Phone + " • " + v.Address
}

// SkillsLine joins skill tokens for flowing-text output.
func (v view) SkillsLine() string {
	return strings.Join(v.Skills, ", ")
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// buildView applies the section inclusion predicates and per-field
// placeholders once, so every output format agrees on what is shown.
func buildView(c entity.Content, styleClass string) view {
	v := view{
		StyleClass: styleClass,
		Name:       orPlaceholder(c.PersonalInfo.FullName, placeholderName),
		Email:      orPlaceholder(c.PersonalInfo.Email, placeholderEmail),
		Phone:      orPlaceholder(c.PersonalInfo.Phone, placeholderPhone),
		Address:    orPlaceholder(c.PersonalInfo.Address, placeholderAddress),
		Summary:    strings.TrimSpace(c.Summary),
		Skills:     c.Skills.Tokens(),
	}

	for _, exp := range c.Experience {
		if !exp.Renderable() {
			continue
		}
		v.Experience = append(v.Experience, entryView{
			Title:       orPlaceholder(exp.Title, placeholderJobTitle),
			Subtitle:    orPlaceholder(exp.Company, placeholderCompany),
			Duration:    orPlaceholder(exp.Duration, placeholderDuration),
			Description: strings.TrimSpace(exp.Description),
		})
	}

	for _, edu := range c.Education {
		if !edu.Renderable() {
			continue
		}
		v.Education = append(v.Education, entryView{
			Title:    orPlaceholder(edu.Degree, placeholderDegree),
			Subtitle: orPlaceholder(edu.Institution, placeholderInstitution),
			Duration: orPlaceholder(edu.Year, placeholderYear),
		})
	}

	return v
}
