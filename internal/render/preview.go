package render

import (
	"fmt"
	"html/template"
	"strings"

	"resume_backend/internal/feature/resume/domain/entity"
)

// previewTmpl mirrors the builder UI's live preview markup. The style class
// from the selected template lands on the container and nowhere else.
var previewTmpl = template.Must(template.New("preview").Parse(`<div class="resume-container {{.StyleClass}}">
  <div class="resume-header">
    <div class="resume-name">{{.Name}}</div>
    <div class="resume-contact">{{.Contact}}</div>
  </div>
{{- if .Summary}}
  <div class="resume-section">
    <div class="resume-section-title">Professional Summary</div>
    <div class="resume-summary">{{.Summary}}</div>
  </div>
{{- end}}
{{- if .Experience}}
  <div class="resume-section">
    <div class="resume-section-title">Experience</div>
{{- range .Experience}}
    <div class="resume-item">
      <div class="resume-item-title">{{.Title}}</div>
      <div class="resume-item-subtitle">{{.Subtitle}}</div>
      <div class="resume-item-duration">{{.Duration}}</div>
{{- if .Description}}
      <div class="resume-item-description">{{.Description}}</div>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
{{- if .Education}}
  <div class="resume-section">
    <div class="resume-section-title">Education</div>
{{- range .Education}}
    <div class="resume-item">
      <div class="resume-item-title">{{.Title}}</div>
      <div class="resume-item-subtitle">{{.Subtitle}}</div>
      <div class="resume-item-duration">{{.Duration}}</div>
    </div>
{{- end}}
  </div>
{{- end}}
{{- if .Skills}}
  <div class="resume-section">
    <div class="resume-section-title">Skills</div>
    <div class="resume-skills">
{{- range .Skills}}
      <span class="resume-skill">{{.}}</span>
{{- end}}
    </div>
  </div>
{{- end}}
</div>
`))

// Preview renders the live-preview markup for the given content and template
// style class. It never fails on missing fields; blanks become placeholders
// and empty sections disappear.
func Preview(c entity.Content, styleClass string) (string, error) {
	var sb strings.Builder
	if err := previewTmpl.Execute(&sb, buildView(c, styleClass)); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return sb.String(), nil
}
