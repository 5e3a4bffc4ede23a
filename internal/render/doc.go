package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"resume_backend/internal/feature/resume/domain/entity"
)

// DocContentType is the media type the original export advertised. The
// payload is a self-contained styled HTML document served with a .doc
// extension, a compatibility artifact rather than a real OOXML package.
const DocContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var docTmpl = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Name}}</title>
<style>
  body { font-family: 'Arial', sans-serif; line-height: 1.6; max-width: 8.5in; margin: 0 auto; padding: 1in; }
  .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #333; padding-bottom: 20px; }
  .name { font-size: 28px; font-weight: bold; color: #333; margin-bottom: 10px; }
  .contact { color: #666; font-size: 14px; }
  .section { margin-bottom: 25px; }
  .section-title { font-size: 18px; font-weight: bold; color: #333; border-bottom: 1px solid #ccc; padding-bottom: 5px; margin-bottom: 15px; }
  .item { margin-bottom: 15px; }
  .item-title { font-weight: bold; color: #333; font-size: 16px; }
  .item-subtitle { color: #666; font-style: italic; margin-bottom: 5px; }
  .item-description { color: #444; margin-top: 5px; line-height: 1.5; }
  .skills-list { color: #444; line-height: 1.8; }
  .summary { color: #444; line-height: 1.6; margin-bottom: 20px; text-align: justify; }
</style>
</head>
<body>
<div class="header">
  <div class="name">{{.Name}}</div>
  <div class="contact">{{.Contact}}</div>
</div>
{{- if .Summary}}
<div class="section">
  <div class="section-title">PROFESSIONAL SUMMARY</div>
  <div class="summary">{{.Summary}}</div>
</div>
{{- end}}
{{- if .Experience}}
<div class="section">
  <div class="section-title">PROFESSIONAL EXPERIENCE</div>
{{- range .Experience}}
  <div class="item">
    <div class="item-title">{{.Title}}</div>
    <div class="item-subtitle">{{.Subtitle}} • {{.Duration}}</div>
{{- if .Description}}
    <div class="item-description">{{.Description}}</div>
{{- end}}
  </div>
{{- end}}
</div>
{{- end}}
{{- if .Education}}
<div class="section">
  <div class="section-title">EDUCATION</div>
{{- range .Education}}
  <div class="item">
    <div class="item-title">{{.Title}}</div>
    <div class="item-subtitle">{{.Subtitle}} • {{.Duration}}</div>
  </div>
{{- end}}
</div>
{{- end}}
{{- if .Skills}}
<div class="section">
  <div class="section-title">SKILLS</div>
  <div class="skills-list">{{.SkillsBullets}}</div>
</div>
{{- end}}
<div style="margin-top: 40px; text-align: center; color: #666; font-size: 12px;">
  Generated by Resume Builder
</div>
</body>
</html>
`))

// docView adds the DOC-specific skill joining to the shared view.
type docView struct {
	view
}

// SkillsBullets joins skill tokens with the bullet separator used in the
// document body.
func (v docView) SkillsBullets() string {
	return strings.Join(v.Skills, " • ")
}

// Doc renders the styled-document export payload. Same refusal rule and
// section predicates as PDF.
func Doc(c entity.Content) ([]byte, error) {
	if strings.TrimSpace(c.PersonalInfo.FullName) == "" {
		return nil, ErrNameRequired
	}

	var buf bytes.Buffer
	if err := docTmpl.Execute(&buf, docView{view: buildView(c, "")}); err != nil {
		return nil, fmt.Errorf("failed to render doc: %w", err)
	}
	return buf.Bytes(), nil
}
