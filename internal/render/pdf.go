package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"resume_backend/internal/feature/resume/domain/entity"
)

// PDFContentType is the media type of the PDF export payload.
const PDFContentType = "application/pdf"

// Layout constants, in millimeters on an A4 portrait page. The bottom
// thresholds differ per section so a section header is never orphaned at
// the very bottom of a page.
const (
	leftMargin   = 20.0
	contentWidth = 170.0
	lineStep     = 7.0

	entryBreakAt  = 250.0
	eduBreakAt    = 220.0
	skillsBreakAt = 240.0
)

// pdfCursor advances a vertical write position down an fpdf page.
type pdfCursor struct {
	pdf *fpdf.Fpdf
	// tr maps UTF-8 to the cp1252 range of the core fonts (the bullet
	// separator is outside ASCII).
	tr func(string) string
	y  float64
}

// text writes a single line at the cursor without advancing it.
func (c *pdfCursor) text(s string) {
	c.pdf.Text(leftMargin, c.y, c.tr(s))
}

// lines writes wrapped text, advancing one step per emitted line.
func (c *pdfCursor) lines(s string) {
	for _, line := range c.pdf.SplitText(c.tr(s), contentWidth) {
		c.pdf.Text(leftMargin, c.y, line)
		c.y += lineStep
	}
}

// breakPage starts a new page when the cursor has passed the threshold.
func (c *pdfCursor) breakPage(threshold float64) {
	if c.y > threshold {
		c.pdf.AddPage()
		c.y = 30
	}
}

// header writes a 14pt section header and positions the cursor for body text.
func (c *pdfCursor) header(title string) {
	c.pdf.SetFont("Helvetica", "", 14)
	c.text(title)
	c.y += 10
	c.pdf.SetFont("Helvetica", "", 12)
}

// PDF renders the paginated export document. It refuses when the full name
// is blank; every other blank degrades to the same placeholders the preview
// uses, under the same section inclusion rules.
func PDF(c entity.Content) ([]byte, error) {
	if strings.TrimSpace(c.PersonalInfo.FullName) == "" {
		return nil, ErrNameRequired
	}
	v := buildView(c, "")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	cur := &pdfCursor{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), y: 30}

	pdf.SetFont("Helvetica", "", 20)
	cur.text(v.Name)

	pdf.SetFont("Helvetica", "", 12)
	cur.y = 50
	cur.text(v.Email + " • " + v.Phone)
	cur.y += 10
	cur.text(v.Address)
	cur.y += 20

	if v.Summary != "" {
		cur.header("Professional Summary")
		cur.lines(v.Summary)
		cur.y += 10
	}

	if len(v.Experience) > 0 {
		cur.header("Experience")
		for _, exp := range v.Experience {
			cur.breakPage(entryBreakAt)
			pdf.SetFont("Helvetica", "B", 12)
			cur.text(exp.Title)
			cur.y += lineStep
			pdf.SetFont("Helvetica", "", 12)
			cur.text(exp.Subtitle + " • " + exp.Duration)
			cur.y += lineStep
			if exp.Description != "" {
				cur.lines(exp.Description)
			}
			cur.y += 5
		}
		cur.y += 10
	}

	if len(v.Education) > 0 {
		cur.breakPage(eduBreakAt)
		cur.header("Education")
		for _, edu := range v.Education {
			pdf.SetFont("Helvetica", "B", 12)
			cur.text(edu.Title)
			cur.y += lineStep
			pdf.SetFont("Helvetica", "", 12)
			cur.text(edu.Subtitle + " • " + edu.Duration)
			cur.y += 12
		}
		cur.y += 10
	}

	if len(v.Skills) > 0 {
		cur.breakPage(skillsBreakAt)
		cur.header("Skills")
		cur.lines(v.SkillsLine())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to emit pdf: %w", err)
	}
	return buf.Bytes(), nil
}
