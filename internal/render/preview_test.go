package render

import (
	"strings"
	"testing"

	"resume_backend/internal/feature/resume/domain/entity"
)

func fullContent() entity.Content {
	return entity.Content{
		PersonalInfo: entity.PersonalInfo{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Phone:    "090-1234-5678",
			Address:  "Tokyo, Japan",
		},
		Summary: "Backend engineer with 10 years of experience.",
		Experience: []entity.Experience{
			{Title: "Senior Engineer", Company: "Acme", Duration: "2019 - 2024", Description: "Built services."},
		},
		Education: []entity.Education{
			{Degree: "BSc Computer Science", Institution: "Tokyo University", Year: "2014"},
		},
		Skills: entity.Skills{Raw: "Go, SQL, Docker"},
	}
}

func TestPreview_FullContent(t *testing.T) {
	markup, err := Preview(fullContent(), "resume-modern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`class="resume-container resume-modern"`,
		`<div class="resume-name">Taro Yamada</div>`,
		"taro@example.com • 090-1234-5678 • Tokyo, Japan",
		"Professional Summary",
		"Senior Engineer",
		"BSc Computer Science",
		`<span class="resume-skill">Go</span>`,
		`<span class="resume-skill">Docker</span>`,
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing %q", want)
		}
	}
}

func TestPreview_SectionOrderIsFixed(t *testing.T) {
	markup, err := Preview(fullContent(), "resume-classic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := []string{"Professional Summary", "Experience", "Education", "Skills"}
	last := -1
	for _, title := range order {
		idx := strings.Index(markup, ">"+title+"<")
		if idx < 0 {
			t.Fatalf("section %q missing", title)
		}
		if idx < last {
			t.Errorf("section %q appears out of order", title)
		}
		last = idx
	}
}

func TestPreview_EmptyContentUsesPlaceholders(t *testing.T) {
	markup, err := Preview(entity.Content{}, "resume-modern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Your Name", "email@example.com", "(555) 123-4567", "City, State"} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing placeholder %q", want)
		}
	}

	// Empty sections disappear entirely
	for _, section := range []string{"Professional Summary", "Experience", "Education", "Skills"} {
		if strings.Contains(markup, ">"+section+"<") {
			t.Errorf("empty section %q should be omitted", section)
		}
	}
}

func TestPreview_EntryPredicates(t *testing.T) {
	c := entity.Content{
		PersonalInfo: entity.PersonalInfo{FullName: "Taro Yamada"},
		Experience: []entity.Experience{
			{Title: "", Company: "", Duration: "2020", Description: "ignored"}, // both anchors blank
			{Title: "Engineer"}, // title alone keeps the entry
		},
		Education: []entity.Education{
			{Degree: "", Institution: "", Year: "2014"}, // both anchors blank
		},
	}

	markup, err := Preview(c, "resume-modern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Count(markup, `<div class="resume-item">`) != 1 {
		t.Errorf("only the anchored experience entry should render")
	}
	if strings.Contains(markup, ">Education<") {
		t.Errorf("education with no renderable entries should be omitted")
	}
	// Blank fields inside a kept entry fall back to placeholders
	for _, want := range []string{"Company Name", "Duration"} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing entry placeholder %q", want)
		}
	}
}

func TestPreview_EscapesUserInput(t *testing.T) {
	c := entity.Content{
		PersonalInfo: entity.PersonalInfo{FullName: `<script>alert("x")</script>`},
	}

	markup, err := Preview(c, "resume-modern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(markup, "<script>") {
		t.Errorf("user input should be HTML-escaped")
	}
}

func TestPreview_GroupedSkillsFlatten(t *testing.T) {
	c := entity.Content{
		PersonalInfo: entity.PersonalInfo{FullName: "Taro Yamada"},
		Skills: entity.Skills{
			Technical: []string{"Go", "SQL"},
			Soft:      []string{"Leadership"},
			Languages: []string{"Japanese"},
		},
	}

	markup, err := Preview(c, "resume-modern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Groups flatten in a fixed order
	goIdx := strings.Index(markup, ">Go<")
	leadIdx := strings.Index(markup, ">Leadership<")
	jpIdx := strings.Index(markup, ">Japanese<")
	if goIdx < 0 || leadIdx < 0 || jpIdx < 0 {
		t.Fatalf("grouped skills missing from markup")
	}
	if !(goIdx < leadIdx && leadIdx < jpIdx) {
		t.Errorf("skills should flatten technical, soft, languages in order")
	}
}
