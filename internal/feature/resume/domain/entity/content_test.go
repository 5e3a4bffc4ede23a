package entity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSkills_UnmarshalJSON(t *testing.T) {
	t.Run("comma separated string", func(t *testing.T) {
		var s Skills
		if err := json.Unmarshal([]byte(`"Go, SQL, Docker"`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Raw != "Go, SQL, Docker" {
			t.Errorf("raw mismatch: %q", s.Raw)
		}
	})

	t.Run("grouped object", func(t *testing.T) {
		var s Skills
		payload := `{"technical":["Go","SQL"],"soft":["Leadership"],"languages":["Japanese"]}`
		if err := json.Unmarshal([]byte(payload), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(s.Technical, []string{"Go", "SQL"}) {
			t.Errorf("technical mismatch: %v", s.Technical)
		}
		if !reflect.DeepEqual(s.Soft, []string{"Leadership"}) {
			t.Errorf("soft mismatch: %v", s.Soft)
		}
	})

	t.Run("null", func(t *testing.T) {
		var s Skills
		if err := json.Unmarshal([]byte(`null`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Tokens()) != 0 {
			t.Errorf("null should produce no tokens")
		}
	})
}

func TestSkills_Tokens(t *testing.T) {
	tests := []struct {
		name   string
		skills Skills
		want   []string
	}{
		{
			name:   "raw string splits and trims",
			skills: Skills{Raw: "Go, Rust , , Python"},
			want:   []string{"Go", "Rust", "Python"},
		},
		{
			name: "groups flatten in order",
			skills: Skills{
				Technical: []string{"Go"},
				Soft:      []string{"Leadership"},
				Languages: []string{"Japanese", "English"},
			},
			want: []string{"Go", "Leadership", "Japanese", "English"},
		},
		{
			name:   "only separators",
			skills: Skills{Raw: " , ,, "},
			want:   []string{},
		},
		{
			name:   "empty",
			skills: Skills{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.skills.Tokens()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContent_RoundTripsThroughJSON(t *testing.T) {
	payload := `{
		"personalInfo": {"fullName": "Taro Yamada", "email": "taro@example.com"},
		"summary": "Engineer",
		"experience": [{"title": "Dev", "company": "Acme"}],
		"skills": "Go, SQL"
	}`

	var c Content
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PersonalInfo.FullName != "Taro Yamada" {
		t.Errorf("name mismatch")
	}
	if got := c.Skills.Tokens(); !reflect.DeepEqual(got, []string{"Go", "SQL"}) {
		t.Errorf("skills tokens mismatch: %v", got)
	}

	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var again Content
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Skills.Raw != "Go, SQL" {
		t.Errorf("raw skills should survive a round trip, got %q", again.Skills.Raw)
	}
}

func TestContent_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    bool
	}{
		{"zero value", Content{}, true},
		{"whitespace summary", Content{Summary: "   "}, true},
		{"name set", Content{PersonalInfo: PersonalInfo{FullName: "Taro"}}, false},
		{"summary set", Content{Summary: "Engineer"}, false},
		{"experience set", Content{Experience: []Experience{{Title: "Dev"}}}, false},
		{"skills set", Content{Skills: Skills{Raw: "Go"}}, false},
		{"blank skills string", Content{Skills: Skills{Raw: " , "}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExperience_Renderable(t *testing.T) {
	tests := []struct {
		name string
		exp  Experience
		want bool
	}{
		{"title only", Experience{Title: "Dev"}, true},
		{"company only", Experience{Company: "Acme"}, true},
		{"duration and description only", Experience{Duration: "2020", Description: "x"}, false},
		{"whitespace anchors", Experience{Title: " ", Company: "\t"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.exp.Renderable(); got != tt.want {
				t.Errorf("Renderable() = %v, want %v", got, tt.want)
			}
		})
	}
}
