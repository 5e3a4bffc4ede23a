package render

import "testing"

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		ext      string
		want     string
	}{
		{
			name:     "simple name",
			fullName: "Taro Yamada",
			ext:      "pdf",
			want:     "taro_yamada_resume.pdf",
		},
		{
			name:     "punctuation collapses to single separators",
			fullName: "John O'Brien Jr.",
			ext:      "pdf",
			want:     "john_o_brien_jr_resume.pdf",
		},
		{
			name:     "surrounding junk is trimmed",
			fullName: "  --Alice--  ",
			ext:      "doc",
			want:     "alice_resume.doc",
		},
		{
			name:     "digits survive",
			fullName: "Agent 007",
			ext:      "pdf",
			want:     "agent_007_resume.pdf",
		},
		{
			name:     "nothing usable falls back to the bare token",
			fullName: "!!!",
			ext:      "pdf",
			want:     "resume.pdf",
		},
		{
			name:     "empty name falls back to the bare token",
			fullName: "",
			ext:      "doc",
			want:     "resume.doc",
		},
		{
			name:     "non-ascii name falls back to the bare token",
			fullName: "山田 太郎",
			ext:      "pdf",
			want:     "resume.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.fullName, tt.ext)
			if got != tt.want {
				t.Errorf("Filename(%q, %q) = %q, want %q", tt.fullName, tt.ext, got, tt.want)
			}
		})
	}
}
