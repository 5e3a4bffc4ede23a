package usecase

import (
	"strings"
	"testing"
)

func TestBuildVerificationEmail(t *testing.T) {
	subject, body, err := buildVerificationEmail("Taro", "taro@example.com", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if subject != "Resume Builder - Email Verification Code" {
		t.Errorf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "123456") {
		t.Errorf("body should contain the code")
	}
	if !strings.Contains(body, "Taro") {
		t.Errorf("body should greet the user by name")
	}
}

func TestBuildVerificationEmail_EscapesHTML(t *testing.T) {
	_, body, err := buildVerificationEmail("<script>alert(1)</script>", "x@example.com", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(body, "<script>") {
		t.Errorf("name should be HTML-escaped")
	}
}
