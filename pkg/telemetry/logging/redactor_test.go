package logging

import (
	"strings"
	"testing"
)

func TestRedactString(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		name    string
		input   string
		absent  []string
		present []string
	}{
		{
			name:    "email",
			input:   "reach me at jane.doe@example.com please",
			absent:  []string{"jane.doe@example.com"},
			present: []string{"***@***"},
		},
		{
			name:    "phone",
			input:   "call 555-123-4567 anytime",
			absent:  []string{"555-123-4567"},
			present: []string{"***-***-****"},
		},
		{
			name:    "phone with dots",
			input:   "call 555.123.4567 anytime",
			absent:  []string{"555.123.4567"},
			present: []string{"***-***-****"},
		},
		{
			name:    "street address",
			input:   "I live at 123 Main Street downtown",
			absent:  []string{"123 Main Street"},
			present: []string{"[address]"},
		},
		{
			name:    "bearer token",
			input:   "header was Bearer abc123.def456",
			absent:  []string{"abc123.def456"},
			present: []string{"Bearer ***"},
		},
		{
			name:    "password field",
			input:   "password: hunter2",
			absent:  []string{"hunter2"},
			present: []string{"password: ***"},
		},
		{
			name:    "clean text untouched",
			input:   "moderation score dropped to 60",
			present: []string{"moderation score dropped to 60"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RedactString(tt.input)
			for _, s := range tt.absent {
				if strings.Contains(got, s) {
					t.Errorf("RedactString(%q) = %q, still contains %q", tt.input, got, s)
				}
			}
			for _, s := range tt.present {
				if !strings.Contains(got, s) {
					t.Errorf("RedactString(%q) = %q, missing %q", tt.input, got, s)
				}
			}
		})
	}
}

func TestRedactArgs_SensitiveKeys(t *testing.T) {
	r := NewRedactor()

	args := r.RedactArgs("user_email", "jane@example.com", "score", 85, "auth_token", "abc123")

	if args[1] != "***" {
		t.Errorf("email value = %v, want ***", args[1])
	}
	if args[3] != 85 {
		t.Errorf("non-sensitive value changed: %v", args[3])
	}
	if args[5] != "***" {
		t.Errorf("token value = %v, want ***", args[5])
	}
}

func TestRedactArgs_PatternScrubOnPlainKeys(t *testing.T) {
	r := NewRedactor()

	args := r.RedactArgs("snippet", "text my number 555-123-4567")

	val, ok := args[1].(string)
	if !ok {
		t.Fatalf("value is %T", args[1])
	}
	if strings.Contains(val, "555-123-4567") {
		t.Errorf("phone number survived scrub: %q", val)
	}
}

func TestRedactArgs_Empty(t *testing.T) {
	r := NewRedactor()
	if got := r.RedactArgs(); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"jane@example.com", "j***@example.com"},
		{"a@b.co", "a***@b.co"},
		{"not-an-email", "not-an-email"},
	}

	for _, tt := range tests {
		if got := RedactEmail(tt.input); got != tt.want {
			t.Errorf("RedactEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRedactPhone(t *testing.T) {
	if got := RedactPhone("555-123-4567"); got != "***-***-**67" {
		t.Errorf("RedactPhone = %q", got)
	}
	// Too few digits to be a phone number.
	if got := RedactPhone("12345"); got != "12345" {
		t.Errorf("RedactPhone = %q", got)
	}
}
