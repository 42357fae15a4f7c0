package moderate

import (
	"strings"
	"testing"
)

func TestModerator_ContainsProfanity(t *testing.T) {
	mod := New()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"clean text", "hello", false},
		{"plain profanity", "this is shit", true},
		{"uppercase", "SHIT happens", true},
		{"leet substitution", "sh1t", true},
		{"dollar leet", "$hit", true},
		{"at-sign leet", "@sshole", true},
		{"punctuation wrapped", "shit!", true},
		{"substring is not a word match", "scunthorpe", false},
		{"clean leet-looking token", "h3llo", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mod.ContainsProfanity(tt.text); got != tt.expected {
				t.Errorf("ContainsProfanity(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestModerator_FilterProfanity(t *testing.T) {
	mod := New()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"single word", "what the fuck", "what the ****"},
		{"preserves punctuation", "shit!", "****!"},
		{"leet masked too", "sh1t happens", "**** happens"},
		{"clean passthrough", "hello world", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mod.FilterProfanity(tt.text); got != tt.expected {
				t.Errorf("FilterProfanity(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestModerator_ContainsSpam(t *testing.T) {
	mod := New()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"clean text", "want to grab coffee sometime?", false},
		{"url", "look at https://evil.example", true},
		{"social handle bait", "add me on snapchat", true},
		{"payment app", "send it to my cashapp", true},
		{"canned phrase", "MAKE MONEY FAST with this trick", true},
		{"emoji flood", strings.Repeat("🔥", 11), true},
		{"a few emoji are fine", "nice day 😀😀", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mod.ContainsSpam(tt.text); got != tt.expected {
				t.Errorf("ContainsSpam(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestModerator_ContainsPersonalInfo(t *testing.T) {
	mod := New()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"clean text", "meet me downtown", false},
		{"phone dashed", "call 555-123-4567", true},
		{"phone dotted", "call 555.123.4567", true},
		{"phone bare", "5551234567", true},
		{"email", "write to user@example.com", true},
		{"street address", "I live at 123 Main Street", true},
		{"abbreviated street", "9 Elm st and then left", true},
		{"number without street", "I have 42 reasons", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mod.ContainsPersonalInfo(tt.text); got != tt.expected {
				t.Errorf("ContainsPersonalInfo(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestModerator_Violations(t *testing.T) {
	mod := New()

	tests := []struct {
		name     string
		text     string
		expected []Violation
	}{
		{
			name:     "clean",
			text:     "hello there",
			expected: nil,
		},
		{
			name:     "empty",
			text:     "",
			expected: nil,
		},
		{
			name:     "shouting",
			text:     "WHY ARE WE YELLING HERE",
			expected: []Violation{ViolationExcessiveCaps},
		},
		{
			name:     "repetition",
			text:     "hiiiiiiii",
			expected: []Violation{ViolationExcessiveRepetition},
		},
		{
			name:     "profanity and spam stack",
			text:     "shit, check out https://evil.example",
			expected: []Violation{ViolationProfanity, ViolationSpam},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mod.Violations(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("Violations(%q) = %v, want %v", tt.text, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Violations(%q)[%d] = %v, want %v", tt.text, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestModerator_Score(t *testing.T) {
	mod := New()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"clean text", "hello there", 100},
		{"profanity", "this is shit", 60},
		{"spam", "check https://evil.example", 70},
		{"personal info", "call 555-123-4567", 80},
		{"shouting", "STOP YELLING AT ME NOW", 90},
		{"repetition", "wooooooow", 90},
		{
			"everything at once floors at zero",
			"SHIT SHIT BUY NOW AT HTTPS://EVIL.EXAMPLE CALL 555-123-4567 AAAAAAA",
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mod.Score(tt.text); got != tt.expected {
				t.Errorf("Score(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

// Adding a detectable violation to a text must never increase its score.
func TestModerator_ScoreMonotone(t *testing.T) {
	mod := New()

	base := "nice to meet you"
	additions := []string{
		"shit",
		"https://evil.example",
		"555-123-4567",
		"AAAAAAAAAAAAAAA",
	}

	baseScore := mod.Score(base)
	if baseScore < 0 || baseScore > 100 {
		t.Fatalf("score out of range: %d", baseScore)
	}

	text := base
	prev := baseScore
	for _, add := range additions {
		text = text + " " + add
		score := mod.Score(text)
		if score < 0 || score > 100 {
			t.Fatalf("score out of range for %q: %d", text, score)
		}
		if score > prev {
			t.Errorf("score increased after adding %q: %d -> %d", add, prev, score)
		}
		prev = score
	}
}

func TestModerator_IsAppropriate(t *testing.T) {
	mod := New()

	if !mod.IsAppropriate("lovely weather today") {
		t.Error("clean text should be appropriate")
	}
	if mod.IsAppropriate("this is shit") {
		t.Error("profane text should not be appropriate")
	}
}

func TestModerator_ApplyOverlay(t *testing.T) {
	mod := New()

	if mod.ContainsProfanity("blorbo") {
		t.Fatal("unexpected match before overlay")
	}

	mod.ApplyOverlay(&Overlay{
		Profanity:    []string{"blorbo"},
		SpamPatterns: []string{"limited drop"},
	})

	if !mod.ContainsProfanity("blorbo") {
		t.Error("overlay profanity term not applied")
	}
	if !mod.ContainsSpam("get the LIMITED DROP now") {
		t.Error("overlay spam pattern not applied")
	}

	// Reset drops the overlay terms but keeps the defaults.
	mod.ApplyOverlay(nil)
	if mod.ContainsProfanity("blorbo") {
		t.Error("overlay term survived reset")
	}
	if !mod.ContainsProfanity("shit") {
		t.Error("default term lost after reset")
	}
}

func BenchmarkModeratorViolations(b *testing.B) {
	mod := New()
	text := "Hey! Check out my profile at https://example.com or call 555-123-4567, it is GREAT"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mod.Violations(text)
	}
}
