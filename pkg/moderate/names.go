package moderate

import (
	"strings"
	"unicode/utf8"

	"mercator-hq/ganymede/internal/textutil"
)

// Name validation constants. Names are short identifiers, not free text,
// so they get their own rule set instead of the content score.
const (
	nameMinLength         = 2
	nameMaxLength         = 50
	nameMaxDigits         = 7
	nameMaxSpecialDensity = 0.3
)

// ValidateName validates a display name against the name-specific rule set.
// Checks run in a fixed order and the first failing check's message is
// returned.
func (m *Moderator) ValidateName(name string) NameValidation {
	lower := strings.ToLower(name)
	stripped := strings.Join(strings.Fields(lower), "")

	// Profanity, including the concatenated space-stripped form so
	// "as shole" style splits do not slip through.
	if m.ContainsProfanity(name) || m.isProfane(stripped) {
		return NameValidation{Reason: "name contains inappropriate language"}
	}

	// Dedicated forbidden-term list, substring match on the space-stripped
	// lowercase name.
	m.mu.RLock()
	for _, term := range m.forbiddenNameTerms {
		if strings.Contains(stripped, term) {
			m.mu.RUnlock()
			return NameValidation{Reason: "name contains a prohibited term"}
		}
	}
	m.mu.RUnlock()

	// Phone-number heuristic.
	if textutil.CountDigits(name) >= nameMaxDigits {
		return NameValidation{Reason: "name cannot contain a phone number"}
	}

	if strings.Contains(name, "@") || strings.Contains(lower, ".com") || strings.Contains(lower, ".net") {
		return NameValidation{Reason: "name cannot contain contact information"}
	}

	if textutil.SpecialCharDensity(name) > nameMaxSpecialDensity {
		return NameValidation{Reason: "name contains too many special characters"}
	}

	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < nameMinLength {
		return NameValidation{Reason: "name is too short"}
	}

	if utf8.RuneCountInString(trimmed) > nameMaxLength {
		return NameValidation{Reason: "name is too long"}
	}

	return NameValidation{Valid: true}
}

// isProfane tests a single lowercased, space-stripped string against the
// profanity set (literal and leet-normalized).
func (m *Moderator) isProfane(s string) bool {
	if s == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.profanity[s]; ok {
		return true
	}
	_, ok := m.profanity[leetNormalize(s)]
	return ok
}
