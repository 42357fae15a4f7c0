package moderate

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"mercator-hq/ganymede/internal/textutil"
)

var (
	phonePattern = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// addressPattern matches a leading house number, a run of words and a
	// street-suffix keyword ("123 Main Street", "9 Elm st").
	addressPattern = regexp.MustCompile(
		`(?i)\b\d+\s+(?:[a-z]+\s+)*(?:` + strings.Join(streetSuffixes, "|") + `)\b`)

	tokenPattern = regexp.MustCompile(`\S+`)
)

// Shouting heuristic constants: uppercase ratio above the threshold with at
// least minShoutLetters letters.
const (
	shoutUpperRatio  = 0.7
	minShoutLetters  = 10
	repetitionRunLen = 5
)

// Moderator classifies text against the content policy taxonomy. The zero
// value is not usable; construct with New. A Moderator is safe for
// concurrent use, including while an overlay reload is in progress.
type Moderator struct {
	mu sync.RWMutex

	profanity          map[string]struct{}
	spamPatterns       []string
	forbiddenNameTerms []string
}

// New creates a Moderator with the built-in term lists.
func New() *Moderator {
	m := &Moderator{}
	m.rebuild(nil)
	return m
}

// rebuild recomputes the term sets from the defaults plus an optional
// overlay. Called under mu (or before the Moderator escapes).
func (m *Moderator) rebuild(o *Overlay) {
	profanity := make(map[string]struct{}, len(defaultProfanity))
	for _, w := range defaultProfanity {
		profanity[w] = struct{}{}
	}

	spam := make([]string, 0, len(defaultSpamPatterns))
	spam = append(spam, defaultSpamPatterns...)

	nameTerms := make([]string, 0, len(defaultForbiddenNameTerms))
	nameTerms = append(nameTerms, defaultForbiddenNameTerms...)

	if o != nil {
		for _, w := range o.Profanity {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				profanity[w] = struct{}{}
			}
		}
		for _, p := range o.SpamPatterns {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				spam = append(spam, p)
			}
		}
		for _, t := range o.ForbiddenNameTerms {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				nameTerms = append(nameTerms, t)
			}
		}
	}

	m.profanity = profanity
	m.spamPatterns = spam
	m.forbiddenNameTerms = nameTerms
}

// IsAppropriate reports whether the text carries no policy violations.
func (m *Moderator) IsAppropriate(text string) bool {
	return len(m.Violations(text)) == 0
}

// Violations returns every policy violation detected in the text, in the
// fixed taxonomy order. Violations are independent: one text can carry all
// of them.
func (m *Moderator) Violations(text string) []Violation {
	if text == "" {
		return nil
	}

	var violations []Violation
	if m.ContainsProfanity(text) {
		violations = append(violations, ViolationProfanity)
	}
	if m.ContainsSpam(text) {
		violations = append(violations, ViolationSpam)
	}
	if m.ContainsPersonalInfo(text) {
		violations = append(violations, ViolationPersonalInfo)
	}
	if hasExcessiveCaps(text) {
		violations = append(violations, ViolationExcessiveCaps)
	}
	if textutil.HasRepeatedRun(text, repetitionRunLen) {
		violations = append(violations, ViolationExcessiveRepetition)
	}
	return violations
}

// Score computes the 0-100 appropriateness score: 100 minus the fixed
// deduction of every detected violation, floored at 0.
func (m *Moderator) Score(text string) int {
	score := 100
	for _, v := range m.Violations(text) {
		score -= v.Deduction()
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ContainsProfanity reports whether any whitespace-delimited token, after
// punctuation stripping, is in the profanity set either literally or after
// leet-speak normalization.
func (m *Moderator) ContainsProfanity(text string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, token := range strings.Fields(strings.ToLower(text)) {
		if m.isProfaneToken(token) {
			return true
		}
	}
	return false
}

// isProfaneToken tests a lowercased token. Called under mu.
func (m *Moderator) isProfaneToken(token string) bool {
	core := trimPunct(token)
	if core == "" {
		return false
	}
	if _, ok := m.profanity[core]; ok {
		return true
	}
	if _, ok := m.profanity[leetNormalize(core)]; ok {
		return true
	}
	return false
}

// FilterProfanity replaces each profane token's core with asterisks of equal
// length, preserving surrounding punctuation and spacing.
func (m *Moderator) FilterProfanity(text string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		lower := strings.ToLower(token)
		if !m.isProfaneToken(lower) {
			return token
		}

		start, end := coreBounds(token)
		masked := strings.Repeat("*", utf8.RuneCountInString(token[start:end]))
		return token[:start] + masked + token[end:]
	})
}

// ContainsSpam reports whether the text matches a spam pattern or carries
// more than the emoji threshold.
func (m *Moderator) ContainsSpam(text string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lower := strings.ToLower(text)
	for _, pattern := range m.spamPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return textutil.CountEmoji(text) > emojiSpamThreshold
}

// ContainsPersonalInfo reports whether the text contains a phone number,
// email address or street address. Any single match is sufficient.
func (m *Moderator) ContainsPersonalInfo(text string) bool {
	return phonePattern.MatchString(text) ||
		emailPattern.MatchString(text) ||
		addressPattern.MatchString(text)
}

// hasExcessiveCaps applies the shouting heuristic.
func hasExcessiveCaps(text string) bool {
	letters, upper := textutil.LetterStats(text)
	if letters < minShoutLetters {
		return false
	}
	return float64(upper)/float64(letters) > shoutUpperRatio
}

// leetNormalize maps leet-speak substitutions back to letters.
func leetNormalize(token string) string {
	return strings.Map(func(r rune) rune {
		if mapped, ok := leetTable[r]; ok {
			return mapped
		}
		return r
	}, token)
}

// trimPunct strips leading and trailing punctuation from a token, keeping
// the leet substitution symbols so obfuscated words survive intact.
func trimPunct(token string) string {
	start, end := coreBounds(token)
	return token[start:end]
}

// coreBounds returns the byte bounds of the token's core (the part left
// after punctuation trimming) in the original token.
func coreBounds(token string) (int, int) {
	isCore := func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		_, leet := leetTable[r]
		return leet
	}

	start := 0
	for start < len(token) {
		r, size := utf8.DecodeRuneInString(token[start:])
		if isCore(r) {
			break
		}
		start += size
	}

	end := len(token)
	for end > start {
		r, size := utf8.DecodeLastRuneInString(token[:end])
		if isCore(r) {
			break
		}
		end -= size
	}

	return start, end
}
