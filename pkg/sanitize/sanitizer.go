package sanitize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	decimalEntity = regexp.MustCompile(`&#[0-9]{1,7};`)
	hexEntity     = regexp.MustCompile(`&#[xX][0-9a-fA-F]{1,6};`)
)

// Sanitize normalizes and strips dangerous content from free-form text.
// It is a pure function and never fails: malformed or empty input yields
// empty or passthrough output.
//
// The transformation pipeline runs to a fixed point, which makes Sanitize
// idempotent at a given level even when a deletion splices a new attack
// pattern together out of surrounding characters.
func Sanitize(text string, level Level) string {
	switch level {
	case LevelBasic:
		return strings.TrimSpace(text)
	case LevelStrict:
		return toFixpoint(strictPass, text)
	default:
		return toFixpoint(standardPass, text)
	}
}

// NormalizeEmail lowercases and trims an email address. Account flows apply
// this to email fields before any further checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// toFixpoint applies pass repeatedly until the output stops changing.
// Every changing pass either deletes characters or normalizes a single
// whitespace run to a space, so the loop terminates within len(s)+2
// iterations. Deeply nested payloads that re-splice a pattern on each
// deletion need one pass per nesting level to fully unwind.
func toFixpoint(pass func(string) string, s string) string {
	for i := 0; i <= len(s)+1; i++ {
		next := pass(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

// standardPass applies the LevelStandard layers once, in strict order.
// Order matters: each layer closes a bypass vector opened by the previous
// one (entity decoding reveals encoded tags so tag removal can catch them,
// whitespace collapsing defeats "<scr ipt>" style obfuscation, and so on).
func standardPass(s string) string {
	s = strings.TrimSpace(s)
	s = stripControl(s)
	s = collapseWhitespace(s)
	s = decodeEntities(s)
	s = removeTags(s)
	s = removeEventHandlers(s)
	s = removeSchemes(s)
	s = removeResidualPatterns(s)
	return strings.TrimSpace(s)
}

// strictPass applies the Standard layers, then deletes the forbidden
// character set and re-collapses whitespace.
func strictPass(s string) string {
	s = standardPass(s)
	s = removeChars(s, forbiddenChars)
	s = collapseWhitespace(s)
	return strings.TrimSpace(s)
}

// stripControl removes control characters and embedded null bytes. Tabs,
// newlines and carriage returns survive this layer; the whitespace collapse
// that follows normalizes them. Stripping nulls here defeats null-byte
// truncation bypasses that downstream scanners rely on.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || r == unicode.ReplacementChar {
			return -1
		}
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, s)
}

// collapseWhitespace collapses runs of whitespace to a single space.
func collapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// decodeEntities decodes the fixed table of HTML entities (named plus
// decimal and hex numeric forms) to their literal characters. This
// deliberately reveals encoded attacks so the removal layers can catch them.
// The ampersand entity decodes last so it cannot manufacture a fresh entity
// for the earlier replacements in the same pass.
func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	s = decimalEntity.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || n <= 0 || n > unicode.MaxRune {
			return ""
		}
		return string(rune(n))
	})

	s = hexEntity.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.ParseInt(m[3:len(m)-1], 16, 32)
		if err != nil || n <= 0 || n > unicode.MaxRune {
			return ""
		}
		return string(rune(n))
	})

	for entity, literal := range namedEntities {
		s = replaceAllFold(s, entity, literal)
	}

	return replaceAllFold(s, "&amp;", "&")
}

// removeTags removes the opening and closing fragments of every dangerous
// tag. This is substring-based, not a parse: "<script src=x>" loses its
// "<script" fragment and any remaining attribute text is handled by the
// later layers.
func removeTags(s string) string {
	if !strings.ContainsAny(s, "<") {
		return s
	}
	for _, tag := range dangerousTags {
		s = replaceAllFold(s, "<"+tag, "")
		s = replaceAllFold(s, "</"+tag, "")
	}
	return s
}

// removeEventHandlers removes inline event handler attribute names.
func removeEventHandlers(s string) string {
	lowered := asciiLower(s)
	if !strings.Contains(lowered, "on") {
		return s
	}
	for _, handler := range eventHandlers {
		s = replaceAllFold(s, handler+"=", "")
	}
	return s
}

// removeSchemes removes dangerous URI schemes.
func removeSchemes(s string) string {
	for _, scheme := range dangerousSchemes {
		s = replaceAllFold(s, scheme, "")
	}
	return s
}

// removeResidualPatterns removes attack substrings that survive the earlier
// layers.
func removeResidualPatterns(s string) string {
	for _, pattern := range residualPatterns {
		s = replaceAllFold(s, pattern, "")
	}
	return s
}

// removeChars deletes every occurrence of the given characters.
func removeChars(s, chars string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// replaceAllFold replaces every occurrence of pattern in s with repl,
// matching ASCII case-insensitively. Patterns are ASCII, so byte-wise
// lowering keeps match offsets aligned with the original string.
func replaceAllFold(s, pattern, repl string) string {
	lowered := asciiLower(s)
	pattern = asciiLower(pattern)

	i := strings.Index(lowered, pattern)
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	start := 0
	for i >= 0 {
		b.WriteString(s[start : start+i])
		b.WriteString(repl)
		start += i + len(pattern)
		i = strings.Index(lowered[start:], pattern)
	}
	b.WriteString(s[start:])
	return b.String()
}

// asciiLower lowercases ASCII letters without changing byte length.
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
