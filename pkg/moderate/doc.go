// Package moderate classifies free-form text against a content policy
// taxonomy and computes a 0-100 appropriateness score.
//
// Detection is rule-based: fixed word sets, substring lists and regular
// expressions. This keeps results fast and deterministic with no model
// dependency.
//
//   - Profanity: word-set membership after punctuation stripping, with a
//     leet-speak normalization pass (sh1t, $hit) re-tested against the same
//     set. The normalization is substitution-table based, not fuzzy matching.
//   - Spam: case-insensitive substring lists (URLs, social handles, payment
//     apps, canned phrases) or an emoji-count threshold.
//   - Personal info: phone, email and street address regexes.
//   - Shouting: uppercase ratio over 0.7 with at least 10 letters.
//   - Repetition: any single character repeated 5+ times consecutively.
//
// Each detected violation carries a fixed score deduction; Score starts at
// 100 and floors at 0. Name validation is a separate rule set tuned for
// short identifiers rather than free text.
//
// # Usage
//
//	mod := moderate.New()
//
//	if !mod.IsAppropriate(text) {
//		violations := mod.Violations(text)
//		// reject or flag, surfacing violations to the caller
//	}
//
// The built-in term lists can be extended at runtime from a YAML overlay
// (see LoadOverlay); the moderator is safe for concurrent use while an
// overlay is being applied.
package moderate
