// Package sanitize neutralizes injection and markup attacks in user-supplied
// text and provides output encoders for different rendering contexts.
//
// This package implements a layered, pattern-based sanitization pipeline:
//
//   - Control character and null byte stripping
//   - Whitespace collapsing (defeats spacing-based tag obfuscation)
//   - HTML entity decoding (reveals encoded attacks for later layers)
//   - Dangerous tag fragment removal (script, SVG, form, structural tags)
//   - Inline event handler removal (onclick=, onerror=, ...)
//   - URI scheme removal (javascript:, vbscript:, data:)
//   - Residual attack pattern removal (eval(, document., escape prefixes)
//
// Sanitization is deliberately substring-based rather than a full HTML parse.
// This keeps the pipeline fast and deterministic and matches the permissive
// behavior moderation flows depend on.
//
// # Sanitization Levels
//
// Three levels control how much transformation is applied:
//
//   - LevelBasic: trim surrounding whitespace only
//   - LevelStandard: the full attack-pattern removal pipeline
//   - LevelStrict: Standard plus removal of a fixed forbidden character set
//
// Sanitize is idempotent at a given level: sanitizing already-sanitized text
// returns it unchanged.
//
// # Output Encoding
//
// Output encoders are independent, one-directional transforms applied at
// render time. They are not inverses of the sanitizer: they never remove
// characters, only escape them for a specific context (HTML body, HTML
// attribute, JavaScript string, URL query).
//
// # Usage
//
// Sanitize text before storage and encode before display:
//
//	clean := sanitize.Sanitize(input, sanitize.LevelStandard)
//	html := sanitize.EncodeHTML(clean)
//
// All functions are pure and safe for concurrent use.
package sanitize
