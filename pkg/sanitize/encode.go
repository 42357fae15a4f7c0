package sanitize

import (
	"fmt"
	"net/url"
	"strings"
)

// EncodeContext selects the rendering context an output encoder targets.
type EncodeContext int

const (
	// ContextHTML encodes for an HTML element body.
	ContextHTML EncodeContext = iota

	// ContextHTMLAttribute encodes for a quoted HTML attribute value.
	ContextHTMLAttribute

	// ContextJSString encodes for a JavaScript string literal.
	ContextJSString

	// ContextURLQuery encodes for a URL query component.
	ContextURLQuery
)

// String returns the name of the encoding context.
func (c EncodeContext) String() string {
	switch c {
	case ContextHTML:
		return "html"
	case ContextHTMLAttribute:
		return "html_attribute"
	case ContextJSString:
		return "js_string"
	case ContextURLQuery:
		return "url_query"
	default:
		return fmt.Sprintf("EncodeContext(%d)", int(c))
	}
}

// htmlReplacer escapes HTML metacharacters. A strings.Replacer replaces in a
// single pass, so the ampersand replacement cannot double-encode the entities
// produced for the other characters.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// attributeReplacer additionally escapes whitespace that would terminate an
// unquoted attribute value.
var attributeReplacer = strings.NewReplacer(
	" ", "&#x20;",
	"\t", "&#x09;",
	"\n", "&#x0A;",
	"\r", "&#x0D;",
)

// Encode escapes text for the given rendering context. Encoders are
// one-directional output-hardening transforms, independent of Sanitize:
// they never remove characters, only rewrite them, so encoding is safe to
// apply to any text whether or not it was sanitized first.
func Encode(text string, ctx EncodeContext) string {
	switch ctx {
	case ContextHTMLAttribute:
		return EncodeHTMLAttribute(text)
	case ContextJSString:
		return EncodeJSString(text)
	case ContextURLQuery:
		return EncodeURLQuery(text)
	default:
		return EncodeHTML(text)
	}
}

// EncodeHTML escapes text for embedding in an HTML element body.
func EncodeHTML(text string) string {
	return htmlReplacer.Replace(text)
}

// EncodeHTMLAttribute escapes text for embedding in an HTML attribute value.
func EncodeHTMLAttribute(text string) string {
	return attributeReplacer.Replace(EncodeHTML(text))
}

// EncodeJSString escapes text for embedding in a JavaScript string literal.
// Quotes and backslashes are backslash-escaped, control characters become
// \uXXXX escapes, and the HTML-significant characters <, > and & become hex
// escapes so the literal cannot break out of an inline script block.
func EncodeJSString(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '`':
			b.WriteString("\\`")
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '<':
			b.WriteString(`\x3C`)
		case '>':
			b.WriteString(`\x3E`)
		case '&':
			b.WriteString(`\x26`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}

// EncodeURLQuery percent-encodes text for embedding in a URL query component.
func EncodeURLQuery(text string) string {
	return url.QueryEscape(text)
}
