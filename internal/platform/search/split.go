package search

import "strings"

// FHIR search value separators. A backslash escapes the following character,
// turning a separator into a literal character within one part.
const (
	orSeparator        = ','
	compositeSeparator = '$'
	escapeChar         = '\\'
)

// SplitOr splits a raw search value on the unescaped OR separator into
// independent literal parts. Escape sequences are resolved in the returned
// parts: "a\,b" yields a single part containing a literal comma.
//
// Every scalar literal passes through SplitOr exactly once before value
// parsing, so this is the single point where escapes are unescaped.
func SplitOr(raw string) []string {
	parts := splitUnescaped(raw, orSeparator)
	for i, p := range parts {
		parts[i] = unescape(p)
	}
	return parts
}

// SplitComposite splits a raw composite value on the unescaped composite
// separator into ordered component parts. Escape sequences are preserved
// verbatim: each part is later compiled recursively and passes through
// SplitOr, which performs the unescaping. It produces exactly the parts
// textually present; the caller enforces the declared component-count
// ceiling.
func SplitComposite(raw string) []string {
	return splitUnescaped(raw, compositeSeparator)
}

// splitUnescaped splits raw on every unescaped occurrence of sep, keeping
// escape sequences intact in the returned parts.
func splitUnescaped(raw string, sep byte) []string {
	var parts []string
	var b strings.Builder

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch ch {
		case escapeChar:
			b.WriteByte(ch)
			if i+1 < len(raw) {
				b.WriteByte(raw[i+1])
				i++
			}
		case sep:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(ch)
		}
	}

	parts = append(parts, b.String())
	return parts
}

// unescape resolves every escape sequence in s: the escape character makes
// the following character literal, whatever it is. A trailing escape
// character is kept as a literal backslash.
func unescape(s string) string {
	if !strings.ContainsRune(s, escapeChar) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == escapeChar && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
