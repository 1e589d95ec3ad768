package search

import (
	"regexp"
	"strings"
)

// canonicalPattern decomposes a canonical reference of the form
// <base-uri>[|<version>][#<fragment>]. The base must be an http(s) URI;
// version and fragment are alphanumeric tokens (dots allowed for semver
// versions). Compiled once; regexp matching is safe for concurrent use.
var canonicalPattern = regexp.MustCompile(
	`^(https?://[A-Za-z0-9\-._~:/?$%&'()*+=@!;]*)(?:\|([A-Za-z0-9.]*))?(?:#([A-Za-z0-9.]*))?$`)

// URIValue is a URI search value. Canonical references additionally carry
// a version and a fragment; both are empty for plain URIs. Two URI values
// are equal iff their rendered strings are equal — the internal
// decomposition does not participate in equality.
type URIValue struct {
	URI      string
	Version  string
	Fragment string
}

// ParseURI parses a URI search literal. Under FHIR R4 and later a
// canonical value is decomposed into base, version and fragment; STU3 has
// no canonical type, so the whole literal is kept as an opaque URI.
// Inputs that do not match the canonical pattern degrade gracefully to an
// opaque URI with no version or fragment — never an error.
func ParseURI(version FHIRVersion, raw string) (URIValue, error) {
	if raw == "" {
		return URIValue{}, invalidValue("empty uri")
	}

	if version == VersionSTU3 {
		return URIValue{URI: raw}, nil
	}

	m := canonicalPattern.FindStringSubmatch(raw)
	if m == nil {
		return URIValue{URI: raw}, nil
	}
	return URIValue{URI: m[1], Version: m[2], Fragment: m[3]}, nil
}

// IsCanonical reports whether the value carries decomposed canonical
// components.
func (u URIValue) IsCanonical() bool {
	return u.Version != "" || u.Fragment != ""
}

// String renders the canonical form: base alone, "base|version", or
// "base|version#fragment". A fragment without a version renders as
// "base#fragment" so the rendering always re-parses to an equal value.
func (u URIValue) String() string {
	if u.Version == "" && u.Fragment == "" {
		return u.URI
	}
	var b strings.Builder
	b.WriteString(u.URI)
	if u.Version != "" {
		b.WriteByte('|')
		b.WriteString(u.Version)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}

func (URIValue) searchValue() {}
