package search

import (
	"strings"

	"github.com/google/uuid"
)

// ReferenceValue is a resource reference search value. Supported forms:
//
//	"12345"                                  — bare logical id
//	"Patient/12345"                          — type-qualified id
//	"http://example.org/fhir/Patient/12345"  — absolute reference
//
// IDIsUUID records whether the logical id parses as a UUID; storage
// translators match UUID ids directly against primary keys and resolve
// other ids through the resource's business identifier.
type ReferenceValue struct {
	BaseURI      string
	ResourceType string
	ID           string
	IDIsUUID     bool
}

// ParseReference parses a reference literal.
func ParseReference(raw string) (ReferenceValue, error) {
	if raw == "" {
		return ReferenceValue{}, invalidValue("empty reference")
	}

	r := ReferenceValue{}
	rest := raw

	// Absolute references carry a scheme://host prefix up to the trailing
	// ResourceType/id pair.
	if i := strings.Index(rest, "://"); i >= 0 {
		if j := strings.LastIndexByte(rest, '/'); j > i+3 {
			if k := strings.LastIndexByte(rest[:j], '/'); k > i+3 && isResourceTypeSegment(rest[k+1:j]) {
				r.BaseURI = rest[:k]
				rest = rest[k+1:]
			}
		}
		if r.BaseURI == "" {
			// No recognizable type/id tail: keep the whole URL as the id.
			r.ID = rest
			return r, nil
		}
	}

	if i := strings.IndexByte(rest, '/'); i >= 0 {
		typ, id := rest[:i], rest[i+1:]
		if typ == "" || id == "" || strings.ContainsRune(id, '/') {
			return ReferenceValue{}, invalidValue("malformed reference %q", raw)
		}
		r.ResourceType = typ
		r.ID = id
	} else {
		r.ID = rest
	}

	if r.ID == "" {
		return ReferenceValue{}, invalidValue("reference %q has no id", raw)
	}
	if _, err := uuid.Parse(r.ID); err == nil {
		r.IDIsUUID = true
	}
	return r, nil
}

// isResourceTypeSegment reports whether a path segment looks like a FHIR
// resource type name (leading uppercase letter, alphanumeric).
func isResourceTypeSegment(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for _, c := range s {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// String renders the reference with exactly the segments that were present.
func (r ReferenceValue) String() string {
	var b strings.Builder
	if r.BaseURI != "" {
		b.WriteString(r.BaseURI)
		b.WriteByte('/')
	}
	if r.ResourceType != "" {
		b.WriteString(r.ResourceType)
		b.WriteByte('/')
	}
	b.WriteString(r.ID)
	return b.String()
}

func (ReferenceValue) searchValue() {}
