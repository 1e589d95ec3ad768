package search

import "strings"

// TokenValue is a coded search value in the format "code", "system|code",
// "|code" or "system|". A nil System matches any system; an empty System
// matches codes with no system at all.
type TokenValue struct {
	System *string
	Code   string
}

// ParseToken parses a token literal. Tokens are opaque: any non-empty
// literal is valid, and a pipe separates the system from the code.
func ParseToken(raw string) (TokenValue, error) {
	if raw == "" {
		return TokenValue{}, invalidValue("empty token")
	}

	if i := strings.IndexByte(raw, '|'); i >= 0 {
		system := raw[:i]
		return TokenValue{System: &system, Code: raw[i+1:]}, nil
	}
	return TokenValue{Code: raw}, nil
}

// String renders the token; the pipe reappears only when a system segment
// was present.
func (t TokenValue) String() string {
	if t.System != nil {
		return *t.System + "|" + t.Code
	}
	return t.Code
}

func (TokenValue) searchValue() {}
