package search

import "strings"

// Modifier represents a FHIR search modifier attached to a parameter
// occurrence (e.g. "birthdate:missing", "code:text").
type Modifier string

const (
	ModifierNone     Modifier = ""
	ModifierMissing  Modifier = "missing"
	ModifierText     Modifier = "text"
	ModifierExact    Modifier = "exact"
	ModifierContains Modifier = "contains"
	ModifierNot      Modifier = "not"
	ModifierAbove    Modifier = "above"
	ModifierBelow    Modifier = "below"
	ModifierIn       Modifier = "in"
	ModifierNotIn    Modifier = "not-in"
)

// SplitModifier splits a raw query parameter name from its modifier.
// Examples: "name:exact" -> ("name", exact), "code" -> ("code", none).
func SplitModifier(paramName string) (string, Modifier) {
	parts := strings.SplitN(paramName, ":", 2)
	if len(parts) == 2 {
		return parts[0], Modifier(parts[1])
	}
	return parts[0], ModifierNone
}
