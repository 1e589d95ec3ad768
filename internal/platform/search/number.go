package search

import (
	"math"
	"strconv"
	"strings"
)

// NumberValue is a decimal search value. The original literal is retained
// so that significant digits and exponent notation survive a round trip.
type NumberValue struct {
	literal string
	Value   float64
}

// ParseNumber parses a decimal literal.
func ParseNumber(raw string) (NumberValue, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NumberValue{}, invalidValue("empty number")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NumberValue{}, invalidValue("unable to parse number %q", s)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return NumberValue{}, invalidValue("number %q out of range", s)
	}

	return NumberValue{literal: s, Value: f}, nil
}

// String renders the literal exactly as it was parsed.
func (n NumberValue) String() string { return n.literal }

func (NumberValue) searchValue() {}
