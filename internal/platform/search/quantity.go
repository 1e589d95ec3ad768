package search

import "strings"

// QuantityValue is a numeric search value with an optional unit system and
// unit code, written "number|system|code" (e.g.
// "5.4|http://unitsofmeasure.org|mg"). System and Code are nil when the
// corresponding segment was absent; an empty string means the segment was
// present but empty ("5.4||mg" searches any system with unit mg).
type QuantityValue struct {
	Number NumberValue
	System *string
	Code   *string
}

// ParseQuantity parses a quantity literal. The numeric part must parse as
// a decimal; system and code are free-form.
func ParseQuantity(raw string) (QuantityValue, error) {
	parts := strings.SplitN(raw, "|", 3)

	num, err := ParseNumber(parts[0])
	if err != nil {
		return QuantityValue{}, err
	}

	q := QuantityValue{Number: num}
	if len(parts) >= 2 {
		system := parts[1]
		q.System = &system
	}
	if len(parts) == 3 {
		code := parts[2]
		q.Code = &code
	}
	return q, nil
}

// String renders the quantity with exactly the segments that were present.
func (q QuantityValue) String() string {
	var b strings.Builder
	b.WriteString(q.Number.String())
	if q.System != nil {
		b.WriteByte('|')
		b.WriteString(*q.System)
	}
	if q.Code != nil {
		b.WriteByte('|')
		b.WriteString(*q.Code)
	}
	return b.String()
}

func (QuantityValue) searchValue() {}
