package search

// StringValue is a plain string search value.
type StringValue struct {
	Value string
}

// ParseString accepts any non-empty literal.
func ParseString(raw string) (StringValue, error) {
	if raw == "" {
		return StringValue{}, invalidValue("empty string value")
	}
	return StringValue{Value: raw}, nil
}

func (s StringValue) String() string { return s.Value }

func (StringValue) searchValue() {}
