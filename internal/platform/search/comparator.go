package search

// Comparator represents a FHIR search comparator prefix for ordered values.
type Comparator string

const (
	ComparatorEq Comparator = "eq"
	ComparatorNe Comparator = "ne"
	ComparatorGt Comparator = "gt"
	ComparatorLt Comparator = "lt"
	ComparatorGe Comparator = "ge"
	ComparatorLe Comparator = "le"
	ComparatorSa Comparator = "sa" // starts after
	ComparatorEb Comparator = "eb" // ends before
	ComparatorAp Comparator = "ap" // approximately
)

// comparators lists every comparator in declaration order. SplitComparator
// scans this list, so prefix resolution order is deterministic.
var comparators = []Comparator{
	ComparatorEq,
	ComparatorNe,
	ComparatorGt,
	ComparatorLt,
	ComparatorGe,
	ComparatorLe,
	ComparatorSa,
	ComparatorEb,
	ComparatorAp,
}

// SplitComparator extracts the comparator prefix from a search value.
// Examples: "gt2023-01-01" -> (gt, "2023-01-01"), "100" -> (eq, "100").
// When no prefix matches, the default comparator eq is returned with the
// value unmodified. Prefixes are unique two-character codes, so at most one
// can match.
func SplitComparator(raw string) (Comparator, string) {
	if len(raw) >= 2 {
		head := raw[:2]
		for _, c := range comparators {
			if head == string(c) {
				return c, raw[2:]
			}
		}
	}
	return ComparatorEq, raw
}
