package search

import (
	"strings"
	"time"
)

// DatePrecision indicates how much of a timestamp a date literal specified.
type DatePrecision int

const (
	PrecisionYear DatePrecision = iota
	PrecisionMonth
	PrecisionDay
	PrecisionSecond
	PrecisionFull // offset-qualified instant
)

// dateLayouts maps each supported literal layout to its precision, most
// specific first so that longer literals are not truncated by a shorter
// layout.
var dateLayouts = []struct {
	layout    string
	precision DatePrecision
}{
	{time.RFC3339, PrecisionFull},
	{"2006-01-02T15:04:05", PrecisionSecond},
	{"2006-01-02", PrecisionDay},
	{"2006-01", PrecisionMonth},
	{"2006", PrecisionYear},
}

// DateValue is a partial, precision-aware timestamp. A literal below full
// precision represents the whole period it implies: "2020-01" covers the
// entire month. Start and End bound that period inclusively.
type DateValue struct {
	literal   string
	Precision DatePrecision
	Start     time.Time
	End       time.Time
}

// ParseDate parses a FHIR date search literal at year, month, day, second
// or full instant precision.
func ParseDate(raw string) (DateValue, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DateValue{}, invalidValue("empty date")
	}

	for _, dl := range dateLayouts {
		t, err := time.Parse(dl.layout, s)
		if err != nil {
			continue
		}
		return DateValue{
			literal:   s,
			Precision: dl.precision,
			Start:     t,
			End:       periodEnd(t, dl.precision),
		}, nil
	}
	return DateValue{}, invalidValue("unable to parse date %q", s)
}

// periodEnd returns the inclusive upper bound of the period a partial date
// literal covers.
func periodEnd(start time.Time, p DatePrecision) time.Time {
	switch p {
	case PrecisionYear:
		return start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	case PrecisionMonth:
		return start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	case PrecisionDay:
		return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	default:
		return start
	}
}

// String renders the literal exactly as it was parsed, preserving the
// original precision.
func (d DateValue) String() string { return d.literal }

func (DateValue) searchValue() {}
