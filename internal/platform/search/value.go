package search

// FHIRVersion identifies the FHIR specification version that governs value
// parsing. It is threaded through as an explicit argument rather than held
// in global state so that one process can serve multiple versions.
type FHIRVersion string

const (
	VersionSTU3 FHIRVersion = "3.0"
	VersionR4   FHIRVersion = "4.0"
)

// validFHIRVersions enumerates the supported FHIR specification versions.
var validFHIRVersions = map[FHIRVersion]bool{
	VersionSTU3: true,
	VersionR4:   true,
}

// IsValidFHIRVersion checks whether v is a supported FHIR version.
func IsValidFHIRVersion(v FHIRVersion) bool {
	return validFHIRVersions[v]
}

// Value is an immutable, typed search value parsed from a raw literal.
// String renders the value in its canonical literal form; the rendered form
// re-parses into an equal value (lossless round trip), except for canonical
// URI inputs that fall back to an opaque literal.
type Value interface {
	// String renders the canonical literal form of the value.
	String() string

	searchValue()
}

// ParseValue parses a raw literal into the typed search value for the given
// parameter type. The mapping from type to parser is fixed, so dispatch is
// a single exhaustive switch; composite parameters have no value parser of
// their own (their parts are parsed against the component definitions).
func ParseValue(typ ParamType, version FHIRVersion, raw string) (Value, error) {
	switch typ {
	case TypeDate:
		return ParseDate(raw)
	case TypeNumber:
		return ParseNumber(raw)
	case TypeQuantity:
		return ParseQuantity(raw)
	case TypeReference:
		return ParseReference(raw)
	case TypeString:
		return ParseString(raw)
	case TypeToken:
		return ParseToken(raw)
	case TypeURI:
		return ParseURI(version, raw)
	case TypeComposite:
		return nil, invalidValue("composite parameters have no value parser")
	default:
		return nil, invalidValue("unsupported search parameter type %q", typ)
	}
}
