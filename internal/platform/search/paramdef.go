package search

import "fmt"

// ParamType defines the FHIR search parameter type.
type ParamType string

const (
	TypeNumber    ParamType = "number"
	TypeDate      ParamType = "date"
	TypeString    ParamType = "string"
	TypeToken     ParamType = "token"
	TypeReference ParamType = "reference"
	TypeComposite ParamType = "composite"
	TypeQuantity  ParamType = "quantity"
	TypeURI       ParamType = "uri"
)

// validParamTypes enumerates the allowed search parameter type values.
var validParamTypes = map[ParamType]bool{
	TypeNumber:    true,
	TypeDate:      true,
	TypeString:    true,
	TypeToken:     true,
	TypeReference: true,
	TypeComposite: true,
	TypeQuantity:  true,
	TypeURI:       true,
}

// IsValidParamType checks whether a type string is a valid search parameter type.
func IsValidParamType(t ParamType) bool {
	return validParamTypes[t]
}

// ComponentDefinition describes one component within a composite search
// parameter. Definition is the canonical URL of the referenced search
// parameter; Expression is the sub-path evaluated relative to the
// composite's root (informational for index extraction, unused here).
type ComponentDefinition struct {
	Definition string `json:"definition"`
	Expression string `json:"expression,omitempty"`
}

// ParameterDefinition represents a FHIR SearchParameter definition as
// consumed by the query compiler. Definitions are loaded once at startup
// and treated as immutable thereafter.
type ParameterDefinition struct {
	URL         string                `json:"url"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Code        string                `json:"code"` // name used in search URL
	Base        []string              `json:"base"` // resource types this applies to
	Type        ParamType             `json:"type"`
	Expression  string                `json:"expression,omitempty"` // FHIRPath expression
	Target      []string              `json:"target,omitempty"`     // for reference type params
	Component   []ComponentDefinition `json:"component,omitempty"`  // for composite type params
}

// Validate checks that a ParameterDefinition has the minimum required
// fields and valid enum values.
func (d *ParameterDefinition) Validate() error {
	if d.URL == "" {
		return fmt.Errorf("SearchParameter.url is required")
	}
	if d.Name == "" {
		return fmt.Errorf("SearchParameter.name is required")
	}
	if d.Code == "" {
		return fmt.Errorf("SearchParameter.code is required")
	}
	if len(d.Base) == 0 {
		return fmt.Errorf("SearchParameter.base is required (at least one resource type)")
	}
	if d.Type == "" {
		return fmt.Errorf("SearchParameter.type is required")
	}
	if !IsValidParamType(d.Type) {
		return fmt.Errorf("SearchParameter.type must be one of: number, date, string, token, reference, composite, quantity, uri; got %q", d.Type)
	}
	if d.Type == TypeComposite && len(d.Component) == 0 {
		return fmt.Errorf("composite SearchParameter %q must declare at least one component", d.Code)
	}
	if d.Type != TypeComposite && len(d.Component) > 0 {
		return fmt.Errorf("SearchParameter %q declares components but is not composite", d.Code)
	}
	for i, c := range d.Component {
		if c.Definition == "" {
			return fmt.Errorf("composite SearchParameter %q component %d has no definition URL", d.Code, i)
		}
	}
	return nil
}
