package search

import (
	"strings"

	"github.com/rs/zerolog"
)

// Builder compiles one search parameter occurrence (definition, optional
// modifier, raw value) into a backend-agnostic Expression tree. A Builder
// is stateless across calls and safe for concurrent use; the registry it
// holds is only consulted to resolve composite component references.
type Builder struct {
	version  FHIRVersion
	registry *DefinitionRegistry
	log      zerolog.Logger
}

// NewBuilder creates a Builder for the given FHIR version backed by the
// given definition registry.
func NewBuilder(version FHIRVersion, registry *DefinitionRegistry, log zerolog.Logger) *Builder {
	return &Builder{
		version:  version,
		registry: registry,
		log:      log,
	}
}

// Build compiles a search parameter occurrence into an Expression. It
// fails with ErrInvalidSearchOperation when the request is structurally or
// semantically invalid for the parameter, and with ErrInvalidSearchValue
// when a literal cannot be parsed into the declared type. The caller owns
// the returned tree; it is never mutated after construction.
func (b *Builder) Build(def *ParameterDefinition, modifier Modifier, rawValue string) (Expression, error) {
	if strings.TrimSpace(rawValue) == "" {
		return nil, invalidOperation("no value provided for parameter %q", def.Code)
	}

	expr, err := b.build(def, modifier, rawValue)
	if err != nil {
		return nil, err
	}

	b.log.Debug().
		Str("param", def.Code).
		Str("modifier", string(modifier)).
		Stringer("expr", expr).
		Msg("compiled search expression")
	return expr, nil
}

func (b *Builder) build(def *ParameterDefinition, modifier Modifier, rawValue string) (Expression, error) {
	// :missing bypasses all type-specific parsing; the leaf itself carries
	// the parameter binding.
	if modifier == ModifierMissing {
		isMissing, err := parseMissingLiteral(rawValue)
		if err != nil {
			return nil, err
		}
		return MissingExpression{ParamName: def.Code, IsMissing: isMissing}, nil
	}

	// :text matches the human-readable text of a token; the raw value is
	// never tokenized or type-parsed.
	if modifier == ModifierText {
		if def.Type != TypeToken {
			return nil, invalidOperation("modifier %q is not supported for parameter %q of type %q", modifier, def.Code, def.Type)
		}
		return And(
			paramNameEquals(def.Code),
			ContainsTextExpression{Field: FieldTokenText, Text: rawValue},
		), nil
	}

	var inner Expression
	var err error
	if def.Type == TypeComposite {
		if modifier != ModifierNone {
			return nil, invalidOperation("modifier %q is not supported for composite parameter %q", modifier, def.Code)
		}
		inner, err = b.buildComposite(def, rawValue)
	} else {
		inner, err = b.buildScalar(def, modifier, rawValue, nil)
	}
	if err != nil {
		return nil, err
	}

	return And(paramNameEquals(def.Code), inner), nil
}

// buildComposite splits the raw value on the composite separator and
// compiles each part against its declared component's referenced
// definition, conjoining the per-component expressions.
func (b *Builder) buildComposite(def *ParameterDefinition, rawValue string) (Expression, error) {
	parts := SplitComposite(rawValue)
	if len(parts) > len(def.Component) {
		return nil, invalidOperation("too many composite components for parameter %q: got %d, declared %d",
			def.Code, len(parts), len(def.Component))
	}

	children := make([]Expression, 0, len(parts))
	for i, part := range parts {
		component := def.Component[i]
		componentDef, err := b.registry.GetByURL(component.Definition)
		if err != nil {
			return nil, invalidOperation("composite parameter %q component %d: %v", def.Code, i, err)
		}
		if componentDef.Type == TypeComposite {
			return nil, invalidOperation("composite parameter %q component %d references another composite parameter", def.Code, i)
		}

		index := i
		expr, err := b.buildScalar(componentDef, ModifierNone, part, &index)
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}

	if len(children) == 1 {
		return children[0], nil
	}
	return And(children...), nil
}

// buildScalar compiles a scalar (non-composite) value: comparator prefix
// for ordered types, OR decomposition, then one leaf per alternative.
func (b *Builder) buildScalar(def *ParameterDefinition, modifier Modifier, rawValue string, componentIndex *int) (Expression, error) {
	comparator := ComparatorEq
	value := rawValue
	if typeSupportsComparator(def.Type) {
		comparator, value = SplitComparator(rawValue)
	}

	parts := SplitOr(value)
	if len(parts) > 1 && comparator != ComparatorEq {
		return nil, invalidOperation("comparator %q is not supported with multiple values for parameter %q", comparator, def.Code)
	}

	leaves := make([]Expression, 0, len(parts))
	for _, part := range parts {
		v, err := ParseValue(def.Type, b.version, part)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, EqualsExpression{
			Field:          FieldValue,
			Modifier:       modifier,
			Comparator:     comparator,
			ComponentIndex: componentIndex,
			Value:          v,
		})
	}

	if len(leaves) == 1 {
		return leaves[0], nil
	}
	return Or(leaves...), nil
}

// typeSupportsComparator reports whether a comparator prefix applies to
// the parameter type. A string or token literal that merely starts with a
// comparator-like substring (e.g. the code "ge123") is never stripped.
func typeSupportsComparator(t ParamType) bool {
	switch t {
	case TypeDate, TypeNumber, TypeQuantity:
		return true
	default:
		return false
	}
}

// parseMissingLiteral parses the value of a :missing modifier, which must
// be the boolean literal "true" or "false" (case-insensitive).
func parseMissingLiteral(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, invalidOperation("invalid value %q for missing modifier, expected true or false", raw)
	}
}
