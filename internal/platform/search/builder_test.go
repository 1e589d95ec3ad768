package search

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	registry := NewDefaultDefinitionRegistry(zerolog.Nop())
	return NewBuilder(VersionR4, registry, zerolog.Nop())
}

func testDef(code string, typ ParamType) *ParameterDefinition {
	return &ParameterDefinition{
		URL:  "http://example.org/fhir/SearchParameter/test-" + code,
		Name: "Test" + code,
		Code: code,
		Base: []string{"Patient"},
		Type: typ,
	}
}

// unwrapParamName asserts the root is And(Equals(ParamName, code), inner)
// and returns the inner expression.
func unwrapParamName(t *testing.T, expr Expression, code string) Expression {
	t.Helper()

	and, ok := expr.(AndExpression)
	if !ok {
		t.Fatalf("root = %T, want AndExpression", expr)
	}
	if len(and.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(and.Children))
	}

	eq, ok := and.Children[0].(EqualsExpression)
	if !ok {
		t.Fatalf("first child = %T, want EqualsExpression", and.Children[0])
	}
	if eq.Field != FieldParamName {
		t.Fatalf("first child field = %q, want %q", eq.Field, FieldParamName)
	}
	sv, ok := eq.Value.(StringValue)
	if !ok || sv.Value != code {
		t.Fatalf("param name value = %v, want %q", eq.Value, code)
	}

	return and.Children[1]
}

// ---------------------------------------------------------------------------
// Input validation
// ---------------------------------------------------------------------------

func TestBuild_EmptyValue(t *testing.T) {
	b := newTestBuilder(t)

	for _, raw := range []string{"", "   ", "\t"} {
		_, err := b.Build(testDef("gender", TypeToken), ModifierNone, raw)
		if !errors.Is(err, ErrInvalidSearchOperation) {
			t.Errorf("Build(%q) error = %v, want ErrInvalidSearchOperation", raw, err)
		}
	}
}

// ---------------------------------------------------------------------------
// :missing modifier
// ---------------------------------------------------------------------------

func TestBuild_MissingModifier(t *testing.T) {
	b := newTestBuilder(t)

	// :missing works for every parameter type and bypasses value parsing.
	for _, typ := range []ParamType{TypeDate, TypeNumber, TypeQuantity, TypeReference, TypeString, TypeToken, TypeURI, TypeComposite} {
		for raw, want := range map[string]bool{"true": true, "false": false, "TRUE": true, "False": false} {
			expr, err := b.Build(testDef("p", typ), ModifierMissing, raw)
			if err != nil {
				t.Fatalf("Build(%s, missing, %q) error: %v", typ, raw, err)
			}
			m, ok := expr.(MissingExpression)
			if !ok {
				t.Fatalf("expr = %T, want MissingExpression", expr)
			}
			if m.ParamName != "p" {
				t.Errorf("ParamName = %q, want %q", m.ParamName, "p")
			}
			if m.IsMissing != want {
				t.Errorf("IsMissing = %t, want %t", m.IsMissing, want)
			}
		}
	}
}

func TestBuild_MissingModifier_BadLiteral(t *testing.T) {
	b := newTestBuilder(t)

	for _, raw := range []string{"yes", "1", "truthy", "maybe"} {
		_, err := b.Build(testDef("birthdate", TypeDate), ModifierMissing, raw)
		if !errors.Is(err, ErrInvalidSearchOperation) {
			t.Errorf("Build(missing, %q) error = %v, want ErrInvalidSearchOperation", raw, err)
		}
	}
}

// ---------------------------------------------------------------------------
// :text modifier
// ---------------------------------------------------------------------------

func TestBuild_TextModifier_TokenOnly(t *testing.T) {
	b := newTestBuilder(t)

	expr, err := b.Build(testDef("code", TypeToken), ModifierText, "headache")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	inner := unwrapParamName(t, expr, "code")
	ct, ok := inner.(ContainsTextExpression)
	if !ok {
		t.Fatalf("inner = %T, want ContainsTextExpression", inner)
	}
	if ct.Field != FieldTokenText {
		t.Errorf("Field = %q, want %q", ct.Field, FieldTokenText)
	}
	if ct.Text != "headache" {
		t.Errorf("Text = %q, want %q", ct.Text, "headache")
	}
}

func TestBuild_TextModifier_RawTextNeverParsed(t *testing.T) {
	b := newTestBuilder(t)

	// Pipes, commas and comparator-like prefixes stay verbatim.
	raw := "ge100,a|b"
	expr, err := b.Build(testDef("code", TypeToken), ModifierText, raw)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	ct := unwrapParamName(t, expr, "code").(ContainsTextExpression)
	if ct.Text != raw {
		t.Errorf("Text = %q, want %q", ct.Text, raw)
	}
}

func TestBuild_TextModifier_RejectedForOtherTypes(t *testing.T) {
	b := newTestBuilder(t)

	for _, typ := range []ParamType{TypeDate, TypeNumber, TypeQuantity, TypeReference, TypeString, TypeURI, TypeComposite} {
		_, err := b.Build(testDef("p", typ), ModifierText, "x")
		if !errors.Is(err, ErrInvalidSearchOperation) {
			t.Errorf("Build(%s, text) error = %v, want ErrInvalidSearchOperation", typ, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Comparator prefixes
// ---------------------------------------------------------------------------

func TestBuild_ComparatorOnOrdinalTypes(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		typ  ParamType
		raw  string
		want Comparator
	}{
		{TypeDate, "ge2020-01-01", ComparatorGe},
		{TypeNumber, "lt100", ComparatorLt},
		{TypeQuantity, "gt5.4|http://unitsofmeasure.org|mg", ComparatorGt},
		{TypeDate, "2020-01-01", ComparatorEq},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.raw, func(t *testing.T) {
			expr, err := b.Build(testDef("p", tt.typ), ModifierNone, tt.raw)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			eq, ok := unwrapParamName(t, expr, "p").(EqualsExpression)
			if !ok {
				t.Fatalf("inner is not EqualsExpression")
			}
			if eq.Comparator != tt.want {
				t.Errorf("Comparator = %q, want %q", eq.Comparator, tt.want)
			}
		})
	}
}

// A token (or string, uri, reference) literal beginning with a
// comparator-like substring is never prefix-stripped.
func TestBuild_NoComparatorOnUnorderedTypes(t *testing.T) {
	b := newTestBuilder(t)

	expr, err := b.Build(testDef("code", TypeToken), ModifierNone, "ge123")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	eq := unwrapParamName(t, expr, "code").(EqualsExpression)
	if eq.Comparator != ComparatorEq {
		t.Errorf("Comparator = %q, want eq", eq.Comparator)
	}
	tok, ok := eq.Value.(TokenValue)
	if !ok {
		t.Fatalf("Value = %T, want TokenValue", eq.Value)
	}
	if tok.Code != "ge123" {
		t.Errorf("Code = %q, want %q", tok.Code, "ge123")
	}
}

// ---------------------------------------------------------------------------
// OR decomposition
// ---------------------------------------------------------------------------

func TestBuild_OrValues(t *testing.T) {
	b := newTestBuilder(t)

	expr, err := b.Build(testDef("birthdate", TypeDate), ModifierNone, "2020-01-01,2020-02-01")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	or, ok := unwrapParamName(t, expr, "birthdate").(OrExpression)
	if !ok {
		t.Fatalf("inner = %T, want OrExpression", unwrapParamName(t, expr, "birthdate"))
	}
	if len(or.Children) != 2 {
		t.Fatalf("Or has %d children, want 2", len(or.Children))
	}

	// Disjuncts keep the left-to-right order of the raw value.
	want := []string{"2020-01-01", "2020-02-01"}
	for i, child := range or.Children {
		eq, ok := child.(EqualsExpression)
		if !ok {
			t.Fatalf("child %d = %T, want EqualsExpression", i, child)
		}
		if eq.Comparator != ComparatorEq {
			t.Errorf("child %d comparator = %q, want eq", i, eq.Comparator)
		}
		if eq.Value.String() != want[i] {
			t.Errorf("child %d value = %q, want %q", i, eq.Value.String(), want[i])
		}
	}
}

func TestBuild_OrWithComparatorRejected(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Build(testDef("birthdate", TypeDate), ModifierNone, "ge2020-01-01,2020-02-01")
	if !errors.Is(err, ErrInvalidSearchOperation) {
		t.Errorf("error = %v, want ErrInvalidSearchOperation", err)
	}
}

func TestBuild_OrFailsOnAnyBadAlternative(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Build(testDef("birthdate", TypeDate), ModifierNone, "2020-01-01,bogus")
	if !errors.Is(err, ErrInvalidSearchValue) {
		t.Errorf("error = %v, want ErrInvalidSearchValue", err)
	}
}

// ---------------------------------------------------------------------------
// Escaping
// ---------------------------------------------------------------------------

func TestBuild_EscapedOrSeparator(t *testing.T) {
	b := newTestBuilder(t)

	expr, err := b.Build(testDef("code", TypeToken), ModifierNone, `a\,b`)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	eq, ok := unwrapParamName(t, expr, "code").(EqualsExpression)
	if !ok {
		t.Fatal("escaped separator must yield a single leaf, not a disjunction")
	}
	tok := eq.Value.(TokenValue)
	if tok.Code != "a,b" {
		t.Errorf("Code = %q, want literal %q", tok.Code, "a,b")
	}
}

// ---------------------------------------------------------------------------
// Composite parameters
// ---------------------------------------------------------------------------

func TestBuild_Composite(t *testing.T) {
	registry := NewDefaultDefinitionRegistry(zerolog.Nop())
	b := NewBuilder(VersionR4, registry, zerolog.Nop())

	def, err := registry.GetByURL("http://hl7.org/fhir/SearchParameter/Observation-code-value-quantity")
	if err != nil {
		t.Fatalf("GetByURL error: %v", err)
	}

	expr, err := b.Build(def, ModifierNone, "http://loinc.org|8480-6$gt100")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	and, ok := unwrapParamName(t, expr, "code-value-quantity").(AndExpression)
	if !ok {
		t.Fatalf("inner is not AndExpression")
	}
	if len(and.Children) != 2 {
		t.Fatalf("composite conjunction has %d children, want 2", len(and.Children))
	}

	first := and.Children[0].(EqualsExpression)
	if first.ComponentIndex == nil || *first.ComponentIndex != 0 {
		t.Errorf("first component index = %v, want 0", first.ComponentIndex)
	}
	tok, ok := first.Value.(TokenValue)
	if !ok || tok.Code != "8480-6" {
		t.Errorf("first component value = %v, want token 8480-6", first.Value)
	}

	second := and.Children[1].(EqualsExpression)
	if second.ComponentIndex == nil || *second.ComponentIndex != 1 {
		t.Errorf("second component index = %v, want 1", second.ComponentIndex)
	}
	if second.Comparator != ComparatorGt {
		t.Errorf("second component comparator = %q, want gt", second.Comparator)
	}
	q, ok := second.Value.(QuantityValue)
	if !ok || q.Number.Value != 100 {
		t.Errorf("second component value = %v, want quantity 100", second.Value)
	}
}

func TestBuild_CompositeTooManyParts(t *testing.T) {
	b := newTestBuilder(t)

	def, err := b.registry.GetByURL("http://hl7.org/fhir/SearchParameter/Observation-code-value-quantity")
	if err != nil {
		t.Fatalf("GetByURL error: %v", err)
	}

	_, err = b.Build(def, ModifierNone, "a$b$c")
	if !errors.Is(err, ErrInvalidSearchOperation) {
		t.Errorf("error = %v, want ErrInvalidSearchOperation", err)
	}
}

func TestBuild_CompositeUnknownComponent(t *testing.T) {
	b := newTestBuilder(t)

	def := testDef("bad-composite", TypeComposite)
	def.Component = []ComponentDefinition{
		{Definition: "http://example.org/fhir/SearchParameter/nowhere"},
	}

	_, err := b.Build(def, ModifierNone, "x")
	if !errors.Is(err, ErrInvalidSearchOperation) {
		t.Errorf("error = %v, want ErrInvalidSearchOperation", err)
	}
}

func TestBuild_CompositeOfComposite(t *testing.T) {
	b := newTestBuilder(t)

	def := testDef("nested-composite", TypeComposite)
	def.Component = []ComponentDefinition{
		{Definition: "http://hl7.org/fhir/SearchParameter/Observation-code-value-quantity"},
	}

	_, err := b.Build(def, ModifierNone, "x")
	if !errors.Is(err, ErrInvalidSearchOperation) {
		t.Errorf("error = %v, want ErrInvalidSearchOperation", err)
	}
}

func TestBuild_CompositeWithModifierRejected(t *testing.T) {
	b := newTestBuilder(t)

	def, err := b.registry.GetByURL("http://hl7.org/fhir/SearchParameter/Observation-code-value-quantity")
	if err != nil {
		t.Fatalf("GetByURL error: %v", err)
	}

	_, err = b.Build(def, ModifierExact, "a$b")
	if !errors.Is(err, ErrInvalidSearchOperation) {
		t.Errorf("error = %v, want ErrInvalidSearchOperation", err)
	}
}

// ---------------------------------------------------------------------------
// Parameter-name conjunct
// ---------------------------------------------------------------------------

func TestBuild_EveryNonBypassTreeBindsParamName(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		def *ParameterDefinition
		raw string
	}{
		{testDef("birthdate", TypeDate), "2020-01-01"},
		{testDef("gender", TypeToken), "male"},
		{testDef("name", TypeString), "Smith"},
		{testDef("subject", TypeReference), "Patient/12345"},
		{testDef("profile", TypeURI), "http://example.com/Profile|2"},
		{testDef("length", TypeNumber), "ge100"},
		{testDef("value-quantity", TypeQuantity), "5.4||mg"},
	}

	for _, tt := range tests {
		t.Run(tt.def.Code, func(t *testing.T) {
			expr, err := b.Build(tt.def, ModifierNone, tt.raw)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			unwrapParamName(t, expr, tt.def.Code)
		})
	}
}

// ---------------------------------------------------------------------------
// Value errors propagate unchanged
// ---------------------------------------------------------------------------

func TestBuild_ValueErrorPropagates(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		def *ParameterDefinition
		raw string
	}{
		{testDef("birthdate", TypeDate), "not-a-date"},
		{testDef("length", TypeNumber), "abc"},
		{testDef("value-quantity", TypeQuantity), "abc|sys|mg"},
	}

	for _, tt := range tests {
		t.Run(tt.def.Code, func(t *testing.T) {
			_, err := b.Build(tt.def, ModifierNone, tt.raw)
			if !errors.Is(err, ErrInvalidSearchValue) {
				t.Errorf("error = %v, want ErrInvalidSearchValue", err)
			}
		})
	}
}

// Non-special modifiers survive onto the leaf for the translator to apply.
func TestBuild_ModifierCarriedOnLeaf(t *testing.T) {
	b := newTestBuilder(t)

	expr, err := b.Build(testDef("name", TypeString), ModifierExact, "Smith")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	eq := unwrapParamName(t, expr, "name").(EqualsExpression)
	if eq.Modifier != ModifierExact {
		t.Errorf("Modifier = %q, want %q", eq.Modifier, ModifierExact)
	}
}
