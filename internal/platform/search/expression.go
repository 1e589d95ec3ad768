package search

import (
	"fmt"
	"strings"
)

// FieldName identifies which aspect of an indexed search parameter a leaf
// predicate constrains.
type FieldName string

const (
	// FieldParamName binds a predicate tree to the declared search
	// parameter it matches. Every compiled tree for a non-bypass path
	// carries exactly one such leaf conjoined at the root.
	FieldParamName FieldName = "param-name"

	// FieldValue is the indexed value of the parameter itself.
	FieldValue FieldName = "value"

	// FieldTokenText is the human-readable text associated with a token
	// (CodeableConcept.text, Coding.display), targeted by the :text
	// modifier.
	FieldTokenText FieldName = "token-text"
)

// Expression is a node in the backend-agnostic boolean expression tree
// produced by compilation. Nodes are immutable and constructed bottom-up;
// storage translators walk the tree read-only with an exhaustive type
// switch over the concrete node types.
type Expression interface {
	// String renders a deterministic, parenthesized debug form.
	String() string

	searchExpression()
}

// EqualsExpression is a leaf predicate comparing one field against a typed
// search value. Comparator is eq unless a prefix was given; Modifier
// carries any type-specific modifier that survives compilation (e.g.
// :exact); ComponentIndex is set for predicates compiled from a composite
// component and nil otherwise.
type EqualsExpression struct {
	Field          FieldName
	Modifier       Modifier
	Comparator     Comparator
	ComponentIndex *int
	Value          Value
}

// ContainsTextExpression is a leaf predicate matching free text against a
// field; the text is never tokenized or type-parsed.
type ContainsTextExpression struct {
	Field FieldName
	Text  string
}

// MissingExpression is a leaf predicate asserting the presence or absence
// of any indexed value for a parameter.
type MissingExpression struct {
	ParamName string
	IsMissing bool
}

// AndExpression is the conjunction of its children.
type AndExpression struct {
	Children []Expression
}

// OrExpression is the disjunction of its children, in the order the
// alternatives appeared in the raw value.
type OrExpression struct {
	Children []Expression
}

// And builds a conjunction node.
func And(children ...Expression) AndExpression {
	return AndExpression{Children: children}
}

// Or builds a disjunction node.
func Or(children ...Expression) OrExpression {
	return OrExpression{Children: children}
}

// paramNameEquals builds the leaf that binds a tree to its declared
// parameter.
func paramNameEquals(code string) EqualsExpression {
	return EqualsExpression{
		Field:      FieldParamName,
		Comparator: ComparatorEq,
		Value:      StringValue{Value: code},
	}
}

func (e EqualsExpression) String() string {
	var b strings.Builder
	b.WriteString(string(e.Field))
	if e.ComponentIndex != nil {
		fmt.Fprintf(&b, "[%d]", *e.ComponentIndex)
	}
	if e.Modifier != ModifierNone {
		b.WriteByte(':')
		b.WriteString(string(e.Modifier))
	}
	b.WriteByte(' ')
	b.WriteString(string(e.Comparator))
	b.WriteByte(' ')
	b.WriteString(e.Value.String())
	return "(" + b.String() + ")"
}

func (e ContainsTextExpression) String() string {
	return fmt.Sprintf("(%s contains %q)", e.Field, e.Text)
}

func (e MissingExpression) String() string {
	return fmt.Sprintf("(missing %s %t)", e.ParamName, e.IsMissing)
}

func (e AndExpression) String() string { return joinChildren("and", e.Children) }

func (e OrExpression) String() string { return joinChildren("or", e.Children) }

func joinChildren(op string, children []Expression) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, c.String())
	}
	return "(" + op + " " + strings.Join(parts, " ") + ")"
}

func (EqualsExpression) searchExpression()       {}
func (ContainsTextExpression) searchExpression() {}
func (MissingExpression) searchExpression()      {}
func (AndExpression) searchExpression()          {}
func (OrExpression) searchExpression()           {}
