package css

import (
	"fmt"
	"strings"
)

// Stylesheet is a list of rules.
type Stylesheet struct {
	Rules []Rule
}

func (s Stylesheet) String() string {
	rules := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = r.String()
	}
	return strings.Join(rules, "\n")
}

// Rule is a list of selectors together with a list of declarations.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

func (r Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(" " + d.String() + ";")
	}
	b.WriteString(" }")
	return b.String()
}

// --- Selectors -------------------------------------------------------------

// Selector is a simple selector. It is one of
//
//     UniversalSelector, TypeSelector, AttributeSelector,
//     ClassSelector, IDSelector
//
type Selector interface {
	String() string
	isSelector()
}

// UniversalSelector is '*'.
type UniversalSelector struct{}

// TypeSelector selects by tag name, e.g. 'h1'.
type TypeSelector struct {
	TagName string
}

// AttributeSelector selects by tag name and attribute value, e.g. 'a[rel~=next]'.
type AttributeSelector struct {
	TagName   string
	Op        AttributeSelectorOp
	Attribute string
	Value     string
}

// ClassSelector selects by class, e.g. '.note'.
type ClassSelector struct {
	ClassName string
}

// IDSelector selects by id, e.g. '#main'.
type IDSelector struct {
	IDName string
}

func (UniversalSelector) isSelector() {}
func (TypeSelector) isSelector()      {}
func (AttributeSelector) isSelector() {}
func (ClassSelector) isSelector()     {}
func (IDSelector) isSelector()        {}

func (UniversalSelector) String() string { return "*" }
func (s TypeSelector) String() string    { return s.TagName }
func (s ClassSelector) String() string   { return "." + s.ClassName }
func (s IDSelector) String() string      { return "#" + s.IDName }
func (s AttributeSelector) String() string {
	return fmt.Sprintf("%s[%s%s%s]", s.TagName, s.Attribute, s.Op, s.Value)
}

// AttributeSelectorOp is the comparison operator of an attribute selector.
type AttributeSelectorOp int8

// Supported attribute selector operators.
const (
	OpEq      AttributeSelectorOp = iota // =
	OpContain                            // ~=
)

func (op AttributeSelectorOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpContain:
		return "~="
	}
	return fmt.Sprintf("<op %d>", int8(op))
}

// --- Declarations ----------------------------------------------------------

// Declaration is a property name together with a value, e.g. 'color: red'.
type Declaration struct {
	Name  string
	Value Value
}

func (d Declaration) String() string {
	return d.Name + ": " + d.Value.String()
}

// Value is a property value. Keyword is the only kind of value for now.
type Value interface {
	String() string
	isValue()
}

// Keyword is an identifier value, e.g. 'red'.
type Keyword string

func (Keyword) isValue() {}

func (k Keyword) String() string {
	return string(k)
}
