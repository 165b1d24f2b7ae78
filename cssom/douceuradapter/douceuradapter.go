/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
backed by github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/fpweb/cssom"
	"github.com/npillmayer/fpweb/dom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'fp.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("fp.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	if css == nil {
		return &CSSStyles{}
	}
	return &CSSStyles{*css}
}

// Parse parses a style sheet with douceur and wraps it.
func Parse(src string) (*CSSStyles, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "douceur")
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Rules of foreign
// implementations are converted to douceur qualified rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.css.Rules = append(sheet.css.Rules, convert(r))
	}
}

func convert(r cssom.Rule) *css.Rule {
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = r.Selector()
	for _, sel := range strings.Split(r.Selector(), ",") {
		rule.Selectors = append(rule.Selectors, strings.TrimSpace(sel))
	}
	for _, p := range r.Properties() {
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property:  p,
			Value:     r.Value(p),
			Important: r.IsImportant(p),
		})
	}
	return rule
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule, e.g. "color".
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "red".
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements searches a document tree for <style> elements and
// returns their content as style sheets.
func ExtractStyleElements(root dom.Node) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	for _, src := range cssom.StyleElements(root) {
		c, err := Parse(src)
		if err != nil {
			tracer().Errorf("cannot parse style element: %v", err)
			return sheets, err
		}
		sheets = append(sheets, c)
	}
	return sheets, nil
}
