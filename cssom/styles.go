package cssom

import (
	"github.com/npillmayer/fpweb/css"
	"github.com/npillmayer/fpweb/dom"
)

// Styles is an adapter of css.Stylesheet for interface StyleSheet.
type Styles struct {
	rules []Rule
}

var _ StyleSheet = &Styles{}

// Wrap a css.Stylesheet into Styles. A nil sheet results in an empty
// style sheet.
func Wrap(sheet *css.Stylesheet) *Styles {
	s := &Styles{}
	if sheet == nil {
		return s
	}
	for _, r := range sheet.Rules {
		s.rules = append(s.rules, cssRule{r})
	}
	return s
}

// Parse parses a style sheet with package css and wraps it.
func Parse(src string) (*Styles, error) {
	sheet, err := css.Parse(src)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface StyleSheet
func (s *Styles) Empty() bool {
	return len(s.rules) == 0
}

// AppendRules appends rules from another stylesheet, which may be of
// any implementation.
//
// Interface StyleSheet
func (s *Styles) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	s.rules = append(s.rules, other.Rules()...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface StyleSheet
func (s *Styles) Rules() []Rule {
	rules := make([]Rule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// cssRule is an adapter of css.Rule for interface Rule.
type cssRule struct {
	css.Rule
}

var _ Rule = cssRule{}

// Selector returns the selector list, separated by commas.
func (r cssRule) Selector() string {
	var prelude string
	for i, sel := range r.Selectors {
		if i > 0 {
			prelude += ", "
		}
		prelude += sel.String()
	}
	return prelude
}

// Properties returns the property names in order of appearance. Repeated
// names are reported once.
func (r cssRule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	seen := make(map[string]bool, len(r.Declarations))
	for _, d := range r.Declarations {
		if !seen[d.Name] {
			props = append(props, d.Name)
			seen[d.Name] = true
		}
	}
	return props
}

// Value returns the value of the last declaration for key, or "".
func (r cssRule) Value(key string) string {
	v := ""
	for _, d := range r.Declarations {
		if d.Name == key {
			v = d.Value.String()
		}
	}
	return v
}

// IsImportant is always false: the grammar of package css has no
// '!important' annotation.
func (r cssRule) IsImportant(string) bool {
	return false
}

// ExtractStyles searches a document tree for <style> elements and parses
// their content as style sheets, in document order.
func ExtractStyles(root dom.Node) ([]*Styles, error) {
	var sheets []*Styles
	for _, src := range StyleElements(root) {
		s, err := Parse(src)
		if err != nil {
			return sheets, err
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

// StyleElements returns the text content of every <style> element of a
// document tree, in document order.
func StyleElements(root dom.Node) []string {
	var content []string
	for _, n := range dom.FindAll(root, dom.NodeIsElement("style")) {
		content = append(content, n.(*dom.Element).TextContent())
	}
	tracer().Debugf("found %d style elements", len(content))
	return content
}
