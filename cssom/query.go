package cssom

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/fpweb/css"
	"github.com/npillmayer/fpweb/dom"
	"github.com/pkg/errors"
)

// Query returns all elements of the tree under root (including root) which
// are matched by sel, in document order.
func Query(root dom.Node, sel css.Selector) ([]*dom.Element, error) {
	if sel == nil {
		return nil, errors.New("cssom: nil selector")
	}
	return QuerySelector(root, sel.String())
}

// QueryRule returns all elements of the tree under root which are matched by
// any of the selectors of rule r.
func QueryRule(root dom.Node, r Rule) ([]*dom.Element, error) {
	return QuerySelector(root, r.Selector())
}

// QuerySelector returns all elements of the tree under root which are
// matched by a selector group given in CSS syntax.
func QuerySelector(root dom.Node, selectors string) ([]*dom.Element, error) {
	if root == nil {
		return nil, nil
	}
	matcher, err := cascadia.Compile(selectors)
	if err != nil {
		return nil, errors.Wrapf(err, "cssom: cannot compile selector %q", selectors)
	}
	h, dict := dom.ToHTMLMapped(root)
	if h == nil {
		return nil, nil
	}
	var elements []*dom.Element
	for _, n := range matcher.MatchAll(h) {
		if e, ok := dict[n]; ok {
			elements = append(elements, e)
		}
	}
	tracer().Debugf("selector %q matches %d elements", selectors, len(elements))
	return elements, nil
}

// Specificity returns the specificity of a simple selector as a triple
// (ids, classes and attributes, types).
func Specificity(sel css.Selector) ([3]int, error) {
	if sel == nil {
		return [3]int{}, errors.New("cssom: nil selector")
	}
	compiled, err := cascadia.Parse(sel.String())
	if err != nil {
		return [3]int{}, errors.Wrapf(err, "cssom: cannot compile selector %q", sel)
	}
	return compiled.Specificity(), nil
}

// MatchingRules returns the rules of sheet which apply to element e, in
// style sheet order. The element must be part of the tree under root.
func MatchingRules(root dom.Node, e *dom.Element, sheet StyleSheet) ([]Rule, error) {
	var rules []Rule
	for _, r := range sheet.Rules() {
		matched, err := QueryRule(root, r)
		if err != nil {
			return nil, err
		}
		for _, m := range matched {
			if m == e {
				rules = append(rules, r)
				break
			}
		}
	}
	return rules, nil
}
