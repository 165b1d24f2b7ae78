package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients may provide a concrete implementation of this interface (e.g., see
// type Styles or package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "color"
	Value(string) string     // property value for key, e.g. "red"
	IsImportant(string) bool // is property key marked as important?
}
