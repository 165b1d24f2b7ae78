package dom

import (
	"fmt"
	"sort"
	"strings"

	fp "github.com/npillmayer/fpweb"
	"github.com/npillmayer/fpweb/maybe"
)

// Node is a node of a document tree, either an *Element or a *Text.
type Node interface {
	NodeName() string // tag name for elements, "#text" for text nodes
	String() string
	isNode()
}

// AttrMap maps attribute names to attribute values.
type AttrMap map[string]string

// NewAttrMap folds a list of name/value pairs into an attribute map.
// If a name occurs more than once, the last occurrence wins.
func NewAttrMap(pairs []fp.Pair[string, string]) AttrMap {
	m := make(AttrMap, len(pairs))
	for _, p := range pairs {
		if _, dup := m[p.Left]; dup {
			tracer().Debugf("duplicate attribute %q, last value wins", p.Left)
		}
		m[p.Left] = p.Right
	}
	return m
}

// Keys returns the attribute names in lexical order.
func (m AttrMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m AttrMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%q", k, m[k])
	}
	b.WriteByte('}')
	return b.String()
}

// --- Elements --------------------------------------------------------------

// Element is an element node.
type Element struct {
	TagName    string
	Attributes AttrMap
	Children   []Node
}

// NewElement creates an element node. attrs may be nil.
func NewElement(tag string, attrs AttrMap, children ...Node) *Element {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Element{TagName: tag, Attributes: attrs, Children: children}
}

func (e *Element) isNode() {}

// NodeName returns the tag name of the element.
func (e *Element) NodeName() string {
	return e.TagName
}

func (e *Element) String() string {
	return fmt.Sprintf("<%s %v #ch=%d>", e.TagName, e.Attributes, len(e.Children))
}

// Attr looks up an attribute value.
func (e *Element) Attr(name string) maybe.Maybe[string] {
	v, ok := e.Attributes[name]
	return maybe.FromOk(v, ok)
}

// ID returns the value of the id attribute, or "".
func (e *Element) ID() string {
	return e.Attr("id").WithDefault("")
}

// Classes returns the white-space separated entries of the class attribute.
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class").WithDefault(""))
}

// HasChildNodes checks for existence of sub-nodes.
func (e *Element) HasChildNodes() bool {
	return len(e.Children) > 0
}

// TextContent gets the text of all text nodes below e, in document order.
func (e *Element) TextContent() string {
	var b strings.Builder
	Walk(e, func(n Node, _ int) bool {
		if t, ok := n.(*Text); ok {
			b.WriteString(t.Data)
		}
		return true
	})
	return b.String()
}

// --- Text ------------------------------------------------------------------

// Text is a text node.
type Text struct {
	Data string
}

// NewText creates a text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

func (t *Text) isNode() {}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

func (t *Text) String() string {
	return fmt.Sprintf("%q", t.Data)
}

// --- Equality --------------------------------------------------------------

// Equal checks two trees for structural equality. Attribute maps are
// compared independently of order.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Text:
		y, ok := b.(*Text)
		return ok && x.Data == y.Data
	case *Element:
		y, ok := b.(*Element)
		if !ok || x.TagName != y.TagName || len(x.Attributes) != len(y.Attributes) ||
			len(x.Children) != len(y.Children) {
			return false
		}
		for k, v := range x.Attributes {
			if w, found := y.Attributes[k]; !found || v != w {
				return false
			}
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
