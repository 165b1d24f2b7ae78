package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotSerializable is returned by Render for trees which have no
// markup form that parses back to the same tree.
var ErrNotSerializable = errors.New("tree cannot be serialized as markup")

// Render serializes a document tree as markup, in the form accepted by
// package markup: text and attribute values are written verbatim, every
// element gets an explicit closing tag, and attributes are written in
// lexical order of their names. Parsing the output yields a tree equal
// to n.
//
// Trees without such a form fail with ErrNotSerializable, e.g. text
// containing '<', empty text, adjacent text nodes, attribute values
// which are empty or contain '"', or names outside of the grammar.
func Render(w io.Writer, n Node) error {
	if n == nil {
		return errors.New("cannot render nil node")
	}
	var b strings.Builder
	if err := render(&b, n); err != nil {
		tracer().Debugf("render: %v", err)
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func render(b *strings.Builder, n Node) error {
	switch x := n.(type) {
	case *Text:
		if x.Data == "" || strings.ContainsRune(x.Data, '<') {
			return errors.Wrapf(ErrNotSerializable, "text %q", x.Data)
		}
		b.WriteString(x.Data)
	case *Element:
		if !isName(x.TagName, false) {
			return errors.Wrapf(ErrNotSerializable, "tag name %q", x.TagName)
		}
		b.WriteString("<" + x.TagName)
		for _, k := range x.Attributes.Keys() {
			v := x.Attributes[k]
			if !isName(k, true) || v == "" || strings.ContainsRune(v, '"') {
				return errors.Wrapf(ErrNotSerializable, "attribute %s=%q of <%s>", k, v, x.TagName)
			}
			b.WriteString(" " + k + `="` + v + `"`)
		}
		b.WriteByte('>')
		for i, ch := range x.Children {
			if i > 0 && isText(ch) && isText(x.Children[i-1]) {
				return errors.Wrapf(ErrNotSerializable, "adjacent text nodes in <%s>", x.TagName)
			}
			if err := render(b, ch); err != nil {
				return err
			}
		}
		b.WriteString("</" + x.TagName + ">")
	default:
		return errors.Wrapf(ErrNotSerializable, "node type %T", n)
	}
	return nil
}

func isText(n Node) bool {
	_, ok := n.(*Text)
	return ok
}

// isName checks for a non-empty run of ASCII letters, optionally
// including '-'.
func isName(s string, hyphen bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !letter && !(hyphen && r == '-') {
			return false
		}
	}
	return true
}
