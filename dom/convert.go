package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrUnsupportedNode is returned by FromHTML for HTML nodes without a
// counterpart in our document model, e.g. doctype nodes.
var ErrUnsupportedNode = errors.New("unsupported HTML node type")

// ToHTML converts a document tree into an x/net/html parse tree.
// Attributes are emitted in lexical order of their names. Tag names and
// attribute names are lower-cased, as x/net/html and its clients (e.g.
// cascadia) expect HTML names in lower case.
func ToHTML(n Node) *html.Node {
	switch x := n.(type) {
	case *Text:
		return &html.Node{Type: html.TextNode, Data: x.Data}
	case *Element:
		tag := strings.ToLower(x.TagName)
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     tag,
			DataAtom: atom.Lookup([]byte(tag)),
		}
		for _, k := range x.Attributes.Keys() {
			h.Attr = append(h.Attr, html.Attribute{Key: strings.ToLower(k), Val: x.Attributes[k]})
		}
		for _, ch := range x.Children {
			h.AppendChild(ToHTML(ch))
		}
		return h
	}
	return nil
}

// ToHTMLMapped works like ToHTML, but additionally returns a map from
// the generated HTML element nodes back to the elements of our tree.
func ToHTMLMapped(n Node) (*html.Node, map[*html.Node]*Element) {
	h := ToHTML(n)
	dict := make(map[*html.Node]*Element)
	pairUp(n, h, dict)
	return h, dict
}

func pairUp(n Node, h *html.Node, dict map[*html.Node]*Element) {
	e, ok := n.(*Element)
	if !ok {
		return
	}
	dict[h] = e
	hch := h.FirstChild
	for _, ch := range e.Children {
		pairUp(ch, hch, dict)
		hch = hch.NextSibling
	}
}

// FromHTML converts an x/net/html parse tree into a document tree.
// Comments are dropped. For document nodes, the first element child is
// converted. Other node types result in ErrUnsupportedNode.
func FromHTML(h *html.Node) (Node, error) {
	switch h.Type {
	case html.TextNode:
		return NewText(h.Data), nil
	case html.ElementNode:
		attrs := make(AttrMap, len(h.Attr))
		for _, a := range h.Attr {
			attrs[a.Key] = a.Val
		}
		var children []Node
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.CommentNode {
				continue
			}
			c, err := FromHTML(ch)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return NewElement(h.Data, attrs, children...), nil
	case html.DocumentNode:
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				return FromHTML(ch)
			}
		}
	}
	return nil, errors.Wrapf(ErrUnsupportedNode, "node type %d", h.Type)
}

// RenderHTML serializes a document tree as HTML, using x/net/html.
// Text and attribute values are escaped and void elements are written
// without a closing tag. The output is meant for HTML consumers; use
// Render for output which has to be read back by package markup.
func RenderHTML(w io.Writer, n Node) error {
	if n == nil {
		return errors.New("cannot render nil node")
	}
	return html.Render(w, ToHTML(n))
}
