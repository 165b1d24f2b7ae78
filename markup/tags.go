package markup

import (
	fp "github.com/npillmayer/fpweb"
	"github.com/npillmayer/fpweb/dom"
	p "github.com/npillmayer/fpweb/parsec"
)

// ws is optional white space, including newlines.
var ws = p.Whitespace()

func tagName() p.Parser[string] {
	return p.Label(p.Many1String(p.Letter()), "tag name")
}

func attributeName() p.Parser[string] {
	return p.Label(p.Many1String(p.Choice(p.Letter(), p.Char('-'))), "attribute name")
}

// Attribute parses name="value". The value may contain any character
// except a double quote; there is no escaping.
func Attribute() p.Parser[fp.Pair[string, string]] {
	value := p.Between(p.Char('"'), p.Char('"'), p.Many1String(p.NoneOf(`"`)))
	return p.Map(
		p.Seq3(p.Skip(attributeName(), ws), p.Skip(p.Char('='), ws), value),
		func(x fp.Triple[string, rune, string]) fp.Pair[string, string] {
			return fp.P(x.First, x.Third)
		})
}

// Attributes parses zero or more attributes, each optionally followed by
// white space, and folds them into an attribute map.
func Attributes() p.Parser[dom.AttrMap] {
	return p.Map(p.Many(p.Skip(Attribute(), ws)), dom.NewAttrMap)
}

// OpenTag parses an opening tag, returning the tag name and its attributes.
func OpenTag() p.Parser[fp.Pair[string, dom.AttrMap]] {
	return p.Map(
		p.Seq4(p.Char('<'), p.Skip(tagName(), ws), Attributes(), p.Char('>')),
		func(x fp.Quad[rune, string, dom.AttrMap, rune]) fp.Pair[string, dom.AttrMap] {
			return fp.P(x.Second, x.Third)
		})
}

// CloseTag parses a closing tag, returning the tag name.
func CloseTag() p.Parser[string] {
	return p.Between(p.String("</"), p.Char('>'), tagName())
}

// Text parses a non-empty run of characters up to the next '<'.
func Text() p.Parser[dom.Node] {
	return p.Map(p.Many1String(p.NoneOf("<")), func(s string) dom.Node {
		return dom.NewText(s)
	})
}
