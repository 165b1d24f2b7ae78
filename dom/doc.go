/*
Package dom holds the document tree produced by the markup parser.

Overview

A document tree consists of nodes of two kinds: elements, which have a tag
name, a set of attributes and children, and text nodes. Type Node is a
sealed sum type with the two variants *Element and *Text. Clients
discriminate with a type switch:

   switch n := node.(type) {
   case *dom.Element:
       … n.TagName, n.Attributes, n.Children
   case *dom.Text:
       … n.Data
   }

Trees are strict (every node has exactly one owner) and are not modified
after construction. They may therefore be shared between goroutines freely.

Interoperability

The tree may be converted to and from golang.org/x/net/html parse trees
(see ToHTML and FromHTML). This lets clients use the ecosystem around
x/net/html, e.g. cascadia selectors (see package cssom). The conversion is
also used to serialize trees as HTML (see RenderHTML). Render writes the
markup form read by package markup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'fp.dom'
func tracer() tracing.Trace {
	return tracing.Select("fp.dom")
}
